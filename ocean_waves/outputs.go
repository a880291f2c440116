package ocean_waves

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/floats"
)

const OutputFileName = "ocean_waves.yaml"

type SurfacePoint struct {
	X   float64 `json:"x"`
	Eta float64 `json:"eta"`
}

type WavesOutput struct {
	Parameters  WavesMeta      `json:"parameters"`
	Time        float64        `json:"time"`
	TimeIndex   int            `json:"time_index"`
	EtaMin      float64        `json:"eta_min"`
	EtaMax      float64        `json:"eta_max"`
	FreeSurface []SurfacePoint `json:"free_surface"`
}

// SurfaceProfile reads the target free surface along x from ow_levelset on
// level 0, in the first row of cells in y
func (m *RelaxZonesModel) SurfaceProfile() (profile []SurfacePoint) {
	var (
		repo = m.sim.Repo()
		geom = repo.Mesh().Geom(0)
		phi  = repo.GetField(TargetLevelset).Level(0)
	)
	profile = make([]SurfacePoint, geom.NCell[0])
	for i := range profile {
		x, _, z := geom.CellCenter(i, 0, 0)
		profile[i] = SurfacePoint{
			X:   x,
			Eta: phi.At(i, 0, 0, 0) + z,
		}
	}
	return
}

// PrepareOutputs writes the wave parameters and the current target free
// surface into outDir
func (m *RelaxZonesModel) PrepareOutputs(outDir string) (err error) {
	var (
		st  = m.sim.Time()
		out = WavesOutput{
			Parameters:  m.meta,
			Time:        st.CurrentTime,
			TimeIndex:   st.TimeIndex,
			FreeSurface: m.SurfaceProfile(),
		}
		eta  = make([]float64, len(out.FreeSurface))
		data []byte
	)
	for i, p := range out.FreeSurface {
		eta[i] = p.Eta
	}
	out.EtaMin, out.EtaMax = floats.Min(eta), floats.Max(eta)
	if data, err = yaml.Marshal(out); err != nil {
		return fmt.Errorf("ocean waves output: %w", err)
	}
	if err = os.WriteFile(filepath.Join(outDir, OutputFileName), data, 0644); err != nil {
		return fmt.Errorf("ocean waves output: %w", err)
	}
	return
}
