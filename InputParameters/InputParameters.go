package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. The same file carries the
// OceanWaves, incflo and MultiPhase sections, which are read by the physics.
type InputParametersWaves struct {
	Title          string     `yaml:"Title"`
	ProbLo         [3]float64 `yaml:"ProbLo"`
	ProbHi         [3]float64 `yaml:"ProbHi"`
	NCell          [3]int     `yaml:"NCell"`
	NumLevels      int        `yaml:"NumLevels"`
	RefRatio       int        `yaml:"RefRatio"`
	DeltaT         float64    `yaml:"DeltaT"`
	FinalTime      float64    `yaml:"FinalTime"`
	MaxIterations  int        `yaml:"MaxIterations"`
	OutputInterval int        `yaml:"OutputInterval"` // Steps between diagnostic outputs, 0 = final only
	PostDir        string     `yaml:"PostDir"`
	Physics        []string   `yaml:"Physics"` // Active companion physics, MultiPhase or TerrainDrag
	ProcLimit      int        `yaml:"ProcLimit"`
}

func (ip *InputParametersWaves) Parse(data []byte) (err error) {
	*ip = InputParametersWaves{
		NumLevels: 1,
		RefRatio:  2,
		PostDir:   "post_processing",
	}
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	for n := 0; n < 3; n++ {
		if ip.NCell[n] < 1 || ip.ProbHi[n] <= ip.ProbLo[n] {
			return fmt.Errorf("invalid domain in direction %d: [%g, %g] with %d cells",
				n, ip.ProbLo[n], ip.ProbHi[n], ip.NCell[n])
		}
	}
	if ip.DeltaT <= 0 {
		return fmt.Errorf("DeltaT must be > 0, have %g", ip.DeltaT)
	}
	return
}

// NumSteps is the number of steps to reach FinalTime, capped by MaxIterations
func (ip *InputParametersWaves) NumSteps() (n int) {
	n = int(ip.FinalTime/ip.DeltaT + 0.5)
	if ip.MaxIterations > 0 && n > ip.MaxIterations {
		n = ip.MaxIterations
	}
	return
}

func (ip *InputParametersWaves) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%v -> %v\t= Domain\n", ip.ProbLo, ip.ProbHi)
	fmt.Printf("%v\t\t\t= Cells\n", ip.NCell)
	fmt.Printf("[%d]\t\t\t\t= Levels, refinement ratio %d\n", ip.NumLevels, ip.RefRatio)
	fmt.Printf("%8.5f\t\t= DeltaT\n", ip.DeltaT)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	physics := append([]string{}, ip.Physics...)
	sort.Strings(physics)
	fmt.Printf("%v\t\t= Physics\n", physics)
}
