package cmd

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gowaves/InputParameters"
	"github.com/notargets/gowaves/fields"
	"github.com/notargets/gowaves/ocean_waves"
	rz "github.com/notargets/gowaves/relaxation_zones"
)

func TestRunWaves(t *testing.T) {
	fileInput := []byte(`
Title: Flume
ProbLo: [0., 0., -0.5]
ProbHi: [12., 1., 0.5]
NCell: [48, 1, 16]
NumLevels: 2
DeltaT: 0.05
FinalTime: 0.5
OutputInterval: 4
Physics: [MultiPhase]
incflo:
  gravity: [0., 0., -9.81]
OceanWaves:
  type: StokesWaves
  label: flume
  StokesWaves:
    stokes_order: 5
    water_depth: 0.5
  flume:
    wave_height: 0.05
    wave_period: 1.6
    relax_zone_gen_length: 3.
    numerical_beach_length: 4.
`)
	var (
		ip = &InputParameters.InputParametersWaves{}
		v  = viper.New()
	)
	require.NoError(t, ip.Parse(fileInput))
	ip.PostDir = t.TempDir()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(fileInput)))

	ow, err := RunWaves(ip, v)
	require.NoError(t, err)
	wm := ow.Model().Meta()
	assert.Equal(t, "StokesWaves", wm.Type)
	assert.Equal(t, 5, wm.StokesOrder)
	assert.Greater(t, wm.WaveLength, 0.)
	assert.InDelta(t, 0.5, ow.Boundary().BoundaryDataTime(), 1.e-12)

	// Outputs at steps 4 and 8, then at the final step 10
	for _, dir := range []string{"ocean_waves00004", "ocean_waves00008", "ocean_waves00010"} {
		_, err = os.Stat(filepath.Join(ip.PostDir, dir, ocean_waves.OutputFileName))
		assert.NoError(t, err)
	}
}

func TestRunWavesFailures(t *testing.T) {
	fileInput := []byte(`
ProbLo: [0., 0., -0.5]
ProbHi: [12., 1., 0.5]
NCell: [48, 1, 16]
DeltaT: 0.05
FinalTime: 0.1
OceanWaves:
  type: LinearWaves
  wave_height: 0.05
  wave_length: 2.
`)
	var (
		ip = &InputParameters.InputParametersWaves{}
		v  = viper.New()
	)
	require.NoError(t, ip.Parse(fileInput))
	ip.PostDir = t.TempDir()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(fileInput)))
	// No companion physics
	_, err := RunWaves(ip, v)
	assert.ErrorIs(t, err, ocean_waves.ErrMissingPhysics)

	// Default zones, 4 + 8, do not fit a 10 long domain
	ip.Physics = []string{"MultiPhase"}
	ip.ProbHi[0] = 10.
	_, err = RunWaves(ip, v)
	assert.ErrorIs(t, err, rz.ErrZoneOverlap)
	// and the same inputs fit the 12 long domain
	ip.ProbHi[0] = 12.
	_, err = RunWaves(ip, v)
	assert.NoError(t, err)

	_, _, err = processWavesInput(&ModelWaves{})
	assert.Error(t, err)
}

func TestRunWavesExampleInput(t *testing.T) {
	var (
		ip = &InputParameters.InputParametersWaves{}
		v  = viper.New()
	)
	require.NoError(t, ip.Parse([]byte(ExampleInput)))
	ip.PostDir = t.TempDir()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader([]byte(ExampleInput))))

	ow, err := RunWaves(ip, v)
	require.NoError(t, err)
	wm := ow.Model().Meta()
	assert.Equal(t, "StokesWaves", wm.Type)
	assert.Equal(t, "", wm.Label)
	assert.Equal(t, 5, wm.StokesOrder)
	assert.Equal(t, 0.05, wm.WaveHeight)
	assert.InDelta(t, 2.*math.Pi/1.6, wm.Omega, 1.e-6)
	assert.InDelta(t, 4., ow.Boundary().BoundaryDataTime(), 1.e-9)
	_, err = os.Stat(filepath.Join(ip.PostDir, "ocean_waves00400", ocean_waves.OutputFileName))
	assert.NoError(t, err)
}

func TestCheckNaN(t *testing.T) {
	var (
		geom = fields.NewGeometry([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{4, 1, 4})
		repo = fields.NewFieldRepo(fields.NewMesh(geom, 2, 2))
	)
	repo.DeclareField("velocity", 3, 1)
	target := repo.DeclareField(ocean_waves.TargetVelocity, 3, 1)
	assert.NoError(t, checkNaN(repo))
	// A NaN in a ghost cell of a fine level target is found
	target.Level(1).Set(-1, 0, 2, 2, math.NaN())
	err := checkNaN(repo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ocean_waves.TargetVelocity)
	assert.Contains(t, err.Error(), "level 1")
}
