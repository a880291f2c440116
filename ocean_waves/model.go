package ocean_waves

import (
	"fmt"
	"sort"
	"sync"

	"github.com/notargets/gowaves/fields"
	"github.com/notargets/gowaves/sim"
	"github.com/notargets/gowaves/wave_theories"
)

// OceanWavesModel is the capability set every wave theory provides to the
// OceanWaves driver
type OceanWavesModel interface {
	ReadInputs(mp *MultiParser) error
	InitWaves(level int, geom fields.Geometry, multiphase bool) error
	UpdateTargetFields(t float64)
	UpdateTargetVolumeFraction()
	ApplyRelaxZones(t float64)
	RecordRegridFlag()
	ResetRegridFlag()
	RegridFlag() bool
	PrepareOutputs(outDir string) error
	Meta() WavesMeta
}

// WaveProfile is the analytic wave state at (x, z) and time t, in the frame
// moving with the current
type WaveProfile func(x, z, t float64) wave_theories.WaveVec

type ModelFactory func(s *sim.CFDSim, label string, id int) OceanWavesModel

var (
	registryMu sync.RWMutex
	registry   = make(map[string]ModelFactory)
)

// Register makes a wave type available to Create, duplicate names are a
// programming error
func Register(typeName string, factory ModelFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[typeName]; ok {
		panic(fmt.Errorf("ocean waves model %s registered twice", typeName))
	}
	registry[typeName] = factory
}

func RegisteredModels() (names []string) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func Create(typeName string, s *sim.CFDSim, label string, id int) (m OceanWavesModel, err error) {
	registryMu.RLock()
	factory, ok := registry[typeName]
	registryMu.RUnlock()
	if !ok {
		err = fmt.Errorf("%w: unknown wave type %q, have %v", ErrConfig, typeName, RegisteredModels())
		return
	}
	m = factory(s, label, id)
	return
}
