package sim

import (
	"path/filepath"
	"sort"

	"github.com/notargets/gowaves/fields"
)

type SimTime struct {
	CurrentTime, NewTime float64
	DeltaT               float64
	TimeIndex            int
}

// NewTimeStep opens the step [CurrentTime, CurrentTime+dt]
func (st *SimTime) NewTimeStep(dt float64) {
	st.DeltaT = dt
	st.NewTime = st.CurrentTime + dt
}

// Advance closes the current step
func (st *SimTime) Advance() {
	st.CurrentTime = st.NewTime
	st.TimeIndex++
}

type MultiPhaseProps struct {
	DensityFluid1, DensityFluid2 float64 // Water, air
}

// CFDSim is the context handed to physics modules: the field repository,
// time keeper, active companion physics, gravity and output location.
type CFDSim struct {
	repo       *fields.FieldRepo
	time       *SimTime
	physics    map[string]bool
	Gravity    [3]float64
	MultiPhase MultiPhaseProps
	PostDir    string
	ProcLimit  int // Go routines per sweep, 0 = NumCPU
}

func NewCFDSim(m *fields.Mesh, physics ...string) (s *CFDSim) {
	s = &CFDSim{
		repo:    fields.NewFieldRepo(m),
		time:    &SimTime{},
		physics: make(map[string]bool),
		Gravity: [3]float64{0, 0, -9.81},
		MultiPhase: MultiPhaseProps{
			DensityFluid1: 1000.,
			DensityFluid2: 1.225,
		},
		PostDir: "post_processing",
	}
	for _, p := range physics {
		s.physics[p] = true
	}
	return
}

func (s *CFDSim) Repo() *fields.FieldRepo { return s.repo }

func (s *CFDSim) Time() *SimTime { return s.time }

func (s *CFDSim) PhysicsActive(name string) bool { return s.physics[name] }

func (s *CFDSim) ActivatePhysics(name string) { s.physics[name] = true }

func (s *CFDSim) PhysicsNames() (names []string) {
	for name := range s.physics {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func (s *CFDSim) PostProcessingDirectory() string { return filepath.Clean(s.PostDir) }

func (s *CFDSim) GravityVector() [3]float64 { return s.Gravity }

func (s *CFDSim) MultiPhaseProperties() MultiPhaseProps { return s.MultiPhase }

func (s *CFDSim) ParallelLimit() int { return s.ProcLimit }
