package ocean_waves

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/notargets/gowaves/fields"
	"github.com/notargets/gowaves/sim"
)

const Identifier = "OceanWaves"

/*
	OceanWaves is the physics module coupling an analytic wave model to the
	simulation. The simulation calls its hooks in order:
		PreInitActions, InitializeFields (per level), PostInitActions
	then every step
		PreAdvanceWork, PrePredictorWork, PostAdvanceWork
	with PostRegridActions after any regrid and PrepareOutputs when writing.
*/
type OceanWaves struct {
	sim        *sim.CFDSim
	owLevelset *fields.Field
	owVOF      *fields.Field
	owVelocity *fields.Field
	model      OceanWavesModel
	bndry      *OceanWavesBoundary
	multiphase bool
}

func NewOceanWaves(s *sim.CFDSim) (ow *OceanWaves) {
	repo := s.Repo()
	ow = &OceanWaves{
		sim:        s,
		owLevelset: repo.DeclareField(TargetLevelset, 1, 3),
		owVOF:      repo.DeclareField(TargetVOF, 1, 2),
		owVelocity: repo.DeclareField(TargetVelocity, 3, 3),
		bndry:      NewOceanWavesBoundary(s),
		multiphase: s.PhysicsActive("MultiPhase"),
	}
	return
}

func (ow *OceanWaves) Model() OceanWavesModel { return ow.model }

func (ow *OceanWaves) Boundary() *OceanWavesBoundary { return ow.bndry }

func (ow *OceanWaves) MultiPhaseMode() bool { return ow.multiphase }

// PreInitActions checks the companion physics, creates the wave model named by
// OceanWaves.type (or OceanWaves.<label>.type) and reads its inputs
func (ow *OceanWaves) PreInitActions(v *viper.Viper) (err error) {
	if !(ow.multiphase || ow.sim.PhysicsActive("TerrainDrag")) {
		return ErrMissingPhysics
	}
	var (
		label  = v.GetString(Identifier + ".label")
		prefix = joinKey(Identifier, label)
		typ    = v.GetString(Identifier + ".type")
	)
	if len(label) != 0 && v.IsSet(prefix+".type") {
		typ = v.GetString(prefix + ".type")
	}
	if len(typ) == 0 {
		return fmt.Errorf("%w: %s.type is required, one of %v", ErrConfig, Identifier, RegisteredModels())
	}
	if ow.model, err = Create(typ, ow.sim, label, 0); err != nil {
		return
	}
	mp := NewMultiParser(v, Identifier+"."+typ, prefix)
	if err = ow.model.ReadInputs(mp); err != nil {
		return
	}
	wm := ow.model.Meta()
	log.Printf("%s: %s, wave length %g, height %g, period %g, multiphase %v",
		Identifier, typ, wm.WaveLength, wm.WaveHeight, 2.*math.Pi/wm.Omega, ow.multiphase)
	return
}

func (ow *OceanWaves) InitializeFields(level int, geom fields.Geometry) (err error) {
	if err = ow.model.InitWaves(level, geom, ow.multiphase); err != nil {
		return fmt.Errorf("%s level %d: %w", Identifier, level, err)
	}
	return
}

func (ow *OceanWaves) PostInitActions() {
	t := ow.sim.Time().CurrentTime
	ow.model.UpdateTargetFields(t)
	ow.model.UpdateTargetVolumeFraction()
	ow.bndry.RecordBoundaryDataTime(t)
	if ow.multiphase {
		ow.model.ApplyRelaxZones(t)
	}
	ow.model.ResetRegridFlag()
}

func (ow *OceanWaves) PostRegridActions() {
	ow.model.RecordRegridFlag()
}

// PreAdvanceWork sets the targets for the advection boundaries at the half step
func (ow *OceanWaves) PreAdvanceWork() {
	st := ow.sim.Time()
	t := 0.5 * (st.CurrentTime + st.NewTime)
	ow.model.UpdateTargetFields(t)
	ow.model.UpdateTargetVolumeFraction()
	ow.bndry.RecordBoundaryDataTime(t)
}

// PrePredictorWork sets the targets for boundary fills at the new time
func (ow *OceanWaves) PrePredictorWork() {
	t := ow.sim.Time().NewTime
	ow.model.UpdateTargetFields(t)
	ow.model.UpdateTargetVolumeFraction()
	ow.bndry.RecordBoundaryDataTime(t)
}

func (ow *OceanWaves) PostAdvanceWork() {
	if ow.multiphase {
		ow.model.ApplyRelaxZones(ow.sim.Time().NewTime)
	}
	ow.model.ResetRegridFlag()
}

// PrepareOutputs writes into <post_dir>/ocean_waves<step>, returning that directory
func (ow *OceanWaves) PrepareOutputs() (outDir string, err error) {
	outDir = filepath.Join(ow.sim.PostProcessingDirectory(),
		fmt.Sprintf("ocean_waves%05d", ow.sim.Time().TimeIndex))
	if err = os.MkdirAll(outDir, 0755); err != nil {
		return
	}
	err = ow.model.PrepareOutputs(outDir)
	return
}
