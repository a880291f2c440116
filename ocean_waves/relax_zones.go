package ocean_waves

import (
	"math"

	"github.com/notargets/gowaves/fields"
	rz "github.com/notargets/gowaves/relaxation_zones"
	"github.com/notargets/gowaves/sim"
	"github.com/notargets/gowaves/wave_theories"
)

const (
	TargetLevelset = "ow_levelset"
	TargetVOF      = "ow_vof"
	TargetVelocity = "ow_velocity"
)

/*
	RelaxZonesModel carries everything the wave theories have in common: the
	parameter bundle, the relaxation zone layout and the cell sweeps writing
	the target fields. A wave theory only supplies its WaveProfile.
*/
type RelaxZonesModel struct {
	sim        *sim.CFDSim
	id         int
	meta       WavesMeta
	profile    WaveProfile
	multiphase bool
	regrid     bool
}

func newRelaxZonesModel(s *sim.CFDSim, typeName, label string, id int) (m *RelaxZonesModel) {
	m = &RelaxZonesModel{
		sim:        s,
		id:         id,
		meta:       NewWavesMeta(typeName, label),
		multiphase: s.PhysicsActive("MultiPhase"),
	}
	return
}

func (m *RelaxZonesModel) Meta() WavesMeta { return m.meta }

func (m *RelaxZonesModel) ID() int { return m.id }

func (m *RelaxZonesModel) RecordRegridFlag() { m.regrid = true }

func (m *RelaxZonesModel) ResetRegridFlag() { m.regrid = false }

func (m *RelaxZonesModel) RegridFlag() bool { return m.regrid }

// gravity is the magnitude of the simulation gravity, assumed along -z
func (m *RelaxZonesModel) gravity() float64 {
	return -m.sim.GravityVector()[2]
}

// hasBeach is only honoured in multiphase mode
func (m *RelaxZonesModel) hasBeach() bool {
	return m.meta.HasBeach && m.multiphase
}

func (m *RelaxZonesModel) zones(geom fields.Geometry) rz.ZoneSpec {
	return rz.ZoneSpec{
		ProbLo:      geom.ProbLo[0],
		ProbHi:      geom.ProbHi[0],
		GenLength:   m.meta.GenLength,
		BeachLength: m.meta.BeachLength,
	}
}

// waveState evaluates the theory Doppler shifted by the current, the current
// itself is added to u by the caller
func (m *RelaxZonesModel) waveState(x, z, t float64) wave_theories.WaveVec {
	return m.profile(x-m.meta.Current*t, z, t)
}

// InitWaves sets velocity and, in multiphase mode, the level set of one level
// at the current simulation time
func (m *RelaxZonesModel) InitWaves(level int, geom fields.Geometry, multiphase bool) (err error) {
	m.multiphase = multiphase
	zs := m.zones(geom)
	if err = zs.Validate(); err != nil {
		return
	}
	var (
		repo      = m.sim.Repo()
		vel       = repo.GetField("velocity").Level(level)
		dx        = geom.CellSize()
		t         = m.sim.Time().CurrentTime
		zsl       = m.meta.ZSL
		current   = m.meta.Current
		initWave  = m.meta.InitWaveField || !multiphase
		hasBeach  = m.hasBeach()
		quiescent = wave_theories.Quiescent(zsl)
		phi       *fields.FieldLevel
	)
	if multiphase {
		phi = repo.GetField("levelset").Level(level)
	}
	vel.Sweep(m.sim.ParallelLimit(), 3, func(i, j, k int) {
		var (
			x, _, z      = geom.CellCenter(i, j, k)
			wave         = m.waveState(x, z, t)
			bulk, outlet = quiescent, wave
		)
		if initWave {
			bulk = wave
		}
		if hasBeach {
			outlet = quiescent
		}
		state := zs.Harmonize(x, wave, bulk, outlet)
		ls := state.Eta() - z
		if rz.NearInterface(ls, dx[0], dx[2]) {
			vel.Set(i, j, k, 0, current+state.U())
			vel.Set(i, j, k, 1, state.V())
			vel.Set(i, j, k, 2, state.W())
		}
		if phi != nil {
			phi.Set(i, j, k, 0, ls)
		}
	})
	return
}

// UpdateTargetFields writes ow_levelset and ow_velocity at time t on every
// active level. Velocity is zero in cells clear of the interface on the air side.
func (m *RelaxZonesModel) UpdateTargetFields(t float64) {
	var (
		repo      = m.sim.Repo()
		owPhi     = repo.GetField(TargetLevelset)
		owVel     = repo.GetField(TargetVelocity)
		current   = m.meta.Current
		hasBeach  = m.hasBeach()
		quiescent = wave_theories.Quiescent(m.meta.ZSL)
	)
	for lev := 0; lev < repo.NumActiveLevels(); lev++ {
		var (
			geom = repo.Mesh().Geom(lev)
			zs   = m.zones(geom)
			dx   = geom.CellSize()
			phi  = owPhi.Level(lev)
			vel  = owVel.Level(lev)
		)
		vel.Sweep(m.sim.ParallelLimit(), 3, func(i, j, k int) {
			xc, _, z := geom.CellCenter(i, j, k)
			// Ghost cells upstream of the inlet see the inlet state
			x := math.Max(geom.ProbLo[0], xc)
			wave := m.waveState(x, z, t)
			outlet := wave
			if hasBeach {
				outlet = quiescent
			}
			state := zs.Harmonize(x, wave, wave, outlet)
			ls := state.Eta() - z
			phi.Set(i, j, k, 0, ls)
			if rz.NearInterface(ls, dx[0], dx[2]) {
				vel.Set(i, j, k, 0, current+state.U())
				vel.Set(i, j, k, 1, state.V())
				vel.Set(i, j, k, 2, state.W())
			} else {
				vel.Set(i, j, k, 0, 0.)
				vel.Set(i, j, k, 1, 0.)
				vel.Set(i, j, k, 2, 0.)
			}
		})
	}
}

// UpdateTargetVolumeFraction converts ow_levelset into ow_vof
func (m *RelaxZonesModel) UpdateTargetVolumeFraction() {
	var (
		repo  = m.sim.Repo()
		owPhi = repo.GetField(TargetLevelset)
		owVOF = repo.GetField(TargetVOF)
	)
	for lev := 0; lev < repo.NumActiveLevels(); lev++ {
		var (
			geom = repo.Mesh().Geom(lev)
			dz   = geom.CellSize()[2]
			phi  = owPhi.Level(lev)
			vof  = owVOF.Level(lev)
		)
		vof.Sweep(m.sim.ParallelLimit(), vof.NGhost, func(i, j, k int) {
			_, _, z := geom.CellCenter(i, j, k)
			eta := phi.At(i, j, k, 0) + z
			vof.Set(i, j, k, 0, rz.ClampVOF(rz.FreeSurfaceToVOF(eta, z, dz)))
		})
	}
}

/*
	ApplyRelaxZones nudges the live vof, levelset and velocity toward the
	target fields inside the generation zone and, when there is one, the beach:
		live = (1-Gamma) target + Gamma live
	Cells outside both zones are left alone. With a time ramp the targets rise
	from still water to the full wave over the ramp period. After a regrid the
	targets are rebuilt at t before blending.
*/
func (m *RelaxZonesModel) ApplyRelaxZones(t float64) {
	if !m.multiphase {
		return
	}
	if m.regrid {
		m.UpdateTargetFields(t)
		m.UpdateTargetVolumeFraction()
	}
	var (
		repo     = m.sim.Repo()
		owPhi    = repo.GetField(TargetLevelset)
		owVOF    = repo.GetField(TargetVOF)
		owVel    = repo.GetField(TargetVelocity)
		liveVOF  = repo.GetField("vof")
		livePhi  = repo.GetField("levelset")
		liveVel  = repo.GetField("velocity")
		hasBeach = m.hasBeach()
		ramp     = rz.Ramp(t, m.meta.TimeRampPeriod)
		zsl      = m.meta.ZSL
		props    = m.sim.MultiPhaseProperties()
		density  *fields.Field
	)
	if repo.FieldExists("density") {
		density = repo.GetField("density")
	}
	for lev := 0; lev < repo.NumActiveLevels(); lev++ {
		var (
			geom = repo.Mesh().Geom(lev)
			zs   = m.zones(geom)
			dz   = geom.CellSize()[2]
			tPhi = owPhi.Level(lev)
			tVOF = owVOF.Level(lev)
			tVel = owVel.Level(lev)
			vof  = liveVOF.Level(lev)
			phi  = livePhi.Level(lev)
			vel  = liveVel.Level(lev)
			rho  *fields.FieldLevel
		)
		if density != nil {
			rho = density.Level(lev)
		}
		vof.Sweep(m.sim.ParallelLimit(), 0, func(i, j, k int) {
			x, _, z := geom.CellCenter(i, j, k)
			gammaGen, gammaBeach := zs.Weights(x)
			var gamma float64
			switch {
			case zs.InGeneration(x):
				gamma = gammaGen
			case hasBeach && zs.InBeach(x):
				gamma = gammaBeach
			default:
				return
			}
			var (
				w       = 1. - gamma
				phiQ    = zsl - z
				vofQ    = rz.FreeSurfaceToVOF(zsl, z, dz)
				phiT    = phiQ + ramp*(tPhi.At(i, j, k, 0)-phiQ)
				vofT    = vofQ + ramp*(tVOF.At(i, j, k, 0)-vofQ)
				vofNew  = rz.ClampVOF(w*vofT + gamma*vof.At(i, j, k, 0))
				phiLive = phi.At(i, j, k, 0)
			)
			vof.Set(i, j, k, 0, vofNew)
			phi.Set(i, j, k, 0, w*phiT+gamma*phiLive)
			for n := 0; n < 3; n++ {
				vel.Set(i, j, k, n, w*ramp*tVel.At(i, j, k, n)+gamma*vel.At(i, j, k, n))
			}
			if rho != nil {
				rho.Set(i, j, k, 0, vofNew*props.DensityFluid1+(1.-vofNew)*props.DensityFluid2)
			}
		})
	}
}
