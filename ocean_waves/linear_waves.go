package ocean_waves

import (
	"github.com/notargets/gowaves/sim"
	"github.com/notargets/gowaves/wave_theories"
)

func init() {
	Register("LinearWaves", NewLinearWaves)
}

// LinearWaves drives the relaxation zones with first order (Airy) waves
type LinearWaves struct {
	*RelaxZonesModel
	Wave *wave_theories.LinearWave
}

func NewLinearWaves(s *sim.CFDSim, label string, id int) OceanWavesModel {
	return &LinearWaves{
		RelaxZonesModel: newRelaxZonesModel(s, "LinearWaves", label, id),
	}
}

func (lw *LinearWaves) ReadInputs(mp *MultiParser) (err error) {
	wm := &lw.meta
	err = readWaveInputs(wm, mp, lw.gravity(), func(period float64) (float64, error) {
		return wave_theories.LinearWaveLength(period, wm.WaterDepth, wm.G,
			wm.WaveLengthTol, wm.WaveLengthIterMax)
	})
	if err != nil {
		return
	}
	// Stokes only
	wm.StokesOrder, wm.LinearFallback = 0, false
	lw.Wave = wave_theories.NewLinearWave(wm.WaveLength, wm.WaterDepth, wm.WaveHeight,
		wm.ZSL, wm.G, wm.PhaseOffset)
	wm.Omega = lw.Wave.Omega
	wm.PhaseSpeed = lw.Wave.Omega / lw.Wave.Wavenumber
	lw.profile = lw.Wave.Evaluate
	return
}
