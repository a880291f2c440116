package ocean_waves

import (
	"fmt"

	"github.com/notargets/gowaves/sim"
	"github.com/notargets/gowaves/wave_theories"
)

func init() {
	Register("StokesWaves", NewStokesWaves)
}

// StokesWaves drives the relaxation zones with Stokes waves of order 1 to 5
type StokesWaves struct {
	*RelaxZonesModel
	Wave *wave_theories.StokesWave
}

func NewStokesWaves(s *sim.CFDSim, label string, id int) OceanWavesModel {
	return &StokesWaves{
		RelaxZonesModel: newRelaxZonesModel(s, "StokesWaves", label, id),
	}
}

func (sw *StokesWaves) ReadInputs(mp *MultiParser) (err error) {
	wm := &sw.meta
	if err = mp.QueryInt("stokes_order", &wm.StokesOrder); err != nil {
		return
	}
	if wm.StokesOrder < 1 || wm.StokesOrder > 5 {
		return fmt.Errorf("%w: stokes_order must be between 1 and 5, have %d", ErrConfig, wm.StokesOrder)
	}
	err = readWaveInputs(wm, mp, sw.gravity(), func(period float64) (waveLength float64, err error) {
		waveLength, err = wave_theories.StokesWaveLength(period, wm.WaterDepth, wm.WaveHeight,
			wm.StokesOrder, wm.G, wm.WaveLengthTol, wm.WaveLengthIterMax)
		if err != nil {
			waveLength, err = linearFallback(wm, period, err)
		}
		return
	})
	if err != nil {
		return
	}
	sw.Wave = wave_theories.NewStokesWave(wm.StokesOrder, wm.WaveLength, wm.WaterDepth,
		wm.WaveHeight, wm.ZSL, wm.G, wm.PhaseOffset)
	wm.Omega = sw.Wave.Omega
	wm.PhaseSpeed = sw.Wave.Speed
	sw.profile = sw.Wave.Evaluate
	return
}
