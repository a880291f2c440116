package ocean_waves

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/notargets/gowaves/wave_theories"
)

// WavesMeta is the parameter bundle of one wave model, fixed after ReadInputs
type WavesMeta struct {
	Type        string  `json:"type"`
	Label       string  `json:"label"`
	WaveHeight  float64 `json:"wave_height"`
	WaveLength  float64 `json:"wave_length"`
	WavePeriod  float64 `json:"wave_period,omitempty"`
	PhaseOffset float64 `json:"wave_phase_offset_radians"` // Radians
	WaterDepth  float64 `json:"water_depth"`
	ZSL         float64 `json:"zero_sea_level"` // Still water level
	Current     float64 `json:"current"`
	G           float64 `json:"gravity"` // Magnitude, acting in -z

	GenLength      float64 `json:"relax_zone_gen_length"`
	BeachLength    float64 `json:"numerical_beach_length"`
	InitWaveField  bool    `json:"init_wave_field"`
	HasBeach       bool    `json:"has_beach"`
	TimeRampPeriod float64 `json:"timeramp_period,omitempty"`

	StokesOrder       int     `json:"stokes_order,omitempty"`
	WaveLengthTol     float64 `json:"stokes_wavelength_tolerance,omitempty"`
	WaveLengthIterMax int     `json:"stokes_wavelength_iter_max,omitempty"`
	LinearFallback    bool    `json:"stokes_linear_fallback,omitempty"`

	// Derived
	Wavenumber float64 `json:"wavenumber"`
	Omega      float64 `json:"omega"`
	PhaseSpeed float64 `json:"phase_speed"`
}

func NewWavesMeta(typeName, label string) (wm WavesMeta) {
	wm = WavesMeta{
		Type:              typeName,
		Label:             label,
		WaterDepth:        0.5,
		GenLength:         4.,
		BeachLength:       8.,
		HasBeach:          true,
		StokesOrder:       2,
		WaveLengthTol:     1.e-10,
		WaveLengthIterMax: 40,
	}
	return
}

// readRelaxZoneInputs reads the zone layout shared by every wave type
func readRelaxZoneInputs(wm *WavesMeta, mp *MultiParser) (err error) {
	for _, fv := range []struct {
		key string
		val *float64
	}{
		{"water_depth", &wm.WaterDepth},
		{"relax_zone_gen_length", &wm.GenLength},
		{"numerical_beach_length", &wm.BeachLength},
		{"zero_sea_level", &wm.ZSL},
		{"current", &wm.Current},
		{"timeramp_period", &wm.TimeRampPeriod},
	} {
		if err = mp.QueryFloat(fv.key, fv.val); err != nil {
			return
		}
	}
	if err = mp.QueryBool("init_wave_field", &wm.InitWaveField); err != nil {
		return
	}
	if err = mp.QueryBool("has_beach", &wm.HasBeach); err != nil {
		return
	}
	switch {
	case wm.GenLength < 0 || wm.BeachLength < 0:
		err = fmt.Errorf("%w: zone lengths must be >= 0, generation %g, beach %g",
			ErrConfig, wm.GenLength, wm.BeachLength)
	case wm.WaterDepth <= 0:
		err = fmt.Errorf("%w: water_depth must be > 0, have %g", ErrConfig, wm.WaterDepth)
	case wm.TimeRampPeriod < 0:
		err = fmt.Errorf("%w: timeramp_period must be >= 0, have %g", ErrConfig, wm.TimeRampPeriod)
	}
	return
}

// readPhaseOffset takes the offset in radians or in degrees, never both
func readPhaseOffset(wm *WavesMeta, mp *MultiParser) (err error) {
	var (
		hasRad = mp.Contains("wave_phase_offset_radians")
		hasDeg = mp.Contains("wave_phase_offset_degrees")
	)
	switch {
	case hasRad && hasDeg:
		err = fmt.Errorf("%w: %s wave phase offset is specified in both radians and degrees, use only one",
			ErrConfig, wm.Type)
	case hasRad:
		err = mp.QueryFloat("wave_phase_offset_radians", &wm.PhaseOffset)
	case hasDeg:
		var deg float64
		if err = mp.QueryFloat("wave_phase_offset_degrees", &deg); err == nil {
			wm.PhaseOffset = deg * math.Pi / 180.
		}
	}
	return
}

func readDispersionControls(wm *WavesMeta, mp *MultiParser) (err error) {
	if err = mp.QueryFloat("stokes_wavelength_tolerance", &wm.WaveLengthTol); err != nil {
		return
	}
	if err = mp.QueryInt("stokes_wavelength_iter_max", &wm.WaveLengthIterMax); err != nil {
		return
	}
	err = mp.QueryBool("stokes_linear_fallback", &wm.LinearFallback)
	return
}

// readWaveInputs reads the inputs common to every wave theory. The wave length
// is taken directly or, when only the period is given, from solveLength.
func readWaveInputs(wm *WavesMeta, mp *MultiParser, g float64,
	solveLength func(period float64) (float64, error)) (err error) {
	if g <= 0 {
		return fmt.Errorf("%w: gravity must act in -z, have magnitude %g", ErrConfig, g)
	}
	wm.G = g
	if err = readRelaxZoneInputs(wm, mp); err != nil {
		return
	}
	if err = readPhaseOffset(wm, mp); err != nil {
		return
	}
	if wm.WaveHeight, err = mp.GetFloat("wave_height"); err != nil {
		return
	}
	if wm.WaveHeight < 0 {
		return fmt.Errorf("%w: wave_height must be >= 0, have %g", ErrConfig, wm.WaveHeight)
	}
	if err = readDispersionControls(wm, mp); err != nil {
		return
	}
	var (
		hasLength = mp.Contains("wave_length")
		hasPeriod = mp.Contains("wave_period")
	)
	switch {
	case hasLength && hasPeriod:
		return fmt.Errorf("%w: give one of wave_length or wave_period, not both", ErrConfig)
	case hasLength:
		if wm.WaveLength, err = mp.GetFloat("wave_length"); err != nil {
			return
		}
	case hasPeriod:
		if wm.WavePeriod, err = mp.GetFloat("wave_period"); err != nil {
			return
		}
		if wm.WaveLength, err = solveLength(wm.WavePeriod); err != nil {
			return
		}
	default:
		return fmt.Errorf("%w: missing required parameter wave_length (or wave_period) under %s or %s",
			ErrConfig, mp.Prefix, mp.DefaultPrefix)
	}
	if !(wm.WaveLength > 0) {
		return fmt.Errorf("%w: wave length must be > 0, have %g", ErrConfig, wm.WaveLength)
	}
	wm.Wavenumber = 2. * math.Pi / wm.WaveLength
	return
}

const (
	LinearFallbackTol     = 1.e-12
	LinearFallbackIterMax = 100
)

// linearFallback replaces a failed nonlinear dispersion solve by the linear
// estimate, when allowed to
func linearFallback(wm *WavesMeta, period float64, solveErr error) (waveLength float64, err error) {
	if !errors.Is(solveErr, wave_theories.ErrNotConverged) || !wm.LinearFallback {
		return 0, fmt.Errorf("%s wave length from period %g: %w", wm.Type, period, solveErr)
	}
	if waveLength, err = wave_theories.LinearWaveLength(period, wm.WaterDepth, wm.G,
		LinearFallbackTol, LinearFallbackIterMax); err != nil {
		return 0, fmt.Errorf("%s linear fallback for period %g: %w", wm.Type, period, err)
	}
	log.Printf("warning: %s: %v, using the linear wave length %g", wm.Type, solveErr, waveLength)
	return
}
