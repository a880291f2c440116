package wave_theories

import (
	"math"
)

// WaveVec holds the wave state (u, v, w, eta) at a point
type WaveVec [4]float64

func (wv WaveVec) U() float64 { return wv[0] }
func (wv WaveVec) V() float64 { return wv[1] }
func (wv WaveVec) W() float64 { return wv[2] }
func (wv WaveVec) Eta() float64 { return wv[3] }

// Quiescent is the state of still water at the still water level zsl
func Quiescent(zsl float64) WaveVec {
	return WaveVec{0., 0., 0., zsl}
}

// LinearDispersion returns the angular frequency of a linear wave,
// omega^2 = g k tanh(kd)
func LinearDispersion(wavenumber, waterDepth, g float64) (omega float64) {
	omega = math.Sqrt(wavenumber * g * math.Tanh(wavenumber*waterDepth))
	return
}

type LinearWave struct {
	WaveLength, WaterDepth, WaveHeight float64
	ZSL, G, PhaseOffset                float64
	Wavenumber, Omega                  float64
}

func NewLinearWave(waveLength, waterDepth, waveHeight, zsl, g, phaseOffset float64) (lw *LinearWave) {
	k := 2. * math.Pi / waveLength
	lw = &LinearWave{
		WaveLength:  waveLength,
		WaterDepth:  waterDepth,
		WaveHeight:  waveHeight,
		ZSL:         zsl,
		G:           g,
		PhaseOffset: phaseOffset,
		Wavenumber:  k,
		Omega:       LinearDispersion(k, waterDepth, g),
	}
	return
}

// Evaluate returns the Airy wave state at (x, z) and time t
func (lw *LinearWave) Evaluate(x, z, t float64) (wv WaveVec) {
	var (
		k     = lw.Wavenumber
		amp   = lw.WaveHeight / 2.
		phase = k*x - lw.Omega*t - lw.PhaseOffset
		kz    = k * (z - lw.ZSL + lw.WaterDepth)
		kd    = k * lw.WaterDepth
	)
	wv[0] = ScaledCosh(lw.Omega*amp, kz, kd) * math.Cos(phase)
	wv[2] = ScaledSinh(lw.Omega*amp, kz, kd) * math.Sin(phase)
	wv[3] = amp*math.Cos(phase) + lw.ZSL
	return
}

func LinearWaves(waveLength, waterDepth, waveHeight, zsl, g, x, z, t, phaseOffset float64) (wv WaveVec) {
	return NewLinearWave(waveLength, waterDepth, waveHeight, zsl, g, phaseOffset).Evaluate(x, z, t)
}
