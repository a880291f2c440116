package wave_theories

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

var (
	ErrNotConverged = errors.New("dispersion relation did not converge")
	ErrInvalidInput = errors.New("invalid wave parameters")
)

// StokesDispersionResidual evaluates C0 + eps^2 C2 + eps^4 C4 - 2 pi / (T sqrt(g k)),
// truncated to the terms present at the given order
func StokesDispersionResidual(wavenumber, period, waterDepth, waveHeight float64, order int, g float64) (f float64) {
	var (
		k    = wavenumber
		S    = 1. / math.Cosh(2.*k*waterDepth)
		C    = 1. - S
		eps  = k * waveHeight / 2.
		eps2 = eps * eps
		C0   = math.Sqrt(math.Tanh(k * waterDepth))
	)
	f = C0
	if order >= 2 {
		f += eps2 * C0 * (2. + 7.*S*S) / (4. * C * C)
	}
	if order >= 4 {
		f += eps2 * eps2 * C0 * (4. + 32.*S - 116.*math.Pow(S, 2) - 400.*math.Pow(S, 3) -
			71.*math.Pow(S, 4) + 146.*math.Pow(S, 5)) / (32. * math.Pow(C, 5))
	}
	f -= 2. * math.Pi / (period * math.Sqrt(g*k))
	return
}

/*
StokesWaveLength inverts the Stokes dispersion relation for the wavelength
given the wave period. The first guess is the deep water linear wavenumber
k = omega^2/g; iterMax <= 0 returns that guess without iterating.

On failure to reach |residual| <= tol within iterMax Newton steps, the last
iterate is returned together with an error wrapping ErrNotConverged, so the
caller can decide whether to fall back to the linear estimate.
*/
func StokesWaveLength(period, waterDepth, waveHeight float64, order int, g, tol float64,
	iterMax int) (waveLength float64, err error) {
	if period <= 0 || waterDepth <= 0 || g <= 0 || waveHeight < 0 || order < 1 || order > 5 {
		err = fmt.Errorf("%w: period %g, depth %g, height %g, order %d, gravity %g",
			ErrInvalidInput, period, waterDepth, waveHeight, order, g)
		return
	}
	var (
		omega = 2. * math.Pi / period
		k     = omega * omega / g
		f     = func(kk float64) float64 {
			return StokesDispersionResidual(kk, period, waterDepth, waveHeight, order, g)
		}
		res float64
	)
	if iterMax <= 0 {
		waveLength = 2. * math.Pi / k
		return
	}
	for iter := 0; iter < iterMax; iter++ {
		if res = f(k); math.Abs(res) <= tol {
			waveLength = 2. * math.Pi / k
			return
		}
		dfdk := fd.Derivative(f, k, &fd.Settings{
			Formula: fd.Central,
			Step:    1.e-6 * k,
		})
		if dfdk == 0 || math.IsNaN(dfdk) {
			break
		}
		kNew := k - res/dfdk
		if kNew <= 0 {
			// Keep the iterate physical, halve toward zero instead of crossing it
			kNew = 0.5 * k
		}
		k = kNew
	}
	if res = f(k); math.Abs(res) <= tol {
		waveLength = 2. * math.Pi / k
		return
	}
	waveLength = 2. * math.Pi / k
	err = fmt.Errorf("%w: residual %g after %d iterations (tolerance %g)",
		ErrNotConverged, res, iterMax, tol)
	return
}

// LinearWaveLength solves omega^2 = g k tanh(kd) for the wavelength
func LinearWaveLength(period, waterDepth, g, tol float64, iterMax int) (waveLength float64, err error) {
	return StokesWaveLength(period, waterDepth, 0., 1, g, tol, iterMax)
}
