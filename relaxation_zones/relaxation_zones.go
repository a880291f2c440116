package relaxation_zones

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gowaves/wave_theories"
)

/*
	Relaxation zones blend three candidate wave states along the propagation
	axis (x):

	  |<- generation ->|<------------- bulk ------------->|<- beach ->|
	 lo                                                               hi

	Inside the generation zone the analytic wave solution is ramped into the
	bulk state, inside the beach the bulk state is ramped into the outlet
	state. The weights follow the exponential profile of
		Jacobsen, Fuhrman, Fredsoe, "A wave generation toolbox for the
		open-source CFD library: OpenFoam", IJNMF 2012
		Gamma(xt) = 1 - (exp(xt^3.5) - 1) / (exp(1) - 1)
	which is monotone, bounded in [0,1], and continuous at the zone edges.
*/

var (
	ErrZoneOverlap = errors.New("relaxation zones exceed the domain")
)

const (
	relaxExponent = 3.5
	// VOF values within this distance of 0 or 1 snap to the pure phase
	VOFTiny = 1.e-12
)

func relaxProfile(xt float64) float64 {
	return 1. - math.Expm1(math.Pow(xt, relaxExponent))/math.Expm1(1.)
}

// GammaGenerate is the weight of the bulk state at distance x from the inlet:
// 0 at the inlet, 1 at and beyond the end of the generation zone
func GammaGenerate(x, genLength float64) float64 {
	if genLength <= 0 {
		return 1.
	}
	xt := math.Max(math.Min(1.-x/genLength, 1.), 0.)
	return relaxProfile(xt)
}

// GammaAbsorb is the weight of the bulk state at distance x from the start of
// the beach: 1 at the start of the beach, 0 at the outlet
func GammaAbsorb(x, beachLength float64) float64 {
	if beachLength <= 0 {
		return 1.
	}
	xt := math.Max(math.Min(x/beachLength, 1.), 0.)
	return relaxProfile(xt)
}

type ZoneSpec struct {
	ProbLo, ProbHi float64 // Domain bounds along the propagation axis
	GenLength      float64 // Measured from ProbLo
	BeachLength    float64 // Measured from ProbHi
}

func NewZoneSpec(probLo, probHi, genLength, beachLength float64) (zs ZoneSpec, err error) {
	zs = ZoneSpec{
		ProbLo:      probLo,
		ProbHi:      probHi,
		GenLength:   genLength,
		BeachLength: beachLength,
	}
	err = zs.Validate()
	return
}

func (zs ZoneSpec) Validate() (err error) {
	switch {
	case zs.ProbHi <= zs.ProbLo:
		err = fmt.Errorf("%w: empty domain [%g, %g]", ErrZoneOverlap, zs.ProbLo, zs.ProbHi)
	case zs.GenLength < 0 || zs.BeachLength < 0:
		err = fmt.Errorf("%w: negative zone length, generation %g, beach %g",
			ErrZoneOverlap, zs.GenLength, zs.BeachLength)
	case zs.GenLength+zs.BeachLength > zs.ProbHi-zs.ProbLo:
		err = fmt.Errorf("%w: generation %g + beach %g > domain extent %g",
			ErrZoneOverlap, zs.GenLength, zs.BeachLength, zs.ProbHi-zs.ProbLo)
	}
	return
}

// Weights returns the generation and beach bulk weights at x
func (zs ZoneSpec) Weights(x float64) (gammaGen, gammaBeach float64) {
	gammaGen = GammaGenerate(x-zs.ProbLo, zs.GenLength)
	gammaBeach = GammaAbsorb(x-(zs.ProbHi-zs.BeachLength), zs.BeachLength)
	return
}

func (zs ZoneSpec) InGeneration(x float64) bool {
	return zs.GenLength > 0 && x <= zs.ProbLo+zs.GenLength
}

func (zs ZoneSpec) InBeach(x float64) bool {
	return zs.BeachLength > 0 && x >= zs.ProbHi-zs.BeachLength
}

// Harmonize blends the three states at x, see HarmonizeProfiles1D
func (zs ZoneSpec) Harmonize(x float64, wave, bulk, outlet wave_theories.WaveVec) wave_theories.WaveVec {
	return HarmonizeProfiles1D(x, zs.ProbLo, zs.GenLength, zs.ProbHi, zs.BeachLength, wave, bulk, outlet)
}

// HarmonizeProfiles1D combines the analytic wave (generation zone), the bulk
// state and the outlet state into one state at x. The same weight applies to
// every component of the state.
func HarmonizeProfiles1D(x, leftBdy, leftLength, rightBdy, rightLength float64,
	left, bulk, right wave_theories.WaveVec) (combo wave_theories.WaveVec) {
	var (
		gammaLeft  = GammaGenerate(x-leftBdy, leftLength)
		gammaRight = GammaAbsorb(x-(rightBdy-rightLength), rightLength)
	)
	combo = bulk
	for n := 0; n < 4; n++ {
		combo[n] = (1.-gammaLeft)*left[n] + gammaLeft*combo[n]
		combo[n] = (1.-gammaRight)*right[n] + gammaRight*combo[n]
	}
	return
}

// FreeSurfaceToVOF is the fraction of a cell of height dz centered at z lying
// below the free surface eta
func FreeSurfaceToVOF(eta, z, dz float64) (vof float64) {
	switch {
	case eta-z >= dz/2.:
		vof = 1.
	case z-eta >= dz/2.:
		vof = 0.
	default:
		vof = (eta - (z - dz/2.)) / dz
	}
	return
}

// ClampVOF snaps values within VOFTiny of the pure phases
func ClampVOF(vof float64) float64 {
	switch {
	case vof > 1.-VOFTiny:
		return 1.
	case vof < VOFTiny:
		return 0.
	}
	return vof
}

// Ramp rises smoothly from 0 at t = 0 to 1 at t = period
func Ramp(t, period float64) float64 {
	if period <= 0 || t >= period {
		return 1.
	}
	if t <= 0 {
		return 0.
	}
	return t/period - math.Sin(2.*math.Pi*t/period)/(2.*math.Pi)
}

// NearInterface is true for cells within one 2D cell diagonal of the water
// side of the interface, phi = eta - z
func NearInterface(phi, dx, dz float64) bool {
	return phi+math.Sqrt(dx*dx+dz*dz) >= 0
}
