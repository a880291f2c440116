package relaxation_zones

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gowaves/wave_theories"
)

func TestGammaProfiles(t *testing.T) {
	var (
		genLength, beachLength = 4., 8.
		N                      = 401
	)
	assert.Equal(t, 0., GammaGenerate(0., genLength))
	assert.Equal(t, 1., GammaGenerate(genLength, genLength))
	assert.Equal(t, 1., GammaGenerate(2.*genLength, genLength))
	assert.Equal(t, 1., GammaAbsorb(0., beachLength))
	assert.Equal(t, 0., GammaAbsorb(beachLength, beachLength))
	assert.Equal(t, 1., GammaAbsorb(-1., beachLength))
	// Zero length zones are pure bulk
	assert.Equal(t, 1., GammaGenerate(0., 0.))
	assert.Equal(t, 1., GammaAbsorb(0., 0.))

	gen, beach := make([]float64, N), make([]float64, N)
	for i := 0; i < N; i++ {
		s := float64(i) / float64(N-1)
		gen[i] = GammaGenerate(s*genLength, genLength)
		beach[i] = GammaAbsorb(s*beachLength, beachLength)
	}
	for i := 1; i < N; i++ {
		assert.GreaterOrEqual(t, gen[i], gen[i-1])
		assert.LessOrEqual(t, beach[i], beach[i-1])
	}
	assert.GreaterOrEqual(t, floats.Min(gen), 0.)
	assert.LessOrEqual(t, floats.Max(gen), 1.)
	assert.GreaterOrEqual(t, floats.Min(beach), 0.)
	assert.LessOrEqual(t, floats.Max(beach), 1.)
}

func TestHarmonizeProfiles(t *testing.T) {
	var (
		lo, hi      = 0., 40.
		gLen, bLen  = 5., 10.
		wave        = wave_theories.WaveVec{0.3, 0., -0.2, 0.55}
		bulk        = wave_theories.WaveVec{0.1, 0., 0.05, 0.45}
		outlet      = wave_theories.Quiescent(0.5)
		zs, err     = NewZoneSpec(lo, hi, gLen, bLen)
		N           = 801
		wGen, wBulk []float64
	)
	require.NoError(t, err)

	{ // Idempotent: no hidden state between calls
		for _, x := range []float64{0., 1.7, 5., 22., 33.3, 40.} {
			a := HarmonizeProfiles1D(x, lo, gLen, hi, bLen, wave, bulk, outlet)
			b := HarmonizeProfiles1D(x, lo, gLen, hi, bLen, wave, bulk, outlet)
			assert.Equal(t, a, b)
			assert.Equal(t, a, zs.Harmonize(x, wave, bulk, outlet))
		}
	}
	{ // End points take the pure zone states
		assert.Equal(t, wave, zs.Harmonize(lo, wave, bulk, outlet))
		assert.Equal(t, outlet, zs.Harmonize(hi, wave, bulk, outlet))
	}
	{ // Exactly the bulk state outside both zones
		for x := gLen; x <= hi-bLen; x += 0.25 {
			assert.Equal(t, bulk, zs.Harmonize(x, wave, bulk, outlet))
		}
	}
	{ // Bulk weight recovered from eta is monotone across each zone
		for i := 0; i < N; i++ {
			x := lo + gLen*float64(i)/float64(N-1)
			combo := zs.Harmonize(x, wave, bulk, outlet)
			wGen = append(wGen, (combo[3]-wave[3])/(bulk[3]-wave[3]))
			x = hi - bLen + bLen*float64(i)/float64(N-1)
			combo = zs.Harmonize(x, wave, bulk, outlet)
			wBulk = append(wBulk, (combo[3]-outlet[3])/(bulk[3]-outlet[3]))
		}
		for i := 1; i < N; i++ {
			assert.GreaterOrEqual(t, wGen[i]+1.e-12, wGen[i-1])
			assert.LessOrEqual(t, wBulk[i], wBulk[i-1]+1.e-12)
		}
	}
	{ // The same weight applies to every component
		x := 2.2
		gg, _ := zs.Weights(x)
		combo := zs.Harmonize(x, wave, bulk, outlet)
		for n := 0; n < 4; n++ {
			assert.InDelta(t, (1.-gg)*wave[n]+gg*bulk[n], combo[n], 1.e-15)
		}
	}
}

func TestZoneSpecValidate(t *testing.T) {
	_, err := NewZoneSpec(0., 10., 4., 6.)
	assert.NoError(t, err)
	_, err = NewZoneSpec(0., 10., 4., 6.5)
	assert.True(t, errors.Is(err, ErrZoneOverlap))
	_, err = NewZoneSpec(0., 10., -1., 2.)
	assert.True(t, errors.Is(err, ErrZoneOverlap))
	_, err = NewZoneSpec(3., 3., 0., 0.)
	assert.True(t, errors.Is(err, ErrZoneOverlap))

	zs, _ := NewZoneSpec(0., 10., 4., 3.)
	assert.True(t, zs.InGeneration(4.))
	assert.False(t, zs.InGeneration(4.01))
	assert.True(t, zs.InBeach(7.))
	assert.False(t, zs.InBeach(6.99))
	zs.BeachLength = 0
	assert.False(t, zs.InBeach(10.))
}

func TestFreeSurfaceToVOF(t *testing.T) {
	dz := 0.2
	assert.Equal(t, 1., FreeSurfaceToVOF(1., 0.5, dz))
	assert.Equal(t, 0., FreeSurfaceToVOF(0., 0.5, dz))
	assert.InDelta(t, 0.5, FreeSurfaceToVOF(0.5, 0.5, dz), 1.e-15)
	assert.InDelta(t, 0.75, FreeSurfaceToVOF(0.55, 0.5, dz), 1.e-12)
	assert.Equal(t, 1., ClampVOF(1.-1.e-14))
	assert.Equal(t, 0., ClampVOF(1.e-14))
	assert.Equal(t, 0.3, ClampVOF(0.3))
}

func TestRampAndProximity(t *testing.T) {
	var (
		period = 2.
		prev   = -1.
	)
	assert.Equal(t, 0., Ramp(0., period))
	assert.Equal(t, 1., Ramp(period, period))
	assert.Equal(t, 1., Ramp(0.3, 0.))
	assert.InDelta(t, 0.5, Ramp(1., period), 1.e-15)
	for tt := 0.; tt <= period; tt += 0.01 {
		r := Ramp(tt, period)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
	diag := math.Sqrt(0.1*0.1 + 0.05*0.05)
	assert.True(t, NearInterface(-diag, 0.1, 0.05))
	assert.False(t, NearInterface(-diag-1.e-9, 0.1, 0.05))
	assert.True(t, NearInterface(3., 0.1, 0.05))
}
