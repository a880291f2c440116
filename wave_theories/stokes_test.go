package wave_theories

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// kd = 0.758932 matches column 3 of table 2 in
// Fenton, J. Fifth Order Stokes Theory for Steady Waves, 1985
const (
	fentonK     = 2.0
	fentonDepth = 0.376991
)

func TestStokesCoefficients(t *testing.T) {
	var (
		tol = 1.e-4
		sc  = NewStokesCoefficients(5, fentonK, fentonDepth)
	)
	assert.InDelta(t, 1.208490, sc.A11, tol)
	assert.InDelta(t, 0.799840, sc.A22, tol)
	assert.InDelta(t, -9.105340, sc.A31, tol)
	assert.InDelta(t, 0.368275, sc.A33, tol)
	assert.InDelta(t, -12.196150, sc.A42, tol)
	assert.InDelta(t, 0.058723, sc.A44, tol)
	assert.InDelta(t, 108.46831725, sc.A51, tol)
	assert.InDelta(t, -6.941756, sc.A53, tol)
	assert.InDelta(t, -0.074979, sc.A55, tol)
	assert.InDelta(t, 2.502414, sc.B22, tol)
	assert.InDelta(t, -5.731666, sc.B31, tol)
	assert.InDelta(t, -32.407508, sc.B42, tol)
	assert.InDelta(t, 14.033758, sc.B44, tol)
	assert.InDelta(t, -103.44536875, sc.B53, tol)
	assert.InDelta(t, 37.200027, sc.B55, tol)
	assert.InDelta(t, 0.798448, sc.C0, tol)
	assert.InDelta(t, 1.940215, sc.C2, tol)
	assert.InDelta(t, -12.970403, sc.C4, tol)

	{ // Truncation below fifth order leaves the higher coefficients at zero
		sc3 := NewStokesCoefficients(3, fentonK, fentonDepth)
		assert.Equal(t, sc.A31, sc3.A31)
		assert.Equal(t, sc.B31, sc3.B31)
		assert.Zero(t, sc3.A42)
		assert.Zero(t, sc3.C4)
		assert.Zero(t, sc3.B55)
		sc1 := NewStokesCoefficients(1, fentonK, fentonDepth)
		assert.Zero(t, sc1.B22)
		assert.Zero(t, sc1.C2)
	}
}

// fentonEta is Eq. (14) of Fenton 1985 with independently supplied coefficients
func fentonEta(eps, phase, k, zsl, B22, B31, B42, B44, B53, B55 float64) float64 {
	return (eps*math.Cos(phase) + math.Pow(eps, 2)*B22*math.Cos(2.*phase) +
		math.Pow(eps, 3)*B31*(math.Cos(phase)-math.Cos(3.*phase)) +
		math.Pow(eps, 4)*(B42*math.Cos(2.*phase)+B44*math.Cos(4.*phase)) +
		math.Pow(eps, 5)*(-(B53+B55)*math.Cos(phase)+B53*math.Cos(3*phase)+
			B55*math.Cos(5*phase)))/k + zsl
}

func TestStokesFreeSurfaceProfile(t *testing.T) {
	var (
		tol = 1.e-4
		g   = 9.81
	)
	{ // Finite depth
		var (
			k, d, H     = fentonK, fentonDepth, 0.1
			x, z, time  = 0., -0.25, 0.
			zsl, offset = 0., 0.
		)
		wv := StokesWaves(5, 2.*math.Pi/k, d, H, zsl, g, x, z, time, offset)

		eps := k * H / 2.
		S := 2. * math.Exp(2.*k*d) / (math.Exp(4.*k*d) + 1.)
		C := 1.0 - S
		C0 := math.Sqrt(math.Tanh(k * d))
		C2 := C0 * (2 + 7*math.Pow(S, 2)) / (4 * math.Pow(C, 2))
		C4 := C0 * (4 + 32*S - 116*math.Pow(S, 2) - 400*math.Pow(S, 3) -
			71*math.Pow(S, 4) + 146*math.Pow(S, 5)) / (32 * math.Pow(C, 5))
		c := (C0 + math.Pow(eps, 2)*C2 + math.Pow(eps, 4)*C4) * math.Sqrt(g/k)
		phase := k*x - c*k*time - offset
		eta := fentonEta(eps, phase, k, zsl,
			2.502414, -5.731666, -32.407508, 14.033758, -103.44536875, 37.200027)
		assert.InDelta(t, eta, wv.Eta(), tol)
	}
	{ // Deep water limit, kd -> infinity: S = 0, C = 1
		var (
			k, d, H     = 0.156, 100., 0.16
			x, z, time  = 4., 0., 2.7
			zsl, offset = 0., math.Pi
		)
		wv := StokesWaves(5, 2.*math.Pi/k, d, H, zsl, g, x, z, time, offset)

		eps := k * H / 2.
		c := (1. + math.Pow(eps, 2)*0.5 + math.Pow(eps, 4)*0.125) * math.Sqrt(g/k)
		phase := k*x - c*k*time - offset
		eta := fentonEta(eps, phase, k, zsl,
			0.5, -0.375, 0.3333333, 0.3333333, 0.7734375, 0.3255208)
		assert.InDelta(t, eta, wv.Eta(), tol)
	}
}

func TestStokesVelocityComponents(t *testing.T) {
	var (
		tol          = 1.e-4
		g            = 9.81
		order        = 5
		k, d, H      = fentonK, fentonDepth, 0.1
		x, z, time   = 0., -0.25, 0.
		zsl, offset  = 0., 0.
		A11, A22     = 1.208490, 0.799840
		A31, A33     = -9.105340, 0.368275
		A42, A44     = -12.196150, 0.058723
		A51, A53     = 108.46831725, -6.941756
		A55          = -0.074979
		eps          = k * H / 2.
		eps2         = eps * eps
		uTheo, wTheo float64
	)
	wv := StokesWaves(order, 2.*math.Pi/k, d, H, zsl, g, x, z, time, offset)

	S := 2. * math.Exp(2.*k*d) / (math.Exp(4.*k*d) + 1.)
	C := 1.0 - S
	C0 := math.Sqrt(math.Tanh(k * d))
	C2 := C0 * (2 + 7*math.Pow(S, 2)) / (4 * math.Pow(C, 2))
	C4 := C0 * (4 + 32*S - 116*math.Pow(S, 2) - 400*math.Pow(S, 3) -
		71*math.Pow(S, 4) + 146*math.Pow(S, 5)) / (32 * math.Pow(C, 5))
	c := (C0 + eps2*C2 + eps2*eps2*C4) * math.Sqrt(g/k)
	phase := k*x - c*k*time - offset

	// Kinnas, Eq. (19), (21) and (23)
	a := []float64{
		A11 + eps2*A31 + eps2*eps2*A51,
		A22 + eps2*A42,
		A33 + eps2*A53,
		A44,
		A55,
	}
	for n := 0; n < order; n++ {
		nn := float64(n + 1)
		uTheo += math.Pow(eps, nn) * nn * a[n] * math.Cosh(nn*k*(d+(z-zsl))) * math.Cos(nn*phase)
		wTheo += math.Pow(eps, nn) * nn * a[n] * math.Sinh(nn*k*(d+(z-zsl))) * math.Sin(nn*phase)
	}
	uTheo *= C0 * math.Sqrt(g/k)
	wTheo *= C0 * math.Sqrt(g/k)

	assert.InDelta(t, uTheo, wv.U(), tol)
	assert.InDelta(t, wTheo, wv.W(), tol)
	assert.Zero(t, wv.V())
}

func TestStokesFirstOrderIsLinear(t *testing.T) {
	var (
		tol               = 1.e-12
		g                 = 9.81
		L, d, H, zsl, off = 12., 3., 0.4, 1.5, 0.3
	)
	for _, pt := range [][3]float64{{0, 0.2, 0}, {3.3, -0.7, 1.1}, {-7, 1.6, 4.2}} {
		x, z, time := pt[0], pt[1], pt[2]
		ws := StokesWaves(1, L, d, H, zsl, g, x, z, time, off)
		wl := LinearWaves(L, d, H, zsl, g, x, z, time, off)
		for n := 0; n < 4; n++ {
			assert.InDelta(t, wl[n], ws[n], tol)
		}
	}
}

func TestStokesWaveCaching(t *testing.T) {
	sw := NewStokesWave(5, 2.*math.Pi/fentonK, fentonDepth, 0.1, 0., 9.81, 0.)
	assert.Equal(t, NewStokesCoefficients(5, fentonK, fentonDepth), sw.Coef)
	assert.InDelta(t, sw.Speed*sw.Wavenumber, sw.Omega, 1.e-14)
	// Repeated evaluation is free of hidden state
	assert.Equal(t, sw.Evaluate(1.3, -0.1, 0.4), sw.Evaluate(1.3, -0.1, 0.4))
}

func TestStokesDeepWater(t *testing.T) {
	var (
		g, L, H  = 9.81, 1.0, 0.05
		x, z, t0 = 0.1, -0.05, 0.3
		ref      = NewStokesWave(5, L, 20., H, 0., g, 0.).Evaluate(x, z, t0)
	)
	// kd from 126 past the overflow of cosh(5kd) and sinh(kd)
	for _, d := range []float64{20., 26., 30., 100., 1000., 1.e5} {
		ws := NewStokesWave(5, L, d, H, 0., g, 0.).Evaluate(x, z, t0)
		wl := NewLinearWave(L, d, H, 0., g, 0.).Evaluate(x, z, t0)
		for n := 0; n < 4; n++ {
			assert.Falsef(t, math.IsNaN(ws[n]) || math.IsInf(ws[n], 0), "depth %g component %d", d, n)
			assert.Falsef(t, math.IsNaN(wl[n]) || math.IsInf(wl[n], 0), "depth %g component %d", d, n)
		}
		// The bottom no longer matters
		for n := 0; n < 4; n++ {
			assert.InDeltaf(t, ref[n], ws[n], 1.e-10, "depth %g component %d", d, n)
		}
		// First order terms dominate, the rest is O(eps^2) with eps = kH/2 = 0.157
		assert.InDelta(t, wl.U(), ws.U(), 0.03*math.Abs(wl.U())+5.e-3)
		assert.InDelta(t, wl.W(), ws.W(), 0.03*math.Abs(wl.W())+5.e-3)

		// At first order the two theories coincide
		w1 := NewStokesWave(1, L, d, H, 0., g, 0.).Evaluate(x, z, t0)
		assert.InDeltaf(t, wl.U(), w1.U(), 1.e-9, "depth %g", d)
		assert.InDeltaf(t, wl.W(), w1.W(), 1.e-9, "depth %g", d)
		assert.InDeltaf(t, wl.Eta(), w1.Eta(), 1.e-12, "depth %g", d)
	}
	// Linear deep water limit: u = omega a e^{kz} cos(phase)
	var (
		k     = 2. * math.Pi / L
		omega = math.Sqrt(g * k)
		wl    = NewLinearWave(L, 1000., H, 0., g, 0.).Evaluate(x, z, t0)
		phase = k*x - omega*t0
	)
	assert.InDelta(t, omega*H/2.*math.Exp(k*z)*math.Cos(phase), wl.U(), 1.e-12)
	assert.InDelta(t, omega*H/2.*math.Exp(k*z)*math.Sin(phase), wl.W(), 1.e-12)
}
