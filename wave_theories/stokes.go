package wave_theories

import (
	"math"
)

/*
	Fifth order Stokes wave theory following
		Fenton, J. "A Fifth-Order Stokes Theory for Steady Waves",
		Journal of Waterway, Port, Coastal and Ocean Engineering, 1985, 111, 216-234

	All coefficients are functions of kd through S = sech(2kd). Coefficients
	above the requested order are left at zero so the series truncate cleanly.
*/
type StokesCoefficients struct {
	Order                   int
	C0, C2, C4              float64 // Phase speed
	A11, A22, A31, A33      float64 // Velocity potential
	A42, A44, A51, A53, A55 float64
	B22, B31, B42, B44      float64 // Free surface
	B53, B55                float64
	// Odd harmonic potential coefficients times sinh(kd), finite for any kd
	sA11, sA31, sA33        float64
	sA51, sA53, sA55        float64
}

// Past this kd the bottom is invisible to double precision. Deep water is
// evaluated at maxKD with the depth below the still water level preserved.
const maxKD = 50. * math.Pi

func NewStokesCoefficients(order int, wavenumber, waterDepth float64) (sc StokesCoefficients) {
	var (
		kd = wavenumber * waterDepth
		Sh = math.Sinh(kd)
	)
	sc = scaledStokesCoefficients(order, math.Min(kd, maxKD))
	// Sh is +Inf past kd ~ 710, the unscaled coefficients then underflow to zero
	sc.A11, sc.A31, sc.A33 = sc.sA11/Sh, sc.sA31/Sh, sc.sA33/Sh
	sc.A51, sc.A53, sc.A55 = sc.sA51/Sh, sc.sA53/Sh, sc.sA55/Sh
	return
}

// scaledStokesCoefficients fills the odd harmonic potential coefficients
// multiplied by sinh(kd)
func scaledStokesCoefficients(order int, kd float64) (sc StokesCoefficients) {
	var (
		// sech(2kd) written to stay finite for large kd
		S   = 2. * math.Exp(-2.*kd) / (1. + math.Exp(-4.*kd))
		C   = 1. - S
		Th  = math.Tanh(kd)
		CTh = (1. + math.Exp(-2.*kd)) / (1. - math.Exp(-2.*kd))
		S2  = S * S
		S3  = S2 * S
		S4  = S3 * S
		S5  = S4 * S
		S6  = S5 * S
		S7  = S6 * S
		S8  = S7 * S
		C2  = C * C
		C3  = C2 * C
		C4  = C3 * C
		C5  = C4 * C
		C6  = C5 * C
		sqT = math.Sqrt(Th)
	)
	sc.Order = order
	sc.C0 = sqT
	sc.sA11 = 1.
	if order < 2 {
		return
	}
	sc.A22 = 3. * S2 / (2. * C2)
	sc.B22 = CTh * (1. + 2.*S) / (2. * C)
	sc.C2 = sqT * (2. + 7.*S2) / (4. * C2)
	if order < 3 {
		return
	}
	sc.sA31 = (-4. - 20.*S + 10.*S2 - 13.*S3) / (8. * C3)
	sc.sA33 = (-2.*S2 + 11.*S3) / (8. * C3)
	sc.B31 = -3. * (1. + 3.*S + 3.*S2 + 2.*S3) / (8. * C3)
	if order < 4 {
		return
	}
	sc.A42 = (12.*S - 14.*S2 - 264.*S3 - 45.*S4 - 13.*S5) / (24. * C5)
	sc.A44 = (10.*S3 - 174.*S4 + 291.*S5 + 278.*S6) / (48. * (3. + 2.*S) * C5)
	sc.B42 = CTh * (6. - 26.*S - 182.*S2 - 204.*S3 - 25.*S4 + 26.*S5) /
		(6. * (3. + 2.*S) * C4)
	sc.B44 = CTh * (24. + 92.*S + 122.*S2 + 66.*S3 + 67.*S4 + 34.*S5) /
		(24. * (3. + 2.*S) * C4)
	sc.C4 = sqT * (4. + 32.*S - 116.*S2 - 400.*S3 - 71.*S4 + 146.*S5) / (32. * C5)
	if order < 5 {
		return
	}
	sc.sA51 = (-1184. + 32.*S + 13232.*S2 + 21712.*S3 + 20940.*S4 + 12554.*S5 -
		500.*S6 - 3341.*S7 - 670.*S8) / (64. * (3. + 2.*S) * (4. + S) * C6)
	sc.sA53 = (4.*S + 105.*S2 + 198.*S3 - 1376.*S4 - 1302.*S5 - 117.*S6 + 58.*S7) /
		(32. * (3. + 2.*S) * C6)
	sc.sA55 = (-6.*S3 + 272.*S4 - 1552.*S5 + 852.*S6 + 2029.*S7 + 430.*S8) /
		(64. * (3. + 2.*S) * (4. + S) * C6)
	sc.B53 = 9. * (132. + 17.*S - 2216.*S2 - 5897.*S3 - 6292.*S4 - 2687.*S5 +
		194.*S6 + 467.*S7 + 82.*S8) / (128. * (3. + 2.*S) * (4. + S) * C6)
	sc.B55 = 5. * (300. + 1579.*S + 3176.*S2 + 2949.*S3 + 1188.*S4 + 675.*S5 +
		1326.*S6 + 827.*S7 + 130.*S8) / (384. * (3. + 2.*S) * (4. + S) * C6)
	return
}

// PhaseSpeed returns c = (C0 + eps^2 C2 + eps^4 C4) sqrt(g/k), eps = kH/2
func (sc StokesCoefficients) PhaseSpeed(wavenumber, waveHeight, g float64) (c float64) {
	var (
		eps  = wavenumber * waveHeight / 2.
		eps2 = eps * eps
	)
	c = (sc.C0 + eps2*sc.C2 + eps2*eps2*sc.C4) * math.Sqrt(g/wavenumber)
	return
}

// StokesWave caches the coefficient set for one parameter bundle, the per
// cell evaluation is then a pure function of (x, z, t)
type StokesWave struct {
	Order                             int
	WaveLength, WaterDepth            float64
	WaveHeight, ZSL, G                float64
	PhaseOffset                       float64
	Wavenumber, Omega, Speed, Epsilon float64
	Coef                              StokesCoefficients
}

func NewStokesWave(order int, waveLength, waterDepth, waveHeight, zsl, g, phaseOffset float64) (sw *StokesWave) {
	k := 2. * math.Pi / waveLength
	sw = &StokesWave{
		Order:       order,
		WaveLength:  waveLength,
		WaterDepth:  waterDepth,
		WaveHeight:  waveHeight,
		ZSL:         zsl,
		G:           g,
		PhaseOffset: phaseOffset,
		Wavenumber:  k,
		Epsilon:     k * waveHeight / 2.,
		Coef:        NewStokesCoefficients(order, k, waterDepth),
	}
	sw.Speed = sw.Coef.PhaseSpeed(k, waveHeight, g)
	sw.Omega = sw.Speed * k
	return
}

// Evaluate returns (u, v, w, eta) at (x, z) and time t
func (sw *StokesWave) Evaluate(x, z, t float64) (wv WaveVec) {
	var (
		k     = sw.Wavenumber
		sc    = sw.Coef
		eps   = sw.Epsilon
		eps2  = eps * eps
		eps3  = eps2 * eps
		eps4  = eps3 * eps
		eps5  = eps4 * eps
		kd    = math.Min(k*sw.WaterDepth, maxKD)
		phase = k*x - sw.Omega*t - sw.PhaseOffset
		kz    = kd + k*(z-sw.ZSL)
		c1    = math.Cos(phase)
		c2    = math.Cos(2. * phase)
		c3    = math.Cos(3. * phase)
		c4    = math.Cos(4. * phase)
		c5    = math.Cos(5. * phase)
	)
	// Fenton (1985) Eq. 14
	eta := (eps*c1 + eps2*sc.B22*c2 + eps3*sc.B31*(c1-c3) +
		eps4*(sc.B42*c2+sc.B44*c4) +
		eps5*(-(sc.B53+sc.B55)*c1+sc.B53*c3+sc.B55*c5)) / k

	// Harmonic amplitudes of the velocity potential times sinh(kd), collected
	// by harmonic j. The even harmonics carry no 1/sinh(kd) factor of their own.
	amp := [5]float64{
		eps*sc.sA11 + eps3*sc.sA31 + eps5*sc.sA51,
		timesSinh(eps2*sc.A22+eps4*sc.A42, kd),
		eps3*sc.sA33 + eps5*sc.sA53,
		timesSinh(eps4*sc.A44, kd),
		eps5 * sc.sA55,
	}
	var (
		scale = sc.C0 * math.Sqrt(sw.G/k)
		u, w  float64
	)
	for n, a := range amp {
		j := float64(n + 1)
		u += j * ScaledCosh(a, j*kz, kd) * math.Cos(j*phase)
		w += j * ScaledSinh(a, j*kz, kd) * math.Sin(j*phase)
	}
	wv = WaveVec{scale * u, 0., scale * w, eta + sw.ZSL}
	return
}

func timesSinh(a, kd float64) float64 {
	if a == 0 {
		return 0
	}
	return math.Copysign(math.Exp(math.Log(math.Abs(a))+logSinh(kd)), a)
}

func StokesWaves(order int, waveLength, waterDepth, waveHeight, zsl, g,
	x, z, t, phaseOffset float64) (wv WaveVec) {
	return NewStokesWave(order, waveLength, waterDepth, waveHeight, zsl, g, phaseOffset).Evaluate(x, z, t)
}
