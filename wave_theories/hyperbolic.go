package wave_theories

import (
	"math"
)

// Depth attenuation ratios are formed from logarithms so that cosh(j k z) and
// sinh(kd) never overflow on their own in deep water

func logCosh(x float64) float64 {
	x = math.Abs(x)
	return x + math.Log1p(math.Exp(-2.*x)) - math.Ln2
}

// logSinh requires x > 0
func logSinh(x float64) float64 {
	if x < 20. {
		return math.Log(math.Sinh(x))
	}
	return x + math.Log1p(-math.Exp(-2.*x)) - math.Ln2
}

// ScaledCosh returns a cosh(x) / sinh(kd)
func ScaledCosh(a, x, kd float64) float64 {
	if a == 0 {
		return 0
	}
	return math.Copysign(math.Exp(math.Log(math.Abs(a))+logCosh(x)-logSinh(kd)), a)
}

// ScaledSinh returns a sinh(x) / sinh(kd)
func ScaledSinh(a, x, kd float64) float64 {
	if a == 0 || x == 0 {
		return 0
	}
	return math.Copysign(math.Exp(math.Log(math.Abs(a))+logSinh(math.Abs(x))-logSinh(kd)), a*x)
}
