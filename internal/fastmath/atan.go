package fastmath

import "math"

// Polynomial coefficients from https://mazzo.li/posts/vectorized-atan2.html
const (
	a1  float32 = 0.99997726
	a3  float32 = -0.33262347
	a5  float32 = 0.19354346
	a7  float32 = -0.11643287
	a9  float32 = 0.05265332
	a11 float32 = -0.01172120
)

// minNormal32 is the smallest positive normal float32.
const minNormal32 float32 = 0x1p-126

// Atan approximates atan(x) for x in [-1, 1].
func Atan(x float32) float32 {
	xSq := x * x
	return x * (a1 + xSq*(a3+xSq*(a5+xSq*(a7+xSq*(a9+xSq*a11)))))
}

// Atan2 approximates math.Atan2(y, x) in single precision.
func Atan2(y, x float32) float32 {
	// Nudging x away from zero keeps the division finite and makes
	// Atan2(0, 0) come out as 0.
	if math.Signbit(float64(x)) {
		x -= minNormal32
	} else {
		x += minNormal32
	}

	swap := abs32(x) < abs32(y)

	var in float32
	if swap {
		in = x / y
	} else {
		in = y / x
	}

	res := Atan(in)
	if swap {
		if in >= 0 {
			res = math.Pi/2 - res
		} else {
			res = -math.Pi/2 - res
		}
	}

	switch {
	case x >= 0:
		return res
	case y >= 0:
		return math.Pi + res
	default:
		return -math.Pi + res
	}
}

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
