package gate

import "math/cmplx"

// Fixed single-qubit matrices.
var (
	identity = [][]complex128{
		{1, 0},
		{0, 1},
	}
	pauliX = [][]complex128{
		{0, 1},
		{1, 0},
	}
	pauliY = [][]complex128{
		{0, -1i},
		{1i, 0},
	}
	pauliZ = [][]complex128{
		{1, 0},
		{0, -1},
	}
	hadamard = [][]complex128{
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	}
	phaseS = [][]complex128{
		{1, 0},
		{0, 1i},
	}
	phaseSdg = [][]complex128{
		{1, 0},
		{0, -1i},
	}
	phaseT = [][]complex128{
		{1, 0},
		{0, complex(invSqrt2r, invSqrt2r)},
	}
	phaseTdg = [][]complex128{
		{1, 0},
		{0, complex(invSqrt2r, -invSqrt2r)},
	}
	sqrtX = [][]complex128{
		{complex(0.5, 0.5), complex(0.5, -0.5)},
		{complex(0.5, -0.5), complex(0.5, 0.5)},
	}
	sqrtY = [][]complex128{
		{complex(0.5, 0.5), complex(-0.5, -0.5)},
		{complex(0.5, 0.5), complex(0.5, 0.5)},
	}
)

// Fixed multi-qubit matrices, indexed big-endian over the gate's qubit
// arguments (first argument is the most significant bit).
var (
	controlledX = [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	controlledY = [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, -1i},
		{0, 0, 1i, 0},
	}
	controlledZ = [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	}
	swap = [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
	iswap = [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1i, 0},
		{0, 1i, 0, 0},
		{0, 0, 0, 1},
	}
	toffoli = [][]complex128{
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 1, 0},
	}
	controlledSwap = [][]complex128{
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
	}
)

const (
	invSqrt2r = 0.7071067811865476
	invSqrt2  = complex(invSqrt2r, 0)
)

// rotationX returns the rx(theta) matrix.
func rotationX(theta float64) [][]complex128 {
	c := cmplx.Cos(complex(theta/2, 0))
	s := cmplx.Sin(complex(theta/2, 0))
	return [][]complex128{
		{c, -1i * s},
		{-1i * s, c},
	}
}

// rotationY returns the ry(theta) matrix.
func rotationY(theta float64) [][]complex128 {
	c := cmplx.Cos(complex(theta/2, 0))
	s := cmplx.Sin(complex(theta/2, 0))
	return [][]complex128{
		{c, -s},
		{s, c},
	}
}

// rotationZ returns the rz(theta) matrix.
func rotationZ(theta float64) [][]complex128 {
	return [][]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

// u3 returns the general single-qubit rotation u3(theta, phi, lambda).
func u3(theta, phi, lambda float64) [][]complex128 {
	c := cmplx.Cos(complex(theta/2, 0))
	s := cmplx.Sin(complex(theta/2, 0))
	return [][]complex128{
		{c, -cmplx.Exp(complex(0, lambda)) * s},
		{cmplx.Exp(complex(0, phi)) * s, cmplx.Exp(complex(0, phi+lambda)) * c},
	}
}

// controlledPhase returns the cp(theta) matrix.
func controlledPhase(theta float64) [][]complex128 {
	return [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, cmplx.Exp(complex(0, theta))},
	}
}
