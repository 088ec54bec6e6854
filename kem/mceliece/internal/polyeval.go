package internal

import "github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"

// Eval evaluates f (degree t, f[t] the leading coefficient) at a via
// Horner's method.
//
// Ported from mceliece348864/mceliece.go's eval.
func Eval(f []gf.Gf, a gf.Gf, p Params) gf.Gf {
	mul, add := p.Field.Mul, p.Field.Add
	t := p.T
	r := f[t]
	for i := t - 1; i >= 0; i-- {
		r = mul(r, a)
		r = add(r, f[i])
	}
	return r
}

// Root evaluates f at every point of l, writing the results to out.
//
// Ported from mceliece348864/mceliece.go's root.
func Root(out []gf.Gf, f []gf.Gf, l []gf.Gf, p Params) {
	for i := range l {
		out[i] = Eval(f, l[i], p)
	}
}
