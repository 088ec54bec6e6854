package internal

import "github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"

// BM runs the Berlekamp-Massey algorithm on the syndrome sequence s
// (length 2*p.T), writing the degree-<=T error-locator polynomial to out
// (length T+1) with coefficients reversed: out[i] holds the coefficient of
// x^(T-i), so out[T] is the constant term.
//
// Ported from original_source/src/bm.rs, which documents the constant-time
// masking this needs: both the "continue" and "adjust" update to the
// connection polynomial are computed unconditionally and selected via a
// mask derived from the discrepancy and the (n, 2l) comparison, never a
// branch on secret data.
func BM(out []gf.Gf, s []gf.Gf, p Params) {
	t := p.T
	mul, frac := p.Field.Mul, p.Field.Frac

	var l uint16
	c := make([]gf.Gf, t+1)
	b := make([]gf.Gf, t+1)
	tt := make([]gf.Gf, t+1)

	var base gf.Gf = 1
	b[1] = 1
	c[0] = 1

	for n := 0; n < 2*t; n++ {
		var d gf.Gf
		top := n
		if t < top {
			top = t
		}
		for i := 0; i <= top; i++ {
			d ^= mul(c[i], s[n-i])
		}

		mne := d
		mne--
		mne >>= 15
		mne--

		mle := uint16(n)
		mle -= 2 * l
		mle >>= 15
		mle--
		mle &= mne

		copy(tt, c[:t+1])

		f := frac(base, d)

		for i := 0; i <= t; i++ {
			c[i] ^= mul(f, b[i]) & mne
		}

		l = (l &^ mle) | ((uint16(n) + 1 - l) & mle)

		for i := 0; i <= t; i++ {
			b[i] = (b[i] &^ mle) | (tt[i] & mle)
		}

		base = (base &^ gf.Gf(mle)) | (d & gf.Gf(mle))

		for i := t; i >= 1; i-- {
			b[i] = b[i-1]
		}
		b[0] = 0
	}

	for i := 0; i <= t; i++ {
		out[i] = c[t-i]
	}
}
