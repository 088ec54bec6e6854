package internal

import "github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"

// Decrypt recovers the constant-weight-T error vector e (p.N/8 bytes)
// from ciphertext syndrome c, using the Goppa polynomial and Beneš
// control bits packed into skTail (i.e. sk[40 : 40+IRR_BYTES+COND_BYTES]
// in the secret key layout from spec.md §3). It returns true iff
// decoding succeeded: the recomputed syndrome matches and the recovered
// error weight is exactly T.
//
// The decrypt() body itself is not in the retrieved pack (only its call
// shape, in original_source/src/operations.rs's crypto_kem_dec); this
// follows spec.md §4.8's explicit step list: unpack, inverse-Beneš into
// support order, compute the syndrome via the Goppa square trick, run
// BM, find roots across the full field, forward-Beneš back to
// ciphertext order, then validate with masks rather than branches.
func Decrypt(e []byte, skTail []byte, c []byte, p Params) bool {
	m, n, t := p.M, p.N, p.T
	field := p.Field
	full := 1 << uint(m)

	g := make([]gf.Gf, t+1)
	g[t] = 1
	for i := 0; i < t; i++ {
		g[i] = LoadGf(skTail[2*i:2*i+2], uint16(field.Mask))
	}
	cond := skTail[p.IrrBytes() : p.IrrBytes()+p.CondBytes()]

	r := make([]uint16, full)
	pkNRows := p.PkNRows()
	for i := 0; i < pkNRows; i++ {
		r[i] = uint16((c[i/8] >> uint(i%8)) & 1)
	}
	ApplyBenes(r, cond, m, true)

	s := make([]gf.Gf, 2*t)
	computeSyndrome(s, g, r, p)

	sigma := make([]gf.Gf, t+1)
	BM(sigma, s, p)

	l := make([]gf.Gf, full)
	for i := 0; i < full; i++ {
		l[i] = field.BitRev(gf.Gf(i))
	}
	images := make([]gf.Gf, full)
	Root(images, sigma, l, p)

	support := make([]uint16, full)
	for i := 0; i < full; i++ {
		support[i] = field.IsZeroMask(images[i]) & 1
	}

	check := make([]gf.Gf, 2*t)
	computeSyndrome(check, g, support, p)

	var diff gf.Gf
	for i := 0; i < 2*t; i++ {
		diff |= check[i] ^ s[i]
	}

	cipherOrder := make([]uint16, full)
	copy(cipherOrder, support)
	ApplyBenes(cipherOrder, cond, m, false)

	var weight int
	for i := 0; i < n; i++ {
		weight += int(cipherOrder[i])
	}

	for i := range e {
		e[i] = 0
	}
	for i := 0; i < n; i++ {
		e[i/8] |= byte(cipherOrder[i]) << uint(i%8)
	}

	weightMask := field.IsZeroMask(gf.Gf(weight ^ t))
	syndMask := field.IsZeroMask(diff)
	return weightMask&syndMask != 0
}

// computeSyndrome fills s (length 2*T) with S_i = sum over support
// positions k with r[k]=1 of alpha_k^i / g(alpha_k)^2, i in [0,2T) — the
// Goppa square trick of spec.md §4.8 step 3. r is in support order: its
// k-th entry corresponds to support point alpha_k = BitRev(k).
//
// The per-position contribution is always computed and then masked by
// r[k], rather than skipped when r[k]=0, so the loop's timing does not
// depend on which positions are set.
func computeSyndrome(s []gf.Gf, g []gf.Gf, r []uint16, p Params) {
	field := p.Field
	t := p.T

	for i := range s[:2*t] {
		s[i] = 0
	}

	for k := range r {
		alpha := field.BitRev(gf.Gf(k))
		denom := field.Sq(Eval(g, alpha, p))
		power := field.Inv(denom)
		mask := gf.Gf(0) - gf.Gf(r[k]&1)

		for i := 0; i < 2*t; i++ {
			s[i] ^= power & mask
			power = field.Mul(power, alpha)
		}
	}
}
