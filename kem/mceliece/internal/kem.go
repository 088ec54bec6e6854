package internal

import "github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"

// Hash computes SHAKE256(in) truncated/extended to len(out) bytes. Every
// variant package supplies this backed by golang.org/x/crypto/sha3, since
// this module cannot import the teacher's internal sha3 package (see
// DESIGN.md).
type Hash func(out, in []byte) error

// Keypair derives a public/private key pair from a 32-byte seed,
// retrying internally on a non-irreducible polynomial or a non-
// systematic matrix, exactly as spec.md §4.9's Keypair paragraph
// describes. pk must have room for p.PublicKeySize() bytes, sk for
// p.PrivateKeySize().
//
// Ported from mceliece348864/mceliece.go's deriveKeyPair, generalized
// off its fixed constants to Params.
func Keypair(pk, sk []byte, seed []byte, hash Hash, p Params) {
	m, n, t := p.M, p.N, p.T
	full := 1 << uint(m)
	irrBytes := p.IrrBytes()
	condBytes := p.CondBytes()
	sBase := p.SBase()

	irrPolysOff := n/8 + full*4
	seedOff := irrPolysOff + t*2
	permOff := n / 8

	buf := make([]byte, 33)
	buf[0] = 64
	copy(buf[1:], seed)

	r := make([]byte, seedOff+32)
	f := make([]gf.Gf, t)
	irr := make([]gf.Gf, t)
	perm := make([]uint32, full)
	pi := make([]int16, full)

	for {
		if err := hash(r, buf[:33]); err != nil {
			panic(err)
		}

		copy(sk[:32], buf[1:])
		copy(buf[1:], r[len(r)-32:])

		for i := 0; i < t; i++ {
			f[i] = LoadGf(r[irrPolysOff+2*i:], uint16(p.Field.Mask))
		}

		if !GenPoly(irr, f, p) {
			continue
		}

		for i := 0; i < t; i++ {
			Store2(sk[40+2*i:], irr[i])
		}

		for i := 0; i < full; i++ {
			perm[i] = Load4(r[permOff+4*i:])
		}

		pivots, ok := PKGen(pk, irr, perm, pi, p)
		if !ok {
			continue
		}

		ControlBitsFromPermutation(sk[40+irrBytes:40+irrBytes+condBytes], pi, m)
		copy(sk[sBase:sBase+n/8], r[0:n/8])
		Store8(sk[32:40], pivots)
		return
	}
}

// Encapsulate produces ciphertext c (p.CiphertextSize() bytes) and a
// 32-byte shared key for public key pk. For p.PaddingCheck variants it
// returns the pk-padding status byte (0x00 clean, 0xFF corrupted,
// matching check_pk_padding's convention) and zeroes c and key on a
// dirty public key; other variants have no padding to check and always
// return 0x00.
//
// Ported from original_source/src/operations.rs's crypto_kem_enc (both
// the plain and 6960119 padding-checked variants).
func Encapsulate(c, key []byte, pk []byte, rng RNG, hash Hash, p Params) (byte, error) {
	n := p.N
	syndBytes := p.SyndBytes()

	twoE := make([]byte, 1+n/8)
	twoE[0] = 2

	oneEC := make([]byte, 1+n/8+syndBytes+32)
	oneEC[0] = 1

	paddingOK := byte(0x00)
	if p.PaddingCheck {
		paddingOK = checkPKPadding(pk, p)
	}

	if err := Encrypt(c, pk, twoE[1:], rng, p); err != nil {
		return 0, err
	}

	if err := hash(c[syndBytes:syndBytes+32], twoE); err != nil {
		return 0, err
	}

	copy(oneEC[1:1+n/8], twoE[1:])
	copy(oneEC[1+n/8:], c[:syndBytes+32])

	if err := hash(key[:32], oneEC); err != nil {
		return 0, err
	}

	if p.PaddingCheck {
		mask := paddingOK ^ 0xFF
		for i := 0; i < syndBytes+32; i++ {
			c[i] &= mask
		}
		for i := 0; i < 32; i++ {
			key[i] &= mask
		}
	}

	return paddingOK, nil
}

// Decapsulate recovers the 32-byte shared key agreed for ciphertext c
// under private key sk, falling back to a deterministic function of the
// key's implicit-rejection string (rather than a visibly different code
// path) on decoding failure. For p.PaddingCheck variants it additionally
// returns the ciphertext-padding status byte (0x00 clean, 0xFF corrupted,
// matching check_c_padding's convention) and corrupts the key (ORs it
// with 0xFF) when that padding is dirty.
//
// Ported from original_source/src/operations.rs's crypto_kem_dec.
func Decapsulate(key []byte, c []byte, sk []byte, hash Hash, p Params) (byte, error) {
	n := p.N
	irrBytes := p.IrrBytes()
	condBytes := p.CondBytes()
	syndBytes := p.SyndBytes()
	sBase := p.SBase()

	var paddingOK byte
	if p.PaddingCheck {
		paddingOK = checkCPadding(c[:syndBytes], p)
	}

	twoE := make([]byte, 1+n/8)
	twoE[0] = 2

	ok := Decrypt(twoE[1:], sk[40:40+irrBytes+condBytes], c[:syndBytes], p)
	var retDecrypt byte
	if !ok {
		retDecrypt = 1
	}

	conf := make([]byte, 32)
	if err := hash(conf, twoE); err != nil {
		return 0, err
	}

	var retConfirm byte
	for i := 0; i < 32; i++ {
		retConfirm |= conf[i] ^ c[syndBytes+i]
	}

	combined := uint16(retDecrypt) | uint16(retConfirm)
	combined--
	combined >>= 8
	mm := byte(combined)

	preimage := make([]byte, 1+n/8+syndBytes+32)
	preimage[0] = mm & 1

	s := sk[sBase : sBase+n/8]
	for i := 0; i < n/8; i++ {
		preimage[1+i] = SelectByte(mm, twoE[1+i], s[i])
	}
	copy(preimage[1+n/8:], c[:syndBytes+32])

	if err := hash(key[:32], preimage); err != nil {
		return 0, err
	}

	if p.PaddingCheck {
		bad := paddingOK
		for i := 0; i < 32; i++ {
			key[i] |= bad
		}
	}

	return paddingOK, nil
}

// checkPKPadding reports, as a 0x00/0xFF mask (0x00 clean, 0xFF
// corrupted), whether every row of pk has its trailing padding bits
// zero (spec.md §4.7's non-byte-aligned PK_NROWS note; only meaningful
// for p.PaddingCheck variants).
func checkPKPadding(pk []byte, p Params) byte {
	rowBytes := p.PkRowBytes()
	var b byte
	for i := 0; i < p.PkNRows(); i++ {
		b |= pk[i*rowBytes+rowBytes-1]
	}
	b >>= uint(p.PkNCols() % 8)
	b--
	b >>= 7
	b--
	return b
}

// checkCPadding is checkPKPadding's counterpart (same 0x00 clean/0xFF
// corrupted convention) for a ciphertext syndrome's trailing padding
// bits.
func checkCPadding(c []byte, p Params) byte {
	b := c[len(c)-1] >> uint(p.PkNRows()%8)
	b--
	b >>= 7
	b--
	return b
}
