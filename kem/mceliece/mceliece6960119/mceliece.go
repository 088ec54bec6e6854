// Package mceliece6960119 implements the Classic McEliece KEM at the
// mceliece6960119 parameter set (category 5, strict systematic form):
// m=13, n=6960, t=119 over GF(2^13). Neither PK_NROWS (1547) nor PK_NCOLS
// (5413) is a multiple of 8 at this parameter set, so the last byte of
// every public-key row (from PK_NCOLS) and of the ciphertext syndrome
// (from PK_NROWS) carries unused padding bits that Encapsulate and
// Decapsulate must check are zero (spec's padding carve-out).
package mceliece6960119

import (
	"bytes"
	cryptoRand "crypto/rand"

	"golang.org/x/crypto/sha3"

	"github.com/quantumproof/mceliece-go/kem"
	"github.com/quantumproof/mceliece-go/kem/mceliece/drbg"
	"github.com/quantumproof/mceliece-go/kem/mceliece/internal"
	"github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"
	"github.com/quantumproof/mceliece-go/math/gf8192"
)

const (
	gfBits = gf8192.GfBits
	sysT   = 119
	sysN   = 6960

	condBytes  = (1 << (gfBits - 4)) * (2*gfBits - 1)
	irrBytes   = sysT * 2
	pkNRows    = sysT * gfBits
	pkNCols    = sysN - pkNRows
	pkRowBytes = (pkNCols + 7) / 8
	syndBytes  = (pkNRows + 7) / 8

	PublicKeySize         = pkNRows * pkRowBytes
	PrivateKeySize         = 40 + irrBytes + condBytes + sysN/8
	CryptoCiphertextBytes  = syndBytes + 32
	SeedSize               = 32
	SharedKeySize          = 32
	EncapsulationSeedSize = 32
)

var params = internal.Params{
	M:            gfBits,
	N:            sysN,
	T:            sysT,
	PaddingCheck: true,
	Field: gf.Field{
		Bits:       gf8192.GfBits,
		Mask:       gf8192.GfMask,
		Add:        gf8192.Add,
		Mul:        gf8192.Mul,
		Sq:         gf8192.Sq,
		Inv:        gf8192.Inv,
		Frac:       gf8192.Frac,
		IsZeroMask: gf8192.IsZeroMask,
	},
}

// PublicKey is the mceliece6960119 public key.
type PublicKey struct {
	pk [PublicKeySize]byte
}

// PrivateKey is the mceliece6960119 private key.
type PrivateKey struct {
	sk [PrivateKeySize]byte
}

func hashSHAKE256(out, in []byte) error {
	h := sha3.NewShake256()
	if _, err := h.Write(in); err != nil {
		return err
	}
	_, err := h.Read(out)
	return err
}

type cryptoRandRNG struct{}

func (cryptoRandRNG) Fill(buf []byte) error {
	_, err := cryptoRand.Read(buf)
	return err
}

func deriveKeyPair(seed []byte) (*PublicKey, *PrivateKey) {
	pk := &PublicKey{}
	sk := &PrivateKey{}
	internal.Keypair(pk.pk[:], sk.sk[:], seed, hashSHAKE256, params)
	return pk, sk
}

type scheme struct{}

var sch kem.Scheme = &scheme{}

// Scheme returns this parameter set's KEM.
func Scheme() kem.Scheme { return sch }

func (*scheme) Name() string               { return "Classic-McEliece-6960119" }
func (*scheme) PublicKeySize() int         { return PublicKeySize }
func (*scheme) PrivateKeySize() int        { return PrivateKeySize }
func (*scheme) SeedSize() int              { return SeedSize }
func (*scheme) SharedKeySize() int         { return SharedKeySize }
func (*scheme) CiphertextSize() int        { return CryptoCiphertextBytes }
func (*scheme) EncapsulationSeedSize() int { return EncapsulationSeedSize }

func (sk *PrivateKey) Scheme() kem.Scheme { return sch }
func (pk *PublicKey) Scheme() kem.Scheme  { return sch }

func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	var ret [PrivateKeySize]byte
	copy(ret[:], sk.sk[:])
	return ret[:], nil
}

func (sk *PrivateKey) Equal(other kem.PrivateKey) bool {
	oth, ok := other.(*PrivateKey)
	if !ok {
		return false
	}
	return bytes.Equal(sk.sk[:], oth.sk[:])
}

func (pk *PublicKey) Equal(other kem.PublicKey) bool {
	oth, ok := other.(*PublicKey)
	if !ok {
		return false
	}
	return bytes.Equal(pk.pk[:], oth.pk[:])
}

// Public recomputes the public key from sk's stored Goppa polynomial and
// control bits (see internal.PKFromPermutation).
func (sk *PrivateKey) Public() kem.PublicKey {
	irr := make([]gf.Gf, sysT)
	for i := 0; i < sysT; i++ {
		irr[i] = internal.LoadGf(sk.sk[40+2*i:40+2*i+2], gf8192.GfMask)
	}

	cond := sk.sk[40+irrBytes : 40+irrBytes+condBytes]
	full := 1 << uint(gfBits)
	identity := make([]uint16, full)
	for i := range identity {
		identity[i] = uint16(i)
	}
	internal.ApplyBenes(identity, cond, gfBits, false)

	pi := make([]int16, full)
	for i, v := range identity {
		pi[i] = int16(v)
	}

	pk := &PublicKey{}
	if !internal.PKFromPermutation(pk.pk[:], irr, pi, params) {
		panic("mceliece6960119: stored private key does not reconstruct a valid public key")
	}
	return pk
}

func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	var ret [PublicKeySize]byte
	copy(ret[:], pk.pk[:])
	return ret[:], nil
}

func (*scheme) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	var seed [SeedSize]byte
	if _, err := cryptoRand.Read(seed[:]); err != nil {
		return nil, nil, err
	}
	pk, sk := deriveKeyPair(seed[:])
	return pk, sk, nil
}

func (*scheme) DeriveKeyPair(seed []byte) (kem.PublicKey, kem.PrivateKey) {
	if len(seed) != SeedSize {
		panic("mceliece6960119: seed must be of length SeedSize")
	}
	return deriveKeyPair(seed)
}

// Encapsulate draws fresh randomness from crypto/rand and produces a
// ciphertext and shared key for pk. If pk's trailing row-padding bits
// are nonzero, Encapsulate per spec's convention still returns
// successfully but with a zeroed ciphertext and shared key (caught by
// internal.Encapsulate's padding mask, not surfaced as a Go error).
func (*scheme) Encapsulate(pk0 kem.PublicKey) (ct, ss []byte, err error) {
	pk, ok := pk0.(*PublicKey)
	if !ok {
		return nil, nil, kem.ErrPubKeySize
	}

	ct = make([]byte, CryptoCiphertextBytes)
	ss = make([]byte, SharedKeySize)
	if _, err := internal.Encapsulate(ct, ss, pk.pk[:], cryptoRandRNG{}, hashSHAKE256, params); err != nil {
		return nil, nil, err
	}
	return ct, ss, nil
}

func (*scheme) EncapsulateDeterministically(pk0 kem.PublicKey, seed []byte) (ct, ss []byte, err error) {
	pk, ok := pk0.(*PublicKey)
	if !ok {
		return nil, nil, kem.ErrPubKeySize
	}
	if len(seed) != EncapsulationSeedSize {
		panic("mceliece6960119: seed must be of length EncapsulationSeedSize")
	}

	var entropy [48]byte
	if err := hashSHAKE256(entropy[:], seed); err != nil {
		return nil, nil, err
	}
	rng, err := drbg.NewAesState(entropy[:])
	if err != nil {
		return nil, nil, err
	}

	ct = make([]byte, CryptoCiphertextBytes)
	ss = make([]byte, SharedKeySize)
	if _, err := internal.Encapsulate(ct, ss, pk.pk[:], rng, hashSHAKE256, params); err != nil {
		return nil, nil, err
	}
	return ct, ss, nil
}

// Decapsulate recovers the shared key for ct under sk. A ciphertext
// whose trailing syndrome-padding bits are nonzero still returns a
// (corrupted) key rather than an error, per spec's padding convention —
// internal.Decapsulate ORs the corruption into the returned key rather
// than branching on it.
func (*scheme) Decapsulate(sk0 kem.PrivateKey, ct []byte) ([]byte, error) {
	sk, ok := sk0.(*PrivateKey)
	if !ok {
		return nil, kem.ErrPrivKeySize
	}
	if len(ct) != CryptoCiphertextBytes {
		return nil, kem.ErrCipherSize
	}

	ss := make([]byte, SharedKeySize)
	if _, err := internal.Decapsulate(ss, ct, sk.sk[:], hashSHAKE256, params); err != nil {
		return nil, err
	}
	return ss, nil
}

func (*scheme) UnmarshalBinaryPublicKey(buf []byte) (kem.PublicKey, error) {
	if len(buf) != PublicKeySize {
		return nil, kem.ErrPubKeySize
	}
	pk := &PublicKey{}
	copy(pk.pk[:], buf)
	return pk, nil
}

func (*scheme) UnmarshalBinaryPrivateKey(buf []byte) (kem.PrivateKey, error) {
	if len(buf) != PrivateKeySize {
		return nil, kem.ErrPrivKeySize
	}
	sk := &PrivateKey{}
	copy(sk.sk[:], buf)
	return sk, nil
}
