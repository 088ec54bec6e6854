// Package mceliece348864 implements the Classic McEliece KEM at the
// mceliece348864 parameter set (category 1, strict systematic form):
// m=12, n=3488, t=64 over GF(2^12).
package mceliece348864

import (
	"bytes"
	cryptoRand "crypto/rand"

	"golang.org/x/crypto/sha3"

	"github.com/quantumproof/mceliece-go/kem"
	"github.com/quantumproof/mceliece-go/kem/mceliece/drbg"
	"github.com/quantumproof/mceliece-go/kem/mceliece/internal"
	"github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"
	"github.com/quantumproof/mceliece-go/math/gf4096"
)

const (
	gfBits = gf4096.GfBits
	sysT   = 64
	sysN   = 3488

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
	M: gfBits,
	N: sysN,
	T: sysT,
	Field: gf.Field{
		Bits:       gf4096.GfBits,
		Mask:       gf4096.GfMask,
		Add:        gf4096.Add,
		Mul:        gf4096.Mul,
		Sq:         gf4096.Sq,
		Inv:        gf4096.Inv,
		Frac:       gf4096.Frac,
		IsZeroMask: gf4096.IsZeroMask,
	},
}

// PublicKey is the mceliece348864 public key: a PK_NROWS x PK_ROW_BYTES
// systematic parity-check matrix.
type PublicKey struct {
	pk [PublicKeySize]byte
}

// PrivateKey is the mceliece348864 private key, laid out as
// seed(32) || pivots(8) || irr(irrBytes) || controlBits(condBytes) ||
// implicitRejectionSeed(sysN/8), per spec's secret-key format.
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

func (*scheme) Name() string               { return "Classic-McEliece-348864" }
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
// control bits: the permutation is recovered by applying the Beneš
// network the control bits describe to an identity wire array, then the
// same matrix-build-and-eliminate tail PKGen uses reproduces pk exactly
// (see internal.PKFromPermutation).
func (sk *PrivateKey) Public() kem.PublicKey {
	irr := make([]gf.Gf, sysT)
	for i := 0; i < sysT; i++ {
		irr[i] = internal.LoadGf(sk.sk[40+2*i:40+2*i+2], gf4096.GfMask)
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
		panic("mceliece348864: stored private key does not reconstruct a valid public key")
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
		panic("mceliece348864: seed must be of length SeedSize")
	}
	return deriveKeyPair(seed)
}

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
		panic("mceliece348864: seed must be of length EncapsulationSeedSize")
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
