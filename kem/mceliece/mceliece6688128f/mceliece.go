// Package mceliece6688128f implements the Classic McEliece KEM at the
// mceliece6688128f parameter set: identical sizes to mceliece6688128
// (m=13, n=6688, t=128 over GF(2^13)) but using semi-systematic
// public-key generation, which accepts a wider range of permutation
// seeds by allowing the last block of rows to pivot on any free column
// in a 32-column window instead of failing outright on a zero diagonal.
package mceliece6688128f

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
	sysT   = 128
	sysN   = 6688

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
	M:              gfBits,
	N:              sysN,
	T:              sysT,
	Semisystematic: true,
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

// PublicKey is the mceliece6688128f public key.
type PublicKey struct {
	pk [PublicKeySize]byte
}

// PrivateKey is the mceliece6688128f private key.
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

func (*scheme) Name() string               { return "Classic-McEliece-6688128f" }
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
		panic("mceliece6688128f: stored private key does not reconstruct a valid public key")
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
		panic("mceliece6688128f: seed must be of length SeedSize")
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
		panic("mceliece6688128f: seed must be of length EncapsulationSeedSize")
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
