// Package kem declares the generic key-encapsulation interface that every
// parameter-set package in kem/mceliece implements.
package kem

import "errors"

// Sentinel errors returned by Scheme implementations and their
// (Un)MarshalBinary methods.
var (
	ErrPubKeySize   = errors.New("kem: invalid public key size")
	ErrPrivKeySize  = errors.New("kem: invalid private key size")
	ErrCipherSize   = errors.New("kem: invalid ciphertext size")
	ErrSeedSize     = errors.New("kem: invalid seed size")
	ErrRNGFailed    = errors.New("kem: random byte source failed")
	ErrKeyGenFailed = errors.New("kem: key generation did not converge")
)

// PublicKey is the public half of a KEM key pair.
type PublicKey interface {
	Scheme() Scheme
	Equal(PublicKey) bool
	MarshalBinary() ([]byte, error)
}

// PrivateKey is the private half of a KEM key pair.
type PrivateKey interface {
	Scheme() Scheme
	Equal(PrivateKey) bool
	Public() PublicKey
	MarshalBinary() ([]byte, error)
}

// Scheme represents a specific instance of a key-encapsulation mechanism.
type Scheme interface {
	Name() string
	PublicKeySize() int
	PrivateKeySize() int
	SeedSize() int
	SharedKeySize() int
	CiphertextSize() int
	EncapsulationSeedSize() int

	// GenerateKeyPair creates a new key pair using crypto/rand.
	GenerateKeyPair() (PublicKey, PrivateKey, error)

	// DeriveKeyPair deterministically derives a key pair from a seed of
	// length SeedSize().
	DeriveKeyPair(seed []byte) (PublicKey, PrivateKey)

	// Encapsulate generates a shared key and ciphertext for pk using
	// crypto/rand.
	Encapsulate(pk PublicKey) (ct, ss []byte, err error)

	// EncapsulateDeterministically generates a shared key and ciphertext
	// for pk using the given seed of length EncapsulationSeedSize().
	EncapsulateDeterministically(pk PublicKey, seed []byte) (ct, ss []byte, err error)

	// Decapsulate recovers the shared key negotiated for ciphertext ct.
	Decapsulate(sk PrivateKey, ct []byte) ([]byte, error)

	UnmarshalBinaryPublicKey(buf []byte) (PublicKey, error)
	UnmarshalBinaryPrivateKey(buf []byte) (PrivateKey, error)
}
