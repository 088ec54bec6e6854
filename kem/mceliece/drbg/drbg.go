// Package drbg implements the fixed, seed-deterministic AES-256 CTR_DRBG
// (NIST SP 800-90A, no derivation function) used to reproduce published
// known-answer-test vectors: given the same 48-byte entropy input, it
// must produce the same randomness stream the reference KAT generator
// does.
//
// Production callers should use crypto/rand instead; this package exists
// purely for test reproducibility (spec.md §6).
package drbg

import (
	"crypto/aes"
	"errors"
)

const blockSize = 16

// AesState is a CTR_DRBG instance keyed by a 32-byte key and a 16-byte
// counter block V, updated after every request per SP 800-90A's
// Update function.
//
// Grounded on original_source's test code, which constructs one from a
// 48-byte entropy_input via AesState::new().randombytes_init(...) (the
// type itself is referenced by the retrieved tests but its body is not
// in the pack; the CTR_DRBG construction it wraps is a fixed public
// specification, not invented here).
type AesState struct {
	key [32]byte
	v   [blockSize]byte
}

// NewAesState constructs a CTR_DRBG seeded with entropyInput (exactly 48
// bytes: the seed material supplied to the NIST KAT generator).
func NewAesState(entropyInput []byte) (*AesState, error) {
	if len(entropyInput) != 48 {
		return nil, errors.New("drbg: entropy input must be 48 bytes")
	}
	s := &AesState{}
	s.update(entropyInput)
	return s, nil
}

// Fill writes len(buf) pseudorandom bytes, then updates the internal
// state so the next call never repeats output (forward security, as
// required of any RNG this engine is handed — spec.md §5).
func (s *AesState) Fill(buf []byte) error {
	block, err := aes.NewCipher(s.key[:])
	if err != nil {
		return err
	}

	n := 0
	var out [blockSize]byte
	for n < len(buf) {
		incrementCounter(&s.v)
		block.Encrypt(out[:], s.v[:])
		n += copy(buf[n:], out[:])
	}

	s.update(nil)
	return nil
}

// update runs CTR_DRBG's Update function, optionally XORing in fresh
// provided_data (nil on a post-request refresh, non-nil on initial
// seeding).
func (s *AesState) update(providedData []byte) {
	block, err := aes.NewCipher(s.key[:])
	if err != nil {
		panic(err) // a fixed 32-byte key always produces a valid AES-256 cipher
	}

	var temp [48]byte
	var out [blockSize]byte
	for off := 0; off < len(temp); off += blockSize {
		incrementCounter(&s.v)
		block.Encrypt(out[:], s.v[:])
		copy(temp[off:], out[:])
	}

	if providedData != nil {
		for i := range temp {
			temp[i] ^= providedData[i]
		}
	}

	copy(s.key[:], temp[:32])
	copy(s.v[:], temp[32:48])
}

// incrementCounter treats v as a 128-bit big-endian counter and adds 1.
func incrementCounter(v *[blockSize]byte) {
	for i := blockSize - 1; i >= 0; i-- {
		v[i]++
		if v[i] != 0 {
			return
		}
	}
}
