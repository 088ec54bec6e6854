package internal

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"testing"
)

// fakeHash stands in for SHAKE256 in these tests: a counter-mode
// SHA-256 expansion is not what any real variant package wires up (see
// DESIGN.md), but it is a deterministic, fixed-output-from-fixed-input
// function, which is all this engine's plumbing actually depends on.
func fakeHash(out, in []byte) error {
	var ctr uint64
	for off := 0; off < len(out); {
		var block [8]byte
		binary.LittleEndian.PutUint64(block[:], ctr)
		h := sha256.New()
		h.Write(in)
		h.Write(block[:])
		sum := h.Sum(nil)
		off += copy(out[off:], sum)
		ctr++
	}
	return nil
}

// counterRNG is a minimal deterministic internal.RNG for tests: each
// Fill call advances a running SHA-256 counter stream, so two
// independent instances started at the same seed produce the same
// ciphertext-sampling sequence.
type counterRNG struct {
	seed  uint64
	calls uint64
}

func (r *counterRNG) Fill(buf []byte) error {
	r.calls++
	return fakeHash(buf, []byte{byte(r.seed), byte(r.seed >> 8), byte(r.seed >> 16), byte(r.seed >> 24), byte(r.calls), byte(r.calls >> 8)})
}

// TestKEMRoundTrip exercises Keypair, Encapsulate and Decapsulate
// together over a toy instantiation of the engine (GF(2^12), n equal to
// the full field so every wire is a code position, T=4): a correctly
// generated ciphertext must decapsulate to the same key Encapsulate
// produced.
func TestKEMRoundTrip(t *testing.T) {
	p := gf4096FullParams(4)

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	pk := make([]byte, p.PublicKeySize())
	sk := make([]byte, p.PrivateKeySize())
	Keypair(pk, sk, seed, fakeHash, p)

	rng := &counterRNG{seed: 1}
	c := make([]byte, p.CiphertextSize())
	keyEnc := make([]byte, 32)

	if _, err := Encapsulate(c, keyEnc, pk, rng, fakeHash, p); err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	keyDec := make([]byte, 32)
	if _, err := Decapsulate(keyDec, c, sk, fakeHash, p); err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}

	if !bytes.Equal(keyEnc, keyDec) {
		t.Fatalf("shared keys disagree:\n  enc: %x\n  dec: %x", keyEnc, keyDec)
	}
}

// TestKEMRoundTripSemisystematic is TestKEMRoundTrip's counterpart for
// an "f"-style instantiation (p.Semisystematic set), run over many seeds
// so that at least some of them drive pkFromPi's column-pivoting window
// (spec.md §4.6 step 3). Before pi was kept in lockstep with the
// matrix's pivot swaps, a seed that pivoted would still generate a
// public key and a seemingly valid secret key, but Decapsulate would
// reconstruct the error locations against the wrong support order and
// silently fall through to implicit rejection — this test fails loudly
// on that regression instead of depending on a single hand-picked seed.
func TestKEMRoundTripSemisystematic(t *testing.T) {
	p := gf4096FullParams(4)
	p.Semisystematic = true

	pivoted := 0
	for seed := 0; seed < 40; seed++ {
		seedBytes := make([]byte, 32)
		for i := range seedBytes {
			seedBytes[i] = byte(seed*31 + i)
		}

		pk := make([]byte, p.PublicKeySize())
		sk := make([]byte, p.PrivateKeySize())
		Keypair(pk, sk, seedBytes, fakeHash, p)

		if pivots := binary.LittleEndian.Uint64(sk[32:40]); pivots != 0 {
			pivoted++
		}

		rng := &counterRNG{seed: uint64(1000 + seed)}
		c := make([]byte, p.CiphertextSize())
		keyEnc := make([]byte, 32)
		if _, err := Encapsulate(c, keyEnc, pk, rng, fakeHash, p); err != nil {
			t.Fatalf("seed %d: Encapsulate: %v", seed, err)
		}

		keyDec := make([]byte, 32)
		if _, err := Decapsulate(keyDec, c, sk, fakeHash, p); err != nil {
			t.Fatalf("seed %d: Decapsulate: %v", seed, err)
		}

		if !bytes.Equal(keyEnc, keyDec) {
			t.Fatalf("seed %d: shared keys disagree after an honest round trip:\n  enc: %x\n  dec: %x", seed, keyEnc, keyDec)
		}
	}

	if pivoted == 0 {
		t.Fatal("none of the 40 seeds exercised the pivoting window; test doesn't cover the fix it's meant to guard")
	}
}

// TestKEMRoundTripRejectsTamperedCiphertext checks that decapsulating a
// flipped ciphertext still returns a 32-byte key (the implicit-rejection
// path), and that it disagrees with the honestly-encapsulated key.
func TestKEMRoundTripRejectsTamperedCiphertext(t *testing.T) {
	p := gf4096FullParams(4)

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	pk := make([]byte, p.PublicKeySize())
	sk := make([]byte, p.PrivateKeySize())
	Keypair(pk, sk, seed, fakeHash, p)

	rng := &counterRNG{seed: 2}
	c := make([]byte, p.CiphertextSize())
	keyEnc := make([]byte, 32)
	if _, err := Encapsulate(c, keyEnc, pk, rng, fakeHash, p); err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}

	c[0] ^= 1 // flip a syndrome bit

	keyDec := make([]byte, 32)
	if _, err := Decapsulate(keyDec, c, sk, fakeHash, p); err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}

	if bytes.Equal(keyEnc, keyDec) {
		t.Fatal("tampered ciphertext decapsulated to the honest shared key")
	}
}
