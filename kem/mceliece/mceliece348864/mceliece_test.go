package mceliece348864

import (
	"bytes"
	"testing"
)

func TestDeriveKeyPairDeterministic(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	pk1, sk1 := deriveKeyPair(seed)
	pk2, sk2 := deriveKeyPair(seed)

	if !bytes.Equal(pk1.pk[:], pk2.pk[:]) {
		t.Fatal("same seed produced different public keys")
	}
	if !bytes.Equal(sk1.sk[:], sk2.sk[:]) {
		t.Fatal("same seed produced different private keys")
	}
}

func TestPrivateKeyPublicReconstructsPublicKey(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i * 3)
	}

	pk, sk := deriveKeyPair(seed)
	reconstructed := sk.Public().(*PublicKey)

	if !bytes.Equal(pk.pk[:], reconstructed.pk[:]) {
		t.Fatal("Public() did not reconstruct the original public key")
	}
}

func TestKEMRoundTrip(t *testing.T) {
	sch := Scheme()

	pk, sk, err := sch.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	ct, ssEnc, err := sch.Encapsulate(pk)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	if len(ct) != CryptoCiphertextBytes {
		t.Fatalf("ciphertext length: got %d want %d", len(ct), CryptoCiphertextBytes)
	}

	ssDec, err := sch.Decapsulate(sk, ct)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}

	if !bytes.Equal(ssEnc, ssDec) {
		t.Fatal("shared keys disagree after an honest round trip")
	}
}

func TestEncapsulateDeterministicallyIsDeterministic(t *testing.T) {
	sch := Scheme()
	_, sk, err := sch.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	pk := sk.Public()

	seed := make([]byte, EncapsulationSeedSize)
	for i := range seed {
		seed[i] = byte(i + 5)
	}

	ct1, ss1, err := sch.EncapsulateDeterministically(pk, seed)
	if err != nil {
		t.Fatalf("EncapsulateDeterministically: %v", err)
	}
	ct2, ss2, err := sch.EncapsulateDeterministically(pk, seed)
	if err != nil {
		t.Fatalf("EncapsulateDeterministically: %v", err)
	}

	if !bytes.Equal(ct1, ct2) || !bytes.Equal(ss1, ss2) {
		t.Fatal("EncapsulateDeterministically produced different output for the same seed")
	}

	ss, err := sch.Decapsulate(sk, ct1)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if !bytes.Equal(ss, ss1) {
		t.Fatal("decapsulating a deterministically encapsulated ciphertext gave a different key")
	}
}

func TestUnmarshalRejectsWrongSize(t *testing.T) {
	sch := Scheme()
	if _, err := sch.UnmarshalBinaryPublicKey(make([]byte, 1)); err == nil {
		t.Fatal("expected an error for a short public key")
	}
	if _, err := sch.UnmarshalBinaryPrivateKey(make([]byte, 1)); err == nil {
		t.Fatal("expected an error for a short private key")
	}
}
