package mceliece460896f

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

	ssDec, err := sch.Decapsulate(sk, ct)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}

	if !bytes.Equal(ssEnc, ssDec) {
		t.Fatal("shared keys disagree after an honest round trip")
	}
}
