package internal

import "testing"

// TestApplyBenesForward checks that running the network forward over an
// identity-labeled wire array reproduces pi itself, since
// ApplyBenes(data, ..., false) realizes z[i] = data[pi[i]].
func TestApplyBenesForward(t *testing.T) {
	const w = 3
	pi := []int16{5, 0, 7, 2, 1, 6, 3, 4}
	n := 1 << w

	bits := make([]byte, (cbBitLen(w)+7)/8)
	ControlBitsFromPermutation(bits, pi, w)

	data := make([]uint16, n)
	for i := range data {
		data[i] = uint16(i)
	}
	ApplyBenes(data, bits, w, false)

	for i, p := range pi {
		if data[i] != uint16(p) {
			t.Fatalf("wire %d: got %d want %d", i, data[i], p)
		}
	}
}

// TestApplyBenesRoundTrip checks that applying the network forward then
// in reverse recovers the original data, for several permutations.
func TestApplyBenesRoundTrip(t *testing.T) {
	const w = 4
	n := 1 << w

	perms := [][]int16{
		identityPerm(n),
		reversePerm(n),
		{9, 4, 0, 15, 1, 8, 2, 14, 3, 13, 5, 12, 6, 11, 7, 10},
	}

	for pIdx, pi := range perms {
		bits := make([]byte, (cbBitLen(w)+7)/8)
		ControlBitsFromPermutation(bits, pi, w)

		data := make([]uint16, n)
		orig := make([]uint16, n)
		for i := range data {
			data[i] = uint16(i*3 + 7)
			orig[i] = data[i]
		}

		ApplyBenes(data, bits, w, false)
		ApplyBenes(data, bits, w, true)

		for i := range data {
			if data[i] != orig[i] {
				t.Fatalf("permutation %d, wire %d: got %d want %d", pIdx, i, data[i], orig[i])
			}
		}
	}
}

func identityPerm(n int) []int16 {
	pi := make([]int16, n)
	for i := range pi {
		pi[i] = int16(i)
	}
	return pi
}

func reversePerm(n int) []int16 {
	pi := make([]int16, n)
	for i := range pi {
		pi[i] = int16(n - 1 - i)
	}
	return pi
}
