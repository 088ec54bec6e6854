package internal

import (
	"testing"

	"github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"
	"github.com/quantumproof/mceliece-go/math/gf4096"
)

func gf4096Params(t int) Params {
	return Params{
		M: 12,
		N: 3488,
		T: t,
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
}

// At t=1 GenPoly's Gaussian elimination degenerates to a single pivot on
// the constant 1, so out[0] must equal f[0] exactly.
func TestGenPolyDegreeOne(t *testing.T) {
	p := gf4096Params(1)
	f := []gf.Gf{1234}
	out := make([]gf.Gf, 1)

	if !GenPoly(out, f, p) {
		t.Fatal("expected GenPoly to succeed for t=1")
	}
	if out[0] != f[0] {
		t.Fatalf("got %d want %d", out[0], f[0])
	}
}

func TestGenPolyDeterministic(t *testing.T) {
	p := gf4096Params(8)
	f := make([]gf.Gf, p.T)
	for i := range f {
		f[i] = gf.Gf(i*97 + 3)
	}

	out1 := make([]gf.Gf, p.T)
	out2 := make([]gf.Gf, p.T)
	ok1 := GenPoly(out1, f, p)
	ok2 := GenPoly(out2, f, p)

	if ok1 != ok2 {
		t.Fatalf("GenPoly gave different success status across identical runs: %v vs %v", ok1, ok2)
	}
	if ok1 {
		for i := range out1 {
			if out1[i] != out2[i] {
				t.Fatalf("coefficient %d differs across identical runs: %d vs %d", i, out1[i], out2[i])
			}
		}
	}
}

// A singular leading matrix (all-zero input sequence) must be rejected.
func TestGenPolyRejectsSingular(t *testing.T) {
	p := gf4096Params(4)
	f := make([]gf.Gf, p.T)
	out := make([]gf.Gf, p.T)

	if GenPoly(out, f, p) {
		t.Fatal("expected GenPoly to reject an all-zero input sequence")
	}
}
