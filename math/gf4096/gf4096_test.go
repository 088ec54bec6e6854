package gf4096

import "testing"

func TestFieldLaws(t *testing.T) {
	elems := []Gf{0, 1, 2, 3, 7, 42, 1000, 4095, 2048, 17}

	for _, a := range elems {
		for _, b := range elems {
			if Mul(a, b) != Mul(b, a) {
				t.Fatalf("mul not commutative for %d,%d", a, b)
			}
			for _, c := range elems {
				lhs := Mul(a, Add(b, c))
				rhs := Add(Mul(a, b), Mul(a, c))
				if lhs != rhs {
					t.Fatalf("mul does not distribute over add for %d,%d,%d", a, b, c)
				}
			}
		}
		if Sq(a) != Mul(a, a) {
			t.Fatalf("sq(%d) != mul(a,a)", a)
		}
		if a != 0 {
			if Mul(a, Inv(a)) != 1 {
				t.Fatalf("mul(%d, inv(%d)) != 1", a, a)
			}
		}
	}
}

func TestIsZeroMask(t *testing.T) {
	if IsZeroMask(0) != 0xFFFF {
		t.Fatalf("IsZeroMask(0) = %x, want 0xFFFF", IsZeroMask(0))
	}
	for _, a := range []Gf{1, 2, 4095, 17} {
		if IsZeroMask(a) != 0 {
			t.Fatalf("IsZeroMask(%d) = %x, want 0", a, IsZeroMask(a))
		}
	}
}

func TestFrac(t *testing.T) {
	a, b := Gf(5), Gf(13)
	got := Frac(a, b)
	want := Mul(b, Inv(a))
	if got != want {
		t.Fatalf("Frac(%d,%d) = %d, want %d", a, b, got, want)
	}
}
