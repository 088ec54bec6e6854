// Package internal implements the Classic McEliece core engine shared by
// every parameter-set package: finite-field-agnostic public-key
// generation, encryption and syndrome decoding, the Berlekamp-Massey
// decoder, the irreducible-polynomial generator and the Benes-network
// control-bit machinery.
//
// The field arithmetic, sorting network, Beneš application, syndrome
// computation, Berlekamp-Massey and root evaluation use masks rather than
// secret-dependent branches, with loop bounds fixed by the (public)
// Params. Not all of the engine is constant-time: ControlBitsFromPermutation
// branches and indexes on permutation entries; PKGen's semi-systematic
// pivot search and column swap branch on matrix bits; GenPoly returns
// early on a zero pivot; and the error-vector sampling and Keypair retry
// until a draw is accepted, so their running time depends on secret
// data.
package internal

import "github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"

// Params collects the six integers (and derived sizes) that fix one
// Classic McEliece parameter set, plus the field operations for its m.
type Params struct {
	M int // field degree: 12 or 13
	N int // code length
	T int // error-correcting capacity

	Semisystematic bool // true for the "f" variants
	PaddingCheck   bool // true only for the 6960119 variants (m*t and n-m*t not multiples of 8)

	Field gf.Field
}

// Derived sizes, per spec.md §3.
func (p Params) SyndBytes() int  { return (p.M*p.T + 7) / 8 }
func (p Params) CondBytes() int  { return (2*p.M - 1) * (1 << (p.M - 1)) / 8 }
func (p Params) IrrBytes() int   { return 2 * p.T }
func (p Params) PkNRows() int    { return p.M * p.T }
func (p Params) PkNCols() int    { return p.N - p.PkNRows() }
func (p Params) PkRowBytes() int { return (p.PkNCols() + 7) / 8 }

func (p Params) PublicKeySize() int  { return p.PkNRows() * p.PkRowBytes() }
func (p Params) PrivateKeySize() int { return p.SBase() + p.N/8 }
func (p Params) CiphertextSize() int { return p.SyndBytes() + 32 }

// Secret-key byte layout (spec.md §3):
//
//	[0..32)                seed s0
//	[32..40)                pivots bitmap
//	[40..40+IrrBytes)       Goppa polynomial coefficients
//	[+IrrBytes..+CondBytes) control bits
//	[SBase..SBase+N/8)      implicit-rejection string s
func (p Params) SBase() int { return 40 + p.IrrBytes() + p.CondBytes() }
