package internal

import "github.com/quantumproof/mceliece-go/kem/mceliece/internal/gf"

// pivotWindow is the width of the column-pivoting window semi-systematic
// ("f") variants search when the natural diagonal entry is zero (spec.md
// §4.6, §3's 32-bit pivots bitmap).
const pivotWindow = 32

// PKGen builds the public key matrix from the Goppa polynomial irr and a
// candidate permutation seed perm, writing the PK_NROWS x PK_ROW_BYTES
// systematic part to pk and the resolved permutation to pi.
//
// For p.Semisystematic variants, a row among the last pivotWindow rows
// of the matrix whose diagonal entry is zero may pivot on any unused
// column among the first pivotWindow columns to the right of the
// identity block (columns PK_NROWS..PK_NROWS+pivotWindow-1), which is
// swapped into the diagonal position; pivots records, as a bitmask over
// those window offsets, which columns were used this way. Every such column swap is
// mirrored in pi, so pi reflects the pivoted support order on return —
// callers (Keypair) must build control bits from this post-pivot pi, not
// the pre-pivot one, or the stored secret key will decode ciphertexts
// encrypted under a differently-ordered H. Non-semisystematic variants
// never swap and always return pivots == 0xFFFFFFFF, failing outright on
// a zero diagonal.
//
// Ported from mceliece348864/mceliece.go's pkGen (the scalar, non-"f"
// path), generalized off the fixed sysT/gfBits/sysN constants to
// Params, with the semi-systematic pivoting window added per spec.md
// §4.6 step 3 (not present in the retrieved teacher slice — see
// DESIGN.md).
func PKGen(pk []byte, irr []gf.Gf, perm []uint32, pi []int16, p Params) (pivots uint64, ok bool) {
	full := 1 << uint(p.M)

	buf := make([]uint64, full)
	for i := 0; i < full; i++ {
		buf[i] = uint64(perm[i])
		buf[i] <<= 31
		buf[i] |= uint64(i)
	}
	Uint64Sort(buf, full)

	for i := 1; i < full; i++ {
		if (buf[i-1] >> 31) == (buf[i] >> 31) {
			return 0, false
		}
	}

	fullMask := uint64(full - 1)
	for i := 0; i < full; i++ {
		pi[i] = int16(buf[i] & fullMask)
	}

	return pkFromPi(pk, irr, pi, p)
}

// PKFromPermutation rebuilds a public key directly from a resolved
// permutation pi (as recovered from a secret key's control bits via
// ApplyBenes on an identity wire array) and the Goppa polynomial irr,
// skipping PKGen's sort/dedup step. Since the Gaussian-elimination
// pivoting performed by pkFromPi is a deterministic function of the
// matrix state — itself determined entirely by irr and pi — replaying
// it reproduces the exact same public key a keypair's PKGen call
// produced, without needing the stored pivots bitmask.
func PKFromPermutation(pk []byte, irr []gf.Gf, pi []int16, p Params) bool {
	_, ok := pkFromPi(pk, irr, pi, p)
	return ok
}

func pkFromPi(pk []byte, irr []gf.Gf, pi []int16, p Params) (pivots uint64, ok bool) {
	m, n, t := p.M, p.N, p.T
	field := p.Field

	l := make([]gf.Gf, n)
	for i := 0; i < n; i++ {
		l[i] = field.BitRev(gf.Gf(pi[i]))
	}

	g := make([]gf.Gf, t+1)
	g[t] = 1
	copy(g[:t], irr[:t])

	inv := make([]gf.Gf, n)
	Root(inv, g, l, p)
	for i := range inv {
		inv[i] = field.Inv(inv[i])
	}

	pkNRows := p.PkNRows()
	rowBytes := n / 8
	mat := make([][]byte, pkNRows)
	for i := range mat {
		mat[i] = make([]byte, rowBytes)
	}

	for i := 0; i < t; i++ {
		for j := 0; j < n; j += 8 {
			for k := 0; k < m; k++ {
				var b byte
				for jj := 7; jj >= 0; jj-- {
					b <<= 1
					b |= byte(inv[j+jj]>>uint(k)) & 1
				}
				mat[i*m+k][j/8] = b
			}
		}
		for j := 0; j < n; j++ {
			inv[j] = field.Mul(inv[j], l[j])
		}
	}

	pivots = 0xFFFFFFFF
	tailStart := pkNRows - pivotWindow
	var used [pivotWindow]bool
	if p.Semisystematic {
		pivots = 0
	}

	for i := 0; i < (pkNRows+7)/8; i++ {
		for j := 0; j < 8; j++ {
			row := i*8 + j
			if row >= pkNRows {
				break
			}

			for k := row + 1; k < pkNRows; k++ {
				d := mat[row][i] ^ mat[k][i]
				d >>= uint(j)
				d &= 1
				d = -d
				for c := 0; c < rowBytes; c++ {
					mat[row][c] ^= mat[k][c] & d
				}
			}

			if (mat[row][i]>>uint(j))&1 == 0 {
				if !p.Semisystematic || row < tailStart {
					return 0, false
				}
				found := -1
				for cand := 0; cand < pivotWindow; cand++ {
					if used[cand] {
						continue
					}
					col := pkNRows + cand
					if (mat[row][col/8]>>uint(col%8))&1 == 1 {
						found = cand
						break
					}
				}
				if found < 0 {
					return 0, false
				}
				used[found] = true
				pivots |= 1 << uint(found)
				col := pkNRows + found
				if col != row {
					swapColumns(mat, row, col)
					pi[row], pi[col] = pi[col], pi[row]
				}
			}

			for k := 0; k < pkNRows; k++ {
				if k != row {
					d := mat[k][i] >> uint(j)
					d &= 1
					d = -d
					for c := 0; c < rowBytes; c++ {
						mat[k][c] ^= mat[row][c] & d
					}
				}
			}
		}
	}

	pkNCols, pkRowBytes := p.PkNCols(), p.PkRowBytes()
	for i := 0; i < pkNRows; i++ {
		out := pk[i*pkRowBytes : (i+1)*pkRowBytes]
		for c := range out {
			out[c] = 0
		}
		for j := 0; j < pkNCols; j++ {
			col := pkNRows + j
			out[j/8] |= ((mat[i][col/8] >> uint(col%8)) & 1) << uint(j%8)
		}
	}

	return pivots, true
}

// swapColumns exchanges bit-columns a and b across every row of mat.
func swapColumns(mat [][]byte, a, b int) {
	ab, bb := a/8, b/8
	am, bm := byte(1)<<uint(a%8), byte(1)<<uint(b%8)
	for _, row := range mat {
		va := row[ab]&am != 0
		vb := row[bb]&bm != 0
		if va {
			row[bb] |= bm
		} else {
			row[bb] &^= bm
		}
		if vb {
			row[ab] |= am
		} else {
			row[ab] &^= am
		}
	}
}
