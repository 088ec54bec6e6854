package internal

// minmax conditionally swaps *a and *b so that *a <= *b afterwards,
// without branching on their values (the classic djbsort/Batcher
// compare-exchange, generalized from int32 to uint64 — our composite sort
// keys never set the top bit, so the signed-subtraction trick below stays
// correct).
func minmax(a, b *uint64) {
	ab := *b ^ *a
	c := *b - *a
	c ^= ab & (c ^ *b)
	c = uint64(int64(c) >> 63)
	c &= ab
	*a ^= c
	*b ^= c
}

// Uint64Sort sorts the first n elements of x in place using a Batcher
// odd-even merge network: the sequence of compare-exchanges performed
// depends only on n, never on the values in x, so this is a
// data-oblivious sort (spec.md §4.6 step 1, §5).
func Uint64Sort(x []uint64, n int) {
	if n < 2 {
		return
	}

	top := 1
	for top < n-top {
		top += top
	}

	for p := top; p > 0; p >>= 1 {
		for i := 0; i < n-p; i++ {
			if i&p == 0 {
				minmax(&x[i], &x[i+p])
			}
		}
		i := 0
		for q := top; q > p; q >>= 1 {
			for ; i < n-q; i++ {
				if i&p == 0 {
					a := x[i+p]
					for r := q; r > p; r >>= 1 {
						minmax(&a, &x[i+r])
					}
					x[i+p] = a
				}
			}
		}
	}
}
