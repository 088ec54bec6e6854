package internal

// RNG supplies randomness to Encrypt and key generation. Fill must either
// write len(buf) fresh bytes or return a non-nil error; a short, silent
// fill is not a valid implementation (spec.md §5 RNG contract).
type RNG interface {
	Fill(buf []byte) error
}
