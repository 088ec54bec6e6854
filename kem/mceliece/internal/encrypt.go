package internal

// Encrypt samples a constant-weight-T error vector e (p.N/8 bytes) and
// writes the syndrome c = H*e (p.SyndBytes() bytes) against the
// systematic public key pk.
//
// Grounded on spec.md §4.7; the call shape (syndrome out, pk in, e out,
// rng in) matches original_source/src/operations.rs's `encrypt(c, pk,
// two_e[1..], rng)`.
func Encrypt(c []byte, pk []byte, e []byte, rng RNG, p Params) error {
	if err := genE(e, rng, p); err != nil {
		return err
	}

	pkNRows := p.PkNRows()
	pkNCols := p.PkNCols()
	rowBytes := p.PkRowBytes()

	syndBytes := p.SyndBytes()
	for i := 0; i < syndBytes; i++ {
		c[i] = 0
	}

	for i := 0; i < pkNRows; i++ {
		row := pk[i*rowBytes : i*rowBytes+rowBytes]
		var bit byte
		for j := 0; j < pkNCols; j++ {
			hBit := (row[j/8] >> uint(j%8)) & 1
			eBit := (e[(pkNRows+j)/8] >> uint((pkNRows+j)%8)) & 1
			bit ^= hBit & eBit
		}
		bit ^= (e[i/8] >> uint(i%8)) & 1
		c[i/8] |= bit << uint(i%8)
	}

	return nil
}

// genE draws a uniformly random weight-T vector over {0,...,p.N-1},
// retrying the whole draw whenever the candidate stream runs out before T
// distinct in-range values are found, or a duplicate survives the
// distinctness check — spec.md §4.7's oversample-and-reject construction.
func genE(e []byte, rng RNG, p Params) error {
	n := p.N
	t := p.T
	mask := uint32(p.Field.Mask)

	ind := make([]uint16, t)
	raw := make([]byte, 4*2*t)
	nums := make([]uint32, 2*t)

	for {
		if err := rng.Fill(raw); err != nil {
			return err
		}
		for i := range nums {
			nums[i] = Load4(raw[4*i:]) & mask
		}

		count := 0
		for i := 0; i < len(nums) && count < t; i++ {
			if int(nums[i]) < n {
				ind[count] = uint16(nums[i])
				count++
			}
		}
		if count < t {
			continue
		}

		var same uint16
		for i := 1; i < t; i++ {
			for j := 0; j < i; j++ {
				diff := ind[i] ^ ind[j]
				same |= uint16(diff-1) >> 15
			}
		}
		if same != 0 {
			continue
		}

		for i := range e {
			e[i] = 0
		}
		for i := 0; i < t; i++ {
			e[ind[i]/8] |= 1 << uint(ind[i]%8)
		}
		return nil
	}
}
