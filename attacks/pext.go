package attacks

// pext64 is a software emulation of the x86 BMI2 PEXT instruction:
// it gathers the bits of x selected by mask, in ascending bit-position
// order, and packs them into the low bits of the result. No library in
// this module's reference corpus wraps the hardware instruction for Go,
// so this loop is the one deliberately stdlib-only primitive in the
// attack-table factory (see DESIGN.md for why no ecosystem dependency
// could serve it).
func pext64(x, mask uint64) uint64 {
	var result uint64
	var bitPos uint
	for mask != 0 {
		bit := mask & (-mask)
		if x&bit != 0 {
			result |= 1 << bitPos
		}
		bitPos++
		mask &= mask - 1
	}
	return result
}
