package wavetable

// sine256 is one cycle of the LED driver's sine envelope: 256 steps,
// peak 256 at index 64, flat zero floor across the second half.
var sine256 = [256]int{
	16, 17, 19, 21, 23, 25, 27, 30, 32, 35, 38, 41, 44, 47, 51, 54,
	58, 62, 66, 70, 74, 79, 84, 88, 93, 98, 103, 108, 114, 119, 124, 130,
	135, 141, 146, 152, 158, 163, 169, 174, 180, 185, 190, 195, 200, 205, 210, 214,
	219, 223, 227, 231, 234, 237, 240, 243, 246, 248, 250, 252, 253, 254, 255, 255,
	256, 255, 255, 254, 253, 252, 250, 248, 246, 243, 240, 237, 234, 231, 227, 223,
	219, 214, 210, 205, 200, 195, 190, 185, 180, 174, 169, 163, 158, 152, 146, 141,
	135, 130, 124, 119, 114, 108, 103, 98, 93, 88, 84, 79, 74, 70, 66, 62,
	58, 54, 51, 47, 44, 41, 38, 35, 32, 30, 27, 25, 23, 21, 19, 17,
	16, 14, 13, 11, 10, 9, 8, 7, 6, 5, 5, 4, 4, 3, 3, 2,
	2, 2, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2,
	2, 2, 3, 3, 4, 4, 5, 5, 6, 7, 8, 9, 10, 11, 13, 14,
}

var sine256Table = MustNew(sine256[:])

// Sine256 returns the shared 256-entry LED sine table.
// The returned table is immutable and may be shared freely.
func Sine256() *Table {
	return sine256Table
}
