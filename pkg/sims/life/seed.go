package life

// DemoSeed is the 10×10 board the simulator was first exercised with: a block
// at (4,4), a lone cell at (9,0) and a horizontal blinker on row 8.
func DemoSeed() *Grid {
	g, err := ParseText(`
..........
..........
..........
..........
....##....
....##....
..........
..........
.......###
#.........
`)
	if err != nil {
		panic(err)
	}
	return g
}
