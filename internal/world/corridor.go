package world

// connectRooms joins each room to the next one in placement order,
// so every room lies on a single path from the first to the last.
func (b *builder) connectRooms() {
	for i := 0; i+1 < len(b.rooms); i++ {
		b.carveCorridor(b.rooms[i], b.rooms[i+1])
		b.corridors++
	}
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (b *builder) carveCorridor(from, to Room) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if b.rng.Intn(2) == 0 {
		b.carveHorizontalTunnel(x1, x2, y1)
		b.carveVerticalTunnel(y1, y2, x2)
	} else {
		b.carveVerticalTunnel(y1, y2, x1)
		b.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel centered on row y.
func (b *builder) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	half := b.opts.CorridorWidth / 2
	for x := x1; x <= x2; x++ {
		for w := -half; w <= half; w++ {
			b.carve(x, y+w)
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel centered on column x.
func (b *builder) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	half := b.opts.CorridorWidth / 2
	for y := y1; y <= y2; y++ {
		for w := -half; w <= half; w++ {
			b.carve(x+w, y)
		}
	}
}
