package world

// placeFeatures scatters coins, then enemies, then chests.
// Every write requires the current tile to be floor; a roll that lands on
// anything else is dropped rather than retried.
func (b *builder) placeFeatures() {
	last := len(b.rooms) - 1

	// Coins skip the spawn and exit rooms
	for i, room := range b.rooms {
		if i == 0 || i == last {
			continue
		}
		count := b.between(minCoinsPerRoom, maxCoinsPerRoom)
		for n := 0; n < count; n++ {
			if b.placeInterior(room, TileCoin) {
				b.coins++
			}
		}
	}

	// Enemies skip the spawn room only
	for i, room := range b.rooms {
		if i == 0 {
			continue
		}
		count := b.between(minEnemiesPerRoom, maxEnemiesPerRoom)
		for n := 0; n < count; n++ {
			if b.placeInterior(room, TileEnemy) {
				b.enemies++
			}
		}
	}

	// Chests need at least one room between spawn and exit
	if len(b.rooms) < 3 {
		return
	}
	count := b.between(minChests, maxChests)
	for n := 0; n < count; n++ {
		room := b.rooms[b.between(1, last-1)]
		x, y := room.Center()
		if b.place(x, y, TileChest) {
			b.chests++
		}
	}
}

// placeInterior writes the feature at a random interior cell of the room.
func (b *builder) placeInterior(room Room, feature Tile) bool {
	in := room.Interior()
	if in.Width == 0 || in.Height == 0 {
		return false
	}
	x := b.between(in.X, in.X+in.Width-1)
	y := b.between(in.Y, in.Y+in.Height-1)
	return b.place(x, y, feature)
}

// place writes the feature if the tile is currently floor.
func (b *builder) place(x, y int, feature Tile) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	if b.tiles[y][x] != TileFloor {
		return false
	}
	b.tiles[y][x] = feature
	return true
}
