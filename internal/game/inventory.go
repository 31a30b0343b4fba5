package game

// pileLevels fixes the count and levels of each industry pile a player
// starts with. Piles are kept ascending by level; Take pops the front, so
// the cheapest remaining tile is always the next one available.
var pileLevels = map[TileKind][]int{
	KindCoal:         {1, 2, 2, 3, 3, 4, 4},
	KindIron:         {1, 2, 3, 4},
	KindCotton:       {1, 1, 1, 2, 2, 3, 3, 3, 4, 4, 4},
	KindManufacturer: {1, 2, 2, 3, 4, 5, 5, 6, 7, 8, 8},
	KindPottery:      {1, 2, 3, 4, 5},
	KindBrewery:      {1, 1, 2, 2, 3, 3, 4},
}

// Inventory holds a player's not-yet-placed tiles, one ordered pile per
// industry kind. Piles only shrink; there is no replenishment.
type Inventory struct {
	piles map[TileKind][]Tile
}

func NewInventory(owner int) *Inventory {
	inv := &Inventory{piles: make(map[TileKind][]Tile, len(pileLevels))}
	for kind, levels := range pileLevels {
		pile := make([]Tile, 0, len(levels))
		for _, lvl := range levels {
			pile = append(pile, mustTile(kind, lvl, owner))
		}
		inv.piles[kind] = pile
	}
	return inv
}

// Take removes and returns the lowest-level remaining tile of the kind.
func (inv *Inventory) Take(kind TileKind) (Tile, bool) {
	pile := inv.piles[kind]
	if len(pile) == 0 {
		return Tile{}, false
	}
	t := pile[0]
	inv.piles[kind] = pile[1:]
	return t, true
}

// Peek returns the next tile of the kind without removing it.
func (inv *Inventory) Peek(kind TileKind) (Tile, bool) {
	pile := inv.piles[kind]
	if len(pile) == 0 {
		return Tile{}, false
	}
	return pile[0], true
}

func (inv *Inventory) Has(kind TileKind) bool {
	return len(inv.piles[kind]) > 0
}

func (inv *Inventory) Remaining(kind TileKind) int {
	return len(inv.piles[kind])
}
