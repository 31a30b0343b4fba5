package game

import "fmt"

// tileStats is the fixed per-(kind, level) stat block of the tile catalog.
type tileStats struct {
	income    int
	points    int
	linkPts   int
	costMoney int
	costCoal  int
	costIron  int
	resource  int
	beer      int
}

var catalog = map[TileKind][]tileStats{
	KindCoal: {
		{income: 4, points: 1, linkPts: 2, costMoney: 5, resource: 2},
		{income: 7, points: 2, linkPts: 1, costMoney: 7, resource: 3},
		{income: 6, points: 3, linkPts: 1, costMoney: 8, costIron: 1, resource: 4},
		{income: 5, points: 4, linkPts: 1, costMoney: 10, costIron: 1, resource: 4},
	},
	KindIron: {
		{income: 3, points: 3, linkPts: 1, costMoney: 5, costCoal: 1, resource: 4},
		{income: 3, points: 5, linkPts: 1, costMoney: 7, costCoal: 1, resource: 4},
		{income: 2, points: 7, linkPts: 1, costMoney: 9, costCoal: 1, resource: 5},
		{income: 1, points: 9, linkPts: 1, costMoney: 12, costCoal: 1, resource: 6},
	},
	KindCotton: {
		{income: 5, points: 5, linkPts: 1, costMoney: 12, beer: 1},
		{income: 4, points: 5, linkPts: 2, costMoney: 14, costCoal: 1, beer: 1},
		{income: 3, points: 9, linkPts: 1, costMoney: 16, costCoal: 1, costIron: 1, beer: 1},
		{income: 2, points: 12, linkPts: 1, costMoney: 18, costCoal: 1, costIron: 1, beer: 1},
	},
	KindManufacturer: {
		{income: 5, points: 3, linkPts: 2, costMoney: 8, costCoal: 1, beer: 1},
		{income: 1, points: 5, linkPts: 1, costMoney: 10, costIron: 1, beer: 1},
		{income: 4, points: 4, linkPts: 0, costMoney: 12, costCoal: 2, beer: 0},
		{income: 8, points: 3, linkPts: 1, costMoney: 8, costIron: 1, beer: 1},
		{income: 2, points: 8, linkPts: 2, costMoney: 16, costCoal: 1, beer: 1},
		{income: 6, points: 7, linkPts: 1, costMoney: 20, beer: 1},
		{income: 4, points: 9, linkPts: 0, costMoney: 16, costCoal: 1, costIron: 1, beer: 0},
		{income: 1, points: 11, linkPts: 1, costMoney: 20, costIron: 2, beer: 1},
	},
	KindPottery: {
		{income: 5, points: 10, linkPts: 1, costMoney: 17, costIron: 1, beer: 1},
		{income: 1, points: 1, linkPts: 1, costMoney: 0, costIron: 1, beer: 1},
		{income: 5, points: 11, linkPts: 1, costMoney: 22, costCoal: 2, beer: 2},
		{income: 1, points: 1, linkPts: 1, costMoney: 0, costCoal: 1, beer: 1},
		{income: 5, points: 22, linkPts: 1, costMoney: 24, costCoal: 2, beer: 2},
	},
	KindBrewery: {
		// Brewery resource is the canal-era default; the resolver raises it
		// to 2 when placing in the rail era.
		{income: 4, points: 4, linkPts: 2, costMoney: 5, costIron: 1, resource: 1},
		{income: 5, points: 5, linkPts: 2, costMoney: 7, costIron: 1, resource: 1},
		{income: 5, points: 7, linkPts: 2, costMoney: 9, costIron: 1, resource: 1},
		{income: 5, points: 9, linkPts: 2, costMoney: 9, costIron: 1, resource: 1},
	},
}

// NewTile builds a fully parameterized industry tile from the catalog.
// An unknown (kind, level) pair means a corrupt catalog reference and errors.
func NewTile(kind TileKind, level, owner int) (Tile, error) {
	levels, ok := catalog[kind]
	if !ok {
		return Tile{}, fmt.Errorf("no catalog entry for tile kind %s", kind)
	}
	if level < 1 || level > len(levels) {
		return Tile{}, fmt.Errorf("invalid %s tile level %d", kind, level)
	}
	st := levels[level-1]
	return Tile{
		Kind:           kind,
		Owner:          owner,
		Level:          level,
		Income:         st.income,
		VictoryPoints:  st.points,
		LinkPoints:     st.linkPts,
		CostMoney:      st.costMoney,
		CostCoal:       st.costCoal,
		CostIron:       st.costIron,
		ResourceAmount: st.resource,
		BeerDemand:     st.beer,
	}, nil
}

func mustTile(kind TileKind, level, owner int) Tile {
	t, err := NewTile(kind, level, owner)
	if err != nil {
		panic(err)
	}
	return t
}

// NewMerchantTile builds a neutral merchant tile. Merchant tiles demanding a
// goods category also stock one barrel of beer.
func NewMerchantTile(goods MerchantGoods) Tile {
	t := Tile{
		Kind:  KindMerchant,
		Owner: Neutral,
		Level: 1,
		Goods: goods,
	}
	if goods != GoodsEmpty {
		t.ResourceAmount = 1
	}
	return t
}
