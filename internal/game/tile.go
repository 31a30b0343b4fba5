package game

import "fmt"

// TileKind discriminates the tile variants. Resource tiles (coal, iron,
// brewery) carry a depletable ResourceAmount; manufactured goods (cotton,
// manufacturer, pottery) carry a BeerDemand consumed on sale; merchant tiles
// carry the goods category they demand and live only in merchant-city slots.
type TileKind uint8

const (
	KindNone TileKind = iota
	KindCoal
	KindIron
	KindCotton
	KindManufacturer
	KindPottery
	KindBrewery
	KindMerchant
)

var kindNames = map[TileKind]string{
	KindNone:         "none",
	KindCoal:         "coal",
	KindIron:         "iron",
	KindCotton:       "cotton",
	KindManufacturer: "manufacturer",
	KindPottery:      "pottery",
	KindBrewery:      "brewery",
	KindMerchant:     "merchant",
}

func (k TileKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("tilekind(%d)", uint8(k))
}

// ParseTileKind maps external input to a TileKind. Unknown strings are a
// deserialization bug, not a legal game situation, so they error.
func ParseTileKind(s string) (TileKind, error) {
	switch s {
	case "", "none":
		return KindNone, nil
	case "coal":
		return KindCoal, nil
	case "iron":
		return KindIron, nil
	case "cotton":
		return KindCotton, nil
	case "manufacturer":
		return KindManufacturer, nil
	case "pottery":
		return KindPottery, nil
	case "brewery":
		return KindBrewery, nil
	case "merchant":
		return KindMerchant, nil
	}
	return KindNone, fmt.Errorf("unknown tile kind %q", s)
}

// IsIndustry reports whether the kind is a player-buildable industry
// (something a player inventory holds).
func (k TileKind) IsIndustry() bool {
	switch k {
	case KindCoal, KindIron, KindCotton, KindManufacturer, KindPottery, KindBrewery:
		return true
	}
	return false
}

// MerchantGoods is the goods category a merchant tile demands.
type MerchantGoods uint8

const (
	GoodsEmpty MerchantGoods = iota
	GoodsCotton
	GoodsManufacturer
	GoodsPottery
	GoodsAny
)

var goodsNames = map[MerchantGoods]string{
	GoodsEmpty:        "empty",
	GoodsCotton:       "cotton",
	GoodsManufacturer: "manufacturer",
	GoodsPottery:      "pottery",
	GoodsAny:          "any",
}

func (g MerchantGoods) String() string {
	if s, ok := goodsNames[g]; ok {
		return s
	}
	return fmt.Sprintf("goods(%d)", uint8(g))
}

func ParseMerchantGoods(s string) (MerchantGoods, error) {
	switch s {
	case "", "empty":
		return GoodsEmpty, nil
	case "cotton":
		return GoodsCotton, nil
	case "manufacturer":
		return GoodsManufacturer, nil
	case "pottery":
		return GoodsPottery, nil
	case "any":
		return GoodsAny, nil
	}
	return GoodsEmpty, fmt.Errorf("unknown merchant goods %q", s)
}

// Neutral is the owner id of pre-game tiles and unowned links.
const Neutral = -1

// Tile is a single tagged-variant tile. Only the fields relevant to a given
// Kind are meaningful; everything else stays zero.
type Tile struct {
	Kind    TileKind
	Owner   int
	Level   int
	Flipped bool

	Income        int
	VictoryPoints int
	LinkPoints    int

	CostMoney int
	CostCoal  int
	CostIron  int

	ResourceAmount int
	BeerDemand     int

	Goods MerchantGoods
}

// Depletable reports whether the tile holds consumable resource units.
func (t *Tile) Depletable() bool {
	switch t.Kind {
	case KindCoal, KindIron, KindBrewery, KindMerchant:
		return true
	}
	return false
}
