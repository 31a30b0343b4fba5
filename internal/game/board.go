package game

import "fmt"

// MerchantBonus is the bonus category a merchant city grants.
type MerchantBonus uint8

const (
	BonusNone MerchantBonus = iota
	BonusIncome2
	BonusPoints4
)

var bonusNames = map[MerchantBonus]string{
	BonusNone:    "",
	BonusIncome2: "income2",
	BonusPoints4: "points4",
}

func (b MerchantBonus) String() string { return bonusNames[b] }

func ParseMerchantBonus(s string) (MerchantBonus, error) {
	switch s {
	case "income2":
		return BonusIncome2, nil
	case "points4":
		return BonusPoints4, nil
	}
	return BonusNone, fmt.Errorf("unknown merchant bonus %q", s)
}

// Slot is one build location in a city: an allowed-kind set and at most one
// placed tile. Once occupied a slot is never reassigned or cleared.
type Slot struct {
	Allowed []TileKind
	Tile    *Tile
}

func (s *Slot) allows(kind TileKind) bool {
	for _, k := range s.Allowed {
		if k == kind {
			return true
		}
	}
	return false
}

// City is a fixed node on the board. Merchant cities additionally carry a
// bonus category and host merchant slots.
type City struct {
	Name     string
	Slots    []Slot
	Merchant bool
	Bonus    MerchantBonus
}

// Link is a claimable edge between two cities. Owner is Neutral until the
// first successful claim, which is permanent.
type Link struct {
	A, B  string
	Owner int
}

func (l *Link) touches(city string) (other string, ok bool) {
	switch city {
	case l.A:
		return l.B, true
	case l.B:
		return l.A, true
	}
	return "", false
}

type linkKey struct{ a, b string }

func newLinkKey(a, b string) linkKey {
	if b < a {
		a, b = b, a
	}
	return linkKey{a, b}
}

// Board is the city graph: cities and links in insertion-ordered arenas so
// every traversal and candidate enumeration is deterministic. Ownership on
// links and tiles is a plain player id resolved elsewhere.
//
// The Add* methods are build-time only (trusted map data, no legality
// checks). All queries return false or empty results on unknown input.
type Board struct {
	cities  map[string]*City
	order   []string
	links   []*Link
	linkIdx map[linkKey]*Link
}

func NewBoard() *Board {
	return &Board{
		cities:  make(map[string]*City),
		linkIdx: make(map[linkKey]*Link),
	}
}

func (b *Board) AddCity(name string) *City {
	c := &City{Name: name}
	b.cities[name] = c
	b.order = append(b.order, name)
	return c
}

func (b *Board) AddMerchantCity(name string, bonus MerchantBonus) *City {
	c := b.AddCity(name)
	c.Merchant = true
	c.Bonus = bonus
	return c
}

func (b *Board) AddConnection(a, c string) {
	key := newLinkKey(a, c)
	if _, exists := b.linkIdx[key]; exists {
		return
	}
	l := &Link{A: key.a, B: key.b, Owner: Neutral}
	b.links = append(b.links, l)
	b.linkIdx[key] = l
}

func (b *Board) AddSlot(city string, allowed ...TileKind) {
	c, ok := b.cities[city]
	if !ok {
		return
	}
	c.Slots = append(c.Slots, Slot{Allowed: allowed})
}

func (b *Board) City(name string) *City {
	return b.cities[name]
}

// Cities returns all cities in insertion order.
func (b *Board) Cities() []*City {
	out := make([]*City, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.cities[name])
	}
	return out
}

// Connections returns the topological neighbors of a city regardless of
// link ownership.
func (b *Board) Connections(city string) []string {
	var out []string
	for _, l := range b.links {
		if other, ok := l.touches(city); ok {
			out = append(out, other)
		}
	}
	return out
}

// Links returns every link in insertion order.
func (b *Board) Links() []Link {
	out := make([]Link, len(b.links))
	for i, l := range b.links {
		out[i] = *l
	}
	return out
}

// PlacedLinks returns the links that have been claimed.
func (b *Board) PlacedLinks() []Link {
	var out []Link
	for _, l := range b.links {
		if l.Owner != Neutral {
			out = append(out, *l)
		}
	}
	return out
}

// PlaceLink claims the connection between two cities for a player. It
// succeeds only if the connection exists and is unowned; the first claim
// wins permanently.
func (b *Board) PlaceLink(a, c string, player int) bool {
	l, ok := b.linkIdx[newLinkKey(a, c)]
	if !ok || l.Owner != Neutral {
		return false
	}
	l.Owner = player
	return true
}

func (b *Board) linkAvailable(a, c string) bool {
	l, ok := b.linkIdx[newLinkKey(a, c)]
	return ok && l.Owner == Neutral
}

// ConnectedCities returns every city reachable from start over zero or more
// owned links, start included, in breadth-first discovery order. Traversal
// is ownership-agnostic: any claimed link can be crossed, only unowned
// links block.
func (b *Board) ConnectedCities(start string) []string {
	if _, ok := b.cities[start]; !ok {
		return nil
	}
	visited := map[string]bool{start: true}
	queue := []string{start}
	var out []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		for _, l := range b.links {
			if l.Owner == Neutral {
				continue
			}
			next, ok := l.touches(cur)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return out
}

// InPlayerNetwork reports whether a city belongs to the player's network:
// the city is touched by one of their links or holds one of their tiles.
// A player with nothing on the board yet may build anywhere.
func (b *Board) InPlayerNetwork(player int, city string) bool {
	if _, ok := b.cities[city]; !ok {
		return false
	}
	ownsAnything := false
	for _, l := range b.links {
		if l.Owner != player {
			continue
		}
		ownsAnything = true
		if l.A == city || l.B == city {
			return true
		}
	}
	for _, name := range b.order {
		c := b.cities[name]
		for i := range c.Slots {
			t := c.Slots[i].Tile
			if t == nil || t.Owner != player {
				continue
			}
			ownsAnything = true
			if name == city {
				return true
			}
		}
	}
	return !ownsAnything
}

// CanPlaceTile reports whether the slot exists, is unoccupied, and allows
// the tile's kind.
func (b *Board) CanPlaceTile(city string, slot int, t Tile) bool {
	c, ok := b.cities[city]
	if !ok || slot < 0 || slot >= len(c.Slots) {
		return false
	}
	s := &c.Slots[slot]
	return s.Tile == nil && s.allows(t.Kind)
}

// PlaceTile occupies the slot with a copy of the tile. It performs no
// payment logic; financial and resource side effects are the caller's.
func (b *Board) PlaceTile(city string, slot int, t Tile) bool {
	if !b.CanPlaceTile(city, slot, t) {
		return false
	}
	placed := t
	b.cities[city].Slots[slot].Tile = &placed
	return true
}

// TotalCoal sums the remaining coal held by coal tiles reachable from
// start over owned links.
func (b *Board) TotalCoal(start string) int {
	total := 0
	for _, name := range b.ConnectedCities(start) {
		c := b.cities[name]
		for i := range c.Slots {
			if t := c.Slots[i].Tile; t != nil && t.Kind == KindCoal {
				total += t.ResourceAmount
			}
		}
	}
	return total
}

// TotalIron sums the remaining iron over the whole board; iron, unlike
// coal, is not network-restricted.
func (b *Board) TotalIron() int {
	total := 0
	for _, name := range b.order {
		c := b.cities[name]
		for i := range c.Slots {
			if t := c.Slots[i].Tile; t != nil && t.Kind == KindIron {
				total += t.ResourceAmount
			}
		}
	}
	return total
}

// ConnectedMerchantCities returns the merchant cities reachable from city
// over owned links, in discovery order.
func (b *Board) ConnectedMerchantCities(city string) []*City {
	var out []*City
	for _, name := range b.ConnectedCities(city) {
		if c := b.cities[name]; c.Merchant {
			out = append(out, c)
		}
	}
	return out
}

// ConnectedToMerchant reports whether the city can reach any merchant city,
// which gates market access for coal and beer.
func (b *Board) ConnectedToMerchant(city string) bool {
	return len(b.ConnectedMerchantCities(city)) > 0
}

// ConnectedMerchantGoods collects the goods categories demanded by merchant
// tiles in reachable merchant cities.
func (b *Board) ConnectedMerchantGoods(city string) map[MerchantGoods]bool {
	out := make(map[MerchantGoods]bool)
	for _, c := range b.ConnectedMerchantCities(city) {
		for i := range c.Slots {
			if t := c.Slots[i].Tile; t != nil && t.Kind == KindMerchant && t.Goods != GoodsEmpty {
				out[t.Goods] = true
			}
		}
	}
	return out
}
