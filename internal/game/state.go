package game

import "brassworks/internal/protocol"

// Era is the game phase; it changes link costs and brewery yields.
type Era uint8

const (
	EraCanal Era = iota
	EraRail
)

func (e Era) String() string {
	if e == EraRail {
		return "rail"
	}
	return "canal"
}

// MarketShape sizes one resource market and its pre-game draw.
type MarketShape struct {
	MaxPrice      int
	SlotsPerPrice int
	InitialSold   int
}

// Config carries the session tuning knobs. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	StartingMoney       int
	StartingIncomeLevel int
	LoanMinLevel        int
	RailLinkCost        int
	RailBreweryYield    int
	CoalMarket          MarketShape
	IronMarket          MarketShape
}

func DefaultConfig() Config {
	return Config{
		StartingMoney:       30,
		StartingIncomeLevel: 10,
		LoanMinLevel:        2,
		RailLinkCost:        5,
		RailBreweryYield:    2,
		CoalMarket:          MarketShape{MaxPrice: 7, SlotsPerPrice: 2, InitialSold: 1},
		IronMarket:          MarketShape{MaxPrice: 5, SlotsPerPrice: 2, InitialSold: 2},
	}
}

// Session is the authoritative state of one game: players, the board, one
// market per raw resource and the current era. All mutation flows through
// HandleAction; every handler validates fully before touching state, so a
// rejected action leaves the session untouched. The caller must serialize
// access (one in-flight action per session).
type Session struct {
	cfg     Config
	board   *Board
	players map[int]*Player
	order   []int
	coal    *Market
	iron    *Market
	era     Era
	nextID  int
}

func NewSession(board *Board, cfg Config) *Session {
	s := &Session{
		cfg:     cfg,
		board:   board,
		players: make(map[int]*Player),
		coal:    NewMarket(cfg.CoalMarket.MaxPrice, cfg.CoalMarket.SlotsPerPrice),
		iron:    NewMarket(cfg.IronMarket.MaxPrice, cfg.IronMarket.SlotsPerPrice),
		nextID:  1,
	}
	s.coal.Buy(cfg.CoalMarket.InitialSold)
	s.iron.Buy(cfg.IronMarket.InitialSold)
	return s
}

func (s *Session) Board() *Board { return s.board }
func (s *Session) Era() Era      { return s.era }

// AdvanceEra moves the session from the canal era to the rail era.
func (s *Session) AdvanceEra() { s.era = EraRail }

func (s *Session) Player(id int) *Player { return s.players[id] }

// AddPlayer allocates the next sequential id and seeds starting money,
// income level and a full tile inventory.
func (s *Session) AddPlayer() *Player {
	p := &Player{
		ID:          s.nextID,
		Money:       s.cfg.StartingMoney,
		IncomeLevel: s.cfg.StartingIncomeLevel,
		Inventory:   NewInventory(s.nextID),
	}
	s.nextID++
	s.players[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}

// RemovePlayer deletes the player's record. Their placed tiles and links
// stay on the board, permanently owned by the departed id.
func (s *Session) RemovePlayer(id int) {
	delete(s.players, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// HandleAction validates and applies one action for a player. It returns
// false, with no state change, when any precondition fails.
func (s *Session) HandleAction(playerID int, a Action) bool {
	p, ok := s.players[playerID]
	if !ok {
		return false
	}
	switch a.Kind {
	case ActionPlaceTile:
		return s.handlePlaceTile(p, a)
	case ActionPlaceLink:
		return s.handlePlaceLink(p, a)
	case ActionDevelop:
		return s.handleDevelop(p, a)
	case ActionTakeLoan:
		return s.handleTakeLoan(p)
	case ActionSell:
		return s.handleSell(p, a)
	}
	return false
}

// tilePrice quotes the full cost of placing the tile at city: money cost
// plus the market price of any coal/iron not covered by tiles on the
// board. Coal can only be bought off the market through a merchant-city
// connection; without one an uncovered coal cost makes the placement
// unavailable.
func (s *Session) tilePrice(city string, t Tile) (int, bool) {
	cost := t.CostMoney

	coalShort := t.CostCoal
	if coalShort > 0 {
		coalShort -= s.board.TotalCoal(city)
	}
	if coalShort > 0 {
		if !s.board.ConnectedToMerchant(city) {
			return 0, false
		}
		cost += s.coal.GetPrice(coalShort)
	}

	ironShort := t.CostIron
	if ironShort > 0 {
		ironShort -= s.board.TotalIron()
	}
	if ironShort > 0 {
		cost += s.iron.GetPrice(ironShort)
	}
	return cost, true
}

func (s *Session) handlePlaceTile(p *Player, a Action) bool {
	if !a.Tile.IsIndustry() {
		return false
	}
	t, ok := p.Inventory.Peek(a.Tile)
	if !ok {
		return false
	}
	if s.era == EraRail && t.Kind == KindBrewery {
		t.ResourceAmount = s.cfg.RailBreweryYield
	}
	if !s.board.CanPlaceTile(a.City, a.Slot, t) {
		return false
	}
	price, ok := s.tilePrice(a.City, t)
	if !ok || price > p.Money {
		return false
	}

	// All checks passed; apply.
	p.Inventory.Take(a.Tile)
	s.board.PlaceTile(a.City, a.Slot, t)
	p.Money -= price
	coalShort := s.consumeResources(a.City, KindCoal, t.CostCoal)
	s.coal.Buy(coalShort)
	ironShort := s.consumeResources(a.City, KindIron, t.CostIron)
	s.iron.Buy(ironShort)
	return true
}

func (s *Session) linkPrice() int {
	if s.era == EraRail {
		return s.cfg.RailLinkCost
	}
	return 0
}

func (s *Session) handlePlaceLink(p *Player, a Action) bool {
	if !s.board.InPlayerNetwork(p.ID, a.City) && !s.board.InPlayerNetwork(p.ID, a.City2) {
		return false
	}
	if !s.board.linkAvailable(a.City, a.City2) {
		return false
	}
	price := s.linkPrice()
	if price > p.Money {
		return false
	}
	s.board.PlaceLink(a.City, a.City2, p.ID)
	p.Money -= price
	return true
}

func (s *Session) handleDevelop(p *Player, a Action) bool {
	if !a.Tile.IsIndustry() {
		return false
	}
	spent := 1
	if a.Tile2 != KindNone {
		if !a.Tile2.IsIndustry() {
			return false
		}
		spent = 2
	}
	price := s.iron.GetPrice(spent)
	if price > p.Money {
		return false
	}
	p.Inventory.Take(a.Tile)
	if a.Tile2 != KindNone {
		p.Inventory.Take(a.Tile2)
	}
	s.iron.Buy(2)
	p.Money -= price
	return true
}

func (s *Session) handleTakeLoan(p *Player) bool {
	if p.IncomeLevel <= s.cfg.LoanMinLevel {
		return false
	}
	level, err := LoanLevel(p.IncomeLevel)
	if err != nil {
		return false
	}
	p.IncomeLevel = level
	return true
}

func (s *Session) handleSell(p *Player, a Action) bool {
	c := s.board.City(a.City)
	if c == nil || a.Slot < 0 || a.Slot >= len(c.Slots) {
		return false
	}
	t := c.Slots[a.Slot].Tile
	if t == nil || t.Flipped || t.BeerDemand == 0 || t.Owner != p.ID {
		return false
	}
	if availableAmount(s, s.findBeer(p.ID, a.City)) < t.BeerDemand {
		return false
	}
	s.consumeBeer(p.ID, a.City, t.BeerDemand)
	t.Flipped = true
	s.creditFlip(t)
	return true
}

// Snapshot serializes the session for clients.
func (s *Session) Snapshot() protocol.StateMsg {
	msg := protocol.StateMsg{
		Type:   protocol.TypeState,
		Era:    s.era.String(),
		Cities: make(map[string]protocol.CityState, len(s.board.order)),
	}

	for _, id := range s.order {
		p := s.players[id]
		inv := make(map[string]int, len(pileLevels))
		for kind := range pileLevels {
			inv[kind.String()] = p.Inventory.Remaining(kind)
		}
		msg.Players = append(msg.Players, protocol.PlayerState{
			ID:          p.ID,
			Score:       p.Score,
			Money:       p.Money,
			IncomeLevel: p.IncomeLevel,
			Inventory:   inv,
		})
	}

	for _, c := range s.board.Cities() {
		cs := protocol.CityState{Slots: make([]protocol.SlotState, len(c.Slots))}
		if c.Merchant {
			cs.MerchantBonus = c.Bonus.String()
		}
		for i := range c.Slots {
			slot := &c.Slots[i]
			ss := protocol.SlotState{Allowed: make([]string, len(slot.Allowed))}
			for j, k := range slot.Allowed {
				ss.Allowed[j] = k.String()
			}
			if t := slot.Tile; t != nil {
				ts := protocol.TileState{
					Kind:           t.Kind.String(),
					Owner:          t.Owner,
					Level:          t.Level,
					Flipped:        t.Flipped,
					ResourceAmount: t.ResourceAmount,
					BeerDemand:     t.BeerDemand,
				}
				if t.Kind == KindMerchant {
					ts.Goods = t.Goods.String()
				}
				ss.Tile = &ts
			}
			cs.Slots[i] = ss
		}
		msg.Cities[c.Name] = cs
	}

	for _, l := range s.board.Links() {
		msg.Links = append(msg.Links, protocol.LinkState{A: l.A, B: l.B, Owner: l.Owner})
	}
	return msg
}
