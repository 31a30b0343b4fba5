package game

// resourceCandidate addresses one placed tile that can pay resource units.
type resourceCandidate struct {
	city string
	slot int
}

func (s *Session) candidateTile(c resourceCandidate) *Tile {
	city := s.board.City(c.city)
	if city == nil || c.slot < 0 || c.slot >= len(city.Slots) {
		return nil
	}
	return city.Slots[c.slot].Tile
}

// findResources lists the placed tiles that can pay units of a raw
// resource, in a stable order: coal candidates follow the breadth-first
// discovery order of the network around city, iron candidates follow board
// insertion order (iron is board-wide).
func (s *Session) findResources(city string, kind TileKind) []resourceCandidate {
	var cityNames []string
	switch kind {
	case KindCoal:
		cityNames = s.board.ConnectedCities(city)
	case KindIron:
		for _, c := range s.board.Cities() {
			cityNames = append(cityNames, c.Name)
		}
	default:
		return nil
	}

	var out []resourceCandidate
	for _, name := range cityNames {
		c := s.board.City(name)
		for i := range c.Slots {
			t := c.Slots[i].Tile
			if t != nil && t.Kind == kind && t.ResourceAmount > 0 {
				out = append(out, resourceCandidate{city: name, slot: i})
			}
		}
	}
	return out
}

// findBeer lists beer sources available to payer when selling from city:
// breweries in connected cities, then beer stocked on connected merchant
// tiles, then the payer's own breweries outside the network.
func (s *Session) findBeer(payer int, city string) []resourceCandidate {
	connected := s.board.ConnectedCities(city)
	inNetwork := make(map[string]bool, len(connected))
	for _, name := range connected {
		inNetwork[name] = true
	}

	var out []resourceCandidate
	for _, name := range connected {
		c := s.board.City(name)
		for i := range c.Slots {
			t := c.Slots[i].Tile
			if t != nil && t.Kind == KindBrewery && t.ResourceAmount > 0 {
				out = append(out, resourceCandidate{city: name, slot: i})
			}
		}
	}
	for _, name := range connected {
		c := s.board.City(name)
		if !c.Merchant {
			continue
		}
		for i := range c.Slots {
			t := c.Slots[i].Tile
			if t != nil && t.Kind == KindMerchant && t.ResourceAmount > 0 {
				out = append(out, resourceCandidate{city: name, slot: i})
			}
		}
	}
	for _, c := range s.board.Cities() {
		if inNetwork[c.Name] {
			continue
		}
		for i := range c.Slots {
			t := c.Slots[i].Tile
			if t != nil && t.Kind == KindBrewery && t.Owner == payer && t.ResourceAmount > 0 {
				out = append(out, resourceCandidate{city: c.Name, slot: i})
			}
		}
	}
	return out
}

func availableAmount(s *Session, candidates []resourceCandidate) int {
	total := 0
	for _, c := range candidates {
		if t := s.candidateTile(c); t != nil {
			total += t.ResourceAmount
		}
	}
	return total
}

// drain subtracts up to amount units from the tile and returns the
// remainder still owed. Exhausting the tile flips it and credits the tile's
// owner (not the consumer) with its income, exactly once.
func (s *Session) drain(t *Tile, amount int) int {
	if amount >= t.ResourceAmount {
		amount -= t.ResourceAmount
		t.ResourceAmount = 0
		t.Flipped = true
		s.creditFlip(t)
		return amount
	}
	t.ResourceAmount -= amount
	return 0
}

func (s *Session) creditFlip(t *Tile) {
	if p, ok := s.players[t.Owner]; ok {
		p.IncomeLevel += t.Income
	}
}

// consumeResources drains coal or iron from candidate tiles one at a time
// until the need is met or candidates run out. The unsatisfied remainder is
// returned for the caller to cover from the market.
func (s *Session) consumeResources(city string, kind TileKind, amountNeeded int) int {
	if amountNeeded == 0 {
		return 0
	}
	for _, c := range s.findResources(city, kind) {
		if amountNeeded == 0 {
			break
		}
		if t := s.candidateTile(c); t != nil {
			amountNeeded = s.drain(t, amountNeeded)
		}
	}
	return amountNeeded
}

// consumeBeer drains beer from the payer's reachable sources and returns
// the unsatisfied remainder; there is no market fallback for beer.
func (s *Session) consumeBeer(payer int, city string, amountNeeded int) int {
	if amountNeeded == 0 {
		return 0
	}
	for _, c := range s.findBeer(payer, city) {
		if amountNeeded == 0 {
			break
		}
		if t := s.candidateTile(c); t != nil {
			amountNeeded = s.drain(t, amountNeeded)
		}
	}
	return amountNeeded
}
