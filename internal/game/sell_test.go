package game

import "testing"

// sellSession seeds a session on the test board with two players and an
// unflipped cotton mill for p1 in Birmingham. Callers add beer sources and
// links to shape each scenario.
func sellSession(t *testing.T) (*Session, *Player, *Player) {
	t.Helper()
	s := testSession(t)
	p1 := s.AddPlayer()
	p2 := s.AddPlayer()
	if !s.Board().PlaceTile("Birmingham", 1, mustTile(KindCotton, 1, p1.ID)) {
		t.Fatalf("seed cotton mill")
	}
	return s, p1, p2
}

func sell(s *Session, player int) bool {
	return s.HandleAction(player, Action{Kind: ActionSell, City: "Birmingham", Slot: 1})
}

func TestSellConsumesConnectedBrewery(t *testing.T) {
	s, p1, p2 := sellSession(t)

	// p2's brewery in Walsall, reachable over claimed links.
	if !s.Board().PlaceTile("Walsall", 0, mustTile(KindBrewery, 1, p2.ID)) {
		t.Fatalf("seed brewery")
	}
	s.Board().PlaceLink("Birmingham", "Oxford", p1.ID)
	s.Board().PlaceLink("Oxford", "Walsall", p2.ID)

	if !sell(s, p1.ID) {
		t.Fatalf("sell rejected")
	}

	cotton := s.Board().City("Birmingham").Slots[1].Tile
	if !cotton.Flipped {
		t.Fatalf("sold cotton mill should flip")
	}
	if p1.IncomeLevel != 10+5 {
		t.Fatalf("p1 income level = %d, want 15 (cotton L1 flip pays 5)", p1.IncomeLevel)
	}

	// The drained brewery flips too, and its income goes to its owner,
	// not to the seller.
	brewery := s.Board().City("Walsall").Slots[0].Tile
	if brewery.ResourceAmount != 0 || !brewery.Flipped {
		t.Fatalf("brewery = %+v, want exhausted and flipped", brewery)
	}
	if p2.IncomeLevel != 10+4 {
		t.Fatalf("p2 income level = %d, want 14 (brewery L1 flip pays 4)", p2.IncomeLevel)
	}
	if p1.Money != 30 || p2.Money != 30 {
		t.Fatalf("selling moves no money, got %d/%d", p1.Money, p2.Money)
	}
}

func TestSellDrawsMerchantBeer(t *testing.T) {
	s, p1, _ := sellSession(t)
	s.Board().PlaceLink("Birmingham", "Oxford", p1.ID)

	if !sell(s, p1.ID) {
		t.Fatalf("sell with merchant beer rejected")
	}
	merchant := s.Board().City("Oxford").Slots[0].Tile
	if merchant.ResourceAmount != 0 {
		t.Fatalf("merchant beer = %d, want 0", merchant.ResourceAmount)
	}
	// A drained merchant tile credits no one.
	if p1.IncomeLevel != 15 {
		t.Fatalf("p1 income level = %d, want 15 (only the cotton flip)", p1.IncomeLevel)
	}
}

func TestSellUsesOwnUnconnectedBrewery(t *testing.T) {
	s, p1, p2 := sellSession(t)

	// Walsall is not linked to Birmingham. p2's brewery there is out of
	// reach, p1's own one in the same city still counts.
	if !s.Board().PlaceTile("Walsall", 0, mustTile(KindBrewery, 1, p2.ID)) {
		t.Fatalf("seed p2 brewery")
	}
	if sell(s, p1.ID) {
		t.Fatalf("sell should fail: the only brewery is someone else's, off-network")
	}

	if !s.Board().PlaceTile("Walsall", 1, mustTile(KindBrewery, 1, p1.ID)) {
		t.Fatalf("seed p1 brewery")
	}
	if !sell(s, p1.ID) {
		t.Fatalf("sell with own off-network brewery rejected")
	}
	if got := s.Board().City("Walsall").Slots[0].Tile.ResourceAmount; got != 1 {
		t.Fatalf("p2's brewery was drained (%d left), p1's own should pay", got)
	}
	if got := s.Board().City("Walsall").Slots[1].Tile.ResourceAmount; got != 0 {
		t.Fatalf("p1's brewery holds %d, want 0", got)
	}
}

func TestSellAllOrNothing(t *testing.T) {
	s, p1, _ := sellSession(t)

	// No beer anywhere: reject and leave the mill untouched.
	if sell(s, p1.ID) {
		t.Fatalf("sell without beer should be rejected")
	}
	cotton := s.Board().City("Birmingham").Slots[1].Tile
	if cotton.Flipped {
		t.Fatalf("rejected sell flipped the tile")
	}
	if p1.IncomeLevel != 10 {
		t.Fatalf("rejected sell changed income to %d", p1.IncomeLevel)
	}
}

func TestSellShortfallDrainsNothing(t *testing.T) {
	s, p1, _ := sellSession(t)

	// Pottery L3 demands 2 beer; only 1 is reachable. The available barrel
	// must not be consumed by the failed attempt.
	if !s.Board().PlaceTile("Dudley", 1, mustTile(KindPottery, 3, p1.ID)) {
		t.Fatalf("seed pottery")
	}
	s.Board().PlaceLink("Birmingham", "Oxford", p1.ID)
	s.Board().PlaceLink("Dudley", "Birmingham", p1.ID)

	if s.HandleAction(p1.ID, Action{Kind: ActionSell, City: "Dudley", Slot: 1}) {
		t.Fatalf("sell needing 2 beer with 1 available should be rejected")
	}
	if got := s.Board().City("Oxford").Slots[0].Tile.ResourceAmount; got != 1 {
		t.Fatalf("failed sell drained merchant beer to %d", got)
	}
}

func TestSellOwnershipAndStateChecks(t *testing.T) {
	s, p1, p2 := sellSession(t)
	if !s.Board().PlaceTile("Birmingham", 2, mustTile(KindBrewery, 1, p1.ID)) {
		t.Fatalf("seed brewery")
	}

	// Someone else's mill.
	if sell(s, p2.ID) {
		t.Fatalf("selling another player's tile should be rejected")
	}

	// Tiles without beer demand cannot be sold.
	if !s.Board().PlaceTile("Dudley", 0, mustTile(KindCoal, 1, p1.ID)) {
		t.Fatalf("seed coal")
	}
	if s.HandleAction(p1.ID, Action{Kind: ActionSell, City: "Dudley", Slot: 0}) {
		t.Fatalf("selling a coal mine should be rejected")
	}

	// A flipped mill cannot be sold again.
	if !sell(s, p1.ID) {
		t.Fatalf("first sell rejected")
	}
	if sell(s, p1.ID) {
		t.Fatalf("second sell of a flipped tile should be rejected")
	}

	// Empty slots and bad indexes.
	if s.HandleAction(p1.ID, Action{Kind: ActionSell, City: "Walsall", Slot: 0}) {
		t.Fatalf("selling an empty slot should be rejected")
	}
	if s.HandleAction(p1.ID, Action{Kind: ActionSell, City: "Birmingham", Slot: 9}) {
		t.Fatalf("selling a bad slot index should be rejected")
	}
}
