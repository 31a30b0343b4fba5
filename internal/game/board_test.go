package game

import "testing"

// lineBoard builds A-B-C-D with one coal slot per city; D is a merchant
// city with a cotton merchant tile.
func lineBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	b.AddCity("CityA")
	b.AddCity("CityB")
	b.AddCity("CityC")
	b.AddMerchantCity("CityD", BonusPoints4)
	for _, name := range []string{"CityA", "CityB", "CityC"} {
		b.AddSlot(name, KindCoal)
	}
	b.AddSlot("CityD", KindMerchant)
	b.AddConnection("CityA", "CityB")
	b.AddConnection("CityB", "CityC")
	b.AddConnection("CityC", "CityD")
	if !b.PlaceTile("CityD", 0, NewMerchantTile(GoodsCotton)) {
		t.Fatalf("place merchant tile")
	}
	return b
}

func TestBoardConnectionsIgnoreOwnership(t *testing.T) {
	b := lineBoard(t)
	got := b.Connections("CityB")
	if len(got) != 2 || got[0] != "CityA" || got[1] != "CityC" {
		t.Fatalf("Connections(CityB) = %v, want [CityA CityC]", got)
	}
	if got := b.Connections("nowhere"); got != nil {
		t.Fatalf("Connections on unknown city = %v, want nil", got)
	}
}

func TestBoardConnectedCitiesNeedOwnedLinks(t *testing.T) {
	b := lineBoard(t)

	if got := b.ConnectedCities("CityA"); len(got) != 1 || got[0] != "CityA" {
		t.Fatalf("with no links placed, network = %v, want [CityA]", got)
	}

	if !b.PlaceLink("CityA", "CityB", 1) {
		t.Fatalf("claim A-B")
	}
	if !b.PlaceLink("CityB", "CityC", 2) {
		t.Fatalf("claim B-C")
	}

	// Traversal crosses any claimed link, whoever owns it.
	got := b.ConnectedCities("CityA")
	if len(got) != 3 {
		t.Fatalf("network from CityA = %v, want 3 cities", got)
	}
	if got[0] != "CityA" || got[1] != "CityB" || got[2] != "CityC" {
		t.Fatalf("network order = %v, want [CityA CityB CityC]", got)
	}

	// C-D stays unclaimed, so CityD is unreachable.
	for _, name := range got {
		if name == "CityD" {
			t.Fatalf("CityD should be blocked behind the unclaimed link")
		}
	}
}

func TestBoardPlaceLinkFirstClaimWins(t *testing.T) {
	b := lineBoard(t)
	if !b.PlaceLink("CityB", "CityA", 1) {
		t.Fatalf("claiming with reversed endpoints should work")
	}
	if b.PlaceLink("CityA", "CityB", 2) {
		t.Fatalf("second claim on the same link should fail")
	}
	if b.PlaceLink("CityA", "CityC", 1) {
		t.Fatalf("claiming a nonexistent connection should fail")
	}

	placed := b.PlacedLinks()
	if len(placed) != 1 || placed[0].Owner != 1 {
		t.Fatalf("placed links = %+v, want one link owned by 1", placed)
	}
}

func TestBoardTilePlacementLegality(t *testing.T) {
	b := NewBoard()
	b.AddCity("CityA")
	b.AddSlot("CityA", KindCoal, KindIron)

	cotton := mustTile(KindCotton, 1, 1)
	if b.CanPlaceTile("CityA", 0, cotton) {
		t.Fatalf("slot does not allow cotton")
	}
	coal := mustTile(KindCoal, 1, 1)
	if !b.PlaceTile("CityA", 0, coal) {
		t.Fatalf("coal placement should succeed")
	}
	if b.CanPlaceTile("CityA", 0, mustTile(KindIron, 1, 2)) {
		t.Fatalf("occupied slot must refuse further tiles")
	}
	if b.CanPlaceTile("CityA", 1, coal) || b.CanPlaceTile("nowhere", 0, coal) {
		t.Fatalf("bad slot index or city must refuse placement")
	}
}

func TestBoardPlaceTileCopies(t *testing.T) {
	b := NewBoard()
	b.AddCity("CityA")
	b.AddSlot("CityA", KindCoal)

	src := mustTile(KindCoal, 1, 1)
	if !b.PlaceTile("CityA", 0, src) {
		t.Fatalf("place")
	}
	src.ResourceAmount = 0
	if got := b.City("CityA").Slots[0].Tile.ResourceAmount; got != 2 {
		t.Fatalf("board tile aliased the caller's value; resource = %d, want 2", got)
	}
}

func TestBoardPlayerNetworkBootstrap(t *testing.T) {
	b := lineBoard(t)

	// A player with nothing on the board may build anywhere.
	if !b.InPlayerNetwork(1, "CityC") {
		t.Fatalf("empty-handed player should be in-network everywhere")
	}
	if b.InPlayerNetwork(1, "nowhere") {
		t.Fatalf("unknown city is never in-network")
	}

	if !b.PlaceTile("CityA", 0, mustTile(KindCoal, 1, 1)) {
		t.Fatalf("place coal")
	}
	if !b.InPlayerNetwork(1, "CityA") {
		t.Fatalf("tile city should be in-network")
	}
	if b.InPlayerNetwork(1, "CityC") {
		t.Fatalf("once the player owns anything, unrelated cities are out of network")
	}

	b.PlaceLink("CityB", "CityC", 1)
	if !b.InPlayerNetwork(1, "CityB") || !b.InPlayerNetwork(1, "CityC") {
		t.Fatalf("both endpoints of an owned link are in-network")
	}
}

func TestBoardTotalCoalFollowsNetwork(t *testing.T) {
	b := lineBoard(t)
	b.PlaceTile("CityA", 0, mustTile(KindCoal, 1, 1)) // 2 coal
	b.PlaceTile("CityC", 0, mustTile(KindCoal, 2, 2)) // 3 coal

	if got := b.TotalCoal("CityA"); got != 2 {
		t.Fatalf("unlinked TotalCoal(CityA) = %d, want 2", got)
	}
	b.PlaceLink("CityA", "CityB", 1)
	b.PlaceLink("CityB", "CityC", 1)
	if got := b.TotalCoal("CityA"); got != 5 {
		t.Fatalf("linked TotalCoal(CityA) = %d, want 5", got)
	}
}

func TestBoardTotalIronIsBoardWide(t *testing.T) {
	b := lineBoard(t)
	b.AddSlot("CityA", KindIron)
	b.AddSlot("CityC", KindIron)
	b.PlaceTile("CityA", 1, mustTile(KindIron, 1, 1)) // 4 iron
	b.PlaceTile("CityC", 1, mustTile(KindIron, 1, 2)) // 4 iron

	// No links placed; iron still counts across the whole board.
	if got := b.TotalIron(); got != 8 {
		t.Fatalf("TotalIron = %d, want 8", got)
	}
}

func TestBoardMerchantReach(t *testing.T) {
	b := lineBoard(t)
	if b.ConnectedToMerchant("CityA") {
		t.Fatalf("no links: CityA must not reach the merchant")
	}
	b.PlaceLink("CityA", "CityB", 1)
	b.PlaceLink("CityB", "CityC", 1)
	b.PlaceLink("CityC", "CityD", 2)
	if !b.ConnectedToMerchant("CityA") {
		t.Fatalf("CityA should reach CityD through claimed links")
	}

	goods := b.ConnectedMerchantGoods("CityA")
	if !goods[GoodsCotton] || len(goods) != 1 {
		t.Fatalf("merchant goods from CityA = %v, want {cotton}", goods)
	}
}
