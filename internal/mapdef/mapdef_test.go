package mapdef

import (
	"path/filepath"
	"testing"

	"brassworks/internal/game"
)

func loadBirmingham(t *testing.T) *game.Board {
	t.Helper()
	def, err := Load(filepath.Join("..", "..", "configs", "map_birmingham.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if def.Name != "birmingham" {
		t.Fatalf("map name = %q, want birmingham", def.Name)
	}
	b, err := def.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return b
}

func TestBirminghamMapBuilds(t *testing.T) {
	b := loadBirmingham(t)

	if got := len(b.Cities()); got != 19 {
		t.Fatalf("city count = %d, want 19", got)
	}
	conns := b.Connections("Birmingham")
	if len(conns) != 4 {
		t.Fatalf("Birmingham connections = %v, want 4", conns)
	}

	oxford := b.City("Oxford")
	if oxford == nil || !oxford.Merchant || oxford.Bonus != game.BonusIncome2 {
		t.Fatalf("Oxford = %+v, want a merchant city with the income2 bonus", oxford)
	}

	// Birmingham's fifth slot carries the pre-game cotton merchant tile.
	bm := b.City("Birmingham")
	if len(bm.Slots) != 5 {
		t.Fatalf("Birmingham has %d slots, want 5", len(bm.Slots))
	}
	mt := bm.Slots[4].Tile
	if mt == nil || mt.Kind != game.KindMerchant || mt.Goods != game.GoodsCotton {
		t.Fatalf("Birmingham merchant slot = %+v, want a cotton merchant tile", mt)
	}
	if mt.ResourceAmount != 1 {
		t.Fatalf("cotton merchant stocks %d beer, want 1", mt.ResourceAmount)
	}
	if mt.Owner != game.Neutral {
		t.Fatalf("merchant tile owned by %d, want neutral", mt.Owner)
	}
}

func TestBuildRejectsBadDefs(t *testing.T) {
	cases := []struct {
		name string
		def  Def
	}{
		{"unknown slot kind", Def{Cities: []CityDef{{Name: "A", Slots: [][]string{{"castle"}}}}}},
		{"bad bonus", Def{Cities: []CityDef{{Name: "A", Bonus: "gold"}}}},
		{"dangling connection", Def{
			Cities:      []CityDef{{Name: "A"}},
			Connections: [][]string{{"A", "B"}},
		}},
		{"connection arity", Def{
			Cities:      []CityDef{{Name: "A"}, {Name: "B"}, {Name: "C"}},
			Connections: [][]string{{"A", "B", "C"}},
		}},
		{"bad merchant goods", Def{
			Cities:        []CityDef{{Name: "A", Slots: [][]string{{"merchant"}}}},
			MerchantTiles: []MerchantTileDef{{City: "A", Slot: 0, Goods: "coal"}},
		}},
		{"merchant tile on industry slot", Def{
			Cities:        []CityDef{{Name: "A", Slots: [][]string{{"coal"}}}},
			MerchantTiles: []MerchantTileDef{{City: "A", Slot: 0, Goods: "cotton"}},
		}},
	}
	for _, c := range cases {
		if _, err := c.def.Build(); err == nil {
			t.Fatalf("%s: Build should fail", c.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("load of a missing file should fail")
	}
}
