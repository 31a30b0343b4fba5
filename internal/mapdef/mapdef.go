// Package mapdef loads a static board definition from YAML and builds the
// city graph. Map files are trusted pre-game data; any inconsistency in
// them fails the load rather than surfacing later as a rules bug.
package mapdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"brassworks/internal/game"
)

type Def struct {
	Name          string            `yaml:"name"`
	Cities        []CityDef         `yaml:"cities"`
	Connections   [][]string        `yaml:"connections"`
	MerchantTiles []MerchantTileDef `yaml:"merchant_tiles"`
}

// CityDef describes one city. A non-empty Bonus marks a merchant city.
type CityDef struct {
	Name  string     `yaml:"name"`
	Bonus string     `yaml:"bonus,omitempty"`
	Slots [][]string `yaml:"slots"`
}

// MerchantTileDef places a neutral merchant tile during board setup.
type MerchantTileDef struct {
	City  string `yaml:"city"`
	Slot  int    `yaml:"slot"`
	Goods string `yaml:"goods"`
}

func Load(path string) (*Def, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Def
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return &d, nil
}

// Build constructs the board: cities with their slots, the connection
// graph, and the pre-game merchant tiles.
func (d *Def) Build() (*game.Board, error) {
	b := game.NewBoard()
	for _, c := range d.Cities {
		if c.Bonus != "" {
			bonus, err := game.ParseMerchantBonus(c.Bonus)
			if err != nil {
				return nil, fmt.Errorf("city %s: %w", c.Name, err)
			}
			b.AddMerchantCity(c.Name, bonus)
		} else {
			b.AddCity(c.Name)
		}
		for i, slot := range c.Slots {
			allowed := make([]game.TileKind, 0, len(slot))
			for _, ks := range slot {
				k, err := game.ParseTileKind(ks)
				if err != nil {
					return nil, fmt.Errorf("city %s slot %d: %w", c.Name, i, err)
				}
				allowed = append(allowed, k)
			}
			b.AddSlot(c.Name, allowed...)
		}
	}

	for _, pair := range d.Connections {
		if len(pair) != 2 {
			return nil, fmt.Errorf("connection %v: want exactly two cities", pair)
		}
		for _, name := range pair {
			if b.City(name) == nil {
				return nil, fmt.Errorf("connection %v: unknown city %q", pair, name)
			}
		}
		b.AddConnection(pair[0], pair[1])
	}

	for _, mt := range d.MerchantTiles {
		goods, err := game.ParseMerchantGoods(mt.Goods)
		if err != nil {
			return nil, fmt.Errorf("merchant tile at %s: %w", mt.City, err)
		}
		if !b.PlaceTile(mt.City, mt.Slot, game.NewMerchantTile(goods)) {
			return nil, fmt.Errorf("cannot place merchant tile at %s slot %d", mt.City, mt.Slot)
		}
	}
	return b, nil
}
