package protocol

// WELCOME (server -> client), sent once after the connection joins.
type WelcomeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	PlayerID        int    `json:"player_id"`
}

// ACT (client -> server), one proposed action. Slot is a pointer so a
// missing slot can be told apart from slot 0.
type ActMsg struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	City   string `json:"city,omitempty"`
	City2  string `json:"city2,omitempty"`
	Tile   string `json:"tile,omitempty"`
	Tile2  string `json:"tile2,omitempty"`
	Slot   *int   `json:"slot,omitempty"`
}

// SlotIndex returns the requested slot, or -1 when absent.
func (m ActMsg) SlotIndex() int {
	if m.Slot == nil {
		return -1
	}
	return *m.Slot
}

// RESULT (server -> client), the accept/reject verdict for one ACT.
type ResultMsg struct {
	Type   string `json:"type"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// STATE (server -> client), the full session snapshot.
type StateMsg struct {
	Type    string               `json:"type"`
	Era     string               `json:"era"`
	Players []PlayerState        `json:"players"`
	Cities  map[string]CityState `json:"cities"`
	Links   []LinkState          `json:"links"`
}

type PlayerState struct {
	ID          int            `json:"id"`
	Score       int            `json:"score"`
	Money       int            `json:"money"`
	IncomeLevel int            `json:"income_level"`
	Inventory   map[string]int `json:"inventory"`
}

type CityState struct {
	MerchantBonus string      `json:"merchant_bonus,omitempty"`
	Slots         []SlotState `json:"slots"`
}

type SlotState struct {
	Allowed []string   `json:"allowed"`
	Tile    *TileState `json:"tile"`
}

type TileState struct {
	Kind           string `json:"kind"`
	Owner          int    `json:"owner"`
	Level          int    `json:"level"`
	Flipped        bool   `json:"flipped"`
	ResourceAmount int    `json:"resource_amount"`
	BeerDemand     int    `json:"beer_demand"`
	Goods          string `json:"goods,omitempty"`
}

// Owner is -1 for links nobody has claimed.
type LinkState struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Owner int    `json:"owner"`
}
