package game

// ActionKind tags a submitted action.
type ActionKind uint8

const (
	ActionUnknown ActionKind = iota
	ActionPlaceTile
	ActionPlaceLink
	ActionDevelop
	ActionTakeLoan
	ActionSell
)

var actionNames = map[ActionKind]string{
	ActionUnknown:   "unknown",
	ActionPlaceTile: "place_tile",
	ActionPlaceLink: "place_link",
	ActionDevelop:   "develop",
	ActionTakeLoan:  "take_loan",
	ActionSell:      "sell",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseActionKind maps a wire action string to its kind. Unrecognized
// strings map to ActionUnknown, which the resolver rejects without
// mutation.
func ParseActionKind(s string) ActionKind {
	switch s {
	case "place_tile":
		return ActionPlaceTile
	case "place_link":
		return ActionPlaceLink
	case "develop":
		return ActionDevelop
	case "take_loan":
		return ActionTakeLoan
	case "sell":
		return ActionSell
	}
	return ActionUnknown
}

// Action is one proposed move. Unused fields stay zero; Slot is -1 when
// absent.
type Action struct {
	Kind  ActionKind
	City  string
	City2 string
	Tile  TileKind
	Tile2 TileKind
	Slot  int
}
