package game

// Player is one participant's economic state. IncomeLevel indexes the
// income table; Inventory holds their unplaced industry tiles.
type Player struct {
	ID          int
	Score       int
	Money       int
	IncomeLevel int
	Inventory   *Inventory
}
