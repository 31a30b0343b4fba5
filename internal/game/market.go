package game

// Market is a fixed price track for one raw resource. Position i sells at
// price i+1 and holds up to slotsPerPrice units. Buying always drains the
// cheapest occupied position; selling refills the highest non-full one.
// When the track is empty, further units cost maxPrice+1 each.
type Market struct {
	maxPrice int
	capacity int
	cubes    []int
}

func NewMarket(maxPrice, slotsPerPrice int) *Market {
	m := &Market{
		maxPrice: maxPrice,
		capacity: slotsPerPrice,
		cubes:    make([]int, maxPrice),
	}
	for i := range m.cubes {
		m.cubes[i] = slotsPerPrice
	}
	return m
}

// GetPrice quotes the cost of buying quantity units at the current state
// without mutating the market.
func (m *Market) GetPrice(quantity int) int {
	total := 0
	remaining := quantity
	scratch := make([]int, len(m.cubes))
	copy(scratch, m.cubes)

	for i := 0; i < m.maxPrice && remaining > 0; i++ {
		for scratch[i] > 0 && remaining > 0 {
			total += i + 1
			scratch[i]--
			remaining--
		}
	}
	if remaining > 0 {
		total += remaining * (m.maxPrice + 1)
	}
	return total
}

// CurrentPrice is the price of the cheapest available unit, or maxPrice+1
// when the market is empty.
func (m *Market) CurrentPrice() int {
	for i, c := range m.cubes {
		if c > 0 {
			return i + 1
		}
	}
	return m.maxPrice + 1
}

// Buy removes quantity units cheapest-first and returns the total paid.
func (m *Market) Buy(quantity int) int {
	total := 0
	for i := 0; i < quantity; i++ {
		price := m.CurrentPrice()
		total += price
		if idx := price - 1; idx >= 0 && idx < m.maxPrice && m.cubes[idx] > 0 {
			m.cubes[idx]--
		}
	}
	return total
}

// Sell places up to quantity units into the highest non-full positions and
// returns how many were actually sold and the revenue earned. Selling stops
// when the track is full.
func (m *Market) Sell(quantity int) (sold, revenue int) {
	for sold < quantity {
		price := m.highestEmptySlot()
		if price == 0 {
			break
		}
		revenue += price
		m.cubes[price-1]++
		sold++
	}
	return sold, revenue
}

func (m *Market) highestEmptySlot() int {
	for i := m.maxPrice - 1; i >= 0; i-- {
		if m.cubes[i] < m.capacity {
			return i + 1
		}
	}
	return 0
}
