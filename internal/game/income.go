package game

import "fmt"

// MaxIncomeLevel is the top of the income track.
const MaxIncomeLevel = 99

// Income returns the per-round income value for a level on the fixed track:
// flat steps up to level 10, then coarser steps of 2, 3 and 4 levels per
// point. Levels outside [0, MaxIncomeLevel] are a data error.
func Income(level int) (int, error) {
	switch {
	case level < 0 || level > MaxIncomeLevel:
		return 0, fmt.Errorf("income level %d out of range", level)
	case level <= 10:
		return level - 10, nil
	case level <= 30:
		return ceilDiv(level-10, 2), nil
	case level <= 60:
		return 10 + ceilDiv(level-30, 3), nil
	default:
		return 20 + ceilDiv(level-60, 4), nil
	}
}

// LoanLevel returns the income level after taking a loan: one below the
// lowest level whose income is still within 2 of the current income, so the
// income value drops by at least 2 (typically 3).
func LoanLevel(level int) (int, error) {
	current, err := Income(level)
	if err != nil {
		return 0, err
	}
	newLevel := level
	for i := level; i >= 0; i-- {
		v, verr := Income(i)
		if verr != nil || v < current-2 {
			break
		}
		newLevel = i - 1
	}
	if newLevel < 0 {
		newLevel = 0
	}
	return newLevel, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
