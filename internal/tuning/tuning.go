package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"brassworks/internal/game"
)

type Tuning struct {
	StartingMoney       int `yaml:"starting_money"`
	StartingIncomeLevel int `yaml:"starting_income_level"`
	LoanMinLevel        int `yaml:"loan_min_level"`
	RailLinkCost        int `yaml:"rail_link_cost"`
	RailBreweryYield    int `yaml:"rail_brewery_yield"`

	CoalMarket MarketShape `yaml:"coal_market"`
	IronMarket MarketShape `yaml:"iron_market"`
}

type MarketShape struct {
	MaxPrice      int `yaml:"max_price"`
	SlotsPerPrice int `yaml:"slots_per_price"`
	InitialSold   int `yaml:"initial_sold"`
}

func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func Defaults() Tuning {
	cfg := game.DefaultConfig()
	return Tuning{
		StartingMoney:       cfg.StartingMoney,
		StartingIncomeLevel: cfg.StartingIncomeLevel,
		LoanMinLevel:        cfg.LoanMinLevel,
		RailLinkCost:        cfg.RailLinkCost,
		RailBreweryYield:    cfg.RailBreweryYield,
		CoalMarket:          shapeFromGame(cfg.CoalMarket),
		IronMarket:          shapeFromGame(cfg.IronMarket),
	}
}

// Config maps the tuning file onto the session config.
func (t Tuning) Config() game.Config {
	return game.Config{
		StartingMoney:       t.StartingMoney,
		StartingIncomeLevel: t.StartingIncomeLevel,
		LoanMinLevel:        t.LoanMinLevel,
		RailLinkCost:        t.RailLinkCost,
		RailBreweryYield:    t.RailBreweryYield,
		CoalMarket:          shapeToGame(t.CoalMarket),
		IronMarket:          shapeToGame(t.IronMarket),
	}
}

func shapeFromGame(s game.MarketShape) MarketShape {
	return MarketShape{MaxPrice: s.MaxPrice, SlotsPerPrice: s.SlotsPerPrice, InitialSold: s.InitialSold}
}

func shapeToGame(s MarketShape) game.MarketShape {
	return game.MarketShape{MaxPrice: s.MaxPrice, SlotsPerPrice: s.SlotsPerPrice, InitialSold: s.InitialSold}
}
