package entity

import "time"

// Quote is a single benchmark price.
type Quote struct {
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	Unit   string  `json:"unit"`
}

// CrudeOil groups the crude benchmarks.
type CrudeOil struct {
	WTI   Quote `json:"wti"`
	Brent Quote `json:"brent"`
	Dubai Quote `json:"dubai"`
}

// NaturalGas groups the gas hub benchmarks.
type NaturalGas struct {
	HenryHub Quote `json:"henry_hub"`
	TTF      Quote `json:"ttf"`
	JKM      Quote `json:"jkm"`
}

// RefinedProducts groups the product benchmarks.
type RefinedProducts struct {
	Gasoline Quote `json:"gasoline"`
	Diesel   Quote `json:"diesel"`
	JetFuel  Quote `json:"jet_fuel"`
}

// MarketSnapshot is the payload served by GET /api/market-data.
type MarketSnapshot struct {
	CrudeOil        CrudeOil        `json:"crude_oil"`
	NaturalGas      NaturalGas      `json:"natural_gas"`
	RefinedProducts RefinedProducts `json:"refined_products"`
	Hubs            []string        `json:"hubs"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
