package marketdata

import (
	"time"

	"ogfinder/internal/domain/entity"
)

// DefaultSnapshot is served when no bucket is configured.
func DefaultSnapshot(now time.Time) *entity.MarketSnapshot {
	return &entity.MarketSnapshot{
		CrudeOil: entity.CrudeOil{
			WTI:   entity.Quote{Price: 78.45, Change: 1.23, Unit: "USD/bbl"},
			Brent: entity.Quote{Price: 82.10, Change: 0.98, Unit: "USD/bbl"},
			Dubai: entity.Quote{Price: 80.75, Change: -0.42, Unit: "USD/bbl"},
		},
		NaturalGas: entity.NaturalGas{
			HenryHub: entity.Quote{Price: 2.85, Change: -0.05, Unit: "USD/MMBtu"},
			TTF:      entity.Quote{Price: 34.20, Change: 0.65, Unit: "EUR/MWh"},
			JKM:      entity.Quote{Price: 11.40, Change: 0.18, Unit: "USD/MMBtu"},
		},
		RefinedProducts: entity.RefinedProducts{
			Gasoline: entity.Quote{Price: 2.45, Change: 0.03, Unit: "USD/gal"},
			Diesel:   entity.Quote{Price: 2.78, Change: 0.05, Unit: "USD/gal"},
			JetFuel:  entity.Quote{Price: 2.62, Change: -0.01, Unit: "USD/gal"},
		},
		Hubs: []string{
			"Cushing, Oklahoma",
			"Rotterdam",
			"Singapore",
			"Fujairah",
			"Houston",
			"Henry Hub, Louisiana",
		},
		UpdatedAt: now.UTC(),
	}
}
