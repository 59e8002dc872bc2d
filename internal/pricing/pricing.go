package pricing

import (
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/money"
)

// Default list prices for the reference operation.
const (
	DefaultStandardPrice = 900.0
	DefaultPlusPrice     = 1100.0
	DefaultPremiumPrice  = 1500.0
	DefaultStationPrice  = 900.0
)

// PriceList is the single source of list prices for spaces and stations.
type PriceList struct {
	Spaces  map[domain.UnitType]float64 `json:"spaces"`
	Station float64                     `json:"station"`
}

// DefaultPriceList returns the reference price list.
func DefaultPriceList() PriceList {
	return PriceList{
		Spaces: map[domain.UnitType]float64{
			domain.UnitStandard: DefaultStandardPrice,
			domain.UnitPlus:     DefaultPlusPrice,
			domain.UnitPremium:  DefaultPremiumPrice,
		},
		Station: DefaultStationPrice,
	}
}

// SpacePrice returns the list price of a space tier.
func (p PriceList) SpacePrice(t domain.UnitType) (float64, error) {
	price, ok := p.Spaces[t]
	if !ok {
		return 0, domain.Invalid("unit_type", "unknown unit type %q", t)
	}
	return price, nil
}

// StationPrice returns the uniform station list price.
func (p PriceList) StationPrice() float64 {
	return p.Station
}

// Validate rejects negative prices and missing tiers.
func (p PriceList) Validate() error {
	for _, t := range []domain.UnitType{domain.UnitStandard, domain.UnitPlus, domain.UnitPremium} {
		price, ok := p.Spaces[t]
		if !ok {
			return domain.Invalid("prices", "missing price for %s", t)
		}
		if price < 0 {
			return domain.Invalid("prices", "negative price for %s", t)
		}
	}
	if p.Station < 0 {
		return domain.Invalid("prices", "negative station price")
	}
	return nil
}

// NetPrice is the price after a percentage discount.
func NetPrice(listPrice, discountPct float64) float64 {
	return money.ApplyDiscount(listPrice, discountPct)
}
