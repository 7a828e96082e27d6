package mshop

import (
	"github.com/shopspring/decimal"
)

// Price is a monetary amount with the shop tax semantics attached.
// TaxFlag true means amounts include tax (gross), false means net.
type Price struct {
	CurrencyID string          `json:"currencyid"`
	Value      decimal.Decimal `json:"value"`
	Costs      decimal.Decimal `json:"costs"`
	Taxrate    decimal.Decimal `json:"taxrate"`
	TaxFlag    bool            `json:"taxflag"`
}

func NewPrice(currency, value, costs, taxrate string, taxflag bool) Price {
	return Price{
		CurrencyID: currency,
		Value:      decimal.RequireFromString(value),
		Costs:      decimal.RequireFromString(costs),
		Taxrate:    decimal.RequireFromString(taxrate),
		TaxFlag:    taxflag,
	}
}
