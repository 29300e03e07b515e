package pricing

import (
	"github.com/shopspring/decimal"

	"xutix/internal/model"
)

// Line is one component of a computed price.
type Line struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type Breakdown struct {
	Category model.Category  `json:"category"`
	Tier     string          `json:"tier,omitempty"`
	Base     decimal.Decimal `json:"base"`
	Floor    decimal.Decimal `json:"floor"`
	Lines    []Line          `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

// Calculator turns option selections into prices. It keeps no state between
// calls; every call recomputes from the table.
type Calculator struct {
	table *Table
}

func NewCalculator(table *Table) *Calculator {
	if table == nil {
		table = DefaultTable()
	}
	return &Calculator{table: table}
}

func (c *Calculator) Table() *Table {
	return c.table
}

// ComputeTotal prices a selection for category cat using the default table.
func ComputeTotal(cat model.Category, sel model.Selection) (decimal.Decimal, error) {
	return NewCalculator(nil).ComputeTotal(cat, sel)
}

func (c *Calculator) ComputeTotal(cat model.Category, sel model.Selection) (decimal.Decimal, error) {
	b, err := c.Breakdown(cat, sel)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Total, nil
}

// Quote prices a typed option set.
func (c *Calculator) Quote(opts model.Options) (decimal.Decimal, error) {
	return c.ComputeTotal(opts.Category(), opts.Selection())
}

// Breakdown computes the total together with the contribution of every
// component that added something.
//
// The total never drops below the floor, which is the base of the category
// or of the selected tier. Unknown tier values, unknown ranks and
// non-positive quantities contribute nothing.
func (c *Calculator) Breakdown(cat model.Category, sel model.Selection) (Breakdown, error) {
	rules, err := c.table.Rules(cat)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{Category: cat, Base: rules.Base}
	scaled := rules.Scaled

	if rules.Tiers != nil {
		if v, ok := sel.Get(rules.Tiers.Key); ok {
			if tier, found := rules.Tiers.lookup(v.String()); found {
				b.Tier = tier.Value
				b.Base = tier.Base
				scaled = append(append([]ScaledAddOn{}, scaled...), tier.Scaled...)
			}
		}
	}
	b.Floor = b.Base
	total := b.Base

	for _, a := range rules.Linear {
		v, ok := sel.Get(a.Key)
		if !ok || !v.Truthy() {
			continue
		}
		b.Lines = append(b.Lines, Line{Key: a.Key, Label: a.Label, Amount: a.Price})
		total = total.Add(a.Price)
	}

	for _, a := range scaled {
		v, ok := sel.Get(a.Key)
		if !ok {
			continue
		}
		units := max(v.Quantity(), 0) - a.Offset
		if units <= 0 {
			continue
		}
		amount := decimal.NewFromInt(units).Mul(a.PricePerUnit)
		b.Lines = append(b.Lines, Line{Key: a.Key, Label: a.Label, Amount: amount})
		total = total.Add(amount)
	}

	for _, a := range rules.Tiered {
		v, ok := sel.Get(a.Key)
		if !ok {
			continue
		}
		price, found := a.price(v.String())
		if !found {
			continue
		}
		b.Lines = append(b.Lines, Line{Key: a.Key, Label: a.Label, Amount: price})
		total = total.Add(price)
	}

	if total.LessThan(b.Floor) {
		b.Lines = append(b.Lines, Line{Key: "floor", Label: "Minimum price", Amount: b.Floor.Sub(total)})
		total = b.Floor
	}
	b.Total = total
	return b, nil
}
