package pricing

import (
	"github.com/shopspring/decimal"

	"xutix/internal/model"
)

// ConfigureItem prices a custom configuration and wraps it as a line item.
// The cart assigns the id.
func (c *Calculator) ConfigureItem(opts model.Options) (model.LineItem, error) {
	cat := opts.Category()
	rules, err := c.table.Rules(cat)
	if err != nil {
		return model.LineItem{}, err
	}

	sel := opts.Selection()
	price, err := c.ComputeTotal(cat, sel)
	if err != nil {
		return model.LineItem{}, err
	}

	return model.LineItem{
		Name:      rules.ItemName,
		UnitPrice: price,
		Category:  cat,
		Options:   sel,
	}, nil
}

func (c *Calculator) PackageItem(id string) (model.LineItem, error) {
	pkg, err := c.table.Package(id)
	if err != nil {
		return model.LineItem{}, err
	}

	price, err := c.PackagePrice(pkg)
	if err != nil {
		return model.LineItem{}, err
	}

	return model.LineItem{
		Name:      pkg.Name,
		UnitPrice: price,
		Category:  pkg.Category,
		PackageID: pkg.ID,
	}, nil
}

func (c *Calculator) PackagePrice(pkg Package) (decimal.Decimal, error) {
	return c.ComputeTotal(pkg.Category, pkg.Selection)
}
