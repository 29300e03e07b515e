package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xutix/internal/model"
)

func TestDefaultTable_CoversEveryCategory(t *testing.T) {
	table := DefaultTable()
	assert.ElementsMatch(t, model.Categories(), table.Categories())

	for _, c := range model.Categories() {
		rules, err := table.Rules(c)
		require.NoError(t, err)
		assert.Equal(t, c, rules.Category)
		assert.False(t, rules.Base.IsNegative())
		assert.NotEmpty(t, rules.ItemName)
	}
}

func TestDefaultTable_NoNegativePrices(t *testing.T) {
	table := DefaultTable()
	for _, c := range table.Categories() {
		rules, err := table.Rules(c)
		require.NoError(t, err)

		for _, a := range rules.Linear {
			assert.True(t, a.Price.IsPositive(), "%s/%s", c, a.Key)
		}
		for _, a := range rules.Scaled {
			assert.True(t, a.PricePerUnit.IsPositive(), "%s/%s", c, a.Key)
		}
		for _, a := range rules.Tiered {
			for _, ch := range a.Choices {
				assert.False(t, ch.Price.IsNegative(), "%s/%s/%s", c, a.Key, ch.Value)
			}
		}
		if rules.Tiers != nil {
			for _, tier := range rules.Tiers.Tiers {
				assert.False(t, tier.Base.IsNegative(), "%s/%s", c, tier.Value)
			}
		}
	}
}

func TestTable_UnknownLookups(t *testing.T) {
	table := DefaultTable()

	_, err := table.Rules("nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = table.Package("nope")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestTable_DuplicateRulesKeepFirstPosition(t *testing.T) {
	table := NewTable([]CategoryRules{
		{Category: model.CategoryGTA, ItemName: "first"},
		{Category: model.CategoryR6},
		{Category: model.CategoryGTA, ItemName: "second"},
	}, nil)

	assert.Equal(t, []model.Category{model.CategoryGTA, model.CategoryR6}, table.Categories())
	rules, err := table.Rules(model.CategoryGTA)
	require.NoError(t, err)
	assert.Equal(t, "second", rules.ItemName)
}

func TestPackages_PricedByCalculator(t *testing.T) {
	calc := NewCalculator(nil)
	want := map[string]string{
		"jailbreak-nugget": "10",
		"jailbreak-full":   "25",
		"pc-optimization":  "20",
	}

	pkgs := calc.Table().Packages()
	require.Len(t, pkgs, len(want))
	for _, p := range pkgs {
		price, err := calc.PackagePrice(p)
		require.NoError(t, err)
		assertPrice(t, want[p.ID], price)
	}
}

func TestPackageItem(t *testing.T) {
	calc := NewCalculator(nil)

	item, err := calc.PackageItem("jailbreak-full")
	require.NoError(t, err)
	assert.Equal(t, "Complete Jailbreak Service", item.Name)
	assert.Equal(t, model.CategoryDeviceUnlock, item.Category)
	assert.True(t, item.IsPackage())
	assert.Empty(t, item.ID)
	assertPrice(t, "25", item.UnitPrice)

	_, err = calc.PackageItem("gift-card")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestConfigureItem(t *testing.T) {
	calc := NewCalculator(nil)

	item, err := calc.ConfigureItem(&model.ValorantOptions{Rank: "diamond", Prime: true, AllAgents: true})
	require.NoError(t, err)
	assert.Equal(t, "Custom Valorant Account", item.Name)
	assert.Equal(t, model.CategoryValorant, item.Category)
	assert.False(t, item.IsPackage())
	assert.Equal(t, "diamond", item.Options[model.KeyRank].String())
	assertPrice(t, "135", item.UnitPrice)
}

func TestConfigureItem_CategoryMissingFromTable(t *testing.T) {
	calc := NewCalculator(NewTable(nil, nil))
	_, err := calc.ConfigureItem(model.GTAOptions{})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
