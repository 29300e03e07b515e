package pricing

import (
	"github.com/shopspring/decimal"

	"xutix/internal/model"
)

// LinearAddOn adds a flat price when its toggle is on.
type LinearAddOn struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// ScaledAddOn charges PricePerUnit for every unit above Offset.
type ScaledAddOn struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Offset       int64           `json:"offset,omitempty"`
	Unit         string          `json:"unit"`
}

type Choice struct {
	Value string          `json:"value"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// TieredAddOn prices an enumerated choice such as a rank.
type TieredAddOn struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Choices []Choice `json:"choices"`
}

func (t TieredAddOn) price(value string) (decimal.Decimal, bool) {
	for _, c := range t.Choices {
		if c.Value == value {
			return c.Price, true
		}
	}
	return decimal.Zero, false
}

// Tier is an account type. A selected tier replaces the category base and
// brings its own scaled rates.
type Tier struct {
	Value       string          `json:"value"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Base        decimal.Decimal `json:"base"`
	Scaled      []ScaledAddOn   `json:"scaled,omitempty"`
}

type TierSet struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Tiers []Tier `json:"tiers"`
}

func (ts *TierSet) lookup(value string) (Tier, bool) {
	for _, t := range ts.Tiers {
		if t.Value == value {
			return t, true
		}
	}
	return Tier{}, false
}

// Attribute is an enumerated option that does not affect the price.
type Attribute struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type CategoryRules struct {
	Category    model.Category  `json:"category"`
	DisplayName string          `json:"displayName"`
	ItemName    string          `json:"itemName"`
	Base        decimal.Decimal `json:"base"`
	Linear      []LinearAddOn   `json:"linear,omitempty"`
	Scaled      []ScaledAddOn   `json:"scaled,omitempty"`
	Tiered      []TieredAddOn   `json:"tiered,omitempty"`
	Tiers       *TierSet        `json:"tiers,omitempty"`
	Attributes  []Attribute     `json:"attributes,omitempty"`
}

// Package is a fixed offering. Its price is whatever the calculator yields
// for Selection under Category.
type Package struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    model.Category  `json:"category"`
	Selection   model.Selection `json:"config,omitempty"`
	Features    []string        `json:"features,omitempty"`
	Popular     bool            `json:"popular,omitempty"`
}

// Table is the read-only rule set. Values handed out share backing slices
// with the table and must not be modified.
type Table struct {
	rules    map[model.Category]CategoryRules
	order    []model.Category
	packages []Package
}

func NewTable(rules []CategoryRules, packages []Package) *Table {
	t := &Table{
		rules:    make(map[model.Category]CategoryRules, len(rules)),
		packages: packages,
	}
	for _, r := range rules {
		if _, dup := t.rules[r.Category]; !dup {
			t.order = append(t.order, r.Category)
		}
		t.rules[r.Category] = r
	}
	return t
}

func (t *Table) Rules(c model.Category) (CategoryRules, error) {
	r, ok := t.rules[c]
	if !ok {
		return CategoryRules{}, unknownCategory(c)
	}
	return r, nil
}

func (t *Table) Categories() []model.Category {
	out := make([]model.Category, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Table) Packages() []Package {
	out := make([]Package, len(t.packages))
	copy(out, t.packages)
	return out
}

func (t *Table) Package(id string) (Package, error) {
	for _, p := range t.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return Package{}, unknownPackage(id)
}

var defaultTable = NewTable(defaultRules(), defaultPackages())

// DefaultTable is the storefront's price list.
func DefaultTable() *Table {
	return defaultTable
}

var platforms = []string{"pc", "ps4", "ps5", "xbox-one", "xbox-series"}

func defaultRules() []CategoryRules {
	return []CategoryRules{
		{
			Category:    model.CategoryDeviceUnlock,
			DisplayName: "iPhone Jailbreak",
			ItemName:    "iPhone Jailbreak Service",
			Base:        usd("10"),
			Tiers: &TierSet{
				Key:   model.KeyPackage,
				Label: "Package",
				Tiers: []Tier{
					{Value: "nugget", Name: "Nugget iOS Jailbreak", Base: usd("10"),
						Description: "Simple and safe jailbreak using Nugget for basic customizations"},
					{Value: "full", Name: "Complete Jailbreak Service", Base: usd("25"),
						Description: "Full jailbreaking service with all features and unlimited customizations"},
				},
			},
		},
		{
			Category:    model.CategoryPCOptimization,
			DisplayName: "PC Optimization",
			ItemName:    "Complete PC Optimization",
			Base:        usd("20"),
		},
		{
			Category:    model.CategoryGTA,
			DisplayName: "GTA V",
			ItemName:    "Custom GTA V Account",
			Base:        usd("25"),
			Scaled: []ScaledAddOn{
				{Key: model.KeyLevel, Label: "Character Level", PricePerUnit: usd("0.01"), Offset: 1, Unit: "level above 1"},
				{Key: model.KeyMoney, Label: "Money", PricePerUnit: usd("1"), Unit: "million"},
			},
			Linear: []LinearAddOn{
				{Key: model.KeyAllProperties, Label: "All Properties", Price: usd("15")},
				{Key: model.KeyModdedOutfits, Label: "Modded Outfits", Price: usd("10")},
				{Key: model.KeyFastRun, Label: "Fast Run", Price: usd("8")},
				{Key: model.KeyWeaponsResearch, Label: "All Weapons Research", Price: usd("12")},
				{Key: model.KeyModdedStats, Label: "Modded Stats", Price: usd("20")},
			},
			Attributes: []Attribute{
				{Key: model.KeyPlatform, Label: "Platform", Values: platforms},
			},
		},
		{
			Category:    model.CategoryFortnite,
			DisplayName: "Fortnite",
			ItemName:    "Custom Fortnite Account",
			Base:        usd("10"),
			Tiers: &TierSet{
				Key:   model.KeyAccountType,
				Label: "Account Type",
				Tiers: []Tier{
					{Value: "og", Name: "OG Account", Description: "Original skins from early seasons",
						Base: usd("30"), Scaled: []ScaledAddOn{skins("2")}},
					{Value: "tryhard", Name: "Tryhard Account", Description: "Competitive skins and clean combos",
						Base: usd("20"), Scaled: []ScaledAddOn{skins("1")}},
					{Value: "stacked", Name: "Stacked Account", Description: "Mix of everything - OG, rare, tryhard",
						Base: usd("50"), Scaled: []ScaledAddOn{skins("3")}},
					{Value: "vbucks", Name: "V-Bucks Ready", Description: "Fresh account loaded with V-Bucks",
						Base: usd("10"), Scaled: []ScaledAddOn{
							{Key: model.KeyVBucksAmount, Label: "V-Bucks", PricePerUnit: usd("0.007"), Unit: "V-Buck"},
						}},
				},
			},
			Attributes: []Attribute{
				{Key: model.KeyPlatform, Label: "Platform", Values: append(append([]string{}, platforms...), "nintendo-switch", "mobile")},
			},
		},
		{
			Category:    model.CategoryValorant,
			DisplayName: "Valorant",
			ItemName:    "Custom Valorant Account",
			Base:        usd("35"),
			Tiered: []TieredAddOn{{
				Key:   model.KeyRank,
				Label: "Rank",
				Choices: []Choice{
					{Value: "iron", Label: "Iron", Price: usd("0")},
					{Value: "bronze", Label: "Bronze", Price: usd("5")},
					{Value: "silver", Label: "Silver", Price: usd("10")},
					{Value: "gold", Label: "Gold", Price: usd("20")},
					{Value: "platinum", Label: "Platinum", Price: usd("35")},
					{Value: "diamond", Label: "Diamond", Price: usd("60")},
					{Value: "ascendant", Label: "Ascendant", Price: usd("100")},
					{Value: "immortal", Label: "Immortal", Price: usd("150")},
					{Value: "radiant", Label: "Radiant", Price: usd("250")},
				},
			}},
			Linear: []LinearAddOn{
				{Key: model.KeyPrime, Label: "Prime Collection", Price: usd("25")},
				{Key: model.KeyReaver, Label: "Reaver Collection", Price: usd("30")},
				{Key: model.KeyElderflame, Label: "Elderflame Collection", Price: usd("35")},
				{Key: model.KeyGlitchpop, Label: "Glitchpop Collection", Price: usd("30")},
				{Key: model.KeyAllAgents, Label: "All Agents Unlocked", Price: usd("15")},
				{Key: model.KeyBattlePass, Label: "Battle Pass Completion", Price: usd("10")},
			},
		},
		{
			Category:    model.CategoryR6,
			DisplayName: "Rainbow Six Siege",
			ItemName:    "Custom Rainbow Six Siege Account",
			Base:        usd("28"),
			Tiered: []TieredAddOn{{
				Key:   model.KeyRank,
				Label: "Rank",
				Choices: []Choice{
					{Value: "copper", Label: "Copper", Price: usd("0")},
					{Value: "bronze", Label: "Bronze", Price: usd("5")},
					{Value: "silver", Label: "Silver", Price: usd("10")},
					{Value: "gold", Label: "Gold", Price: usd("20")},
					{Value: "platinum", Label: "Platinum", Price: usd("35")},
					{Value: "diamond", Label: "Diamond", Price: usd("60")},
					{Value: "champion", Label: "Champion", Price: usd("100")},
				},
			}},
			Scaled: []ScaledAddOn{
				{Key: model.KeyRenownCredits, Label: "Renown & R6 Credits", PricePerUnit: usd("0.002"), Unit: "credit"},
			},
			Linear: []LinearAddOn{
				{Key: model.KeyAllOperators, Label: "All Operators Unlocked", Price: usd("20")},
				{Key: model.KeyBlackIce, Label: "Black Ice Skin Collection", Price: usd("25")},
				{Key: model.KeyEliteUniforms, Label: "Elite Uniforms & Sets", Price: usd("15")},
				{Key: model.KeyModdedStats, Label: "Modded Stats", Price: usd("18")},
			},
		},
	}
}

func defaultPackages() []Package {
	return []Package{
		{
			ID:          "jailbreak-nugget",
			Name:        "Nugget iOS Jailbreak",
			Description: "Simple and safe jailbreak using Nugget for basic customizations",
			Category:    model.CategoryDeviceUnlock,
			Selection:   model.Selection{model.KeyPackage: model.Enum("nugget")},
			Features: []string{
				"iOS 15-17 support",
				"Nugget tool installation",
				"Basic customizations",
				"Safe and reversible",
				"Email support",
			},
		},
		{
			ID:          "jailbreak-full",
			Name:        "Complete Jailbreak Service",
			Description: "Full jailbreaking service with all features and unlimited customizations",
			Category:    model.CategoryDeviceUnlock,
			Selection:   model.Selection{model.KeyPackage: model.Enum("full")},
			Features: []string{
				"All iOS versions supported",
				"Cydia + Sileo installation",
				"Unlimited tweaks",
				"Custom themes & icons",
				"Advanced modifications",
				"Priority support",
				"Remote assistance",
			},
			Popular: true,
		},
		{
			ID:          "pc-optimization",
			Name:        "Complete PC Optimization",
			Description: "Professional remote PC optimization using AnyDesk for maximum performance",
			Category:    model.CategoryPCOptimization,
			Features: []string{
				"Remote access via AnyDesk",
				"Complete registry cleaning",
				"Startup optimization",
				"Driver updates & installation",
				"Malware & bloatware removal",
				"System file repair",
				"Performance tweaking",
				"Gaming optimization",
				"Memory optimization",
				"Disk cleanup & defrag",
				"Same-day service",
				"30-day support included",
			},
		},
	}
}

func skins(rate string) ScaledAddOn {
	return ScaledAddOn{Key: model.KeySkinCount, Label: "Skins", PricePerUnit: usd(rate), Unit: "skin"}
}

func usd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
