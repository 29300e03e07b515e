package model

import (
	"encoding/json"
	"fmt"
)

// Option keys understood by the pricing table.
const (
	KeyPlatform = "platform"

	KeyLevel           = "level"
	KeyMoney           = "money"
	KeyAllProperties   = "allProperties"
	KeyModdedOutfits   = "moddedOutfits"
	KeyFastRun         = "fastRun"
	KeyWeaponsResearch = "weaponsResearch"
	KeyModdedStats     = "moddedStats"

	KeyAccountType  = "accountType"
	KeySkinCount    = "skinCount"
	KeyVBucksAmount = "vbucksAmount"

	KeyRank       = "rank"
	KeyPrime      = "prime"
	KeyReaver     = "reaver"
	KeyElderflame = "elderflame"
	KeyGlitchpop  = "glitchpop"
	KeyAllAgents  = "allAgents"
	KeyBattlePass = "battlePass"

	KeyRenownCredits = "renownCredits"
	KeyAllOperators  = "allOperators"
	KeyBlackIce      = "blackIce"
	KeyEliteUniforms = "eliteUniforms"

	KeyPackage = "package"
)

// Options is a typed option set for exactly one category.
type Options interface {
	Category() Category
	Selection() Selection
}

type GTAOptions struct {
	Level           Quantity `json:"level,omitempty"`
	Money           Quantity `json:"money,omitempty"`
	Platform        string   `json:"platform,omitempty"`
	AllProperties   bool     `json:"allProperties,omitempty"`
	ModdedOutfits   bool     `json:"moddedOutfits,omitempty"`
	FastRun         bool     `json:"fastRun,omitempty"`
	WeaponsResearch bool     `json:"weaponsResearch,omitempty"`
	ModdedStats     bool     `json:"moddedStats,omitempty"`
}

func (GTAOptions) Category() Category { return CategoryGTA }

func (o GTAOptions) Selection() Selection {
	s := Selection{}
	putQuantity(s, KeyLevel, o.Level)
	putQuantity(s, KeyMoney, o.Money)
	putEnum(s, KeyPlatform, o.Platform)
	putBool(s, KeyAllProperties, o.AllProperties)
	putBool(s, KeyModdedOutfits, o.ModdedOutfits)
	putBool(s, KeyFastRun, o.FastRun)
	putBool(s, KeyWeaponsResearch, o.WeaponsResearch)
	putBool(s, KeyModdedStats, o.ModdedStats)
	return s
}

type FortniteOptions struct {
	AccountType  string   `json:"accountType,omitempty"`
	SkinCount    Quantity `json:"skinCount,omitempty"`
	VBucksAmount Quantity `json:"vbucksAmount,omitempty"`
	Platform     string   `json:"platform,omitempty"`
}

func (FortniteOptions) Category() Category { return CategoryFortnite }

func (o FortniteOptions) Selection() Selection {
	s := Selection{}
	putEnum(s, KeyAccountType, o.AccountType)
	putQuantity(s, KeySkinCount, o.SkinCount)
	putQuantity(s, KeyVBucksAmount, o.VBucksAmount)
	putEnum(s, KeyPlatform, o.Platform)
	return s
}

type ValorantOptions struct {
	Rank       string `json:"rank,omitempty"`
	Prime      bool   `json:"prime,omitempty"`
	Reaver     bool   `json:"reaver,omitempty"`
	Elderflame bool   `json:"elderflame,omitempty"`
	Glitchpop  bool   `json:"glitchpop,omitempty"`
	AllAgents  bool   `json:"allAgents,omitempty"`
	BattlePass bool   `json:"battlePass,omitempty"`
}

func (ValorantOptions) Category() Category { return CategoryValorant }

func (o ValorantOptions) Selection() Selection {
	s := Selection{}
	putEnum(s, KeyRank, o.Rank)
	putBool(s, KeyPrime, o.Prime)
	putBool(s, KeyReaver, o.Reaver)
	putBool(s, KeyElderflame, o.Elderflame)
	putBool(s, KeyGlitchpop, o.Glitchpop)
	putBool(s, KeyAllAgents, o.AllAgents)
	putBool(s, KeyBattlePass, o.BattlePass)
	return s
}

type R6Options struct {
	Rank          string   `json:"rank,omitempty"`
	RenownCredits Quantity `json:"renownCredits,omitempty"`
	AllOperators  bool     `json:"allOperators,omitempty"`
	BlackIce      bool     `json:"blackIce,omitempty"`
	EliteUniforms bool     `json:"eliteUniforms,omitempty"`
	ModdedStats   bool     `json:"moddedStats,omitempty"`
}

func (R6Options) Category() Category { return CategoryR6 }

func (o R6Options) Selection() Selection {
	s := Selection{}
	putEnum(s, KeyRank, o.Rank)
	putQuantity(s, KeyRenownCredits, o.RenownCredits)
	putBool(s, KeyAllOperators, o.AllOperators)
	putBool(s, KeyBlackIce, o.BlackIce)
	putBool(s, KeyEliteUniforms, o.EliteUniforms)
	putBool(s, KeyModdedStats, o.ModdedStats)
	return s
}

type DeviceUnlockOptions struct {
	Package string `json:"package,omitempty"`
}

func (DeviceUnlockOptions) Category() Category { return CategoryDeviceUnlock }

func (o DeviceUnlockOptions) Selection() Selection {
	s := Selection{}
	putEnum(s, KeyPackage, o.Package)
	return s
}

type PCOptimizationOptions struct{}

func (PCOptimizationOptions) Category() Category { return CategoryPCOptimization }

func (PCOptimizationOptions) Selection() Selection { return Selection{} }

// DecodeOptions builds the option variant for category c from raw JSON.
// Keys that do not belong to the category are dropped.
func DecodeOptions(c Category, raw json.RawMessage) (Options, error) {
	var opts Options
	switch c {
	case CategoryGTA:
		opts = &GTAOptions{}
	case CategoryFortnite:
		opts = &FortniteOptions{}
	case CategoryValorant:
		opts = &ValorantOptions{}
	case CategoryR6:
		opts = &R6Options{}
	case CategoryDeviceUnlock:
		opts = &DeviceUnlockOptions{}
	case CategoryPCOptimization:
		return PCOptimizationOptions{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}

	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, opts); err != nil {
			return nil, fmt.Errorf("decode %s options: %w", c, err)
		}
	}
	return opts, nil
}

func putBool(s Selection, key string, b bool) {
	if b {
		s[key] = Bool(true)
	}
}

func putQuantity(s Selection, key string, q Quantity) {
	if q != 0 {
		s[key] = Int(int64(q))
	}
}

func putEnum(s Selection, key, v string) {
	if v != "" {
		s[key] = Enum(v)
	}
}
