package model

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown category")

type Category string

const (
	CategoryDeviceUnlock   Category = "device-unlock-package"
	CategoryPCOptimization Category = "pc-optimization-package"
	CategoryGTA            Category = "gta-account"
	CategoryFortnite       Category = "fortnite-account"
	CategoryValorant       Category = "valorant-account"
	CategoryR6             Category = "r6-account"
)

// Categories lists every category in catalog order.
func Categories() []Category {
	return []Category{
		CategoryDeviceUnlock,
		CategoryPCOptimization,
		CategoryGTA,
		CategoryFortnite,
		CategoryValorant,
		CategoryR6,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDeviceUnlock, CategoryPCOptimization,
		CategoryGTA, CategoryFortnite, CategoryValorant, CategoryR6:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
