package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"xutix/internal/model"
	"xutix/internal/pricing"
)

type catalogPackage struct {
	pricing.Package
	Price decimal.Decimal `json:"price"`
}

type catalogResponse struct {
	Categories []pricing.CategoryRules `json:"categories"`
	Packages   []catalogPackage        `json:"packages"`
}

func CatalogHandler(calc *pricing.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := calc.Table()

		resp := catalogResponse{}
		for _, c := range table.Categories() {
			rules, err := table.Rules(c)
			if err != nil {
				itemError(w, err)
				return
			}
			resp.Categories = append(resp.Categories, rules)
		}

		for _, p := range table.Packages() {
			price, err := calc.PackagePrice(p)
			if err != nil {
				itemError(w, err)
				return
			}
			resp.Packages = append(resp.Packages, catalogPackage{Package: p, Price: price})
		}

		render.JSON(w, r, resp)
	}
}

type quoteRequest struct {
	Category string          `json:"category"`
	Options  json.RawMessage `json:"options"`
}

type quoteResponse struct {
	Total     decimal.Decimal   `json:"total"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// QuoteHandler prices a configuration without touching the cart.
func QuoteHandler(calc *pricing.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cat, err := model.ParseCategory(req.Category)
		if err != nil {
			itemError(w, err)
			return
		}
		opts, err := model.DecodeOptions(cat, req.Options)
		if err != nil {
			itemError(w, errBadOptions)
			return
		}

		b, err := calc.Breakdown(cat, opts.Selection())
		if err != nil {
			itemError(w, err)
			return
		}

		render.JSON(w, r, quoteResponse{Total: b.Total, Breakdown: b})
	}
}
