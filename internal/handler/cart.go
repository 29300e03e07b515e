package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"xutix/internal/cart"
	"xutix/internal/model"
)

type cartResponse struct {
	Items []model.LineItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	return cartResponse{Items: c.Items(), Total: c.Total(), Count: c.Len()}
}

func GetCartHandler(shop *Shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		c, err := shop.Sessions.LoadCart(r.Context(), sid)
		if err != nil {
			slog.Error("load cart failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, newCartResponse(c))
	}
}

func AddCartItemHandler(shop *Shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req itemRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		item, err := shop.buildItem(req)
		if err != nil {
			itemError(w, err)
			return
		}

		c, err := shop.Sessions.LoadCart(r.Context(), sid)
		if err != nil {
			slog.Error("load cart failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		c.Add(item)

		if err := shop.Sessions.SaveCart(r.Context(), sid, c); err != nil {
			slog.Error("save cart failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, newCartResponse(c))
	}
}

// RemoveCartItemHandler succeeds even when the item is not in the cart.
func RemoveCartItemHandler(shop *Shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		c, err := shop.Sessions.LoadCart(r.Context(), sid)
		if err != nil {
			slog.Error("load cart failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if c.Remove(chi.URLParam(r, "id")) {
			if err := shop.Sessions.SaveCart(r.Context(), sid, c); err != nil {
				slog.Error("save cart failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		render.JSON(w, r, newCartResponse(c))
	}
}
