package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"xutix/internal/checkout"
	"xutix/internal/model"
	"xutix/internal/mw"
	"xutix/internal/paylink"
	"xutix/internal/pricing"
	"xutix/internal/queue"
	"xutix/internal/session"
)

// Shop bundles what the storefront handlers need.
type Shop struct {
	Calc      *pricing.Calculator
	Sessions  *session.Manager
	Assembler *checkout.Assembler
	Links     paylink.Links
	Intake    queue.Queue
}

// itemRequest selects either a fixed package or a custom configuration.
type itemRequest struct {
	PackageID string          `json:"packageId"`
	Category  string          `json:"category"`
	Options   json.RawMessage `json:"options"`
}

func (s *Shop) buildItem(req itemRequest) (model.LineItem, error) {
	if req.PackageID != "" {
		return s.Calc.PackageItem(req.PackageID)
	}

	cat, err := model.ParseCategory(req.Category)
	if err != nil {
		return model.LineItem{}, err
	}
	opts, err := model.DecodeOptions(cat, req.Options)
	if err != nil {
		return model.LineItem{}, errBadOptions
	}
	return s.Calc.ConfigureItem(opts)
}

var errBadOptions = errors.New("invalid options")

// itemError maps item building failures to a response.
func itemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pricing.ErrUnknownCategory):
		http.Error(w, "unknown category", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownPackage):
		http.Error(w, "unknown package", http.StatusBadRequest)
	case errors.Is(err, errBadOptions):
		http.Error(w, "invalid options", http.StatusBadRequest)
	default:
		slog.Error("build item failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid, ok := mw.SessionID(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
	}
	return sid, ok
}
