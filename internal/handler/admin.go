package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"xutix/internal/admin"
)

func adminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, admin.ErrOrderNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, admin.ErrInvalidStatus):
		http.Error(w, "invalid status", http.StatusBadRequest)
	case errors.Is(err, admin.ErrEmptyAccountDetails):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error("admin request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func ListAdminOrdersHandler(svc *admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			adminError(w, err)
			return
		}
		render.JSON(w, r, orders)
	}
}

func GetAdminOrderHandler(svc *admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			adminError(w, err)
			return
		}
		render.JSON(w, r, o)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func UpdateAdminOrderStatusHandler(svc *admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			adminError(w, err)
			return
		}
		render.JSON(w, r, o)
	}
}

type deliverRequest struct {
	AccountDetails  string `json:"accountDetails"`
	DeliveryMessage string `json:"deliveryMessage"`
}

func DeliverAdminOrderHandler(svc *admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deliverRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Deliver(r.Context(), chi.URLParam(r, "id"), req.AccountDetails, req.DeliveryMessage)
		if err != nil {
			adminError(w, err)
			return
		}
		render.JSON(w, r, o)
	}
}

func AdminStatsHandler(svc *admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			adminError(w, err)
			return
		}
		render.JSON(w, r, st)
	}
}
