package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"xutix/internal/checkout"
	"xutix/internal/model"
	"xutix/internal/session"
)

type placedResponse struct {
	Order      *model.Order `json:"order"`
	PaymentURL string       `json:"paymentUrl"`
	SMSURL     string       `json:"smsUrl"`
}

func StartCheckoutHandler(shop *Shop) http.HandlerFunc {
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
		if c.Len() == 0 {
			http.Error(w, checkout.ErrEmptyCart.Error(), http.StatusConflict)
			return
		}

		summary := checkout.Summarize(c)
		if err := shop.Sessions.StartCheckout(r.Context(), sid, summary); err != nil {
			slog.Error("start checkout failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}

type checkoutResponse struct {
	checkout.Summary
	PaymentURL         string `json:"paymentUrl"`
	ConfirmationSMSURL string `json:"confirmationSmsUrl"`
}

// GetCheckoutHandler returns the checkout snapshot with its payment link. The
// optional name and phone query parameters fill in the confirmation SMS.
func GetCheckoutHandler(shop *Shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		summary, err := shop.Sessions.Checkout(r.Context(), sid)
		if err != nil {
			sessionError(w, err)
			return
		}

		q := r.URL.Query()
		customer := model.CustomerInfo{
			Name:  strings.TrimSpace(q.Get("name")),
			Phone: strings.TrimSpace(q.Get("phone")),
		}

		render.JSON(w, r, checkoutResponse{
			Summary:            summary,
			PaymentURL:         shop.Links.Payment(summary.Total),
			ConfirmationSMSURL: shop.Links.Confirmation(summary.Total, customer),
		})
	}
}

// PlaceOrderHandler turns the session cart into an order, records it for the
// payment page and hands it to the intake queue.
func PlaceOrderHandler(shop *Shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var info model.CustomerInfo
		if err := render.DecodeJSON(r.Body, &info); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := shop.Sessions.LoadCart(r.Context(), sid)
		if err != nil {
			slog.Error("load cart failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		order, err := shop.Assembler.CreateOrder(c, info)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrIncompleteCustomerInfo):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, checkout.ErrEmptyCart):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				slog.Error("create order failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if !shop.place(w, r, sid, order) {
			return
		}

		c.Clear()
		if err := shop.Sessions.SaveCart(r.Context(), sid, c); err != nil {
			slog.Error("clear cart failed", "session", sid, "error", err)
		}
		if err := shop.Sessions.ClearCheckout(r.Context(), sid); err != nil {
			slog.Error("clear checkout failed", "session", sid, "error", err)
		}

		shop.respondPlaced(w, r, order)
	}
}

// BuyNowHandler places a single configured item without going through the
// cart. The cart is left untouched.
func BuyNowHandler(shop *Shop) http.HandlerFunc {
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

		order, err := shop.Assembler.QuickCheckout(item)
		if err != nil {
			slog.Error("quick checkout failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if !shop.place(w, r, sid, order) {
			return
		}
		shop.respondPlaced(w, r, order)
	}
}

type verificationResponse struct {
	Payment    *model.Order `json:"paymentData"`
	PaymentURL string       `json:"paymentUrl"`
	SMSURL     string       `json:"smsUrl"`
}

func PaymentVerificationHandler(shop *Shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		order, err := shop.Sessions.Payment(r.Context(), sid)
		if err != nil {
			sessionError(w, err)
			return
		}

		render.JSON(w, r, verificationResponse{
			Payment:    order,
			PaymentURL: shop.Links.Payment(order.Total),
			SMSURL:     shop.Links.Proof(order),
		})
	}
}

// place saves the payment record and enqueues the order. A queue failure is
// logged only; the customer already has a valid payment request.
func (s *Shop) place(w http.ResponseWriter, r *http.Request, sid string, order *model.Order) bool {
	if err := s.Sessions.SavePayment(r.Context(), sid, order); err != nil {
		slog.Error("save payment failed", "order", order.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}

	if err := s.Intake.Push(r.Context(), *order); err != nil {
		slog.Error("enqueue order failed", "order", order.ID, "error", err)
	}

	slog.Info("order placed", "order", order.ID, "items", len(order.Items), "total", model.FormatPrice(order.Total))
	return true
}

func (s *Shop) respondPlaced(w http.ResponseWriter, r *http.Request, order *model.Order) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, placedResponse{
		Order:      order,
		PaymentURL: s.Links.Payment(order.Total),
		SMSURL:     s.Links.Proof(order),
	})
}

func sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNoActiveCheckout) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	slog.Error("load session record failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
