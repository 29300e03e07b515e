// Package paylink builds the external links the storefront hands to the
// customer: the peer-to-peer payment page and the SMS deep link used to send
// payment proof.
package paylink

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"xutix/internal/model"
)

const (
	DefaultHost   = "cash.app"
	DefaultHandle = "EthanCreel1"
	DefaultPhone  = "7656156371"
)

// Links carries the payee and support contact used to render links.
type Links struct {
	Host   string
	Handle string
	Phone  string
}

func Default() Links {
	return Links{Host: DefaultHost, Handle: DefaultHandle, Phone: DefaultPhone}
}

// PaymentURL returns https://<host>/$<handle>/<total with two decimals>.
func PaymentURL(host, handle string, total decimal.Decimal) string {
	return fmt.Sprintf("https://%s/$%s/%s", host, handle, model.FormatPrice(total))
}

// SMSLink returns sms:<phone>?body=<body>, with body escaped the way
// browsers escape a URI component.
func SMSLink(phone, body string) string {
	return "sms:" + phone + "?body=" + EncodeURIComponent(body)
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes everything except A-Z a-z 0-9 and - _ . ! ~ * ' ( ).
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// ProofMessage is the text a customer sends along with a payment screenshot.
func ProofMessage(order *model.Order) string {
	return fmt.Sprintf("Payment screenshot for Order #%s - Total: $%s - Customer: %s (%s)",
		order.ID, model.FormatPrice(order.Total), order.Customer.Name, order.Customer.Phone)
}

func ConfirmationMessage(total decimal.Decimal, customer model.CustomerInfo) string {
	return fmt.Sprintf("Payment confirmation - Total: $%s - Customer: %s (%s)",
		model.FormatPrice(total), customer.Name, customer.Phone)
}

func (l Links) Payment(total decimal.Decimal) string {
	return PaymentURL(l.Host, l.Handle, total)
}

func (l Links) Proof(order *model.Order) string {
	return SMSLink(l.Phone, ProofMessage(order))
}

func (l Links) Confirmation(total decimal.Decimal, customer model.CustomerInfo) string {
	return SMSLink(l.Phone, ConfirmationMessage(total, customer))
}
