package checkout

import "errors"

var (
	ErrIncompleteCustomerInfo = errors.New("customer name and phone are required")
	ErrEmptyCart              = errors.New("cart is empty, nothing to checkout")
)
