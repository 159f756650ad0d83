package services

import "errors"

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrNoMenuItems     = errors.New("no menu item found")
	ErrDuplicateLine   = errors.New("menu item already in cart")
	ErrPriceNegative   = errors.New("price must not be negative")
	ErrPriceTooLarge   = errors.New("price exceeds 6 digits")
	ErrCategoryMissing = errors.New("category not found")
	ErrNotDeliveryCrew = errors.New("user does not belong to the Delivery crew group")
	ErrUsernameTaken   = errors.New("username already registered")
)
