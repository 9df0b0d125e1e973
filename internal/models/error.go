package models

import "errors"

var (
	ErrOrdersUnavailable  = errors.New("order collection is unavailable")
	ErrUsersUnavailable   = errors.New("user collection is unavailable")
	ErrItemNotFound       = errors.New("item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrNoOrderSelected    = errors.New("no order is selected")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrEmptyCategoryName  = errors.New("category name is empty")
	ErrBackendInternal    = errors.New("backend internal error")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrExpiredToken       = errors.New("token has expired")
)
