package wishlist

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrApartmentNotFound = errors.New("apartment not found")
)
