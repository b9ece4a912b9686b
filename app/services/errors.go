package services

import "errors"

// Failure taxonomy surfaced by the services. Handlers map these to responses
// with errors.Is; anything not listed here is an internal error.
var (
	ErrInvalidArguments      = errors.New("invalid arguments")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrPasswordsDoNotMatch   = errors.New("passwords do not match")
	ErrUsernameAlreadyExists = errors.New("username already exists")

	ErrCategoryNotFound     = errors.New("category not found")
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrUserNotFound         = errors.New("user not found")
)
