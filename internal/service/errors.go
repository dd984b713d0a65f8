package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidEmail        = errors.New("email is not valid")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrEmptyTodoText       = errors.New("todo text must be a non-empty string")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// client-side errors
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrSessionExpired   = errors.New("saved session is no longer valid")
)
