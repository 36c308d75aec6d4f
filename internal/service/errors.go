package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEmailAlreadyInUse   = errors.New("email is already in use")
	ErrAccountNotFound     = errors.New("account is not found")
	ErrAccountNotConfirmed = errors.New("account is not confirmed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("token is invalid or expired")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
