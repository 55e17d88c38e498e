package services

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidReference = errors.New("referenced document does not exist")
)
