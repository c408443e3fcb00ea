package repository

import "errors"

var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)
