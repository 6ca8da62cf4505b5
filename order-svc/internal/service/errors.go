package service

import "errors"

var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrPersistence      = errors.New("failed to record order")
	ErrNotification     = errors.New("failed to send order notification")
	ErrInvalidMenuItem  = errors.New("menu item needs a name and a non-negative price")
)
