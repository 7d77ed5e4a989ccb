package domain

import "errors"

var ErrMissingToken = errors.New("missing bearer token")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
