package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDecode       = errors.New("malformed pool snapshot")
	ErrStoreMissing = errors.New("store payload not found in page")
)
