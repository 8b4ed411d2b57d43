package models

import "errors"

var (
	ErrBoxNotFound  = errors.New("Box not found")
	ErrItemNotFound = errors.New("Item not found")
)
