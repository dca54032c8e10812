package entities

import "errors"

var ErrNotFound = errors.New("resource not found")
