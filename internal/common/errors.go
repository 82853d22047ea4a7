package common

import "errors"

// ErrorNotFound is returned when a requested object does not exist.
var ErrorNotFound = errors.New("not found")
