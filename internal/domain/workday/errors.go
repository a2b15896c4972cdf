package workday

import "errors"

var (
	ErrConfigNotFound = errors.New("working day configuration not found")
)
