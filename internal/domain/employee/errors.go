package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRutExists        = errors.New("rut already registered")
)
