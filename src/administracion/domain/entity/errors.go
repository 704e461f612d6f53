package entity

import "errors"

var (
	ErrCamposObligatorios   = errors.New("todos los campos son obligatorios")
	ErrEmpleadoNoEncontrado = errors.New("empleado not found")
)
