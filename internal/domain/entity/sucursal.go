package entity

import "time"

// Sucursal representa una sede física que posee empleados y productos.
// Las relaciones inversas (empleados, productos) viven en las otras entidades
// como SucursalID; aquí no se materializan.
type Sucursal struct {
	ID        string
	Nombre    string
	Direccion string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
