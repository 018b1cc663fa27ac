package entity

import "time"

// Cliente representa un cliente referenciado por las ventas.
// Registro inerte: ninguna regla de negocio lo muta fuera del CRUD directo.
type Cliente struct {
	ID        string
	Nombre    string
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
