package dto

import "time"

// CreateSucursalRequest entrada para crear una sucursal.
type CreateSucursalRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// UpdateSucursalRequest entrada para actualizar una sucursal.
type UpdateSucursalRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// SucursalResponse salida de una sucursal.
type SucursalResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
