package dto

// LoginRequest credenciales de acceso. Identificador acepta email o usuario.
type LoginRequest struct {
	Identificador string `json:"identificador"`
	Password      string `json:"password"`
}

// LoginResponse respuesta de login con el token bearer y los datos del empleado.
type LoginResponse struct {
	Token      string `json:"token"`
	ID         string `json:"id"`
	Nombre     string `json:"nombre"`
	Usuario    string `json:"usuario"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	SucursalID string `json:"sucursalId,omitempty"`
}
