package auth

import (
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
	"github.com/uis-entornos/comercio-api/internal/domain/repository"
	"github.com/uis-entornos/comercio-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para la generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login de empleados.
// Las credenciales se verifican contra el hash bcrypt persistido.
type AuthUseCase struct {
	empleadoRepo repository.EmpleadoRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(empleadoRepo repository.EmpleadoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{empleadoRepo: empleadoRepo, jwtCfg: jwtCfg}
}

// Login busca al empleado por email y, si no existe, por usuario; verifica la
// credencial y emite el token bearer. Credenciales incorrectas y empleados
// inexistentes producen el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Identificador == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	empleado, err := uc.empleadoRepo.FindByEmail(in.Identificador)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		empleado, err = uc.empleadoRepo.FindByUsuario(in.Identificador)
		if err != nil {
			return nil, err
		}
	}
	if empleado == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empleado.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	role := empleado.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, empleado.ID, empleado.SucursalID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:      token,
		ID:         empleado.ID,
		Nombre:     empleado.Nombre,
		Usuario:    empleado.Usuario,
		Email:      empleado.Email,
		Role:       role,
		SucursalID: empleado.SucursalID,
	}, nil
}
