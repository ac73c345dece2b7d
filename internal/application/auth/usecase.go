package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/trading-pro/internal/domain"
	"github.com/tu-usuario/trading-pro/pkg/jwt"
)

// Credential credencial única de administración (desde configuración, no
// hay tabla de usuarios en esta aplicación).
type Credential struct {
	Username     string
	PasswordHash string // bcrypt
}

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase valida la credencial y emite el token.
type AuthUseCase struct {
	cred   Credential
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(cred Credential, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{cred: cred, jwtCfg: jwtCfg}
}

// Login compara usuario y contraseña (bcrypt) y devuelve un JWT firmado.
// Con PasswordHash vacío el login queda deshabilitado.
func (uc *AuthUseCase) Login(username, password string) (string, error) {
	if uc.cred.PasswordHash == "" || username != uc.cred.Username {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cred.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", fmt.Errorf("emitir token: %w", err)
	}
	return token, nil
}
