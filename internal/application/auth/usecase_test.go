package auth_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/inventario-api/internal/application/auth"
	"github.com/jcastellanos/inventario-api/internal/application/dto"
	"github.com/jcastellanos/inventario-api/internal/domain"
	"github.com/jcastellanos/inventario-api/internal/domain/entity"
	"github.com/jcastellanos/inventario-api/internal/infrastructure/jsonstore"
	pkgjwt "github.com/jcastellanos/inventario-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	repo := jsonstore.NewUserRepository(filepath.Join(t.TempDir(), "usuarios.json"))

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}))

	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inventario-api-test",
	})
}

// El token recién emitido verifica de inmediato y lleva los claims del usuario.
func TestAuthUC_LoginEmiteTokenVerificable(t *testing.T) {
	uc := newAuthUC(t)
	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "1234"})
	require.NoError(t, err)

	assert.Equal(t, "Login exitoso", out.Mensaje)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

// Password incorrecto y username inexistente producen el mismo error:
// la respuesta no revela cuál de los dos falló.
func TestAuthUC_CredencialesInvalidas_MismoError(t *testing.T) {
	uc := newAuthUC(t)

	_, errPassword := uc.Login(dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)

	_, errUsuario := uc.Login(dto.LoginRequest{Username: "nadie", Password: "1234"})
	assert.ErrorIs(t, errUsuario, domain.ErrUnauthorized)

	assert.Equal(t, errPassword, errUsuario)
}

func TestAuthUC_CamposFaltantes_ErrorDistinto(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.Login(dto.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Password: "1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
