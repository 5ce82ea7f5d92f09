package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/moonhub/inventory-hub/internal/application/auth"
	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/domain"
	pkgjwt "github.com/moonhub/inventory-hub/pkg/jwt"
)

func newAuth(t *testing.T, password string) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase(auth.Config{
		AdminUser:         "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		JWTIssuer:         "inventory-hub-test",
		JWTExpMinutes:     30,
	})
}

func TestLogin_IssuesToken(t *testing.T) {
	uc := newAuth(t, "s3cret")

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, 30*60, out.ExpiresIn)

	subject, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuth(t, "s3cret")
	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_WrongUser(t *testing.T) {
	uc := newAuth(t, "s3cret")
	_, err := uc.Login(dto.LoginRequest{Username: "root", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_MissingFields(t *testing.T) {
	uc := newAuth(t, "s3cret")
	_, err := uc.Login(dto.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
