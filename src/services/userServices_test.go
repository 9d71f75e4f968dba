package services

import (
	"testing"
	"time"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/middleware"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func TestAuthenticateUserIssuesIdentityClaims(t *testing.T) {
	users := NewUserService(newTestDB(t), testSecret, time.Hour)
	created, err := users.CreateUser(models.RegisterRequest{Username: " catalogadora ", Password: "senha-forte", Restricted: true})
	require.NoError(t, err)
	assert.Equal(t, "catalogadora", created.Username)
	assert.NotEqual(t, "senha-forte", created.Password)

	signed, err := users.AuthenticateUser("catalogadora", "senha-forte")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(created.Id), claims[middleware.ClaimUserID])
	assert.Equal(t, true, claims[middleware.ClaimRestricted])
	assert.Equal(t, false, claims[middleware.ClaimSuperuser])

	_, err = users.AuthenticateUser("catalogadora", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = users.AuthenticateUser("ninguem", "senha-forte")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserValidation(t *testing.T) {
	users := NewUserService(newTestDB(t), testSecret, time.Hour)
	_, err := users.CreateUser(models.RegisterRequest{Username: "ana", Password: "12345678"})
	require.NoError(t, err)

	_, err = users.CreateUser(models.RegisterRequest{Username: "ana", Password: "curta"})
	var invalid *forms.ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"A senha deve ter pelo menos 8 caracteres."}, invalid.Errors.Fields["password"])

	_, err = users.CreateUser(models.RegisterRequest{Username: "ana", Password: "outra-senha"})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"Já existe um usuário com este nome."}, invalid.Errors.Fields["username"])
}

func TestEnsureSuperuser(t *testing.T) {
	database := newTestDB(t)
	users := NewUserService(database, testSecret, time.Hour)

	user, created, err := users.EnsureSuperuser("acervo", "primeira-senha")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, user.IsSuperuser)

	again, created, err := users.EnsureSuperuser("acervo", "segunda-senha")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.Id, again.Id)

	_, err = users.AuthenticateUser("acervo", "primeira-senha")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = users.AuthenticateUser("acervo", "segunda-senha")
	assert.NoError(t, err)

	require.NoError(t, users.DeleteUser(user.Id))
	var nf *ErrNotFound
	assert.ErrorAs(t, users.DeleteUser(user.Id), &nf)
}
