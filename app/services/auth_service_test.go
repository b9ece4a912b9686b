package services

import (
	"testing"

	"github.com/shopmk/go-backoffice/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.authService()
	ctx := testContext()

	user, err := svc.Register(ctx, "elena", "secret", "secret", "Elena", "Atanasoska", models.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))

	loggedIn, err := svc.Login(ctx, "elena", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterCreatesEmptyCart(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.authService()
	ctx := testContext()

	user, err := svc.Register(ctx, "darko", "pw", "pw", "Darko", "Sasanski", models.RoleUser)
	require.NoError(t, err)

	cart, err := env.cartRepo.GetOrCreateByUserID(ctx, user.ID)
	require.NoError(t, err)

	count, err := env.cartRepo.GetCartItemCount(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRegisterPasswordsDoNotMatch(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.authService()
	ctx := testContext()

	_, err := svc.Register(ctx, "u", "p", "x", "Name", "Surname", models.RoleUser)
	assert.ErrorIs(t, err, ErrPasswordsDoNotMatch)

	count, err := env.userRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "a failed registration must not create a user")
}

func TestRegisterUsernameAlreadyExists(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.authService()
	ctx := testContext()

	_, err := svc.Register(ctx, "admin", "a", "a", "admin", "admin", models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "admin", "a", "a", "admin", "admin", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	count, err := env.userRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.authService()

	_, err := svc.Register(testContext(), "u", "p", "p", "Name", "Surname", models.Role("superuser"))
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestLoginInvalidArguments(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.authService()
	ctx := testContext()

	_, err := svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = svc.Login(ctx, "user", "")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.authService()
	ctx := testContext()

	_, err := svc.Login(ctx, "ghost", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, "real", "right", "right", "Real", "User", models.RoleUser)
	require.NoError(t, err)

	// Wrong password must be indistinguishable from an unknown user.
	_, err = svc.Login(ctx, "real", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
