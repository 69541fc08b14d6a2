package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store/memory"
)

func newAuthFixture(t *testing.T) (*memory.Stores, *service.AuthService) {
	t.Helper()
	m := memory.New()
	tokens := service.NewTokenService("test-secret")
	return m, service.NewAuthService(m.Users, tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	_, auth := newAuthFixture(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, service.RegisterParams{
		Name: "Test User", Email: "test@example.com", Password: "Test@123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "Test@123", user.PasswordHash, "password must be stored hashed")

	loggedIn, token, err := auth.Login(ctx, "test@example.com", "Test@123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, auth := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, service.RegisterParams{
		Name: "First", Email: "dup@example.com", Password: "Secret123",
	})
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, service.RegisterParams{
		Name: "Second", Email: "dup@example.com", Password: "Other456",
	})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	_, auth := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, service.RegisterParams{
		Name: "Test", Email: "test@example.com", Password: "Right123",
	})
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "test@example.com", "Wrong123")
	// wrong password and unknown email must look identical
	assert.ErrorIs(t, err, service.ErrUnauthorized)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	_, _, unknownErr := auth.Login(ctx, "nobody@example.com", "Whatever1")
	assert.ErrorIs(t, unknownErr, service.ErrUnauthorized)
	assert.Equal(t, err.Error(), unknownErr.Error())
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	_, auth := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, service.RegisterParams{
		Name: "Plain User", Email: "user@example.com", Password: "Secret123",
	})
	require.NoError(t, err)

	_, _, err = auth.AdminLogin(ctx, "user@example.com", "Secret123")
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestSeederIsIdempotent(t *testing.T) {
	m := memory.New()
	ctx := context.Background()
	seeder := service.NewSeeder(m.Users, m.Categories, m.Brands, m.Products)

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	users, err := m.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users)

	categories, err := m.Categories.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, categories)

	brands, err := m.Brands.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, brands)

	admin, err := m.Users.ByEmail(ctx, service.SeedAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, "Admin", admin.Name)

	// the seeded admin can log in through the admin gate
	auth := service.NewAuthService(m.Users, service.NewTokenService("test-secret"))
	_, token, err := auth.AdminLogin(ctx, service.SeedAdminEmail, "Admin@123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
