package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/auth"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*UserService, *repomanager.MemoryRepositoryManager) {
	t.Helper()
	repos := newRepos()
	svc := NewUserService(repos, &auth.BcryptHasher{Cost: bcrypt.MinCost}, fakeTokens{},
		AdminSeed{Email: "Admin@Example.com", Password: "admin123", Name: "Administrator"}, logging.Nop{})
	return svc, repos
}

func register(t *testing.T, svc *UserService, email string) *LoginResult {
	t.Helper()
	res, err := svc.Register(context.Background(), RegisterUser{Email: email, Password: "secret", Name: "Alice", ApartmentNumber: "12"})
	require.NoError(t, err)
	return res
}

func scopeOf(u *models.User) access.Scope {
	return access.Scope{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func TestUserService_Register(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	res := register(t, svc, "  Alice@Example.com ")
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, access.RoleUser, res.User.Role)
	assert.Equal(t, "token-"+res.User.ID+"-user", res.Token)
	assert.NotEqual(t, "secret", res.User.PasswordHash)

	_, err := svc.Register(ctx, RegisterUser{Email: "alice@example.com", Password: "other1", Name: "Impostor", ApartmentNumber: "13"})
	assert.ErrorIs(t, err, common.ErrorConflict)

	stored, err := svc.repos.Users().GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name, "conflicting registration must not overwrite")

	tests := []struct {
		name string
		in   RegisterUser
	}{
		{"bad email", RegisterUser{Email: "nope", Password: "secret", Name: "X", ApartmentNumber: "1"}},
		{"short password", RegisterUser{Email: "x@x.io", Password: "123", Name: "X", ApartmentNumber: "1"}},
		{"missing name", RegisterUser{Email: "x@x.io", Password: "secret", ApartmentNumber: "1"}},
		{"missing apartment", RegisterUser{Email: "x@x.io", Password: "secret", Name: "X"}},
		{"long apartment", RegisterUser{Email: "x@x.io", Password: "secret", Name: "X", ApartmentNumber: strings.Repeat("9", 33)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.in)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestUserService_RegisterTokenFailure(t *testing.T) {
	svc := NewUserService(newRepos(), &auth.BcryptHasher{Cost: bcrypt.MinCost}, fakeTokens{err: errors.New("no key")}, AdminSeed{}, logging.Nop{})
	_, err := svc.Register(context.Background(), RegisterUser{Email: "a@b.io", Password: "secret", Name: "A", ApartmentNumber: "1"})
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	reg := register(t, svc, "alice@example.com")

	res, err := svc.Login(ctx, "ALICE@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, res.User.ID)

	_, err = svc.Login(ctx, "alice@example.com", "wrong!")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)

	_, err = svc.Login(ctx, "ghost@example.com", "secret")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
}

func TestUserService_SeedAdmin(t *testing.T) {
	svc, repos := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx))
	require.NoError(t, svc.SeedAdmin(ctx))

	admin, err := repos.Users().GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, access.RoleAdmin, admin.Role)

	res, err := svc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "token-"+admin.ID+"-admin", res.Token)

	empty := NewUserService(repos, &auth.BcryptHasher{Cost: bcrypt.MinCost}, fakeTokens{}, AdminSeed{}, logging.Nop{})
	assert.NoError(t, empty.SeedAdmin(ctx))
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	alice := register(t, svc, "alice@example.com").User
	register(t, svc, "bob@example.com")

	name, blank := "Alice Smith", "   "
	got, err := svc.UpdateProfile(ctx, scopeOf(alice), ProfilePatch{Name: &name, ApartmentNumber: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", got.Name)
	assert.Equal(t, "12", got.ApartmentNumber)

	taken := "Bob@Example.com"
	_, err = svc.UpdateProfile(ctx, scopeOf(alice), ProfilePatch{Email: &taken})
	assert.ErrorIs(t, err, common.ErrorConflict)

	same := "alice@example.com"
	got, err = svc.UpdateProfile(ctx, scopeOf(alice), ProfilePatch{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, same, got.Email)

	bad := "not-an-email"
	_, err = svc.UpdateProfile(ctx, scopeOf(alice), ProfilePatch{Email: &bad})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUserService_ChangePassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	alice := register(t, svc, "alice@example.com").User

	err := svc.ChangePassword(ctx, scopeOf(alice), "wrong!", "newsecret")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)

	err = svc.ChangePassword(ctx, scopeOf(alice), "secret", "123")
	assert.ErrorIs(t, err, common.ErrorValidation)

	require.NoError(t, svc.ChangePassword(ctx, scopeOf(alice), "secret", "newsecret"))
	_, err = svc.Login(ctx, "alice@example.com", "secret")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
	_, err = svc.Login(ctx, "alice@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestUserService_DeleteAccount(t *testing.T) {
	svc, repos := newUserService(t)
	ctx := context.Background()
	alice := register(t, svc, "alice@example.com").User
	bob := register(t, svc, "bob@example.com").User

	readings := NewReadingService(repos, logging.Nop{})
	addReading(t, readings, scopeOf(alice), date(2024, 1, 1), 1, 1)
	addReading(t, readings, scopeOf(alice), date(2024, 2, 1), 1, 1)
	kept := addReading(t, readings, scopeOf(bob), date(2024, 2, 1), 1, 1)

	require.NoError(t, svc.DeleteAccount(ctx, scopeOf(alice)))

	_, err := svc.Profile(ctx, scopeOf(alice))
	assert.ErrorIs(t, err, common.ErrorNotFound)

	left, err := repos.Readings().Find(ctx, models.ReadingFilter{}, models.DateDesc)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, kept.ID, left[0].ID)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, scopeOf(alice)), common.ErrorNotFound)
}
