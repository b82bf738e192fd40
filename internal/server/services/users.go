package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/auth"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/repomanager"
)

// TokenIssuer mints access tokens.
type TokenIssuer interface {
	Issue(userID, email string, role access.Role) (string, error)
}

// AdminSeed is the account created by SeedAdmin when it does not exist.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// RegisterUser is the input of Register.
type RegisterUser struct {
	Email           string `validate:"required,email,max=254"`
	Password        string `validate:"required,min=5,max=72"`
	Name            string `validate:"required,max=128"`
	ApartmentNumber string `validate:"required,max=32"`
}

// ProfilePatch changes profile fields; nil fields are left untouched.
type ProfilePatch struct {
	Name            *string `validate:"omitempty,min=1,max=128"`
	ApartmentNumber *string `validate:"omitempty,max=32"`
	Email           *string `validate:"omitempty,email,max=254"`
}

type changePassword struct {
	Current string `validate:"required"`
	Next    string `validate:"required,min=6,max=72"`
}

// LoginResult is returned by Register and Login.
type LoginResult struct {
	Token string
	User  *models.User
}

// UserService handles registration, login and the caller's own account.
type UserService struct {
	repos  repomanager.RepositoryManager
	hasher auth.PasswordHasher
	tokens TokenIssuer
	seed   AdminSeed
	log    logging.Logger
}

func NewUserService(repos repomanager.RepositoryManager, hasher auth.PasswordHasher, tokens TokenIssuer, seed AdminSeed, log logging.Logger) *UserService {
	return &UserService{
		repos:  repos,
		hasher: hasher,
		tokens: tokens,
		seed:   seed,
		log:    log.With("module", "users"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with role "user" and logs them in. An email that
// is already on file yields common.ErrorConflict and nothing is written.
func (s *UserService) Register(ctx context.Context, in RegisterUser) (*LoginResult, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	repo := s.repos.Users()
	if _, err := repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", common.ErrorConflict)
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user, err := repo.Create(ctx, &models.User{
		Email:           in.Email,
		PasswordHash:    hash,
		Name:            in.Name,
		ApartmentNumber: in.ApartmentNumber,
		Role:            access.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return s.issue(user)
}

// Login checks credentials. Unknown emails and wrong passwords both yield
// common.ErrorInvalidCredential.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repos.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "login for unknown email")
			return nil, common.ErrorInvalidCredential
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrorInvalidCredential) {
			s.log.Warn(ctx, "password mismatch", "user_id", user.ID)
		}
		return nil, err
	}
	return s.issue(user)
}

func (s *UserService) issue(user *models.User) (*LoginResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

// SeedAdmin creates the configured admin account if its email is not on
// file. It is called once at startup; callers log the error and carry on.
func (s *UserService) SeedAdmin(ctx context.Context) error {
	email := normalizeEmail(s.seed.Email)
	if email == "" {
		return nil
	}

	repo := s.repos.Users()
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		s.log.Info(ctx, "admin user already exists", "email", email)
		return nil
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := s.hasher.Hash(s.seed.Password)
	if err != nil {
		return err
	}
	if _, err := repo.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         s.seed.Name,
		Role:         access.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.log.Info(ctx, "admin user created", "email", email)
	return nil
}

// Profile returns the caller's account.
func (s *UserService) Profile(ctx context.Context, scope access.Scope) (*models.User, error) {
	return s.repos.Users().GetByID(ctx, scope.UserID)
}

// UpdateProfile applies the supplied fields. Empty strings are ignored.
func (s *UserService) UpdateProfile(ctx context.Context, scope access.Scope, in ProfilePatch) (*models.User, error) {
	patch := models.UserPatch{
		Name:            nonEmpty(in.Name),
		ApartmentNumber: nonEmpty(in.ApartmentNumber),
		Email:           nonEmpty(in.Email),
	}
	if patch.Email != nil {
		e := normalizeEmail(*patch.Email)
		patch.Email = &e
	}
	if err := validateStruct(ProfilePatch{Name: patch.Name, ApartmentNumber: patch.ApartmentNumber, Email: patch.Email}); err != nil {
		return nil, err
	}

	repo := s.repos.Users()
	if patch.Email != nil {
		existing, err := repo.GetByEmail(ctx, *patch.Email)
		switch {
		case err == nil && existing.ID != scope.UserID:
			return nil, fmt.Errorf("%w: email already registered", common.ErrorConflict)
		case err != nil && !errors.Is(err, common.ErrorNotFound):
			return nil, fmt.Errorf("lookup user: %w", err)
		}
	}
	return repo.Update(ctx, scope.UserID, patch)
}

// ChangePassword replaces the password after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, scope access.Scope, current, next string) error {
	if err := validateStruct(changePassword{Current: current, Next: next}); err != nil {
		return err
	}

	repo := s.repos.Users()
	user, err := repo.GetByID(ctx, scope.UserID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(user.PasswordHash, current); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	if _, err := repo.Update(ctx, scope.UserID, models.UserPatch{PasswordHash: &hash}); err != nil {
		return err
	}
	s.log.Info(ctx, "password changed", "user_id", scope.UserID)
	return nil
}

// DeleteAccount removes the caller and every reading they own in one unit
// of work.
func (s *UserService) DeleteAccount(ctx context.Context, scope access.Scope) error {
	var removed int64
	err := s.repos.WithinTx(ctx, func(ctx context.Context, tx repomanager.RepositoryManager) error {
		n, err := tx.Readings().DeleteByUser(ctx, scope.UserID)
		if err != nil {
			return err
		}
		removed = n
		return tx.Users().Delete(ctx, scope.UserID)
	})
	if err != nil {
		return err
	}
	s.log.Info(ctx, "account deleted", "user_id", scope.UserID, "readings_removed", removed)
	return nil
}

func nonEmpty(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
