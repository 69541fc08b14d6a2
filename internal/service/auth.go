package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

type AuthService struct {
	users  store.UserStore
	tokens *TokenService
}

func NewAuthService(users store.UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// Register creates a customer account and issues its first token.
// A taken email fails with store.ErrConflict.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*model.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %v", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: string(hashedPassword),
		Phone:        p.Phone,
		Address:      p.Address,
		Role:         model.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user, UserTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks the password and issues a 30-day token. Unknown email and
// wrong password produce the same error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user, UserTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminLogin authenticates like Login but requires the admin role and issues
// a 7-day token.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if user.Role != model.RoleAdmin {
		return nil, "", fmt.Errorf("admin access required: %w", ErrForbidden)
	}

	token, err := s.tokens.Issue(user, AdminTokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	}
	return user, nil
}

// ListUsers returns every account, newest first.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
