package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/scribe/internal/blog/domain"
	"github.com/aussiebroadwan/scribe/internal/blog/store"
	"github.com/aussiebroadwan/scribe/pkg/cryptox"
	"github.com/aussiebroadwan/scribe/pkg/idx"
	"github.com/aussiebroadwan/scribe/pkg/jwtx"
	"github.com/aussiebroadwan/scribe/pkg/slogx"
)

type AuthService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Register creates a user account. No token is issued; callers log in
// separately.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New(),
		Username:     strings.TrimSpace(username),
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration rejected, username or email taken", slog.String("username", user.Username))
			return domain.User{}, ErrConflict
		}
		return domain.User{}, storageError("create user", err)
	}

	l.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies the password for email and returns a signed access token
// whose subject is the user id.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", storageError("get user", err)
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", user.ID.String()))
		return "", ErrInvalidCredential
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewClaims(user.ID.String(), s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", err
	}

	l.Info("login succeeded", slog.String("user_id", user.ID.String()))
	return token, nil
}
