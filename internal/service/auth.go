package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/model"
)

var _ model.AuthService = (*Auth)(nil)

// dummyPassword is hashed once and compared against on unknown-email logins.
const dummyPassword = "itemgraph-dummy-password"

type Auth struct {
	store  model.Store
	tokens model.TokenManager
	hasher model.Hasher
	logger *logger.Logger
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewAuth(
	store model.Store,
	tokens model.TokenManager,
	hasher model.Hasher,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		store:  store,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// Resolve turns a raw Authorization header into the caller's Auth.
// Every failure degrades to an anonymous Auth.
func (a *Auth) Resolve(ctx context.Context, header string) model.Auth {
	if header == "" {
		return model.Anonymous()
	}

	parts := strings.Fields(header)
	if len(parts) != 2 {
		a.logger.Info("Auth service: authorization header existed but no scheme was found")
		return model.Anonymous()
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		a.logger.Info("Auth service: authorization header existed but no bearer was found",
			"scheme", parts[0])
		return model.Anonymous()
	}

	claims, err := a.tokens.Validate(parts[1], a.now())
	if err != nil {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return model.Anonymous()
	}

	user, err := a.store.Users().GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: token subject does not exist",
				"email", claims.Subject)
		} else {
			a.logger.Error("Auth service: failed to get user by email",
				"email", claims.Subject,
				"error", err.Error())
		}
		return model.Anonymous()
	}

	return model.Authenticated(user)
}

// Login checks credentials and issues an access token.
// Unknown email and wrong password fail with the same ErrAuthFailed.
func (a *Auth) Login(ctx context.Context, email, password string) (string, model.User, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", email)

	user, err := a.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Auth service: failed to get user by email",
				"email", email,
				"error", err.Error())
			return "", model.User{}, fmt.Errorf("failed to get user by email: %w", err)
		}

		a.hasher.Verify(password, a.getDummyHash())
		a.logger.Info("Auth service: login failed",
			"email", email)
		return "", model.User{}, model.ErrAuthFailed
	}

	if !a.hasher.Verify(password, user.HashedPassword) {
		a.logger.Info("Auth service: login failed",
			"email", email)
		return "", model.User{}, model.ErrAuthFailed
	}

	token, err := a.tokens.Issue(user.Email, []string{model.ScopeAuthenticated}, a.now())
	if err != nil {
		a.logger.Error("Auth service: failed to issue access token",
			"email", email,
			"error", err.Error())
		return "", model.User{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"email", email,
		"user_id", user.ID)

	return token, user, nil
}

func (a *Auth) getDummyHash() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Error("Auth service: failed to hash dummy password",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
