// Package auth handles credential checks (signup and login against stored bcrypt hashes),
// issues JWT access tokens on login, and verifies them in an HTTP middleware.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/config"
)

const (
	tokenTypeAccess = "access"
	tokenIssuer     = "inventory"
)

// User-facing messages. Unknown email and wrong password share msgInvalidCredentials.
const (
	msgUserExists         = "User already exists."
	msgInvalidCredentials = "Invalid credentials."
	msgSignupFailed       = "Failed to create user account."
	msgLoginFailed        = "Login process failed."
	msgPasswordTooLong    = "Password must be at most 72 bytes."
)

// Service provides authentication-related services.
type Service struct {
	users      UserStore
	authConfig config.AuthConfig
	log        *zap.Logger

	// dummyHash is compared against on unknown emails so both login failures cost one bcrypt run.
	dummyHash []byte
}

// NewService creates a new Service.
func NewService(users UserStore, authConfig config.AuthConfig, log *zap.Logger) *Service {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("inventory-login-placeholder"), authConfig.BcryptCost)
	if err != nil {
		log.Warn("Failed to prepare placeholder password hash", zap.Error(err))
	}
	return &Service{
		users:      users,
		authConfig: authConfig,
		log:        log,
		dummyHash:  dummyHash,
	}
}

// CustomClaims is the JWT payload.
type CustomClaims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user. A second signup with the same email fails with a
// validation error whether the duplicate is caught by the lookup or by the UNIQUE constraint.
func (s *Service) Signup(ctx context.Context, email, password string) (*User, error) {
	email = normalizeEmail(email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperror.NewValidationError(msgUserExists, nil)
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, apperror.NewDatabaseError(msgSignupFailed, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.authConfig.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewValidationError(msgPasswordTooLong, nil)
		}
		return nil, apperror.NewInternalError(msgSignupFailed, fmt.Errorf("failed to hash password: %w", err))
	}

	user := &User{
		Email:          email,
		HashedPassword: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperror.NewValidationError(msgUserExists, nil)
		}
		return nil, apperror.NewDatabaseError(msgSignupFailed, err)
	}

	return user, nil
}

// Login checks the credentials and issues an access token. An unknown email and a wrong
// password produce the same error so callers cannot tell which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			if s.dummyHash != nil {
				_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			}
			return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
		}
		return nil, apperror.NewDatabaseError(msgLoginFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
		}
		// A malformed stored hash is our problem, not the caller's.
		return nil, apperror.NewInternalError(msgLoginFailed, err)
	}

	token, expiresAt, err := s.generateToken(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError(msgLoginFailed, err)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	}, nil
}

func (s *Service) generateToken(userID int64) (string, time.Time, error) {
	now := time.Now()
	expirationTime := now.Add(s.authConfig.AccessTokenDuration)
	claims := &CustomClaims{
		UserID:    userID,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ParseToken validates signature, expiry and token type, returning the claims.
func ParseToken(tokenString, secret string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", tokenTypeAccess, claims.TokenType)
	}
	if claims.UserID == 0 {
		return nil, errors.New("user_id claim is missing")
	}
	return claims, nil
}
