package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
)

const DefaultTokenTTL = 144 * time.Hour

type AuthService interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
	GenerateToken(playerID string) (string, error)
	ParseToken(token string) (string, error)
}

type authServiceImpl struct {
	secretKey []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(secretKey string, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &authServiceImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

func (that *authServiceImpl) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword returns ErrInvalidCredentials on a mismatch.
func (that *authServiceImpl) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return apperror.ErrInvalidCredentials
	}

	if err != nil {
		return fmt.Errorf("failed to compare password hash: %w", err)
	}

	return nil
}

// GenerateToken issues an access token whose subject is the player id.
func (that *authServiceImpl) GenerateToken(playerID string) (string, error) {
	now := that.now()

	claims := jwt.RegisteredClaims{
		Subject:   playerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(that.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates the token and returns the player id.
func (that *authServiceImpl) ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}

		return that.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", apperror.ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", apperror.ErrInvalidToken)
	}

	return claims.Subject, nil
}
