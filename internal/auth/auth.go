// Package auth issues and validates the two token kinds the API uses:
// access tokens carried in the Authorization header and short-lived
// password-reset tokens handed out by the forgot-password flow.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL = 72 * time.Hour
	resetTokenTTL  = time.Hour

	purposeReset = "password_reset"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// IssueAccessToken signs an access token for the user.
func (m *Manager) IssueAccessToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	})
	return token.SignedString(m.secret)
}

// ParseAccessToken validates a token and returns the user it belongs to.
func (m *Manager) ParseAccessToken(tokenString string) (int, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return 0, err
	}
	if claims["purpose"] != nil {
		// Reset tokens must not authenticate requests.
		return 0, ErrInvalidToken
	}
	return userIDClaim(claims)
}

// IssueResetToken signs a password-reset token for the user.
func (m *Manager) IssueResetToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"purpose": purposeReset,
		"exp":     time.Now().Add(resetTokenTTL).Unix(),
	})
	return token.SignedString(m.secret)
}

// ParseResetToken validates a reset token and returns the user it was
// issued for.
func (m *Manager) ParseResetToken(tokenString string) (int, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return 0, err
	}
	if claims["purpose"] != purposeReset {
		return 0, ErrInvalidToken
	}
	return userIDClaim(claims)
}

func (m *Manager) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func userIDClaim(claims jwt.MapClaims) (int, error) {
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int(id), nil
}
