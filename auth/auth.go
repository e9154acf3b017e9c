package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidSession covers every way a presented token can fail: missing,
// malformed, bad signature or expired. Callers treat all of them as
// "logged out" rather than distinct errors.
var ErrInvalidSession = errors.New("invalid or expired session")

// Session identifies an authenticated admin for the lifetime of a token.
type Session struct {
	AdminID uint
	Email   string
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// IssueToken signs an HS256 session token for the admin.
func IssueToken(secret string, session Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   float64(session.AdminID),
		"email": session.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the session it carries.
// Expiry is checked by the jwt library during Parse.
func ParseToken(secret, tokenStr string) (Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidSession
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return Session{}, ErrInvalidSession
	}
	email, _ := claims["email"].(string)

	return Session{AdminID: uint(sub), Email: email}, nil
}
