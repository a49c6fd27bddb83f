package service

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	internal_errors "github.com/RigobertoEHA1/chismezon/internal/errors"
	"github.com/RigobertoEHA1/chismezon/internal/jwt"
)

const adminPasswordKey = "admin_password"

type AuthService interface {
	Login(password string) (string, error)
}

type Auth struct {
	settings SettingsStorage
	jwt      jwt.JwtService
}

type SettingsStorage interface {
	GetSetting(key string) (string, error)
}

func NewAuth(settings SettingsStorage, jwtService jwt.JwtService) AuthService {
	return &Auth{settings, jwtService}
}

// Login checks the shared admin password against the stored credential and
// mints a session token. There is a single admin role; the token carries
// nothing but the admin flag.
func (a *Auth) Login(password string) (string, error) {
	stored, err := a.settings.GetSetting(adminPasswordKey)
	if err != nil {
		if errors.Is(err, internal_errors.NotFound) {
			return "", &internal_errors.ErrorWithStatusCode{Message: "Admin password is not configured", StatusCode: http.StatusInternalServerError}
		}
		return "", err
	}

	if !passwordMatches(stored, password) {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Wrong password", StatusCode: http.StatusUnauthorized}
	}

	return a.jwt.NewToken(domain.AuthState{Admin: true})
}

// passwordMatches accepts either a bcrypt hash or a legacy plaintext row.
// The original deployment stored the password in the clear; hashed values
// can be rolled out without a migration.
func passwordMatches(stored, password string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
