package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Creator handles access token creation
type Creator struct {
	config config.TokenConfig
}

// NewCreator creates a new JWT creator
func NewCreator(cfg config.TokenConfig) *Creator {
	return &Creator{
		config: cfg,
	}
}

// CreateAccessToken creates an HS256 access token for user
func (c *Creator) CreateAccessToken(user *users.User) (*string, error) {
	now := NowTimeFunc()
	claims := jwtlib.MapClaims{
		"iss":    c.config.GetIssuer(),                            // The issuer of the token
		"sub":    user.Username,                                   // Subject: the username
		"userId": user.ID,                                         // Numeric user ID
		"roles":  user.RoleNames(),                                // Role codes
		"iat":    now.Unix(),                                      // Issued At: the time at which the token was issued
		"exp":    now.Add(c.config.GetAccessTokenExpiry()).Unix(), // Expiry: when the token will expire
		"jti":    uuid.New().String(),                             // Unique token ID for revocation
	}

	signedToken, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.config.GetSigningSecret())
	if err != nil {
		return nil, fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return &signedToken, nil
}
