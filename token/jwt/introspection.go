package jwt

import (
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/temco-admin/internal/config"
	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/internal/utils"
)

// TokenIntrospection is what a verified access token says about its holder.
// When Active is false the other fields may not be populated.
type TokenIntrospection struct {
	Active   bool      // True or false - Is the token valid
	Subject  string    // Username
	UserID   int64     // Numeric user ID
	Roles    []string  // Roles assigned to the User
	JTI      string    // Token ID
	IssuedAt time.Time // Issued at time
	Expiry   time.Time // Expiration
}

// RevokedChecker is an interface for checking if a token has been revoked
type RevokedChecker interface {
	IsRevoked(jti string) bool
}

// Inspector handles JWT token validation
type Inspector struct {
	config         config.TokenConfig
	revokedChecker RevokedChecker
}

// NewInspector creates a new JWT inspector
func NewInspector(cfg config.TokenConfig, revokedChecker RevokedChecker) *Inspector {
	return &Inspector{
		config:         cfg,
		revokedChecker: revokedChecker,
	}
}

// Introspect verifies rawToken and extracts its claims. An expired or revoked token
// yields an inactive introspection and an error saying why.
func (i *Inspector) Introspect(rawToken string) (*TokenIntrospection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &TokenIntrospection{Active: false}, errors.ErrInvalidToken
	}

	token, err := jwtlib.ParseWithClaims(rawToken, jwtlib.MapClaims{}, i.verificationKey,
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(i.config.GetIssuer()),
		jwtlib.WithTimeFunc(NowTimeFunc),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return &TokenIntrospection{Active: false}, errors.ErrTokenExpired
		}
		return &TokenIntrospection{Active: false}, errors.Wrapf(errors.ErrInvalidToken, "%v", err)
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok || !token.Valid {
		return &TokenIntrospection{Active: false}, errors.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, _ := claims["userId"].(float64)
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	jti, _ := claims["jti"].(string)

	var roles []string
	if claimRoles, ok := claims["roles"].([]any); ok {
		roles = utils.ToStringSlice(claimRoles)
	}

	ti := &TokenIntrospection{
		Active:   true,
		Subject:  sub,
		UserID:   int64(userID),
		Roles:    roles,
		JTI:      jti,
		IssuedAt: time.Unix(int64(iat), 0),
		Expiry:   time.Unix(int64(exp), 0),
	}

	// Check if token has been revoked
	if jti != "" && i.revokedChecker != nil && i.revokedChecker.IsRevoked(jti) {
		ti.Active = false
		return ti, errors.Wrapf(errors.ErrInvalidToken, "token revoked")
	}

	return ti, nil
}

func (i *Inspector) verificationKey(token *jwtlib.Token) (any, error) {
	if _, ok := token.Method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return i.config.GetSigningSecret(), nil
}
