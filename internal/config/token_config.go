package config

import "time"

type TokenConfig interface {
	GetSigningSecret() []byte
	GetIssuer() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetRefreshTokenLength() int
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetSigningSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "temco-jwt-secret-key-2024-very-long-string-for-security"))
}

func (Tokens) GetIssuer() string {
	return GetEnv("JWT_ISSUER", "temco-bank")
}

func (Tokens) GetAccessTokenExpiry() time.Duration {
	return 24 * time.Hour
}

func (Tokens) GetRefreshTokenExpiry() time.Duration {
	return 7 * 24 * time.Hour
}

func (Tokens) GetRefreshTokenLength() int {
	return 32 // 32 bytes = 256 bits
}
