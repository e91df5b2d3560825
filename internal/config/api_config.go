package config

import "time"

// APIConfig describes how the console reaches the admin REST backend.
type APIConfig interface {
	GetAPIURL() string
	GetAPITimeout() time.Duration
	GetLoginURL() string
	GetPortalURL() string
}

const (
	// APIPathPrefix is the path the backend (and the mock server) serves the API under.
	APIPathPrefix = "/temco-bank/api/v1"

	apiURLEnvVar     = "API_URL"
	apiTimeoutEnvVar = "API_TIMEOUT"
	loginURLEnvVar   = "LOGIN_URL"
	portalURLEnvVar  = "PORTAL_URL"
)

type API struct{}

var _ APIConfig = API{}

func (API) GetAPIURL() string {
	return GetEnv(apiURLEnvVar, "http://localhost:8080"+APIPathPrefix)
}

func (API) GetAPITimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(apiTimeoutEnvVar, "30s"))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func (API) GetLoginURL() string {
	return GetEnv(loginURLEnvVar, "/login")
}

// GetPortalURL is the customer portal dashboard opened when impersonating a member.
func (API) GetPortalURL() string {
	return GetEnv(portalURLEnvVar, "https://my.temcobank.com/dashboard")
}
