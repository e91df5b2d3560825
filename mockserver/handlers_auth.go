package mockserver

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/services"
	"github.com/jrsteele09/temco-admin/token"
	"github.com/jrsteele09/temco-admin/users"
	"github.com/rs/zerolog/log"
)

const RefreshTokenHeader = "X-Refresh-Token"

func authResponse(u *users.User, pair *token.Pair) services.AuthResponse {
	resp := services.AuthResponse{
		UserID:             u.ID,
		Username:           u.Username,
		FullName:           u.FullName,
		Email:              u.Email,
		Roles:              u.RoleNames(),
		MustChangePassword: u.PasswordChangeRequired,
	}
	if pair != nil {
		resp.AccessToken = pair.AccessToken
		resp.RefreshToken = pair.RefreshToken
	}
	return resp
}

// LoginHandler checks the username and password and issues a token pair
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.LoginRequest
		// An unreadable body is treated like wrong credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug().Err(err).Msg("Unreadable login body")
		}

		user, err := s.repos.Users.GetByUsername(req.Username)
		if err != nil || !user.CheckPassword(req.Password) {
			log.Info().Str("username", req.Username).Msg("Login rejected")
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		pair, err := s.tokens.Issue(user)
		if err != nil {
			logError(r.Method, r.URL.Path, err.Error())
			writeMessage(w, http.StatusInternalServerError, "Failed to issue tokens")
			return
		}

		writeJSON(w, http.StatusOK, authResponse(user, pair))
	}
}

// MeHandler returns the caller. Without a bearer token it answers with the admin account.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, present := bearerToken(r)
		if !present {
			admin := users.DefaultAccounts()[0].User
			writeJSON(w, http.StatusOK, authResponse(&admin, nil))
			return
		}

		user, _, err := s.tokens.Authenticate(raw)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, tokenErrorMessage(err))
			return
		}
		writeJSON(w, http.StatusOK, authResponse(user, nil))
	}
}

// LogoutHandler revokes the caller's tokens when it presents a valid one. It always succeeds.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if raw, present := bearerToken(r); present {
			if err := s.tokens.Revoke(raw); err != nil {
				log.Debug().Err(err).Msg("Logout without a valid token")
			}
		}
		writeMessage(w, http.StatusOK, "Logged out successfully")
	}
}

// RefreshHandler exchanges the X-Refresh-Token header for a new token pair
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshToken := r.Header.Get(RefreshTokenHeader)
		if refreshToken == "" {
			writeMessage(w, http.StatusBadRequest, "Refresh token is required")
			return
		}

		user, pair, err := s.tokens.Refresh(refreshToken)
		if err != nil {
			if errors.Is(err, errors.ErrInvalidRefreshToken) || errors.Is(err, errors.ErrRefreshTokenExpired) {
				writeMessage(w, http.StatusUnauthorized, "Invalid or expired refresh token")
				return
			}
			logError(r.Method, r.URL.Path, err.Error())
			writeMessage(w, http.StatusInternalServerError, "Failed to refresh tokens")
			return
		}

		writeJSON(w, http.StatusOK, authResponse(user, pair))
	}
}

func tokenErrorMessage(err error) string {
	if errors.Is(err, errors.ErrTokenExpired) {
		return "Token expired"
	}
	return "Invalid token"
}
