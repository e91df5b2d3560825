package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/storage"
)

var ErrNoRefreshToken = errors.Wrapf(errors.ErrRefreshFailed, "no refresh token")

// refreshResponse is the part of the auth response the refresh call needs.
type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refresh exchanges the stored refresh token for a new access token and puts it in the session.
func (c *Client) refresh(ctx context.Context) (string, error) {
	refreshToken, err := storage.GetString(c.tokens, RefreshTokenKey)
	if err != nil {
		return "", errors.Wrapf(errors.ErrRefreshFailed, "read refresh token: %v", err)
	}
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	// Sent straight through the http.Client: a 401 here must not recurse into Do.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RouteAuthRefresh, nil)
	if err != nil {
		return "", fmt.Errorf("create refresh request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RefreshTokenHeader, refreshToken)

	status, body, err := c.roundTrip(ctx, req)
	if err != nil {
		return "", errors.Wrapf(errors.ErrRefreshFailed, "%v", err)
	}
	if status != http.StatusOK {
		return "", errors.Wrapf(errors.ErrRefreshFailed, "refresh returned %d", status)
	}

	var rr refreshResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return "", errors.Wrapf(errors.ErrRefreshFailed, "decode refresh response: %v", err)
	}
	if rr.AccessToken == "" {
		return "", errors.Wrapf(errors.ErrRefreshFailed, "refresh response has no access token")
	}

	c.session.SetAccessToken(rr.AccessToken)
	if rr.RefreshToken != "" && rr.RefreshToken != refreshToken {
		if err := storage.SetString(c.tokens, RefreshTokenKey, rr.RefreshToken); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to store rotated refresh token")
		}
	}
	c.logger.Info().Msg("Access token refreshed")
	return rr.AccessToken, nil
}

func (c *Client) expireSession() {
	c.session.Logout()
	if err := c.tokens.Remove(RefreshTokenKey); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to remove refresh token")
	}
	c.redirector.RedirectToLogin()
}
