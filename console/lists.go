package console

import (
	"context"

	"github.com/jrsteele09/temco-admin/fallback"
	"github.com/jrsteele09/temco-admin/services"
)

// Users lists staff users, substituting bundled data when the backend is unavailable.
func (a *App) Users(ctx context.Context, params services.ListParams) (fallback.Result[*services.Page[services.User]], error) {
	return fallback.Fetch(ctx, func(ctx context.Context) (*services.Page[services.User], error) {
		return a.services.Users.List(ctx, params)
	}, func() *services.Page[services.User] {
		return fallback.Users(params)
	})
}

// Roles lists roles, substituting bundled data when the backend is unavailable.
func (a *App) Roles(ctx context.Context, params services.ListParams) (fallback.Result[*services.Page[services.Role]], error) {
	return fallback.Fetch(ctx, func(ctx context.Context) (*services.Page[services.Role], error) {
		return a.services.Roles.List(ctx, params)
	}, func() *services.Page[services.Role] {
		return fallback.Roles(params)
	})
}

// ActivityLogs lists activity logs, substituting bundled data when the backend is unavailable.
func (a *App) ActivityLogs(ctx context.Context, params services.ListParams) (fallback.Result[*services.Page[services.ActivityLog]], error) {
	return fallback.Fetch(ctx, func(ctx context.Context) (*services.Page[services.ActivityLog], error) {
		return a.services.Audit.ActivityLogs(ctx, params)
	}, func() *services.Page[services.ActivityLog] {
		return fallback.ActivityLogs(params)
	})
}
