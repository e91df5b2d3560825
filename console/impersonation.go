package console

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jrsteele09/temco-admin/fallback"
	"github.com/jrsteele09/temco-admin/internal/errors"
	"github.com/jrsteele09/temco-admin/internal/utils"
	"github.com/jrsteele09/temco-admin/services"
	"github.com/jrsteele09/temco-admin/session"
)

const (
	MemberRole       = "MEMBER"
	MemberPermission = "member.*"

	memberLookupPageSize = 100
)

var errNoSession = errors.Wrapf(errors.ErrNoSession, "log in first")

// MemberIdentity is who the console acts as while impersonating m.
func MemberIdentity(m services.Member) session.Identity {
	email := utils.Value(m.Email)
	username := email
	if username == "" {
		username = m.MembershipNo
	}
	return session.Identity{
		ID:          m.ID,
		Username:    username,
		Email:       email,
		FullName:    m.DisplayName(),
		Role:        MemberRole,
		Permissions: []string{MemberPermission},
	}
}

// ImpersonateMember switches the session to m and returns the customer portal URL
// that opens m's dashboard.
func (a *App) ImpersonateMember(m services.Member) (string, error) {
	operator := a.session.CurrentUser()
	if operator == nil || !a.session.IsAuthenticated() {
		return "", errNoSession
	}
	if a.session.IsImpersonating() {
		return "", errors.Wrapf(errors.ErrAlreadyImpersonating, "stop impersonating %s first", operator.FullName)
	}

	target := MemberIdentity(m)
	a.session.StartImpersonation(target, *operator)
	a.logger.Info().
		Int64("member_id", m.ID).
		Str("member_no", m.MembershipNo).
		Str("operator", operator.Username).
		Msg("Impersonation started")

	return a.portalURL(m, target, *operator)
}

func (a *App) portalURL(m services.Member, target, operator session.Identity) (string, error) {
	u, err := url.Parse(a.config.GetPortalURL())
	if err != nil {
		return "", errors.Wrapf(err, "parse portal url")
	}

	q := u.Query()
	q.Set("impersonate", "true")
	q.Set("memberId", strconv.FormatInt(m.ID, 10))
	q.Set("memberNo", m.MembershipNo)
	q.Set("email", target.Email)
	q.Set("name", target.FullName)
	q.Set("adminId", strconv.FormatInt(operator.ID, 10))
	q.Set("adminUser", operator.Username)
	q.Set("ts", strconv.FormatInt(a.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// StopImpersonation restores the operator.
func (a *App) StopImpersonation() (*session.Identity, error) {
	if !a.session.IsImpersonating() {
		return nil, errors.ErrNotImpersonating
	}
	a.session.StopImpersonation()
	user := a.session.CurrentUser()
	a.logger.Info().Str("operator", user.Username).Msg("Impersonation stopped")
	return user, nil
}

// FindMember looks a member up by ID, paging through the member list. Bundled member
// data is searched when the backend is unavailable, which the bool reports.
func (a *App) FindMember(ctx context.Context, id int64) (*services.Member, bool, error) {
	params := services.ListParams{Size: memberLookupPageSize}
	for {
		res, err := a.Members(ctx, params)
		if err != nil {
			return nil, false, err
		}
		for _, m := range res.Data.Content {
			if m.ID == id {
				return &m, res.Fallback, nil
			}
		}
		if res.Data.Last || len(res.Data.Content) == 0 || params.Page+1 >= res.Data.TotalPages {
			return nil, res.Fallback, errors.Wrapf(errors.ErrNotFound, "member %d", id)
		}
		params.Page++
	}
}

// Members lists members, substituting bundled data when the backend is unavailable.
func (a *App) Members(ctx context.Context, params services.ListParams) (fallback.Result[*services.Page[services.Member]], error) {
	return fallback.Fetch(ctx, func(ctx context.Context) (*services.Page[services.Member], error) {
		return a.services.Members.List(ctx, params)
	}, func() *services.Page[services.Member] {
		return fallback.Members(params)
	})
}
