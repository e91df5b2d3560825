package services

import "context"

const (
	RouteAuditActivity    = "/audit/activity"
	RouteAuditDataChanges = "/audit/data-changes"
)

type ActivityLog struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	IPAddress string `json:"ipAddress"`
	Details   string `json:"details"`
	Status    string `json:"status"`
}

type AuditService struct {
	r Requester
}

// ActivityLogs lists login-session activity; Action "all" or "" means every action.
func (s *AuditService) ActivityLogs(ctx context.Context, params ListParams) (*Page[ActivityLog], error) {
	p := params.normalized()
	path, err := withQuery(RouteAuditActivity, struct {
		Page   int    `url:"page"`
		Size   int    `url:"size"`
		Search string `url:"search,omitempty"`
		Action string `url:"action,omitempty"`
	}{p.Page, p.Size, p.Search, p.Action})
	if err != nil {
		return nil, err
	}
	return s.list(ctx, path)
}

// DataChangeLogs lists recorded data changes.
func (s *AuditService) DataChangeLogs(ctx context.Context, params ListParams) (*Page[ActivityLog], error) {
	p := params.normalized()
	path, err := withQuery(RouteAuditDataChanges, struct {
		Page   int    `url:"page"`
		Size   int    `url:"size"`
		Search string `url:"search,omitempty"`
	}{p.Page, p.Size, p.Search})
	if err != nil {
		return nil, err
	}
	return s.list(ctx, path)
}

func (s *AuditService) list(ctx context.Context, path string) (*Page[ActivityLog], error) {
	var page Page[ActivityLog]
	if err := s.r.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
