package services

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	RouteEmailConfig    = "/email/config"
	RouteEmailTest      = "/email/test"
	RouteEmailSend      = "/email/send"
	RouteEmailTemplates = "/email/templates"
	RouteEmailMembers   = "/email/members"
)

var errRecipientsRequired = fmt.Errorf("select at least one recipient or send to all")

type EmailConfig struct {
	SMTPHost    string `json:"smtpHost"`
	SMTPPort    int    `json:"smtpPort"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	SenderEmail string `json:"senderEmail"`
	SenderName  string `json:"senderName"`
	ReplyTo     string `json:"replyTo"`
	UseTLS      bool   `json:"useTls"`
	UseAuth     bool   `json:"useAuth"`
}

func (c EmailConfig) Validate() error {
	return invalid(validation.ValidateStruct(&c,
		validation.Field(&c.SMTPHost, validation.Required, is.Host),
		validation.Field(&c.SMTPPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.SenderEmail, validation.Required, is.Email),
		validation.Field(&c.ReplyTo, is.Email),
	))
}

type EmailTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailRequest addresses either MemberIDs or, with SendToAll, every member with an email.
type EmailRequest struct {
	MemberIDs  []int64 `json:"memberIds,omitempty"`
	Subject    string  `json:"subject"`
	Body       string  `json:"body"`
	TemplateID string  `json:"templateId,omitempty"`
	SendToAll  bool    `json:"sendToAll"`
}

func (r EmailRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Subject, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.MemberIDs, validation.By(func(value interface{}) error {
			if r.SendToAll || len(r.MemberIDs) > 0 {
				return nil
			}
			return errRecipientsRequired
		})),
	))
}

type EmailResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	SuccessCount int      `json:"successCount,omitempty"`
	FailCount    int      `json:"failCount,omitempty"`
	Failures     []string `json:"failures,omitempty"`
}

type MemberEmail struct {
	ID           int64  `json:"id"`
	MembershipNo string `json:"membershipNo"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
}

type MemberEmailList struct {
	Content       []MemberEmail `json:"content"`
	TotalElements int64         `json:"totalElements"`
}

type EmailService struct {
	r Requester
}

func (s *EmailService) Config(ctx context.Context) (*EmailConfig, error) {
	var cfg EmailConfig
	if err := s.r.Get(ctx, RouteEmailConfig, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *EmailService) TestConnection(ctx context.Context, cfg EmailConfig) (*EmailResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var res EmailResult
	if err := s.r.Post(ctx, RouteEmailTest, cfg, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *EmailService) Send(ctx context.Context, req EmailRequest) (*EmailResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var res EmailResult
	if err := s.r.Post(ctx, RouteEmailSend, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *EmailService) Templates(ctx context.Context) ([]EmailTemplate, error) {
	var templates []EmailTemplate
	if err := s.r.Get(ctx, RouteEmailTemplates, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *EmailService) MembersWithEmail(ctx context.Context) (*MemberEmailList, error) {
	var list MemberEmailList
	if err := s.r.Get(ctx, RouteEmailMembers, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
