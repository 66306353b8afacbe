package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams describes one outgoing email. At least one body is required.
type SendParams struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body,omitempty"`
	TextBody string `json:"text_body,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether addr looks like a deliverable email address.
func ValidAddress(addr string) bool {
	return emailRegex.MatchString(addr)
}

// Validate checks required fields.
func (p SendParams) Validate() error {
	switch {
	case strings.TrimSpace(p.To) == "":
		return fmt.Errorf("%w: recipient is required", ErrInvalidParams)
	case !ValidAddress(p.To):
		return fmt.Errorf("%w: recipient must be a valid email address", ErrInvalidParams)
	case strings.TrimSpace(p.Subject) == "":
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	case strings.TrimSpace(p.HTMLBody) == "" && strings.TrimSpace(p.TextBody) == "":
		return fmt.Errorf("%w: body is required", ErrInvalidParams)
	}
	return nil
}
