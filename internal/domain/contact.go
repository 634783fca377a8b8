package domain

import (
	"strings"
	"time"
)

// ContactMessage is a message submitted through the public contact form.
// Messages are read-only once stored; the admin inbox only lists and views them.
type ContactMessage struct {
	ID      int64
	Name    string
	Email   string
	Message string
	Date    time.Time
}

// Validate checks a submission before it is stored.
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !validEmail(m.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid e-mail address"}
	}
	if strings.TrimSpace(m.Message) == "" {
		return &ValidationError{Field: "message", Reason: "must not be empty"}
	}
	return nil
}

// validEmail is a shape check, not RFC validation. Real deliverability is
// the mail system's problem.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domainPart := s[at+1:]
	return strings.Contains(domainPart, ".") && !strings.ContainsAny(s, " \t\n")
}
