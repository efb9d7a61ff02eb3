package domain

import "context"

// ContactSubmission is a validated contact form submission. It lives for one
// request: decoded from the body, dispatched as email, then discarded.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// EmailMessage is one outbound email handed to the mail transport.
type EmailMessage struct {
	From     string
	To       string
	ReplyTo  string // optional
	Subject  string
	HTMLBody string
}

// EmailSender is the opaque mail capability. Implementations perform a single
// network send with no retry.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// DispatchResult records how far the two-step notification saga got.
// OwnerSent without ClientSent means the owner notification went out but the
// confirmation to the submitter did not.
type DispatchResult struct {
	OwnerSent  bool
	ClientSent bool
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, sanitizes, and dispatches a contact form
	// submission as two sequential emails (owner notification first, then
	// client confirmation).
	SendContactMessage(ctx context.Context, input map[string]any) (DispatchResult, error)
}
