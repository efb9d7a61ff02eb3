package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/email"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/sanitize"
	"go-contact-backend/pkg/validation"
)

type contactUsecase struct {
	sender     domain.EmailSender
	validate   *validator.Validate
	fromEmail  string
	ownerEmail string
}

// NewContactUsecase creates a new contact usecase. fromEmail is the verified
// sender address, ownerEmail the site owner's inbox.
func NewContactUsecase(sender domain.EmailSender, validate *validator.Validate, fromEmail, ownerEmail string) domain.ContactUsecase {
	return &contactUsecase{
		sender:     sender,
		validate:   validate,
		fromEmail:  fromEmail,
		ownerEmail: ownerEmail,
	}
}

// SendContactMessage validates and sanitizes the submission, then dispatches
// the owner notification followed by the client confirmation. The
// confirmation is only attempted after the owner notification succeeds, and
// any transport failure is reported as an overall failure even when the owner
// email already went out. The returned DispatchResult records how far the
// dispatch got so the caller can log partial deliveries.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, input map[string]any) (domain.DispatchResult, error) {
	var res domain.DispatchResult

	sub, violations := validation.ValidateContact(uc.validate, input)
	if len(violations) > 0 {
		return res, apperror.Validation(violations)
	}

	// Escape before the fields touch any email body. The reply-to below is
	// the one place the raw email is used.
	data := email.ContactEmailData{
		Name:    sanitize.HTML(sub.Name),
		Email:   sanitize.HTML(sub.Email),
		Message: sanitize.Nl2br(sanitize.HTML(sub.Message)),
	}

	ownerMsg, err := email.OwnerNotification(uc.fromEmail, uc.ownerEmail, sub.Email, data)
	if err != nil {
		return res, fmt.Errorf("failed to build owner notification: %w", err)
	}
	if err := uc.sender.Send(ctx, ownerMsg); err != nil {
		return res, fmt.Errorf("failed to send owner notification: %w", err)
	}
	res.OwnerSent = true

	confirmMsg, err := email.ClientConfirmation(uc.fromEmail, sub.Email, data)
	if err != nil {
		return res, fmt.Errorf("failed to build client confirmation: %w", err)
	}
	if err := uc.sender.Send(ctx, confirmMsg); err != nil {
		// Owner was already notified; surfaced as a failure all the same.
		logger.Log.Warn("owner notified but client confirmation failed", "error", err)
		return res, fmt.Errorf("failed to send client confirmation: %w", err)
	}
	res.ClientSent = true

	return res, nil
}
