package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-contact-backend/pkg/email"
)

func TestOwnerNotification(t *testing.T) {
	data := email.ContactEmailData{
		Name:    "Jo &amp; Co",
		Email:   "jo@example.com",
		Message: "line one<br>line two",
	}

	msg, err := email.OwnerNotification("noreply@site.com", "owner@site.com", "jo@example.com", data)
	require.NoError(t, err)

	assert.Equal(t, "noreply@site.com", msg.From)
	assert.Equal(t, "owner@site.com", msg.To)
	assert.Equal(t, "jo@example.com", msg.ReplyTo)
	assert.Equal(t, "New Contact Form Submission", msg.Subject)

	// Pre-escaped fields must land in the body verbatim, not double-escaped
	assert.Contains(t, msg.HTMLBody, "Jo &amp; Co")
	assert.NotContains(t, msg.HTMLBody, "&amp;amp;")
	assert.Contains(t, msg.HTMLBody, "line one<br>line two")
	assert.Contains(t, msg.HTMLBody, "jo@example.com")
}

func TestClientConfirmation(t *testing.T) {
	data := email.ContactEmailData{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "should not appear",
	}

	msg, err := email.ClientConfirmation("noreply@site.com", "jo@example.com", data)
	require.NoError(t, err)

	assert.Equal(t, "noreply@site.com", msg.From)
	assert.Equal(t, "jo@example.com", msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Equal(t, "We received your message", msg.Subject)

	assert.Contains(t, msg.HTMLBody, "Hi Jo,")
	// Confirmation carries no submission content beyond the name
	assert.NotContains(t, msg.HTMLBody, "should not appear")
}
