package validation_test

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-contact-backend/pkg/validation"
)

var validate = validator.New()

func TestValidateContact(t *testing.T) {
	t.Run("Should accept values exactly at minimum lengths", func(t *testing.T) {
		sub, errs := validation.ValidateContact(validate, map[string]any{
			"name":    "Jo",
			"email":   "a@b.com",
			"message": "1234567890",
		})
		require.Empty(t, errs)
		require.NotNil(t, sub)
		assert.Equal(t, "Jo", sub.Name)
		assert.Equal(t, "a@b.com", sub.Email)
		assert.Equal(t, "1234567890", sub.Message)
	})

	t.Run("Should reject name below minimum with a single error", func(t *testing.T) {
		sub, errs := validation.ValidateContact(validate, map[string]any{
			"name":    "J",
			"email":   "a@b.com",
			"message": "1234567890",
		})
		assert.Nil(t, sub)
		require.Len(t, errs, 1)
		assert.Equal(t, "Name must be at least 2 characters", errs[0])
	})

	t.Run("Should trim before measuring length", func(t *testing.T) {
		sub, errs := validation.ValidateContact(validate, map[string]any{
			"name":    "  J  ",
			"email":   "a@b.com",
			"message": "  1234567890  ",
		})
		assert.Nil(t, sub)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "Name")
	})

	t.Run("Should collect every violation instead of stopping at the first", func(t *testing.T) {
		sub, errs := validation.ValidateContact(validate, map[string]any{
			"name":    "",
			"email":   "not-an-email",
			"message": "short",
		})
		assert.Nil(t, sub)
		require.Len(t, errs, 3)
		assert.Equal(t, "Name is required", errs[0])
		assert.Equal(t, "Email must be a valid email address", errs[1])
		assert.Equal(t, "Message must be at least 10 characters", errs[2])
	})

	t.Run("Should report required for missing fields", func(t *testing.T) {
		sub, errs := validation.ValidateContact(validate, map[string]any{})
		assert.Nil(t, sub)
		require.Len(t, errs, 3)
		assert.Equal(t, "Name is required", errs[0])
		assert.Equal(t, "Email is required", errs[1])
		assert.Equal(t, "Message is required", errs[2])
	})

	t.Run("Should report required for wrong-type fields without stacking errors", func(t *testing.T) {
		sub, errs := validation.ValidateContact(validate, map[string]any{
			"name":    42,
			"email":   true,
			"message": []any{"x"},
		})
		assert.Nil(t, sub)
		require.Len(t, errs, 3)
		assert.Equal(t, "Name is required", errs[0])
		assert.Equal(t, "Email is required", errs[1])
		assert.Equal(t, "Message is required", errs[2])
	})

	t.Run("Should reject whitespace-only name as required, not too short", func(t *testing.T) {
		_, errs := validation.ValidateContact(validate, map[string]any{
			"name":    "   ",
			"email":   "a@b.com",
			"message": "1234567890",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "Name is required", errs[0])
	})

	t.Run("Should enforce maximum lengths", func(t *testing.T) {
		_, errs := validation.ValidateContact(validate, map[string]any{
			"name":    strings.Repeat("a", validation.NameMaxLen+1),
			"email":   "a@b.com",
			"message": strings.Repeat("m", validation.MessageMaxLen+1),
		})
		require.Len(t, errs, 2)
		assert.Equal(t, "Name must be at most 50 characters", errs[0])
		assert.Equal(t, "Message must be at most 1000 characters", errs[1])
	})

	t.Run("Should accept values exactly at maximum lengths", func(t *testing.T) {
		sub, errs := validation.ValidateContact(validate, map[string]any{
			"name":    strings.Repeat("a", validation.NameMaxLen),
			"email":   "a@b.com",
			"message": strings.Repeat("m", validation.MessageMaxLen),
		})
		assert.Empty(t, errs)
		assert.NotNil(t, sub)
	})
}
