package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
)

// failedSendMessage is part of the response contract with the frontend.
const failedSendMessage = "Failed to send email. Try again later."

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required).
// rateLimit guards only this route; health and docs stay unthrottled.
func NewContactHandler(public *gin.RouterGroup, rateLimit gin.HandlerFunc, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", rateLimit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and dispatch the owner notification and client confirmation emails.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  map[string]bool
// @Failure      400      {object}  map[string][]string
// @Failure      429      {object}  map[string]any
// @Failure      500      {object}  map[string]any
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.Validation([]string{"Request body must be a JSON object"}))
		return
	}

	result, err := h.contactUC.SendContactMessage(c.Request.Context(), input)
	if err != nil {
		var valErr *apperror.ValidationError
		if errors.As(err, &valErr) {
			c.Error(valErr)
			return
		}
		if result.OwnerSent && !result.ClientSent {
			logger.Log.Warn("partial dispatch: owner notified, confirmation undelivered", "ip", c.ClientIP())
		}
		c.Error(apperror.New(http.StatusInternalServerError, failedSendMessage, err))
		return
	}

	response.Success(c)
}
