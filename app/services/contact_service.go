package services

import (
	"strings"

	"blogfront/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ContactService validates contact form submissions. There is no real
// backend behind the form: a message that passes validation is simply
// accepted and logged.
type ContactService struct {
	validate *validator.Validate
}

// NewContactService creates a new ContactService
func NewContactService() *ContactService {
	return &ContactService{validate: validator.New()}
}

// Submit validates the message. On failure it returns one inline
// message per failing field, keyed by the lowercased field name, and
// the submission is blocked. An empty map means the message was
// accepted.
func (s *ContactService) Submit(msg *models.ContactMessage) map[string]string {
	fieldErrors := make(map[string]string)

	err := s.validate.Struct(msg)
	if err != nil {
		for _, ferr := range err.(validator.ValidationErrors) {
			field := strings.ToLower(ferr.Field())
			fieldErrors[field] = fieldMessage(field, ferr.Tag())
		}
		return fieldErrors
	}

	log.Info().Str("name", msg.Name).Str("email", msg.Email).Msg("contact message accepted")
	return fieldErrors
}

// fieldMessage maps a failing validation tag to the inline message
// shown next to the field.
func fieldMessage(field, tag string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return "a valid email address is required"
	case "max":
		return field + " is too long"
	case "min":
		return field + " is too short"
	default:
		return field + " is invalid"
	}
}
