package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/cryptdox/site-api/internal/models"
	pgrepo "github.com/cryptdox/site-api/internal/repositories/postgres"
	"github.com/cryptdox/site-api/internal/utils"
)

const minMessageLength = 10

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContactService interface {
	// Submit validates the message locally, then inserts it with the fixed
	// initial status "unread". Validation failures never reach the store.
	Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error)
}

type contactService struct {
	messages pgrepo.ContactRepository
}

func NewContactService(messages pgrepo.ContactRepository) ContactService {
	return &contactService{messages: messages}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	const op = "ContactService.Submit"

	var fields []utils.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, utils.FieldError{Field: "name", Message: "name is required"})
	}
	if in.Email == "" {
		fields = append(fields, utils.FieldError{Field: "email", Message: "email is required"})
	} else if !validEmail(in.Email) {
		fields = append(fields, utils.FieldError{Field: "email", Message: "invalid email address"})
	}
	if strings.TrimSpace(in.Message) == "" {
		fields = append(fields, utils.FieldError{Field: "message", Message: "message is required"})
	} else if utf8.RuneCountInString(in.Message) < minMessageLength {
		fields = append(fields, utils.FieldError{Field: "message", Message: "message must be at least 10 characters"})
	}
	if len(fields) > 0 {
		return nil, utils.EV(op, fields...)
	}

	now := time.Now().UTC()
	row := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Status:    "unread",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.messages.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to submit message", err)
	}
	return row, nil
}
