package usecases

import (
	"context"

	"gramseva/internal/domain/contact"
	"gramseva/internal/shared/errors"
	"gramseva/internal/shared/logger"
)

type ContactDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

type ListContactsResult struct {
	Contacts []ContactDTO
}

type ListContactsExecutor interface {
	Execute(ctx context.Context) (*ListContactsResult, error)
}

type ListContactsUseCase struct {
	contactRepo contact.Repository
	logger      logger.Interface
}

func NewListContactsUseCase(contactRepo contact.Repository, log logger.Interface) *ListContactsUseCase {
	return &ListContactsUseCase{
		contactRepo: contactRepo,
		logger:      log,
	}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context) (*ListContactsResult, error) {
	contacts, err := uc.contactRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list emergency contacts", "error", err)
		return nil, errors.NewUnavailableError("Emergency contacts are temporarily unavailable. Please try again.")
	}

	dtos := make([]ContactDTO, len(contacts))
	for i, c := range contacts {
		dtos[i] = ContactDTO{
			ID:          c.ID,
			Name:        c.Name,
			Phone:       c.Phone,
			Email:       c.Email,
			Description: c.Description,
		}
	}

	return &ListContactsResult{Contacts: dtos}, nil
}
