package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"contactbook/internal/cache"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

const (
	contactListCacheTTL = 5 * time.Minute

	phoneMinLen = 10
	phoneMaxLen = 20
)

// ContactInput carries the three writable contact fields. For partial
// updates, nil means "leave unchanged".
type ContactInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// ContactService handles owner-scoped contact operations. Every read and
// write is bound to the authenticated owner; cross-owner access is denied
// before any mutation happens.
type ContactService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error)
	Create(ctx context.Context, ownerID uuid.UUID, firstName, lastName, phone string) (*model.Contact, error)
	Update(ctx context.Context, ownerID, contactID uuid.UUID, in ContactInput) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, contactID uuid.UUID) error
}

type contactService struct {
	contacts repository.ContactRepository
	cache    *cache.Client
}

// NewContactService creates a new contact service.
func NewContactService(contacts repository.ContactRepository, cache *cache.Client) ContactService {
	return &contactService{
		contacts: contacts,
		cache:    cache,
	}
}

func (s *contactService) listCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("contacts:%s", ownerID.String())
}

// List returns the requester's contacts, never anyone else's.
func (s *contactService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error) {
	if data, _ := s.cache.Get(ctx, s.listCacheKey(ownerID)); data != nil {
		var cached []model.Contact
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	contacts, err := s.contacts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(contacts); err == nil {
		_ = s.cache.Set(ctx, s.listCacheKey(ownerID), payload, contactListCacheTTL)
	}
	return contacts, nil
}

// Create stores a new contact owned by the requester. The owner always comes
// from the authenticated identity, never from the request body.
func (s *contactService) Create(ctx context.Context, ownerID uuid.UUID, firstName, lastName, phone string) (*model.Contact, error) {
	if len(phone) < phoneMinLen || len(phone) > phoneMaxLen {
		return nil, apperrors.ErrInvalidPhone
	}

	contact := &model.Contact{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		OwnerID:   ownerID,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return contact, nil
}

// Update applies a partial update after the ownership check. Absent fields
// keep their stored values.
func (s *contactService) Update(ctx context.Context, ownerID, contactID uuid.UUID, in ContactInput) (*model.Contact, error) {
	contact, err := s.authorize(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	if in.Phone != nil && (len(*in.Phone) < phoneMinLen || len(*in.Phone) > phoneMaxLen) {
		return nil, apperrors.ErrInvalidPhone
	}

	if in.FirstName != nil {
		contact.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		contact.LastName = *in.LastName
	}
	if in.Phone != nil {
		contact.Phone = *in.Phone
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return contact, nil
}

// Delete removes a contact after the ownership check. Deleting an already
// deleted id reports not found.
func (s *contactService) Delete(ctx context.Context, ownerID, contactID uuid.UUID) error {
	if _, err := s.authorize(ctx, ownerID, contactID); err != nil {
		return err
	}

	if err := s.contacts.Delete(ctx, contactID); err != nil {
		// Lost a race against a concurrent delete; same outcome for the caller.
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(ownerID))
	return nil
}

// authorize is the ownership guard shared by Update and Delete: load the
// contact, then compare its owner against the requester. Not-found sorts
// before not-owner so unknown ids never leak ownership information.
func (s *contactService) authorize(ctx context.Context, ownerID, contactID uuid.UUID) (*model.Contact, error) {
	contact, err := s.contacts.FindByID(ctx, contactID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, err
	}
	if contact.OwnerID != ownerID {
		return nil, apperrors.ErrNotOwner
	}
	return contact, nil
}
