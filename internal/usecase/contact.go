package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/polkiloo/storefront/internal/config"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// ContactThanksMessage is shown after a contact form submission.
const ContactThanksMessage = "Thank you for your message! We will get back to you soon."

// ContactUseCase stores visitor enquiries and alerts staff.
type ContactUseCase struct {
	contacts repository.ContactRepository
	shop     config.ShopInfo
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(contacts repository.ContactRepository, cfg *config.Config) *ContactUseCase {
	return &ContactUseCase{contacts: contacts, shop: cfg.Shop}
}

// Shop returns the public contact block.
func (u *ContactUseCase) Shop() config.ShopInfo {
	return u.shop
}

// Submit validates and stores msg together with a staff notification.
func (u *ContactUseCase) Submit(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	msg = model.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Phone:   strings.TrimSpace(msg.Phone),
		Subject: strings.TrimSpace(msg.Subject),
		Message: strings.TrimSpace(msg.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return nil, domainErrors.ErrInvalidContact
	}

	var notification *model.Notification
	if u.shop.AdminEmail != "" {
		body := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s\n", msg.Name, msg.Email, msg.Phone, msg.Message)
		notification = &model.Notification{
			Kind:      model.NotificationContactMessage,
			Recipient: u.shop.AdminEmail,
			Subject:   "Contact: " + msg.Subject,
			Body:      body,
		}
	}
	return u.contacts.Create(ctx, msg, notification)
}
