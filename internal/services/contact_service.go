package services

import (
	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Create stores a contact-form submission. All five fields are required;
// nothing is dispatched anywhere, the record is only persisted.
func (s *ContactService) Create(req *dto.ContactRequest) (*models.Contact, error) {
	if req.FirstName == "" || req.Name == "" || req.Email == "" ||
		req.Subject == "" || req.Message == "" {
		return nil, ErrMissingFields
	}

	contact := &models.Contact{
		FirstName: req.FirstName,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if err := models.ValidateContact(contact); err != nil {
		return nil, err
	}

	if err := s.db.Create(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}
