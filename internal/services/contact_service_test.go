package services

import (
	"errors"
	"testing"

	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/models"
)

func validContactRequest() *dto.ContactRequest {
	return &dto.ContactRequest{
		FirstName: "Alice",
		Name:      "Martin",
		Email:     "alice@example.com",
		Subject:   "Partnership",
		Message:   "We would love to sponsor a tree planting challenge.",
	}
}

func TestCreateContactStoresMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	contact, err := svc.Create(validContactRequest())
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if contact.ID == 0 {
		t.Fatal("contact was not persisted")
	}

	var count int64
	db.Model(&models.Contact{}).Count(&count)
	if count != 1 {
		t.Fatalf("stored contacts = %d, want 1", count)
	}
}

func TestCreateContactRequiresEveryField(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	mutations := map[string]func(*dto.ContactRequest){
		"firstName": func(r *dto.ContactRequest) { r.FirstName = "" },
		"name":      func(r *dto.ContactRequest) { r.Name = "" },
		"email":     func(r *dto.ContactRequest) { r.Email = "" },
		"subject":   func(r *dto.ContactRequest) { r.Subject = "" },
		"message":   func(r *dto.ContactRequest) { r.Message = "" },
	}
	for field, blank := range mutations {
		req := validContactRequest()
		blank(req)
		if _, err := svc.Create(req); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("missing %s: Create() error = %v, want ErrMissingFields", field, err)
		}
	}

	var count int64
	db.Model(&models.Contact{}).Count(&count)
	if count != 0 {
		t.Fatalf("stored contacts = %d, want 0", count)
	}
}

func TestCreateContactRejectsShortMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	req := validContactRequest()
	req.Message = "hi there"
	if _, err := svc.Create(req); err == nil {
		t.Fatal("Create() accepted a message below the minimum length")
	}
}
