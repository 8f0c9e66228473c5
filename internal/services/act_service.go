package services

import (
	"errors"

	"github.com/goodacts/goodacts-backend/internal/apiref"
	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingFields = errors.New("fill all required fields")
	ErrActNotFound   = errors.New("act not found")
)

// CreateActInput carries the fields of both act-creation variants: the JSON
// body and the multipart form. ImagePath is set by the multipart handler
// after the storage collaborator has accepted the upload.
type CreateActInput struct {
	Title        string
	Description  string
	Category     string
	ImgURL       string
	ChallengeRef string
	LocationRef  string
	StartChain   bool
	ImagePath    string
}

type ActService struct {
	db         *gorm.DB
	challenges *ChallengeService
	chains     *ChainService
}

func NewActService(db *gorm.DB, challenges *ChallengeService, chains *ChainService) *ActService {
	return &ActService{db: db, challenges: challenges, chains: chains}
}

// Create runs the act-creation pipeline as explicit, ordered steps:
// require fields, resolve optional references, persist, bump challenge
// progress. The persist and the progress bump share one transaction, so a
// failed bump rolls the act back.
func (s *ActService) Create(userID uint, input CreateActInput) (*models.Act, error) {
	if input.Title == "" || input.Description == "" || input.Category == "" {
		return nil, ErrMissingFields
	}

	act := &models.Act{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		UserID:      userID,
	}
	if input.ImgURL != "" {
		act.ImgURL = &input.ImgURL
	}
	if input.ImagePath != "" {
		act.ImgURL = &input.ImagePath
	}
	if err := models.ValidateAct(act); err != nil {
		return nil, err
	}

	// Optional references resolve permissively: a malformed reference or a
	// missing row leaves the association unset, never fails the request.
	act.ChallengeID = s.resolveChallenge(input.ChallengeRef)
	act.LocationID = s.resolveLocation(input.LocationRef)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.StartChain {
			chain, err := s.chains.CreateForAct(tx)
			if err != nil {
				return err
			}
			act.ChainID = &chain.ID
		}

		if err := tx.Create(act).Error; err != nil {
			return err
		}

		if act.ChallengeID != nil {
			return s.challenges.IncrementProgress(tx, *act.ChallengeID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return act, nil
}

func (s *ActService) resolveChallenge(ref string) *uint {
	if ref == "" {
		return nil
	}
	id, err := apiref.ParseID(ref, "challenges")
	if err != nil {
		return nil
	}
	var challenge models.Challenge
	if err := s.db.First(&challenge, "id = ?", id).Error; err != nil {
		return nil
	}
	return &challenge.ID
}

func (s *ActService) resolveLocation(ref string) *uint {
	if ref == "" {
		return nil
	}
	id, err := apiref.ParseID(ref, "locations")
	if err != nil {
		return nil
	}
	var location models.Location
	if err := s.db.First(&location, "id = ?", id).Error; err != nil {
		return nil
	}
	return &location.ID
}

func (s *ActService) GetByID(id uint) (*models.Act, error) {
	var act models.Act
	if err := s.db.Preload("Location").Preload("Chain").First(&act, "id = ?", id).Error; err != nil {
		return nil, ErrActNotFound
	}
	return &act, nil
}

func (s *ActService) List(page, limit int) ([]models.Act, int64, error) {
	var acts []models.Act
	var total int64

	offset := (page - 1) * limit
	if err := s.db.Model(&models.Act{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&acts).Error
	return acts, total, err
}

// Delete removes an act together with its dependents: comments and likes
// (orphan removal) and the owned location and chain (cascade ownership).
func (s *ActService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.DeleteTx(tx, id)
	})
}

// DeleteTx is Delete running inside the caller's transaction, for cascades
// that remove several acts at once.
func (s *ActService) DeleteTx(tx *gorm.DB, id uint) error {
	var act models.Act
	if err := tx.First(&act, "id = ?", id).Error; err != nil {
		return ErrActNotFound
	}

	if err := tx.Where("act_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("act_id = ?", id).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Delete(&act).Error; err != nil {
		return err
	}
	if act.LocationID != nil {
		if err := tx.Delete(&models.Location{}, "id = ?", *act.LocationID).Error; err != nil {
			return err
		}
	}
	if act.ChainID != nil {
		if err := tx.Delete(&models.Chain{}, "id = ?", *act.ChainID).Error; err != nil {
			return err
		}
	}
	return nil
}
