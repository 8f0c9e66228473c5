package services

import (
	"errors"
	"log/slog"

	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
)

var ErrChallengeNotFound = errors.New("challenge not found")

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

func (s *ChallengeService) Create(req *dto.CreateChallengeRequest) (*models.Challenge, error) {
	challenge := &models.Challenge{
		Title:     req.Title,
		Objective: req.Objective,
	}
	if err := models.ValidateChallenge(challenge); err != nil {
		return nil, err
	}
	if err := s.db.Create(challenge).Error; err != nil {
		return nil, err
	}
	return challenge, nil
}

func (s *ChallengeService) Update(id uint, req *dto.UpdateChallengeRequest) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, "id = ?", id).Error; err != nil {
		return nil, ErrChallengeNotFound
	}

	if req.Title != nil {
		challenge.Title = *req.Title
	}
	if req.Objective != nil {
		challenge.Objective = *req.Objective
	}
	if err := models.ValidateChallenge(&challenge); err != nil {
		return nil, err
	}
	if err := s.db.Save(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *ChallengeService) GetByID(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, "id = ?", id).Error; err != nil {
		return nil, ErrChallengeNotFound
	}
	return &challenge, nil
}

func (s *ChallengeService) List(page, limit int) ([]models.Challenge, int64, error) {
	var challenges []models.Challenge
	var total int64

	offset := (page - 1) * limit
	if err := s.db.Model(&models.Challenge{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&challenges).Error
	return challenges, total, err
}

// IncrementProgress bumps the progress counter by one as a single atomic SQL
// update, so concurrent act creations against the same challenge cannot lose
// updates. Progress is allowed to pass the objective; crossing it is logged
// as a completion event.
func (s *ChallengeService) IncrementProgress(tx *gorm.DB, id uint) error {
	result := tx.Model(&models.Challenge{}).
		Where("id = ?", id).
		UpdateColumn("progress", gorm.Expr("progress + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChallengeNotFound
	}

	var challenge models.Challenge
	if err := tx.First(&challenge, "id = ?", id).Error; err != nil {
		return err
	}
	if challenge.Progress == challenge.Objective {
		slog.Info("challenge completed",
			"challenge_id", challenge.ID,
			"title", challenge.Title,
			"objective", challenge.Objective)
	}
	return nil
}
