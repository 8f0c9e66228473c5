package services

import (
	"errors"

	"github.com/goodacts/goodacts-backend/internal/current"
	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked = errors.New("act already liked by this user")
	ErrLikeNotFound = errors.New("like not found")
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// Like stores a like for the (user, act) pair. The pair is unique: a repeat
// attempt fails on the composite index and is reported as ErrAlreadyLiked.
func (s *LikeService) Like(userID, actID uint) (*models.Like, error) {
	var act models.Act
	if err := s.db.First(&act, "id = ?", actID).Error; err != nil {
		return nil, ErrActNotFound
	}

	like := &models.Like{UserID: userID, ActID: actID}
	if err := s.db.Create(like).Error; err != nil {
		// The unique index is the only thing that can reject this insert
		// once the act is known to exist.
		return nil, ErrAlreadyLiked
	}
	return like, nil
}

// Unlike removes the caller's own like.
func (s *LikeService) Unlike(userID, actID uint) error {
	result := s.db.Scopes(current.OwnedBy(userID)).
		Where("act_id = ?", actID).
		Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

func (s *LikeService) CountForAct(actID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Like{}).Where("act_id = ?", actID).Count(&total).Error
	return total, err
}
