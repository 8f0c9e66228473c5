package services

import (
	"errors"
	"time"

	"github.com/goodacts/goodacts-backend/internal/apiref"
	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("only the author may delete a comment")
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create runs the comment pipeline: resolve the act reference, attach the
// current user when one is authenticated (absence yields an authorless
// comment), stamp a creation time if none was supplied, persist.
func (s *CommentService) Create(userID *uint, content, actRef string, createdAt time.Time) (*models.Comment, error) {
	actID, err := apiref.ParseID(actRef, "acts")
	if err != nil {
		return nil, ErrActNotFound
	}
	var act models.Act
	if err := s.db.First(&act, "id = ?", actID).Error; err != nil {
		return nil, ErrActNotFound
	}

	comment := &models.Comment{
		Content: content,
		ActID:   act.ID,
		UserID:  userID,
	}
	if err := models.ValidateComment(comment); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	comment.CreatedAt = createdAt

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete refuses any caller other than the comment's author.
func (s *CommentService) Delete(commentID, userID uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return ErrCommentNotFound
	}

	if comment.UserID == nil || *comment.UserID != userID {
		return ErrNotCommentOwner
	}

	return s.db.Delete(&comment).Error
}

func (s *CommentService) ListForAct(actID uint, page, limit int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	offset := (page - 1) * limit
	if err := s.db.Model(&models.Comment{}).Where("act_id = ?", actID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Where("act_id = ?", actID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, total, err
}
