package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
)

var ErrChainNotFound = errors.New("chain not found")

// ChainService manages the invitation-token records behind referral chains.
type ChainService struct {
	db *gorm.DB
}

func NewChainService(db *gorm.DB) *ChainService {
	return &ChainService{db: db}
}

// newInvitationToken is swapped out in tests to force token collisions.
var newInvitationToken = generateInvitationToken

// CreateForAct stores a new chain with a generated invitation token, inside
// the caller's transaction. Token uniqueness is enforced by the unique index;
// a collision of two 12-character random tokens is retried once. Each insert
// runs in a nested transaction — a savepoint when the caller is already inside
// a transaction — so the failed attempt does not abort the enclosing
// transaction on Postgres.
func (s *ChainService) CreateForAct(tx *gorm.DB) (*models.Chain, error) {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := newInvitationToken()
		if err != nil {
			return nil, err
		}

		chain := &models.Chain{InvitationToken: token}
		if err := models.ValidateChain(chain); err != nil {
			return nil, err
		}

		if err := tx.Transaction(func(tx *gorm.DB) error {
			return tx.Create(chain).Error
		}); err == nil {
			return chain, nil
		}
	}
	return nil, errors.New("failed to store invitation chain")
}

// FindByToken resolves an invitation token to its chain and the act that
// owns it.
func (s *ChainService) FindByToken(token string) (*models.Chain, *models.Act, error) {
	var chain models.Chain
	if err := s.db.Where("invitation_token = ?", token).First(&chain).Error; err != nil {
		return nil, nil, ErrChainNotFound
	}

	var act models.Act
	if err := s.db.Where("chain_id = ?", chain.ID).First(&act).Error; err != nil {
		return &chain, nil, nil
	}
	return &chain, &act, nil
}

func generateInvitationToken() (string, error) {
	raw := make([]byte, 9)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
