package services

import (
	"errors"
	"testing"

	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
)

func TestCreateForActGeneratesUsableToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewChainService(db)

	chain, err := svc.CreateForAct(db)
	if err != nil {
		t.Fatalf("CreateForAct() unexpected error: %v", err)
	}
	if len(chain.InvitationToken) < 6 {
		t.Fatalf("token %q is shorter than the minimum length", chain.InvitationToken)
	}

	other, err := svc.CreateForAct(db)
	if err != nil {
		t.Fatalf("CreateForAct() unexpected error: %v", err)
	}
	if other.InvitationToken == chain.InvitationToken {
		t.Fatal("two chains received the same invitation token")
	}
}

func TestCreateForActRetriesCollidedTokenInsideTransaction(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewChainService(db)

	taken := models.Chain{InvitationToken: "taken-token"}
	if err := db.Create(&taken).Error; err != nil {
		t.Fatalf("create chain: %v", err)
	}

	// First generated token collides with the stored one, the retry gets a
	// fresh value.
	calls := 0
	original := newInvitationToken
	newInvitationToken = func() (string, error) {
		calls++
		if calls == 1 {
			return "taken-token", nil
		}
		return original()
	}
	defer func() { newInvitationToken = original }()

	var chain *models.Chain
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		chain, err = svc.CreateForAct(tx)
		if err != nil {
			return err
		}
		// The transaction must still be usable after the collided insert.
		return tx.Create(&models.Act{
			Title:       "Plant a tree",
			Description: "Planted an oak in the park",
			Category:    "Nature",
			UserID:      user.ID,
			ChainID:     &chain.ID,
		}).Error
	})
	if err != nil {
		t.Fatalf("transaction unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("token generator calls = %d, want 2", calls)
	}
	if chain.InvitationToken == "taken-token" {
		t.Fatal("collided token was stored")
	}

	var count int64
	db.Model(&models.Act{}).Count(&count)
	if count != 1 {
		t.Fatalf("stored acts = %d, want 1", count)
	}
}

func TestFindByTokenResolvesOwningAct(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewChainService(db)

	chain, err := svc.CreateForAct(db)
	if err != nil {
		t.Fatalf("CreateForAct() unexpected error: %v", err)
	}
	act := models.Act{
		Title:       "Plant a tree",
		Description: "Planted an oak in the park",
		Category:    "Nature",
		UserID:      user.ID,
		ChainID:     &chain.ID,
	}
	if err := db.Create(&act).Error; err != nil {
		t.Fatalf("create act: %v", err)
	}

	gotChain, gotAct, err := svc.FindByToken(chain.InvitationToken)
	if err != nil {
		t.Fatalf("FindByToken() unexpected error: %v", err)
	}
	if gotChain.ID != chain.ID {
		t.Fatalf("chain id = %d, want %d", gotChain.ID, chain.ID)
	}
	if gotAct == nil || gotAct.ID != act.ID {
		t.Fatalf("act = %v, want id %d", gotAct, act.ID)
	}

	if _, _, err := svc.FindByToken("no-such-token"); !errors.Is(err, ErrChainNotFound) {
		t.Fatalf("FindByToken() error = %v, want ErrChainNotFound", err)
	}
}
