package services

import (
	"errors"
	"testing"

	"github.com/goodacts/goodacts-backend/internal/dto"
)

func TestCreateChallengeRequiresPositiveObjective(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(db)

	if _, err := svc.Create(&dto.CreateChallengeRequest{
		Title:     "Plant 100 trees",
		Objective: 0,
	}); err == nil {
		t.Fatal("Create() accepted a zero objective")
	}

	challenge, err := svc.Create(&dto.CreateChallengeRequest{
		Title:     "Plant 100 trees",
		Objective: 100,
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if challenge.Progress != 0 {
		t.Fatalf("initial progress = %d, want 0", challenge.Progress)
	}
}

func TestIncrementProgressUnknownChallenge(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(db)

	if err := svc.IncrementProgress(db, 999); !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("IncrementProgress() error = %v, want ErrChallengeNotFound", err)
	}
}

func TestIncrementProgressPastObjective(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(db)
	challenge := createTestChallenge(t, db, "Plant 100 trees", 2)

	for i := 0; i < 3; i++ {
		if err := svc.IncrementProgress(db, challenge.ID); err != nil {
			t.Fatalf("IncrementProgress() #%d unexpected error: %v", i+1, err)
		}
	}

	got, err := svc.GetByID(challenge.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	// Progress keeps counting after completion, it is never clamped.
	if got.Progress != 3 {
		t.Fatalf("progress = %d, want 3", got.Progress)
	}
}

func TestUpdateChallengePartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(db)
	challenge := createTestChallenge(t, db, "Neighborhood cleanup", 10)

	title := "Renamed challenge"
	updated, err := svc.Update(challenge.ID, &dto.UpdateChallengeRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("title = %q, want %q", updated.Title, title)
	}
	if updated.Objective != challenge.Objective {
		t.Fatalf("objective = %d, want untouched %d", updated.Objective, challenge.Objective)
	}

	if _, err := svc.Update(999, &dto.UpdateChallengeRequest{Title: &title}); !errors.Is(err, ErrChallengeNotFound) {
		t.Fatalf("Update() of unknown challenge error = %v, want ErrChallengeNotFound", err)
	}
}

func TestListChallengesSurfacesCountErrors(t *testing.T) {
	db := newTestDB(t)
	createTestChallenge(t, db, "Plant 100 trees", 100)
	svc := NewChallengeService(db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	sqlDB.Close()

	_, total, err := svc.List(1, 20)
	if err == nil {
		t.Fatal("List() on closed database: expected error, got nil")
	}
	if total != 0 {
		t.Fatalf("List() total = %d, want 0 when counting fails", total)
	}
}
