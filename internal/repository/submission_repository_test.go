package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
)

func TestUpsertByPairConcurrent(t *testing.T) {
	db := database.NewMemDB()
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.UpsertByPair(ctx, 1, "s1", func(s *model.Submission, created bool) {
				s.SubmittedAt = time.Now().UTC()
				g := n
				s.Grade = &g
			})
			if err != nil {
				t.Errorf("upsert: %v", err)
			}
		}(i)
	}
	wg.Wait()

	subs, err := repo.ListByAssignment(ctx, 1)
	if err != nil {
		t.Fatalf("ListByAssignment: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected a single row for the pair after %d concurrent upserts, got %d", workers, len(subs))
	}
}

func TestUpsertByPairSeparatesPairs(t *testing.T) {
	db := database.NewMemDB()
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	pairs := []struct {
		assignment int
		student    string
	}{
		{1, "s1"}, {1, "s2"}, {2, "s1"},
	}
	for _, p := range pairs {
		if _, err := repo.UpsertByPair(ctx, p.assignment, p.student, func(s *model.Submission, created bool) {
			s.SubmittedAt = time.Now().UTC()
		}); err != nil {
			t.Fatalf("upsert %v: %v", p, err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 distinct rows, got %d", len(all))
	}

	sub, err := repo.GetByPair(ctx, 1, "s2")
	if err != nil {
		t.Fatalf("GetByPair: %v", err)
	}
	if sub.AssignmentID != 1 || sub.StudentID != "s2" {
		t.Errorf("wrong row: %+v", sub)
	}
}

func TestDeleteStrictVsSilent(t *testing.T) {
	ctx := context.Background()

	silent := NewSubmissionRepository(database.NewMemDB())
	if err := silent.Delete(ctx, 42); err != nil {
		t.Errorf("default mode should ignore missing targets, got %v", err)
	}

	strict := NewSubmissionRepository(database.NewMemDB(database.Strict()))
	if err := strict.Delete(ctx, 42); err != database.ErrNotFound {
		t.Errorf("strict mode should surface ErrNotFound, got %v", err)
	}
}
