package repos

import (
	"context"
	"testing"
	"time"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/repos/testutil"
)

func testExam(name string, examDate time.Time) *domain.ExamRecord {
	return &domain.ExamRecord{
		Name:        name,
		CPF:         "123.456.789-00",
		JobFunction: "Operador",
		Sector:      "Produção",
		ExamType:    "Admissional",
		ExamDate:    examDate,
		Result:      "Apto",
	}
}

func TestExamRepoCreateAndList(t *testing.T) {
	db := testutil.DB(t)
	repo := NewExamRepo(db, testutil.Logger(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, nil, testExam("Ana", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if _, err := repo.Create(ctx, nil, testExam("Bruno", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("create second: %v", err)
	}

	records, err := repo.ListAll(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("list length: got %d want 2", len(records))
	}
}

func TestExamRepoDeleteByID(t *testing.T) {
	db := testutil.DB(t)
	repo := NewExamRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, testExam("Ana", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	affected, err := repo.DeleteByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected: got %d want 1", affected)
	}

	// Deleting the same row again reports zero rows, not an error.
	affected, err = repo.DeleteByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("repeat affected: got %d want 0", affected)
	}
}
