package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/datainsight/sst-backend/internal/domain"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/repos/testutil"
)

func TestExposureRepoLifecycle(t *testing.T) {
	db := testutil.DB(t)
	repo := NewExposureRepo(db, testutil.Logger(t))
	ctx := context.Background()

	agent := "Ruído"
	created, err := repo.Create(ctx, nil, &domain.ExposureAgentRecord{
		Company:     "Metalúrgica Aurora",
		Sector:      "Fundição",
		JobFunction: "Forneiro",
		Agent:       &agent,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Agent == nil || *fetched.Agent != "Ruído" {
		t.Fatalf("unexpected agent: %+v", fetched.Agent)
	}

	fetched.Sector = "Usinagem"
	if _, err := repo.Update(ctx, nil, fetched); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.Sector != "Usinagem" {
		t.Fatalf("update not persisted: %+v", updated)
	}

	if err := repo.Delete(ctx, nil, updated); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, nil, created.ID); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("get after delete: got %v", err)
	}
}

func TestExposureRepoGetMissing(t *testing.T) {
	db := testutil.DB(t)
	repo := NewExposureRepo(db, testutil.Logger(t))

	if _, err := repo.GetByID(context.Background(), nil, 9999); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
