package repos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/repos/testutil"
)

func TestAssessmentRepoCreateAndListOrder(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAssessmentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	older := &domain.ErgonomicAssessment{
		Sector:          "Administrativo",
		JobFunction:     "Analista",
		WorkstationType: "Escritório",
		AssessmentDate:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	newer := &domain.ErgonomicAssessment{
		Sector:          "Produção",
		JobFunction:     "Operador",
		WorkstationType: "Linha de montagem",
		AssessmentDate:  time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	_, err := repo.Create(ctx, nil, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, nil, newer)
	require.NoError(t, err)

	records, err := repo.ListAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent assessment first.
	require.Equal(t, "Produção", records[0].Sector)
	require.Equal(t, "Administrativo", records[1].Sector)
}

func TestAssessmentRepoKeepsNullRiskAndScore(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAssessmentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &domain.ErgonomicAssessment{
		Sector:          "Expedição",
		JobFunction:     "Conferente",
		WorkstationType: "Em pé",
		AssessmentDate:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	records, err := repo.ListAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, created.ID, records[0].ID)
	require.Nil(t, records[0].RiskLevel)
	require.Nil(t, records[0].Score)
}
