package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *domain.ErgonomicAssessment) (*domain.ErgonomicAssessment, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.ErgonomicAssessment, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (ar *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, record *domain.ErgonomicAssessment) (*domain.ErgonomicAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (ar *assessmentRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.ErgonomicAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*domain.ErgonomicAssessment
	if err := transaction.WithContext(ctx).
		Order("data_avaliacao DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
