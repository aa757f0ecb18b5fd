package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

type ExamRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *domain.ExamRecord) (*domain.ExamRecord, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.ExamRecord, error)
	// DeleteByID reports how many rows were removed; deleting an
	// already-absent record is not an error.
	DeleteByID(ctx context.Context, tx *gorm.DB, recordID uint) (int64, error)
}

type examRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExamRepo(db *gorm.DB, baseLog *logger.Logger) ExamRepo {
	return &examRepo{db: db, log: baseLog.With("repo", "ExamRepo")}
}

func (er *examRepo) Create(ctx context.Context, tx *gorm.DB, record *domain.ExamRecord) (*domain.ExamRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (er *examRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.ExamRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*domain.ExamRecord
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *examRepo) DeleteByID(ctx context.Context, tx *gorm.DB, recordID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	res := transaction.WithContext(ctx).Delete(&domain.ExamRecord{}, recordID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
