package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

type ExposureRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *domain.ExposureAgentRecord) (*domain.ExposureAgentRecord, error)
	GetByID(ctx context.Context, tx *gorm.DB, recordID uint) (*domain.ExposureAgentRecord, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.ExposureAgentRecord, error)
	Update(ctx context.Context, tx *gorm.DB, record *domain.ExposureAgentRecord) (*domain.ExposureAgentRecord, error)
	Delete(ctx context.Context, tx *gorm.DB, record *domain.ExposureAgentRecord) error
}

type exposureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExposureRepo(db *gorm.DB, baseLog *logger.Logger) ExposureRepo {
	return &exposureRepo{db: db, log: baseLog.With("repo", "ExposureRepo")}
}

func (xr *exposureRepo) Create(ctx context.Context, tx *gorm.DB, record *domain.ExposureAgentRecord) (*domain.ExposureAgentRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = xr.db
	}
	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (xr *exposureRepo) GetByID(ctx context.Context, tx *gorm.DB, recordID uint) (*domain.ExposureAgentRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = xr.db
	}
	var result domain.ExposureAgentRecord
	err := transaction.WithContext(ctx).First(&result, recordID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (xr *exposureRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.ExposureAgentRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = xr.db
	}
	var results []*domain.ExposureAgentRecord
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (xr *exposureRepo) Update(ctx context.Context, tx *gorm.DB, record *domain.ExposureAgentRecord) (*domain.ExposureAgentRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = xr.db
	}
	if err := transaction.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (xr *exposureRepo) Delete(ctx context.Context, tx *gorm.DB, record *domain.ExposureAgentRecord) error {
	transaction := tx
	if transaction == nil {
		transaction = xr.db
	}
	return transaction.WithContext(ctx).Delete(record).Error
}
