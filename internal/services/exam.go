package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/repos"
)

type ExamService interface {
	Create(ctx context.Context, record *domain.ExamRecord) (*domain.ExamRecord, error)
	List(ctx context.Context) ([]*domain.ExamRecord, error)
	// Delete reports how many rows were removed. Deleting a record
	// that is already gone is not an error.
	Delete(ctx context.Context, recordID uint) (int64, error)
}

type examService struct {
	db       *gorm.DB
	log      *logger.Logger
	examRepo repos.ExamRepo
}

func NewExamService(db *gorm.DB, log *logger.Logger, examRepo repos.ExamRepo) ExamService {
	return &examService{db: db, log: log.With("service", "ExamService"), examRepo: examRepo}
}

func (es *examService) Create(ctx context.Context, record *domain.ExamRecord) (*domain.ExamRecord, error) {
	if record.Name == "" || record.CPF == "" || record.JobFunction == "" ||
		record.Sector == "" || record.ExamType == "" || record.Result == "" {
		return nil, fmt.Errorf("%w: missing required exam fields", pkgerrors.ErrInvalidArgument)
	}
	if record.ExamDate.IsZero() {
		return nil, fmt.Errorf("%w: exam date is required", pkgerrors.ErrInvalidArgument)
	}
	created, err := es.examRepo.Create(ctx, nil, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save exam record: %w", err)
	}
	return created, nil
}

func (es *examService) List(ctx context.Context) ([]*domain.ExamRecord, error) {
	records, err := es.examRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list exam records: %w", err)
	}
	return records, nil
}

func (es *examService) Delete(ctx context.Context, recordID uint) (int64, error) {
	affected, err := es.examRepo.DeleteByID(ctx, nil, recordID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete exam record: %w", err)
	}
	return affected, nil
}
