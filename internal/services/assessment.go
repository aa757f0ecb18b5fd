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

type AssessmentService interface {
	Create(ctx context.Context, record *domain.ErgonomicAssessment) (*domain.ErgonomicAssessment, error)
	List(ctx context.Context) ([]*domain.ErgonomicAssessment, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
}

func NewAssessmentService(db *gorm.DB, log *logger.Logger, assessmentRepo repos.AssessmentRepo) AssessmentService {
	return &assessmentService{
		db:             db,
		log:            log.With("service", "AssessmentService"),
		assessmentRepo: assessmentRepo,
	}
}

func (as *assessmentService) Create(ctx context.Context, record *domain.ErgonomicAssessment) (*domain.ErgonomicAssessment, error) {
	if record.Sector == "" || record.JobFunction == "" || record.WorkstationType == "" {
		return nil, fmt.Errorf("%w: missing required assessment fields", pkgerrors.ErrInvalidArgument)
	}
	if record.AssessmentDate.IsZero() {
		return nil, fmt.Errorf("%w: assessment date is required", pkgerrors.ErrInvalidArgument)
	}
	created, err := as.assessmentRepo.Create(ctx, nil, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	return created, nil
}

func (as *assessmentService) List(ctx context.Context) ([]*domain.ErgonomicAssessment, error) {
	records, err := as.assessmentRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return records, nil
}
