package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	pkgerrors "github.com/datainsight/sst-backend/internal/pkg/errors"
	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/repos"
)

// ExposureUpdate holds the mutable LTCAT fields; nil pointers leave
// the stored value untouched.
type ExposureUpdate struct {
	Company           *string
	CNPJ              *string
	Sector            *string
	JobFunction       *string
	GHE               *string
	Agent             *string
	Classification    *string
	Source            *string
	Medium            *string
	Intensity         *string
	Unit              *string
	DailyHours        *float64
	DaysPerWeek       *int
	ExposureYears     *float64
	PPEEffective      *string
	RegulatoryFraming *string
	EvaluationDate    *time.Time
	Responsible       *string
	Notes             *string
}

type ExposureService interface {
	Create(ctx context.Context, record *domain.ExposureAgentRecord) (*domain.ExposureAgentRecord, error)
	Get(ctx context.Context, recordID uint) (*domain.ExposureAgentRecord, error)
	List(ctx context.Context) ([]*domain.ExposureAgentRecord, error)
	Update(ctx context.Context, recordID uint, update ExposureUpdate) (*domain.ExposureAgentRecord, error)
	Delete(ctx context.Context, recordID uint) error
}

type exposureService struct {
	db           *gorm.DB
	log          *logger.Logger
	exposureRepo repos.ExposureRepo
}

func NewExposureService(db *gorm.DB, log *logger.Logger, exposureRepo repos.ExposureRepo) ExposureService {
	return &exposureService{
		db:           db,
		log:          log.With("service", "ExposureService"),
		exposureRepo: exposureRepo,
	}
}

func (xs *exposureService) Create(ctx context.Context, record *domain.ExposureAgentRecord) (*domain.ExposureAgentRecord, error) {
	if record.Company == "" || record.Sector == "" || record.JobFunction == "" {
		return nil, fmt.Errorf("%w: missing required exposure fields", pkgerrors.ErrInvalidArgument)
	}
	if record.PPEEffective == "" {
		record.PPEEffective = "Sim"
	}
	if record.RegulatoryFraming == "" {
		record.RegulatoryFraming = "Sem enquadramento"
	}
	created, err := xs.exposureRepo.Create(ctx, nil, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save exposure record: %w", err)
	}
	return created, nil
}

func (xs *exposureService) Get(ctx context.Context, recordID uint) (*domain.ExposureAgentRecord, error) {
	record, err := xs.exposureRepo.GetByID(ctx, nil, recordID)
	if err == pkgerrors.ErrNotFound {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load exposure record: %w", err)
	}
	return record, nil
}

func (xs *exposureService) List(ctx context.Context) ([]*domain.ExposureAgentRecord, error) {
	records, err := xs.exposureRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list exposure records: %w", err)
	}
	return records, nil
}

func (xs *exposureService) Update(ctx context.Context, recordID uint, update ExposureUpdate) (*domain.ExposureAgentRecord, error) {
	record, err := xs.exposureRepo.GetByID(ctx, nil, recordID)
	if err == pkgerrors.ErrNotFound {
		return nil, pkgerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load exposure record: %w", err)
	}

	applyExposureUpdate(record, update)

	updated, err := xs.exposureRepo.Update(ctx, nil, record)
	if err != nil {
		return nil, fmt.Errorf("failed to update exposure record: %w", err)
	}
	return updated, nil
}

func (xs *exposureService) Delete(ctx context.Context, recordID uint) error {
	record, err := xs.exposureRepo.GetByID(ctx, nil, recordID)
	if err == pkgerrors.ErrNotFound {
		return pkgerrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load exposure record: %w", err)
	}
	if err := xs.exposureRepo.Delete(ctx, nil, record); err != nil {
		return fmt.Errorf("failed to delete exposure record: %w", err)
	}
	return nil
}

func applyExposureUpdate(record *domain.ExposureAgentRecord, update ExposureUpdate) {
	if update.Company != nil {
		record.Company = *update.Company
	}
	if update.CNPJ != nil {
		record.CNPJ = *update.CNPJ
	}
	if update.Sector != nil {
		record.Sector = *update.Sector
	}
	if update.JobFunction != nil {
		record.JobFunction = *update.JobFunction
	}
	if update.GHE != nil {
		record.GHE = *update.GHE
	}
	if update.Agent != nil {
		record.Agent = update.Agent
	}
	if update.Classification != nil {
		record.Classification = *update.Classification
	}
	if update.Source != nil {
		record.Source = *update.Source
	}
	if update.Medium != nil {
		record.Medium = *update.Medium
	}
	if update.Intensity != nil {
		record.Intensity = *update.Intensity
	}
	if update.Unit != nil {
		record.Unit = *update.Unit
	}
	if update.DailyHours != nil {
		record.DailyHours = update.DailyHours
	}
	if update.DaysPerWeek != nil {
		record.DaysPerWeek = update.DaysPerWeek
	}
	if update.ExposureYears != nil {
		record.ExposureYears = update.ExposureYears
	}
	if update.PPEEffective != nil {
		record.PPEEffective = *update.PPEEffective
	}
	if update.RegulatoryFraming != nil {
		record.RegulatoryFraming = *update.RegulatoryFraming
	}
	if update.EvaluationDate != nil {
		record.EvaluationDate = update.EvaluationDate
	}
	if update.Responsible != nil {
		record.Responsible = *update.Responsible
	}
	if update.Notes != nil {
		record.Notes = *update.Notes
	}
}
