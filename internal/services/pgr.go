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

// PGRService manages the hazard-inventory graph. Each level is a
// plain create/list pair keyed by its parent, like the rest of the
// module's CRUD surface.
type PGRService interface {
	CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)

	CreateSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error)
	ListSectorsByCompany(ctx context.Context, companyID uint) ([]*domain.Sector, error)

	CreateHazard(ctx context.Context, hazard *domain.Hazard) (*domain.Hazard, error)
	ListHazardsBySector(ctx context.Context, sectorID uint) ([]*domain.Hazard, error)

	CreateRisk(ctx context.Context, risk *domain.Risk) (*domain.Risk, error)
	ListRisksByHazard(ctx context.Context, hazardID uint) ([]*domain.Risk, error)

	CreateAction(ctx context.Context, action *domain.ControlAction) (*domain.ControlAction, error)
	ListActionsByRisk(ctx context.Context, riskID uint) ([]*domain.ControlAction, error)
}

type pgrService struct {
	db      *gorm.DB
	log     *logger.Logger
	pgrRepo repos.PGRRepo
}

func NewPGRService(db *gorm.DB, log *logger.Logger, pgrRepo repos.PGRRepo) PGRService {
	return &pgrService{db: db, log: log.With("service", "PGRService"), pgrRepo: pgrRepo}
}

func (ps *pgrService) CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if company.Name == "" {
		return nil, fmt.Errorf("%w: company name is required", pkgerrors.ErrInvalidArgument)
	}
	created, err := ps.pgrRepo.CreateCompany(ctx, nil, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

func (ps *pgrService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	companies, err := ps.pgrRepo.ListCompanies(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (ps *pgrService) CreateSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error) {
	if sector.Name == "" || sector.CompanyID == 0 {
		return nil, fmt.Errorf("%w: sector name and company_id are required", pkgerrors.ErrInvalidArgument)
	}
	created, err := ps.pgrRepo.CreateSector(ctx, nil, sector)
	if err != nil {
		return nil, fmt.Errorf("failed to create sector: %w", err)
	}
	return created, nil
}

func (ps *pgrService) ListSectorsByCompany(ctx context.Context, companyID uint) ([]*domain.Sector, error) {
	sectors, err := ps.pgrRepo.ListSectorsByCompany(ctx, nil, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	return sectors, nil
}

func (ps *pgrService) CreateHazard(ctx context.Context, hazard *domain.Hazard) (*domain.Hazard, error) {
	if hazard.Name == "" || hazard.SectorID == 0 {
		return nil, fmt.Errorf("%w: hazard name and sector_id are required", pkgerrors.ErrInvalidArgument)
	}
	created, err := ps.pgrRepo.CreateHazard(ctx, nil, hazard)
	if err != nil {
		return nil, fmt.Errorf("failed to create hazard: %w", err)
	}
	return created, nil
}

func (ps *pgrService) ListHazardsBySector(ctx context.Context, sectorID uint) ([]*domain.Hazard, error) {
	hazards, err := ps.pgrRepo.ListHazardsBySector(ctx, nil, sectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazards: %w", err)
	}
	return hazards, nil
}

func (ps *pgrService) CreateRisk(ctx context.Context, risk *domain.Risk) (*domain.Risk, error) {
	if risk.HazardID == 0 {
		return nil, fmt.Errorf("%w: hazard_id is required", pkgerrors.ErrInvalidArgument)
	}
	created, err := ps.pgrRepo.CreateRisk(ctx, nil, risk)
	if err != nil {
		return nil, fmt.Errorf("failed to create risk: %w", err)
	}
	return created, nil
}

func (ps *pgrService) ListRisksByHazard(ctx context.Context, hazardID uint) ([]*domain.Risk, error) {
	risks, err := ps.pgrRepo.ListRisksByHazard(ctx, nil, hazardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list risks: %w", err)
	}
	return risks, nil
}

func (ps *pgrService) CreateAction(ctx context.Context, action *domain.ControlAction) (*domain.ControlAction, error) {
	if action.RiskID == 0 {
		return nil, fmt.Errorf("%w: risk_id is required", pkgerrors.ErrInvalidArgument)
	}
	if action.Status == "" {
		action.Status = "pendente"
	}
	created, err := ps.pgrRepo.CreateAction(ctx, nil, action)
	if err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}
	return created, nil
}

func (ps *pgrService) ListActionsByRisk(ctx context.Context, riskID uint) ([]*domain.ControlAction, error) {
	actions, err := ps.pgrRepo.ListActionsByRisk(ctx, nil, riskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return actions, nil
}
