package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

// PGRRepo persists the hazard-inventory graph. Child listings are
// keyed by their parent id, mirroring the by-company/by-sector/...
// lookups the frontend performs.
type PGRRepo interface {
	CreateCompany(ctx context.Context, tx *gorm.DB, company *domain.Company) (*domain.Company, error)
	ListCompanies(ctx context.Context, tx *gorm.DB) ([]*domain.Company, error)

	CreateSector(ctx context.Context, tx *gorm.DB, sector *domain.Sector) (*domain.Sector, error)
	ListSectorsByCompany(ctx context.Context, tx *gorm.DB, companyID uint) ([]*domain.Sector, error)

	CreateHazard(ctx context.Context, tx *gorm.DB, hazard *domain.Hazard) (*domain.Hazard, error)
	ListHazardsBySector(ctx context.Context, tx *gorm.DB, sectorID uint) ([]*domain.Hazard, error)

	CreateRisk(ctx context.Context, tx *gorm.DB, risk *domain.Risk) (*domain.Risk, error)
	ListRisksByHazard(ctx context.Context, tx *gorm.DB, hazardID uint) ([]*domain.Risk, error)

	CreateAction(ctx context.Context, tx *gorm.DB, action *domain.ControlAction) (*domain.ControlAction, error)
	ListActionsByRisk(ctx context.Context, tx *gorm.DB, riskID uint) ([]*domain.ControlAction, error)
}

type pgrRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPGRRepo(db *gorm.DB, baseLog *logger.Logger) PGRRepo {
	return &pgrRepo{db: db, log: baseLog.With("repo", "PGRRepo")}
}

func (pr *pgrRepo) tx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *pgrRepo) CreateCompany(ctx context.Context, tx *gorm.DB, company *domain.Company) (*domain.Company, error) {
	if err := pr.tx(tx).WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (pr *pgrRepo) ListCompanies(ctx context.Context, tx *gorm.DB) ([]*domain.Company, error) {
	var results []*domain.Company
	if err := pr.tx(tx).WithContext(ctx).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pgrRepo) CreateSector(ctx context.Context, tx *gorm.DB, sector *domain.Sector) (*domain.Sector, error) {
	if err := pr.tx(tx).WithContext(ctx).Create(sector).Error; err != nil {
		return nil, err
	}
	return sector, nil
}

func (pr *pgrRepo) ListSectorsByCompany(ctx context.Context, tx *gorm.DB, companyID uint) ([]*domain.Sector, error) {
	var results []*domain.Sector
	if err := pr.tx(tx).WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pgrRepo) CreateHazard(ctx context.Context, tx *gorm.DB, hazard *domain.Hazard) (*domain.Hazard, error) {
	if err := pr.tx(tx).WithContext(ctx).Create(hazard).Error; err != nil {
		return nil, err
	}
	return hazard, nil
}

func (pr *pgrRepo) ListHazardsBySector(ctx context.Context, tx *gorm.DB, sectorID uint) ([]*domain.Hazard, error) {
	var results []*domain.Hazard
	if err := pr.tx(tx).WithContext(ctx).
		Where("sector_id = ?", sectorID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pgrRepo) CreateRisk(ctx context.Context, tx *gorm.DB, risk *domain.Risk) (*domain.Risk, error) {
	if err := pr.tx(tx).WithContext(ctx).Create(risk).Error; err != nil {
		return nil, err
	}
	return risk, nil
}

func (pr *pgrRepo) ListRisksByHazard(ctx context.Context, tx *gorm.DB, hazardID uint) ([]*domain.Risk, error) {
	var results []*domain.Risk
	if err := pr.tx(tx).WithContext(ctx).
		Where("hazard_id = ?", hazardID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pgrRepo) CreateAction(ctx context.Context, tx *gorm.DB, action *domain.ControlAction) (*domain.ControlAction, error) {
	if err := pr.tx(tx).WithContext(ctx).Create(action).Error; err != nil {
		return nil, err
	}
	return action, nil
}

func (pr *pgrRepo) ListActionsByRisk(ctx context.Context, tx *gorm.DB, riskID uint) ([]*domain.ControlAction, error) {
	var results []*domain.ControlAction
	if err := pr.tx(tx).WithContext(ctx).
		Where("risk_id = ?", riskID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
