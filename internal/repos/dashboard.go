package repos

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

// ValueCount is one group-by bucket over a free-text column. Value is
// "" for rows whose column was NULL or empty.
type ValueCount struct {
	Value string
	Count int64
}

// MonthCount is one calendar-month bucket, keyed "YYYY-MM" so that
// lexicographic order is chronological order.
type MonthCount struct {
	Month string
	Count int64
}

type ExamStatusCounts struct {
	Valid   int64
	Expired int64
	DueSoon int64
}

// DashboardRepo exposes the read-side aggregate queries the dashboard
// is built from. Every method is independently callable and
// independently failable; the service layer turns each failure into
// that field's zero-value default.
type DashboardRepo interface {
	CountExams(ctx context.Context, tx *gorm.DB) (int64, error)
	CountAssessments(ctx context.Context, tx *gorm.DB) (int64, error)
	CountExposureRecords(ctx context.Context, tx *gorm.DB) (int64, error)
	// AverageAssessmentScore returns nil when no scored rows exist.
	AverageAssessmentScore(ctx context.Context, tx *gorm.DB) (*float64, error)
	GroupAssessmentsByRiskLabel(ctx context.Context, tx *gorm.DB) ([]ValueCount, error)
	GroupExposuresByAgent(ctx context.Context, tx *gorm.DB) ([]ValueCount, error)
	GroupExamsByMonth(ctx context.Context, tx *gorm.DB) ([]MonthCount, error)
	CountExamsByValidity(ctx context.Context, tx *gorm.DB, today time.Time) (ExamStatusCounts, error)
}

type dashboardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDashboardRepo(db *gorm.DB, baseLog *logger.Logger) DashboardRepo {
	return &dashboardRepo{db: db, log: baseLog.With("repo", "DashboardRepo")}
}

func (dr *dashboardRepo) tx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return dr.db
}

func (dr *dashboardRepo) CountExams(ctx context.Context, tx *gorm.DB) (int64, error) {
	return dr.count(ctx, tx, &domain.ExamRecord{})
}

func (dr *dashboardRepo) CountAssessments(ctx context.Context, tx *gorm.DB) (int64, error) {
	return dr.count(ctx, tx, &domain.ErgonomicAssessment{})
}

func (dr *dashboardRepo) CountExposureRecords(ctx context.Context, tx *gorm.DB) (int64, error) {
	return dr.count(ctx, tx, &domain.ExposureAgentRecord{})
}

func (dr *dashboardRepo) count(ctx context.Context, tx *gorm.DB, model interface{}) (int64, error) {
	var count int64
	if err := dr.tx(tx).WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (dr *dashboardRepo) AverageAssessmentScore(ctx context.Context, tx *gorm.DB) (*float64, error) {
	row := dr.tx(tx).WithContext(ctx).
		Model(&domain.ErgonomicAssessment{}).
		Select("AVG(score)").
		Row()
	var avg sql.NullFloat64
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (dr *dashboardRepo) GroupAssessmentsByRiskLabel(ctx context.Context, tx *gorm.DB) ([]ValueCount, error) {
	var results []ValueCount
	if err := dr.tx(tx).WithContext(ctx).
		Model(&domain.ErgonomicAssessment{}).
		Select("COALESCE(risco, '') AS value, COUNT(*) AS count").
		Group("COALESCE(risco, '')").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *dashboardRepo) GroupExposuresByAgent(ctx context.Context, tx *gorm.DB) ([]ValueCount, error) {
	var results []ValueCount
	if err := dr.tx(tx).WithContext(ctx).
		Model(&domain.ExposureAgentRecord{}).
		Select("COALESCE(agente, '') AS value, COUNT(*) AS count").
		Group("COALESCE(agente, '')").
		Order("count DESC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *dashboardRepo) GroupExamsByMonth(ctx context.Context, tx *gorm.DB) ([]MonthCount, error) {
	transaction := dr.tx(tx)
	monthExpr := "to_char(data_exame, 'YYYY-MM')"
	if transaction.Dialector.Name() == "sqlite" {
		monthExpr = "strftime('%Y-%m', data_exame)"
	}
	var results []MonthCount
	if err := transaction.WithContext(ctx).
		Model(&domain.ExamRecord{}).
		Select(monthExpr+" AS month, COUNT(*) AS count").
		Where("data_exame IS NOT NULL").
		Group(monthExpr).
		Order("month ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *dashboardRepo) CountExamsByValidity(ctx context.Context, tx *gorm.DB, today time.Time) (ExamStatusCounts, error) {
	transaction := dr.tx(tx).WithContext(ctx)
	dueLimit := today.AddDate(0, 0, 30)

	var out ExamStatusCounts
	// Records without an expiration date count as valid.
	if err := transaction.Model(&domain.ExamRecord{}).
		Where("data_validade IS NULL OR data_validade >= ?", today).
		Count(&out.Valid).Error; err != nil {
		return ExamStatusCounts{}, err
	}
	if err := transaction.Model(&domain.ExamRecord{}).
		Where("data_validade IS NOT NULL AND data_validade < ?", today).
		Count(&out.Expired).Error; err != nil {
		return ExamStatusCounts{}, err
	}
	if err := transaction.Model(&domain.ExamRecord{}).
		Where("data_validade IS NOT NULL AND data_validade >= ? AND data_validade <= ?", today, dueLimit).
		Count(&out.DueSoon).Error; err != nil {
		return ExamStatusCounts{}, err
	}
	return out, nil
}
