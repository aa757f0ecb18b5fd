package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/normalization"
	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/repos"
)

// UnknownAgentLabel replaces NULL/empty agent names so that all such
// exposure rows collapse into a single bucket.
const UnknownAgentLabel = "Agente não informado"

// dueSoonWindowDays is the inclusive look-ahead for the due_soon exam
// bucket.
const dueSoonWindowDays = 30

type RiskProfile struct {
	Low    int64 `json:"low"`
	Medium int64 `json:"medium"`
	High   int64 `json:"high"`
}

type AgentCount struct {
	Name            string `json:"name"`
	OccurrenceCount int64  `json:"occurrence_count"`
}

type ModuleDistribution struct {
	Exams           int64 `json:"exams"`
	Assessments     int64 `json:"assessments"`
	ExposureRecords int64 `json:"exposure_records"`
}

type ActivityEntry struct {
	Module      string    `json:"module"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type OverviewSummary struct {
	TotalExams           int64              `json:"total_exams"`
	TotalAssessments     int64              `json:"total_assessments"`
	TotalExposureRecords int64              `json:"total_exposure_records"`
	AverageRiskScore     float64            `json:"average_risk_score"`
	RiskProfile          RiskProfile        `json:"risk_profile"`
	TopAgents            []AgentCount       `json:"top_agents"`
	ModuleDistribution   ModuleDistribution `json:"module_distribution"`
	RecentActivity       []ActivityEntry    `json:"recent_activity"`
}

type MonthBucket struct {
	MonthLabel string `json:"month_label"`
	Total      int64  `json:"total"`
}

type ExamStatus struct {
	Valid   int64 `json:"valid"`
	Expired int64 `json:"expired"`
	DueSoon int64 `json:"due_soon"`
}

type ExamModuleSummary struct {
	ExamsByMonth []MonthBucket `json:"exams_by_month"`
	ExamStatus   ExamStatus    `json:"exam_status"`
}

// DashboardService is a pure read-side projection over the record
// store. Neither operation ever fails as a whole: each sub-aggregate
// is computed in its own failure domain and degrades to its zero
// value when its query cannot be answered.
type DashboardService interface {
	GetOverviewSummary(ctx context.Context) OverviewSummary
	GetExamModuleSummary(ctx context.Context) ExamModuleSummary
}

type dashboardService struct {
	db            *gorm.DB
	log           *logger.Logger
	dashboardRepo repos.DashboardRepo
	now           func() time.Time
}

func NewDashboardService(db *gorm.DB, log *logger.Logger, dashboardRepo repos.DashboardRepo) DashboardService {
	return &dashboardService{
		db:            db,
		log:           log.With("service", "DashboardService"),
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// subAggregate pairs a field name with its producer. Producers are
// evaluated independently: one failing query must not keep the others
// from populating their fields.
type subAggregate struct {
	name string
	run  func(ctx context.Context) error
}

func (ds *dashboardService) collect(ctx context.Context, subs []subAggregate) {
	for _, sub := range subs {
		if err := sub.run(ctx); err != nil {
			ds.log.Warn("dashboard sub-aggregate failed, using default",
				"field", sub.name, "error", err)
		}
	}
}

func (ds *dashboardService) GetOverviewSummary(ctx context.Context) OverviewSummary {
	out := OverviewSummary{
		TopAgents:      []AgentCount{},
		RecentActivity: []ActivityEntry{},
	}

	ds.collect(ctx, []subAggregate{
		{"total_exams", func(ctx context.Context) error {
			n, err := ds.dashboardRepo.CountExams(ctx, nil)
			if err != nil {
				return err
			}
			out.TotalExams = n
			return nil
		}},
		{"total_assessments", func(ctx context.Context) error {
			n, err := ds.dashboardRepo.CountAssessments(ctx, nil)
			if err != nil {
				return err
			}
			out.TotalAssessments = n
			return nil
		}},
		{"total_exposure_records", func(ctx context.Context) error {
			n, err := ds.dashboardRepo.CountExposureRecords(ctx, nil)
			if err != nil {
				return err
			}
			out.TotalExposureRecords = n
			return nil
		}},
		{"average_risk_score", func(ctx context.Context) error {
			avg, err := ds.dashboardRepo.AverageAssessmentScore(ctx, nil)
			if err != nil {
				return err
			}
			if avg != nil {
				out.AverageRiskScore = *avg
			}
			return nil
		}},
		{"risk_profile", func(ctx context.Context) error {
			labels, err := ds.dashboardRepo.GroupAssessmentsByRiskLabel(ctx, nil)
			if err != nil {
				return err
			}
			out.RiskProfile = bucketRiskLabels(labels)
			return nil
		}},
		{"top_agents", func(ctx context.Context) error {
			agents, err := ds.dashboardRepo.GroupExposuresByAgent(ctx, nil)
			if err != nil {
				return err
			}
			out.TopAgents = topAgents(agents, 5)
			return nil
		}},
	})

	// Re-exposed for charting; must stay consistent with the totals
	// above, so it is assembled from them rather than re-queried.
	out.ModuleDistribution = ModuleDistribution{
		Exams:           out.TotalExams,
		Assessments:     out.TotalAssessments,
		ExposureRecords: out.TotalExposureRecords,
	}

	// RecentActivity stays empty: merging the three record streams by
	// recency is intentionally deferred.
	return out
}

func (ds *dashboardService) GetExamModuleSummary(ctx context.Context) ExamModuleSummary {
	out := ExamModuleSummary{
		ExamsByMonth: []MonthBucket{},
	}

	ds.collect(ctx, []subAggregate{
		{"exams_by_month", func(ctx context.Context) error {
			months, err := ds.dashboardRepo.GroupExamsByMonth(ctx, nil)
			if err != nil {
				return err
			}
			out.ExamsByMonth = monthBuckets(months)
			return nil
		}},
		{"exam_status", func(ctx context.Context) error {
			today := truncateToDay(ds.now())
			counts, err := ds.dashboardRepo.CountExamsByValidity(ctx, nil, today)
			if err != nil {
				return err
			}
			out.ExamStatus = ExamStatus{
				Valid:   counts.Valid,
				Expired: counts.Expired,
				DueSoon: counts.DueSoon,
			}
			return nil
		}},
	})

	return out
}

// bucketRiskLabels folds the grouped free-text labels into the three
// fixed buckets. Unrecognized and empty labels contribute nowhere.
func bucketRiskLabels(labels []repos.ValueCount) RiskProfile {
	var profile RiskProfile
	for _, label := range labels {
		level, ok := normalization.ClassifyRiskLevel(label.Value)
		if !ok {
			continue
		}
		switch level {
		case normalization.RiskLow:
			profile.Low += label.Count
		case normalization.RiskMedium:
			profile.Medium += label.Count
		case normalization.RiskHigh:
			profile.High += label.Count
		}
	}
	return profile
}

// topAgents collapses anonymous rows under UnknownAgentLabel, then
// returns the top n by occurrence count. The sort is stable, so ties
// keep the store's grouping order; beyond that the tie order is
// implementation-defined.
func topAgents(agents []repos.ValueCount, n int) []AgentCount {
	merged := make([]AgentCount, 0, len(agents))
	unknownIdx := -1
	for _, agent := range agents {
		name := agent.Value
		if name == "" {
			name = UnknownAgentLabel
		}
		if name == UnknownAgentLabel {
			if unknownIdx >= 0 {
				merged[unknownIdx].OccurrenceCount += agent.Count
				continue
			}
			unknownIdx = len(merged)
		}
		merged = append(merged, AgentCount{Name: name, OccurrenceCount: agent.Count})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurrenceCount > merged[j].OccurrenceCount
	})
	if len(merged) > n {
		merged = merged[:n]
	}
	return merged
}

// monthBuckets relabels the chronological "YYYY-MM" keys as "MM/YYYY".
// Keys that do not parse are skipped rather than aborting the series.
func monthBuckets(months []repos.MonthCount) []MonthBucket {
	out := make([]MonthBucket, 0, len(months))
	for _, month := range months {
		parsed, err := time.Parse("2006-01", month.Month)
		if err != nil {
			continue
		}
		out = append(out, MonthBucket{
			MonthLabel: fmt.Sprintf("%02d/%04d", int(parsed.Month()), parsed.Year()),
			Total:      month.Count,
		})
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
