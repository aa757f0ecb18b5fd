package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/repos"
	"github.com/datainsight/sst-backend/internal/repos/testutil"
)

func newDashboardServiceForTest(tb testing.TB, db *gorm.DB, now time.Time) *dashboardService {
	tb.Helper()
	log := testutil.Logger(tb)
	return &dashboardService{
		db:            db,
		log:           log,
		dashboardRepo: repos.NewDashboardRepo(db, log),
		now:           func() time.Time { return now },
	}
}

func date(tb testing.TB, value string) time.Time {
	tb.Helper()
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		tb.Fatalf("bad test date %q: %v", value, err)
	}
	return t
}

func seedExam(tb testing.TB, db *gorm.DB, examDate time.Time, expiration *time.Time) {
	tb.Helper()
	record := domain.ExamRecord{
		Name:           "Maria Souza",
		CPF:            "123.456.789-00",
		JobFunction:    "Operadora",
		Sector:         "Produção",
		ExamType:       "Periódico",
		ExamDate:       examDate,
		Result:         "Apto",
		ExpirationDate: expiration,
	}
	if err := db.Create(&record).Error; err != nil {
		tb.Fatalf("seed exam: %v", err)
	}
}

func seedAssessment(tb testing.TB, db *gorm.DB, risk *string, score *int) {
	tb.Helper()
	record := domain.ErgonomicAssessment{
		Sector:          "Administrativo",
		JobFunction:     "Analista",
		WorkstationType: "Escritório",
		AssessmentDate:  time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		RiskLevel:       risk,
		Score:           score,
	}
	if err := db.Create(&record).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
}

func seedExposure(tb testing.TB, db *gorm.DB, agent *string) {
	tb.Helper()
	record := domain.ExposureAgentRecord{
		Company:     "Metalúrgica Aurora",
		Sector:      "Fundição",
		JobFunction: "Forneiro",
		Agent:       agent,
	}
	if err := db.Create(&record).Error; err != nil {
		tb.Fatalf("seed exposure: %v", err)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestGetOverviewSummaryEmptyStore(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	out := svc.GetOverviewSummary(context.Background())

	if out.TotalExams != 0 || out.TotalAssessments != 0 || out.TotalExposureRecords != 0 {
		t.Fatalf("expected zero totals, got %+v", out)
	}
	if out.AverageRiskScore != 0 {
		t.Fatalf("expected zero average, got %v", out.AverageRiskScore)
	}
	if out.RiskProfile != (RiskProfile{}) {
		t.Fatalf("expected empty risk profile, got %+v", out.RiskProfile)
	}
	if out.TopAgents == nil || len(out.TopAgents) != 0 {
		t.Fatalf("expected empty (non-nil) top agents, got %#v", out.TopAgents)
	}
	if out.RecentActivity == nil || len(out.RecentActivity) != 0 {
		t.Fatalf("expected empty (non-nil) recent activity, got %#v", out.RecentActivity)
	}
	if out.ModuleDistribution != (ModuleDistribution{}) {
		t.Fatalf("expected zero module distribution, got %+v", out.ModuleDistribution)
	}
}

func TestGetOverviewSummaryRiskProfileBuckets(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	// Mixed casing, missing diacritics and stray whitespace must all
	// land in their bucket; unknown and NULL labels land nowhere.
	seedAssessment(t, db, strPtr("Baixo"), nil)
	seedAssessment(t, db, strPtr("MÉDIO"), nil)
	seedAssessment(t, db, strPtr(" alto "), nil)
	seedAssessment(t, db, strPtr("desconhecido"), nil)
	seedAssessment(t, db, nil, nil)

	out := svc.GetOverviewSummary(context.Background())

	want := RiskProfile{Low: 1, Medium: 1, High: 1}
	if out.RiskProfile != want {
		t.Fatalf("risk profile: got %+v want %+v", out.RiskProfile, want)
	}
	if out.TotalAssessments != 5 {
		t.Fatalf("total assessments: got %d want 5", out.TotalAssessments)
	}
}

func TestGetOverviewSummaryAverageScoreIgnoresNulls(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	seedAssessment(t, db, nil, intPtr(10))
	seedAssessment(t, db, nil, nil)
	seedAssessment(t, db, nil, intPtr(20))

	out := svc.GetOverviewSummary(context.Background())

	if out.AverageRiskScore != 15.0 {
		t.Fatalf("average score: got %v want 15.0", out.AverageRiskScore)
	}
}

func TestGetOverviewSummaryTopAgentsCap(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	counts := map[string]int{
		"Ruído": 7, "Poeira": 3, "Calor": 3, "Vibração": 1, "Benzeno": 1, "Sílica": 1,
	}
	for agent, n := range counts {
		for i := 0; i < n; i++ {
			seedExposure(t, db, strPtr(agent))
		}
	}

	out := svc.GetOverviewSummary(context.Background())

	if len(out.TopAgents) != 5 {
		t.Fatalf("top agents length: got %d want 5", len(out.TopAgents))
	}
	if out.TopAgents[0].Name != "Ruído" || out.TopAgents[0].OccurrenceCount != 7 {
		t.Fatalf("top agent: got %+v", out.TopAgents[0])
	}
	for i := 1; i < len(out.TopAgents); i++ {
		if out.TopAgents[i].OccurrenceCount > out.TopAgents[i-1].OccurrenceCount {
			t.Fatalf("top agents not sorted: %+v", out.TopAgents)
		}
	}
}

func TestGetOverviewSummaryUnknownAgentsCollapse(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	seedExposure(t, db, nil)
	seedExposure(t, db, strPtr(""))
	seedExposure(t, db, strPtr(UnknownAgentLabel))

	out := svc.GetOverviewSummary(context.Background())

	if len(out.TopAgents) != 1 {
		t.Fatalf("expected one collapsed bucket, got %+v", out.TopAgents)
	}
	if out.TopAgents[0].Name != UnknownAgentLabel || out.TopAgents[0].OccurrenceCount != 3 {
		t.Fatalf("collapsed bucket: got %+v", out.TopAgents[0])
	}
}

func TestGetOverviewSummaryModuleDistributionMatchesTotals(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	seedExam(t, db, date(t, "2025-01-05"), nil)
	seedExam(t, db, date(t, "2025-02-05"), nil)
	seedAssessment(t, db, nil, nil)
	seedExposure(t, db, strPtr("Ruído"))

	out := svc.GetOverviewSummary(context.Background())

	if out.ModuleDistribution.Exams != out.TotalExams ||
		out.ModuleDistribution.Assessments != out.TotalAssessments ||
		out.ModuleDistribution.ExposureRecords != out.TotalExposureRecords {
		t.Fatalf("module distribution inconsistent with totals: %+v", out)
	}
	if out.TotalExams != 2 || out.TotalAssessments != 1 || out.TotalExposureRecords != 1 {
		t.Fatalf("unexpected totals: %+v", out)
	}
}

func TestGetOverviewSummaryIdempotent(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	seedExam(t, db, date(t, "2025-01-05"), nil)
	seedAssessment(t, db, strPtr("Alto"), intPtr(80))
	seedExposure(t, db, strPtr("Ruído"))

	first := svc.GetOverviewSummary(context.Background())
	second := svc.GetOverviewSummary(context.Background())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated reads differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGetOverviewSummaryIsolatesFailedSubAggregates(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	seedExam(t, db, date(t, "2025-01-05"), nil)
	seedExposure(t, db, strPtr("Ruído"))

	// Breaking the assessment table must only zero the fields computed
	// from it; everything else still reports real data.
	if err := db.Migrator().DropTable(&domain.ErgonomicAssessment{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	out := svc.GetOverviewSummary(context.Background())

	if out.TotalExams != 1 {
		t.Fatalf("total exams: got %d want 1", out.TotalExams)
	}
	if out.TotalExposureRecords != 1 {
		t.Fatalf("total exposure: got %d want 1", out.TotalExposureRecords)
	}
	if out.TotalAssessments != 0 || out.AverageRiskScore != 0 || out.RiskProfile != (RiskProfile{}) {
		t.Fatalf("failed sub-aggregates should default to zero: %+v", out)
	}
	if len(out.TopAgents) != 1 {
		t.Fatalf("top agents should survive: %+v", out.TopAgents)
	}
	if out.ModuleDistribution.Assessments != 0 || out.ModuleDistribution.Exams != 1 {
		t.Fatalf("module distribution inconsistent: %+v", out.ModuleDistribution)
	}
}

func TestGetExamModuleSummaryMonthBuckets(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	seedExam(t, db, date(t, "2025-01-05"), nil)
	seedExam(t, db, date(t, "2025-01-20"), nil)
	seedExam(t, db, date(t, "2025-03-02"), nil)

	out := svc.GetExamModuleSummary(context.Background())

	want := []MonthBucket{
		{MonthLabel: "01/2025", Total: 2},
		{MonthLabel: "03/2025", Total: 1},
	}
	if !reflect.DeepEqual(out.ExamsByMonth, want) {
		t.Fatalf("months: got %+v want %+v", out.ExamsByMonth, want)
	}
}

func TestGetExamModuleSummaryStatusWindow(t *testing.T) {
	db := testutil.DB(t)
	today := date(t, "2025-06-15")
	svc := newDashboardServiceForTest(t, db, today)

	expired := date(t, "2025-05-01")
	dueSoon := date(t, "2025-06-30")
	windowEdge := date(t, "2025-07-15") // exactly 30 days out, inclusive
	farOut := date(t, "2025-12-01")

	seedExam(t, db, date(t, "2025-01-05"), nil)          // no expiration: valid
	seedExam(t, db, date(t, "2025-01-05"), &expired)     // expired
	seedExam(t, db, date(t, "2025-01-05"), &dueSoon)     // valid + due soon
	seedExam(t, db, date(t, "2025-01-05"), &windowEdge)  // valid + due soon
	seedExam(t, db, date(t, "2025-01-05"), &farOut)      // valid only

	out := svc.GetExamModuleSummary(context.Background())

	want := ExamStatus{Valid: 4, Expired: 1, DueSoon: 2}
	if out.ExamStatus != want {
		t.Fatalf("exam status: got %+v want %+v", out.ExamStatus, want)
	}
}

func TestGetExamModuleSummaryEmptyStore(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	out := svc.GetExamModuleSummary(context.Background())

	if out.ExamsByMonth == nil || len(out.ExamsByMonth) != 0 {
		t.Fatalf("expected empty (non-nil) month series, got %#v", out.ExamsByMonth)
	}
	if out.ExamStatus != (ExamStatus{}) {
		t.Fatalf("expected zero exam status, got %+v", out.ExamStatus)
	}
}

func TestGetExamModuleSummaryIsolatesFailure(t *testing.T) {
	db := testutil.DB(t)
	svc := newDashboardServiceForTest(t, db, date(t, "2025-06-15"))

	if err := db.Migrator().DropTable(&domain.ExamRecord{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	out := svc.GetExamModuleSummary(context.Background())

	if len(out.ExamsByMonth) != 0 {
		t.Fatalf("expected defaulted month series, got %+v", out.ExamsByMonth)
	}
	if out.ExamStatus != (ExamStatus{}) {
		t.Fatalf("expected defaulted exam status, got %+v", out.ExamStatus)
	}
}
