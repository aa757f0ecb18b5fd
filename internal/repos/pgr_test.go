package repos

import (
	"context"
	"testing"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/repos/testutil"
)

func TestPGRRepoGraphByParent(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPGRRepo(db, testutil.Logger(t))
	ctx := context.Background()

	company, err := repo.CreateCompany(ctx, nil, &domain.Company{Name: "Metalúrgica Aurora"})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	other, err := repo.CreateCompany(ctx, nil, &domain.Company{Name: "Transportadora Sul"})
	if err != nil {
		t.Fatalf("create other company: %v", err)
	}

	sector, err := repo.CreateSector(ctx, nil, &domain.Sector{CompanyID: company.ID, Name: "Fundição"})
	if err != nil {
		t.Fatalf("create sector: %v", err)
	}
	if _, err := repo.CreateSector(ctx, nil, &domain.Sector{CompanyID: other.ID, Name: "Logística"}); err != nil {
		t.Fatalf("create other sector: %v", err)
	}

	hazard, err := repo.CreateHazard(ctx, nil, &domain.Hazard{SectorID: sector.ID, Name: "Ruído contínuo", Agent: "Ruído"})
	if err != nil {
		t.Fatalf("create hazard: %v", err)
	}
	risk, err := repo.CreateRisk(ctx, nil, &domain.Risk{HazardID: hazard.ID, Probability: 3, Severity: 4})
	if err != nil {
		t.Fatalf("create risk: %v", err)
	}
	if _, err := repo.CreateAction(ctx, nil, &domain.ControlAction{RiskID: risk.ID, Recommendation: "Fornecer protetor auricular", Status: "pendente"}); err != nil {
		t.Fatalf("create action: %v", err)
	}

	companies, err := repo.ListCompanies(ctx, nil)
	if err != nil {
		t.Fatalf("list companies: %v", err)
	}
	if len(companies) != 2 {
		t.Fatalf("companies: got %d want 2", len(companies))
	}

	// Child listings only see their own parent's rows.
	sectors, err := repo.ListSectorsByCompany(ctx, nil, company.ID)
	if err != nil {
		t.Fatalf("list sectors: %v", err)
	}
	if len(sectors) != 1 || sectors[0].Name != "Fundição" {
		t.Fatalf("sectors: got %+v", sectors)
	}

	hazards, err := repo.ListHazardsBySector(ctx, nil, sector.ID)
	if err != nil {
		t.Fatalf("list hazards: %v", err)
	}
	if len(hazards) != 1 {
		t.Fatalf("hazards: got %d want 1", len(hazards))
	}

	risks, err := repo.ListRisksByHazard(ctx, nil, hazard.ID)
	if err != nil {
		t.Fatalf("list risks: %v", err)
	}
	if len(risks) != 1 || risks[0].Severity != 4 {
		t.Fatalf("risks: got %+v", risks)
	}

	actions, err := repo.ListActionsByRisk(ctx, nil, risk.ID)
	if err != nil {
		t.Fatalf("list actions: %v", err)
	}
	if len(actions) != 1 || actions[0].Status != "pendente" {
		t.Fatalf("actions: got %+v", actions)
	}

	// A parent with no children lists empty, not an error.
	empty, err := repo.ListSectorsByCompany(ctx, nil, 9999)
	if err != nil {
		t.Fatalf("list sectors of missing company: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no sectors, got %+v", empty)
	}
}
