package normalization

import "testing"

func TestClassifyRiskLevel(t *testing.T) {
	cases := []struct {
		label string
		want  RiskLevel
		ok    bool
	}{
		{"Baixo", RiskLow, true},
		{"baixo", RiskLow, true},
		{"MÉDIO", RiskMedium, true},
		{"medio", RiskMedium, true},
		{"Médio", RiskMedium, true},
		{" alto ", RiskHigh, true},
		{"ALTO", RiskHigh, true},
		{"Risco Alto", RiskHigh, true},
		{"low", RiskLow, true},
		{"medium", RiskMedium, true},
		{"high", RiskHigh, true},
		{"desconhecido", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, ok := ClassifyRiskLevel(tc.label)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ClassifyRiskLevel(%q) = (%q, %v), want (%q, %v)", tc.label, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFoldLabel(t *testing.T) {
	if got := FoldLabel("  MÉDIO  "); got != "medio" {
		t.Fatalf("FoldLabel: got %q, want %q", got, "medio")
	}
	if got := FoldLabel("Baixo"); got != "baixo" {
		t.Fatalf("FoldLabel: got %q, want %q", got, "baixo")
	}
}
