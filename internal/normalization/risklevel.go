package normalization

import "strings"

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// riskMarkers holds the substring rules in precedence order; the
// first bucket whose markers match wins and a label lands in at most
// one bucket. Markers are compared against the folded label, so any
// casing or diacritic variant of the Portuguese terms matches too.
var riskMarkers = []struct {
	level   RiskLevel
	markers []string
}{
	{RiskLow, []string{"baixo", "low"}},
	{RiskMedium, []string{"medio", "medium"}},
	{RiskHigh, []string{"alto", "high"}},
}

// ClassifyRiskLevel buckets a free-text risk label. The second return
// is false when the label is empty or matches no known marker.
func ClassifyRiskLevel(label string) (RiskLevel, bool) {
	folded := FoldLabel(label)
	if folded == "" {
		return "", false
	}
	for _, rule := range riskMarkers {
		for _, marker := range rule.markers {
			if strings.Contains(folded, marker) {
				return rule.level, true
			}
		}
	}
	return "", false
}
