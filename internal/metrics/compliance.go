package metrics

import "github.com/akozadaev/go_ev_charging_platform/internal/models"

// ComplianceSummary представляет сводку регуляторных требований штата
type ComplianceSummary struct {
	State                 string                  `json:"state"`
	TotalRequirements     int                     `json:"total_requirements"`
	TotalFees             float64                 `json:"total_fees"`
	MaxProcessingTimeDays int                     `json:"max_processing_time_days"`
	Requirements          []models.RegulatoryInfo `json:"requirements"`
	ComplianceChecklist   []string                `json:"compliance_checklist"`
}

// SummarizeCompliance суммирует сборы и находит самый долгий срок рассмотрения.
// Для штата без сохраненных требований подставляется типовое требование на лицензию.
func SummarizeCompliance(state string, requirements []models.RegulatoryInfo) ComplianceSummary {
	if len(requirements) == 0 {
		requirements = []models.RegulatoryInfo{defaultRequirement(state)}
	}

	var fees float64
	maxDays := 0
	for _, r := range requirements {
		fees += r.FeesApplicable
		if r.ProcessingTimeDays > maxDays {
			maxDays = r.ProcessingTimeDays
		}
	}

	return ComplianceSummary{
		State:                 state,
		TotalRequirements:     len(requirements),
		TotalFees:             fees,
		MaxProcessingTimeDays: maxDays,
		Requirements:          requirements,
		ComplianceChecklist:   cloneStrings(complianceChecklist),
	}
}
