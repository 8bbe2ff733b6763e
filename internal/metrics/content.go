package metrics

import "github.com/akozadaev/go_ev_charging_platform/internal/models"

// Статические тексты ответов. Не вычисляются из сохраненных данных.

const pendingStatus = "pending"

var planMilestones = []models.Milestone{
	{Month: 3, Milestone: "Complete market research and location analysis", Status: pendingStatus},
	{Month: 6, Milestone: "Secure first 3 partnerships (Metro stations)", Status: pendingStatus},
	{Month: 9, Milestone: "Import first batch of chargers from China", Status: pendingStatus},
	{Month: 12, Milestone: "Launch first 5 charging stations", Status: pendingStatus},
	{Month: 18, Milestone: "Expand to 25 stations across Bangalore", Status: pendingStatus},
	{Month: 24, Milestone: "Start manufacturing setup in India", Status: pendingStatus},
}

var planRiskFactors = []string{
	"Regulatory changes in EV charging policies",
	"Increased competition from established players",
	"Supply chain disruptions from China",
	"Land acquisition challenges",
	"Technology obsolescence",
}

var planMitigationStrategies = []string{
	"Maintain close relationships with regulatory authorities",
	"Focus on unique value propositions and partnerships",
	"Diversify supplier base across multiple countries",
	"Secure long-term land lease agreements",
	"Invest in R&D for future-ready technology",
}

const (
	planCompetitionGap     = "High demand, moderate competition"
	planSuccessProbability = "85% with proper execution"
)

var costSavingsNotes = map[string]string{
	"china_vs_others":    "60-70% cost savings typically available from China suppliers",
	"bulk_order_savings": "15-25% additional savings on orders >100 units",
}

var complianceChecklist = []string{
	"Obtain business registration",
	"Apply for electrical contractor license",
	"Get technical safety certifications",
	"Submit environmental impact assessment",
	"Acquire fire safety clearance",
	"Apply for EV charging station license",
}

// defaultRequirement - типовое требование на лицензию (по образцу Karnataka),
// подставляется для штатов без сохраненных требований.
func defaultRequirement(state string) models.RegulatoryInfo {
	return models.RegulatoryInfo{
		RegulationType: "EV Charging Station License",
		State:          state,
		Description:    "License required to operate EV charging stations",
		ComplianceRequirements: []string{
			"Technical safety certification",
			"Electrical contractor license",
			"Environmental clearance",
			"Fire safety certificate",
		},
		FeesApplicable:     25000,
		ProcessingTimeDays: 45,
		RequiredDocuments: []string{
			"Business registration certificate",
			"Technical specifications of chargers",
			"Site layout plans",
			"Electrical safety certificates",
		},
		Authority: "Karnataka Electricity Regulatory Commission",
	}
}

var dashboardKeyMetrics = map[string]string{
	"bangalore_market_size": "₹850 Crores",
	"projected_growth":      "35% annually",
	"investment_needed":     "₹5-15 Lakhs per station",
	"roi_potential":         "15-25% annually",
}

var dashboardQuickInsights = []string{
	"Bangalore has 450+ existing charging stations with demand for 1000+",
	"Metro station partnerships offer highest ROI potential",
	"China imports can reduce costs by 60-70%",
	"Fast charging (30-150kW) preferred by 78% users",
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneMap(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
