package models

import "time"

// LocationType описывает тип площадки для зарядной станции
type LocationType string

const (
	LocationMetroStation LocationType = "Metro Station"
	LocationShoppingMall LocationType = "Shopping Mall"
	LocationHighway      LocationType = "Highway"
	LocationResidential  LocationType = "Residential"
	LocationCommercial   LocationType = "Commercial"
	LocationRestaurant   LocationType = "Restaurant"
	LocationHotel        LocationType = "Hotel"
	LocationHospital     LocationType = "Hospital"
)

// LocationTypes перечисляет все допустимые типы площадок в порядке справочника
var LocationTypes = []LocationType{
	LocationMetroStation,
	LocationShoppingMall,
	LocationHighway,
	LocationResidential,
	LocationCommercial,
	LocationRestaurant,
	LocationHotel,
	LocationHospital,
}

// Valid сообщает, входит ли значение в справочник типов площадок
func (t LocationType) Valid() bool {
	for _, v := range LocationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// PartnershipStatus описывает стадию переговоров с партнером
type PartnershipStatus string

const (
	PartnershipPotential    PartnershipStatus = "Potential"
	PartnershipInDiscussion PartnershipStatus = "In Discussion"
	PartnershipNegotiating  PartnershipStatus = "Negotiating"
	PartnershipSigned       PartnershipStatus = "Signed"
	PartnershipActive       PartnershipStatus = "Active"
)

// PartnershipStatuses перечисляет все допустимые статусы партнерств
var PartnershipStatuses = []PartnershipStatus{
	PartnershipPotential,
	PartnershipInDiscussion,
	PartnershipNegotiating,
	PartnershipSigned,
	PartnershipActive,
}

// Valid сообщает, входит ли значение в список статусов
func (s PartnershipStatus) Valid() bool {
	for _, v := range PartnershipStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ChargingStationType описывает класс зарядного оборудования (справочные данные)
type ChargingStationType string

const (
	ChargingLevel1    ChargingStationType = "Level 1 (AC 120V)"
	ChargingLevel2    ChargingStationType = "Level 2 (AC 240V)"
	ChargingDCFast    ChargingStationType = "DC Fast Charging"
	ChargingUltraFast ChargingStationType = "Ultra Fast Charging"
)

// ChargingStationTypes перечисляет классы зарядного оборудования
var ChargingStationTypes = []ChargingStationType{
	ChargingLevel1,
	ChargingLevel2,
	ChargingDCFast,
	ChargingUltraFast,
}

// MarketData представляет исследование рынка по одному городу
type MarketData struct {
	ID                      string    `json:"id" bson:"id"`
	Region                  string    `json:"region" bson:"region"`
	City                    string    `json:"city" bson:"city"`
	EVAdoptionRate          float64   `json:"ev_adoption_rate" bson:"ev_adoption_rate"` // %
	CurrentChargingStations int       `json:"current_charging_stations" bson:"current_charging_stations"`
	Population              int64     `json:"population" bson:"population"`
	AverageIncome           float64   `json:"average_income" bson:"average_income"`
	MarketSizeMillions      float64   `json:"market_size_millions" bson:"market_size_millions"`
	GrowthRatePercentage    float64   `json:"growth_rate_percentage" bson:"growth_rate_percentage"`
	CompetitionLevel        string    `json:"competition_level" bson:"competition_level"`
	CreatedAt               time.Time `json:"created_at" bson:"created_at"`
}

// LocationAnalysis представляет оценку потенциальной площадки для станции
type LocationAnalysis struct {
	ID                     string       `json:"id" bson:"id"`
	Name                   string       `json:"name" bson:"name"`
	Address                string       `json:"address" bson:"address"`
	Latitude               float64      `json:"latitude" bson:"latitude"`
	Longitude              float64      `json:"longitude" bson:"longitude"`
	LocationType           LocationType `json:"location_type" bson:"location_type"`
	DailyTraffic           int          `json:"daily_traffic" bson:"daily_traffic"`
	NearbyAmenities        []string     `json:"nearby_amenities" bson:"nearby_amenities"`
	CompetitionWithin5km   int          `json:"competition_within_5km" bson:"competition_within_5km"`
	InstallationCost       float64      `json:"installation_cost" bson:"installation_cost"`
	ExpectedDailyUsage     int          `json:"expected_daily_usage" bson:"expected_daily_usage"`
	RevenuePotential       float64      `json:"revenue_potential" bson:"revenue_potential"`
	PartnershipOpportunity bool         `json:"partnership_opportunity" bson:"partnership_opportunity"`
	ContactInfo            *string      `json:"contact_info,omitempty" bson:"contact_info,omitempty"`
	CreatedAt              time.Time    `json:"created_at" bson:"created_at"`
}

// FinancialModel представляет финансовый сценарий.
// RoiPercentage и BreakEvenMonths вычисляются при создании и не передаются клиентом.
type FinancialModel struct {
	ID                    string    `json:"id" bson:"id"`
	ScenarioName          string    `json:"scenario_name" bson:"scenario_name"`
	InitialInvestment     float64   `json:"initial_investment" bson:"initial_investment"`
	ChargingStationCost   float64   `json:"charging_station_cost" bson:"charging_station_cost"`
	InstallationCost      float64   `json:"installation_cost" bson:"installation_cost"`
	LandLeaseMonthly      float64   `json:"land_lease_monthly" bson:"land_lease_monthly"`
	ElectricityCostPerKWh float64   `json:"electricity_cost_per_kwh" bson:"electricity_cost_per_kwh"`
	ChargingPricePerKWh   float64   `json:"charging_price_per_kwh" bson:"charging_price_per_kwh"`
	ExpectedDailyUsers    int       `json:"expected_daily_users" bson:"expected_daily_users"`
	AverageChargingAmount float64   `json:"average_charging_amount" bson:"average_charging_amount"`
	MonthlyMaintenance    float64   `json:"monthly_maintenance" bson:"monthly_maintenance"`
	StaffCostMonthly      float64   `json:"staff_cost_monthly" bson:"staff_cost_monthly"`
	RoiPercentage         float64   `json:"roi_percentage" bson:"roi_percentage"`
	BreakEvenMonths       float64   `json:"break_even_months" bson:"break_even_months"`
	CreatedAt             time.Time `json:"created_at" bson:"created_at"`
}

// Competitor представляет оператора зарядной сети на рынке
type Competitor struct {
	ID                    string    `json:"id" bson:"id"`
	CompanyName           string    `json:"company_name" bson:"company_name"`
	BusinessModel         string    `json:"business_model" bson:"business_model"`
	ChargingStationsCount int       `json:"charging_stations_count" bson:"charging_stations_count"`
	RegionsCovered        []string  `json:"regions_covered" bson:"regions_covered"`
	PricingModel          string    `json:"pricing_model" bson:"pricing_model"`
	AveragePricePerKWh    float64   `json:"average_price_per_kwh" bson:"average_price_per_kwh"`
	Strengths             []string  `json:"strengths" bson:"strengths"`
	Weaknesses            []string  `json:"weaknesses" bson:"weaknesses"`
	MarketSharePercentage float64   `json:"market_share_percentage" bson:"market_share_percentage"`
	FundingRaised         *float64  `json:"funding_raised,omitempty" bson:"funding_raised,omitempty"`
	Website               *string   `json:"website,omitempty" bson:"website,omitempty"`
	CreatedAt             time.Time `json:"created_at" bson:"created_at"`
}

// Supplier представляет поставщика зарядного оборудования
type Supplier struct {
	ID               string    `json:"id" bson:"id"`
	CompanyName      string    `json:"company_name" bson:"company_name"`
	Country          string    `json:"country" bson:"country"`
	ContactPerson    string    `json:"contact_person" bson:"contact_person"`
	Email            string    `json:"email" bson:"email"`
	Phone            string    `json:"phone" bson:"phone"`
	ProductTypes     []string  `json:"product_types" bson:"product_types"`
	MinOrderQuantity int       `json:"min_order_quantity" bson:"min_order_quantity"`
	PricePerUnit     float64   `json:"price_per_unit" bson:"price_per_unit"`
	LeadTimeDays     int       `json:"lead_time_days" bson:"lead_time_days"`
	QualityRating    float64   `json:"quality_rating" bson:"quality_rating"`
	PaymentTerms     string    `json:"payment_terms" bson:"payment_terms"`
	Certifications   []string  `json:"certifications" bson:"certifications"`
	Notes            *string   `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// Partnership представляет переговоры с владельцем площадок
type Partnership struct {
	ID                  string            `json:"id" bson:"id"`
	OrganizationName    string            `json:"organization_name" bson:"organization_name"`
	OrganizationType    string            `json:"organization_type" bson:"organization_type"`
	ContactPerson       string            `json:"contact_person" bson:"contact_person"`
	Email               string            `json:"email" bson:"email"`
	Phone               string            `json:"phone" bson:"phone"`
	PartnershipType     string            `json:"partnership_type" bson:"partnership_type"`
	PotentialLocations  []string          `json:"potential_locations" bson:"potential_locations"`
	RevenueSharingModel string            `json:"revenue_sharing_model" bson:"revenue_sharing_model"`
	Status              PartnershipStatus `json:"status" bson:"status"`
	Notes               *string           `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt           time.Time         `json:"created_at" bson:"created_at"`
}

// Milestone представляет контрольную точку бизнес-плана
type Milestone struct {
	Month     int    `json:"month" bson:"month"`
	Milestone string `json:"milestone" bson:"milestone"`
	Status    string `json:"status" bson:"status"`
}

// PlanMarketInsights содержит рыночный контекст сгенерированного плана
type PlanMarketInsights struct {
	MarketSize         float64 `json:"market_size" bson:"market_size"`
	GrowthRate         float64 `json:"growth_rate" bson:"growth_rate"`
	CompetitionGap     string  `json:"competition_gap" bson:"competition_gap"`
	SuccessProbability string  `json:"success_probability" bson:"success_probability"`
}

// BusinessPlan представляет план развертывания сети станций
type BusinessPlan struct {
	ID                      string              `json:"id" bson:"id"`
	PlanName                string              `json:"plan_name" bson:"plan_name"`
	TargetRegion            string              `json:"target_region" bson:"target_region"`
	TimelineMonths          int                 `json:"timeline_months" bson:"timeline_months"`
	TotalInvestmentRequired float64             `json:"total_investment_required" bson:"total_investment_required"`
	TargetStations          int                 `json:"target_stations" bson:"target_stations"`
	RevenueProjections      map[string]float64  `json:"revenue_projections" bson:"revenue_projections"`
	KeyMilestones           []Milestone         `json:"key_milestones" bson:"key_milestones"`
	RiskFactors             []string            `json:"risk_factors" bson:"risk_factors"`
	MitigationStrategies    []string            `json:"mitigation_strategies" bson:"mitigation_strategies"`
	MarketInsights          *PlanMarketInsights `json:"market_insights,omitempty" bson:"market_insights,omitempty"`
	CreatedAt               time.Time           `json:"created_at" bson:"created_at"`
}

// RegulatoryInfo представляет требование регулятора в конкретном штате
type RegulatoryInfo struct {
	ID                     string    `json:"id" bson:"id"`
	RegulationType         string    `json:"regulation_type" bson:"regulation_type"`
	State                  string    `json:"state" bson:"state"`
	Description            string    `json:"description" bson:"description"`
	ComplianceRequirements []string  `json:"compliance_requirements" bson:"compliance_requirements"`
	FeesApplicable         float64   `json:"fees_applicable" bson:"fees_applicable"`
	ProcessingTimeDays     int       `json:"processing_time_days" bson:"processing_time_days"`
	RequiredDocuments      []string  `json:"required_documents" bson:"required_documents"`
	Authority              string    `json:"authority" bson:"authority"`
	LastUpdated            time.Time `json:"last_updated" bson:"last_updated"`
}

// ReferenceItem представляет запись справочника в PostgreSQL
type ReferenceItem struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Region представляет регион в PostgreSQL
type Region struct {
	ID             int    `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	ParentRegionID *int   `json:"parent_region_id,omitempty" db:"parent_region_id"`
}
