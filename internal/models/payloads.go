package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
)

// newRecordMeta выдает идентификатор и время создания новой записи
func newRecordMeta() (string, time.Time) {
	return uuid.NewString(), time.Now().UTC()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// required принимает пары "имя поля, значение" и проверяет их по порядку
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return invalid("%s is required", pairs[i])
		}
	}
	return nil
}

// MarketDataCreate представляет тело запроса на создание исследования рынка
type MarketDataCreate struct {
	Region                  string  `json:"region"`
	City                    string  `json:"city"`
	EVAdoptionRate          float64 `json:"ev_adoption_rate"`
	CurrentChargingStations int     `json:"current_charging_stations"`
	Population              int64   `json:"population"`
	AverageIncome           float64 `json:"average_income"`
	MarketSizeMillions      float64 `json:"market_size_millions"`
	GrowthRatePercentage    float64 `json:"growth_rate_percentage"`
	CompetitionLevel        string  `json:"competition_level"`
}

// Validate проверяет обязательные поля и допустимые диапазоны
func (c *MarketDataCreate) Validate() error {
	if err := required("region", c.Region, "city", c.City); err != nil {
		return err
	}
	if c.Population <= 0 {
		return invalid("population must be positive")
	}
	if c.CurrentChargingStations < 0 {
		return invalid("current_charging_stations must not be negative")
	}
	if c.EVAdoptionRate < 0 || c.EVAdoptionRate > 100 {
		return invalid("ev_adoption_rate must be between 0 and 100")
	}
	return nil
}

// Record строит запись с новым идентификатором
func (c *MarketDataCreate) Record() *MarketData {
	id, now := newRecordMeta()
	return &MarketData{
		ID:                      id,
		Region:                  c.Region,
		City:                    c.City,
		EVAdoptionRate:          c.EVAdoptionRate,
		CurrentChargingStations: c.CurrentChargingStations,
		Population:              c.Population,
		AverageIncome:           c.AverageIncome,
		MarketSizeMillions:      c.MarketSizeMillions,
		GrowthRatePercentage:    c.GrowthRatePercentage,
		CompetitionLevel:        c.CompetitionLevel,
		CreatedAt:               now,
	}
}

// LocationAnalysisCreate представляет тело запроса на создание оценки площадки
type LocationAnalysisCreate struct {
	Name                   string       `json:"name"`
	Address                string       `json:"address"`
	Latitude               float64      `json:"latitude"`
	Longitude              float64      `json:"longitude"`
	LocationType           LocationType `json:"location_type"`
	DailyTraffic           int          `json:"daily_traffic"`
	NearbyAmenities        []string     `json:"nearby_amenities"`
	CompetitionWithin5km   int          `json:"competition_within_5km"`
	InstallationCost       float64      `json:"installation_cost"`
	ExpectedDailyUsage     int          `json:"expected_daily_usage"`
	RevenuePotential       float64      `json:"revenue_potential"`
	PartnershipOpportunity bool         `json:"partnership_opportunity"`
	ContactInfo            *string      `json:"contact_info,omitempty"`
}

// Validate проверяет обязательные поля и тип площадки
func (c *LocationAnalysisCreate) Validate() error {
	if err := required("name", c.Name, "address", c.Address); err != nil {
		return err
	}
	if !c.LocationType.Valid() {
		return invalid("unknown location_type %q", c.LocationType)
	}
	if c.DailyTraffic < 0 || c.CompetitionWithin5km < 0 || c.ExpectedDailyUsage < 0 {
		return invalid("daily_traffic, competition_within_5km and expected_daily_usage must not be negative")
	}
	if c.RevenuePotential < 0 || c.InstallationCost < 0 {
		return invalid("revenue_potential and installation_cost must not be negative")
	}
	return nil
}

// Record строит запись с новым идентификатором
func (c *LocationAnalysisCreate) Record() *LocationAnalysis {
	id, now := newRecordMeta()
	amenities := c.NearbyAmenities
	if amenities == nil {
		amenities = []string{}
	}
	return &LocationAnalysis{
		ID:                     id,
		Name:                   c.Name,
		Address:                c.Address,
		Latitude:               c.Latitude,
		Longitude:              c.Longitude,
		LocationType:           c.LocationType,
		DailyTraffic:           c.DailyTraffic,
		NearbyAmenities:        amenities,
		CompetitionWithin5km:   c.CompetitionWithin5km,
		InstallationCost:       c.InstallationCost,
		ExpectedDailyUsage:     c.ExpectedDailyUsage,
		RevenuePotential:       c.RevenuePotential,
		PartnershipOpportunity: c.PartnershipOpportunity,
		ContactInfo:            c.ContactInfo,
		CreatedAt:              now,
	}
}

// FinancialModelCreate представляет тело запроса на создание финансового сценария
type FinancialModelCreate struct {
	ScenarioName          string  `json:"scenario_name"`
	InitialInvestment     float64 `json:"initial_investment"`
	ChargingStationCost   float64 `json:"charging_station_cost"`
	InstallationCost      float64 `json:"installation_cost"`
	LandLeaseMonthly      float64 `json:"land_lease_monthly"`
	ElectricityCostPerKWh float64 `json:"electricity_cost_per_kwh"`
	ChargingPricePerKWh   float64 `json:"charging_price_per_kwh"`
	ExpectedDailyUsers    int     `json:"expected_daily_users"`
	AverageChargingAmount float64 `json:"average_charging_amount"`
	MonthlyMaintenance    float64 `json:"monthly_maintenance"`
	StaffCostMonthly      float64 `json:"staff_cost_monthly"`
}

// Validate проверяет делители формулы окупаемости
func (c *FinancialModelCreate) Validate() error {
	if err := required("scenario_name", c.ScenarioName); err != nil {
		return err
	}
	if c.InitialInvestment <= 0 {
		return invalid("initial_investment must be positive")
	}
	if c.ChargingPricePerKWh <= 0 {
		return invalid("charging_price_per_kwh must be positive")
	}
	if c.ExpectedDailyUsers < 0 {
		return invalid("expected_daily_users must not be negative")
	}
	return nil
}

// Record строит запись сценария с уже вычисленными производными показателями
func (c *FinancialModelCreate) Record(roiPercentage, breakEvenMonths float64) *FinancialModel {
	id, now := newRecordMeta()
	return &FinancialModel{
		ID:                    id,
		ScenarioName:          c.ScenarioName,
		InitialInvestment:     c.InitialInvestment,
		ChargingStationCost:   c.ChargingStationCost,
		InstallationCost:      c.InstallationCost,
		LandLeaseMonthly:      c.LandLeaseMonthly,
		ElectricityCostPerKWh: c.ElectricityCostPerKWh,
		ChargingPricePerKWh:   c.ChargingPricePerKWh,
		ExpectedDailyUsers:    c.ExpectedDailyUsers,
		AverageChargingAmount: c.AverageChargingAmount,
		MonthlyMaintenance:    c.MonthlyMaintenance,
		StaffCostMonthly:      c.StaffCostMonthly,
		RoiPercentage:         roiPercentage,
		BreakEvenMonths:       breakEvenMonths,
		CreatedAt:             now,
	}
}

// CompetitorCreate представляет тело запроса на добавление конкурента
type CompetitorCreate struct {
	CompanyName           string   `json:"company_name"`
	BusinessModel         string   `json:"business_model"`
	ChargingStationsCount int      `json:"charging_stations_count"`
	RegionsCovered        []string `json:"regions_covered"`
	PricingModel          string   `json:"pricing_model"`
	AveragePricePerKWh    float64  `json:"average_price_per_kwh"`
	Strengths             []string `json:"strengths"`
	Weaknesses            []string `json:"weaknesses"`
	MarketSharePercentage float64  `json:"market_share_percentage"`
	FundingRaised         *float64 `json:"funding_raised,omitempty"`
	Website               *string  `json:"website,omitempty"`
}

// Validate проверяет обязательные поля и диапазон доли рынка
func (c *CompetitorCreate) Validate() error {
	if err := required("company_name", c.CompanyName); err != nil {
		return err
	}
	if c.ChargingStationsCount < 0 {
		return invalid("charging_stations_count must not be negative")
	}
	if c.MarketSharePercentage < 0 || c.MarketSharePercentage > 100 {
		return invalid("market_share_percentage must be between 0 and 100")
	}
	if c.AveragePricePerKWh < 0 {
		return invalid("average_price_per_kwh must not be negative")
	}
	return nil
}

// Record строит запись с новым идентификатором
func (c *CompetitorCreate) Record() *Competitor {
	id, now := newRecordMeta()
	return &Competitor{
		ID:                    id,
		CompanyName:           c.CompanyName,
		BusinessModel:         c.BusinessModel,
		ChargingStationsCount: c.ChargingStationsCount,
		RegionsCovered:        nonNil(c.RegionsCovered),
		PricingModel:          c.PricingModel,
		AveragePricePerKWh:    c.AveragePricePerKWh,
		Strengths:             nonNil(c.Strengths),
		Weaknesses:            nonNil(c.Weaknesses),
		MarketSharePercentage: c.MarketSharePercentage,
		FundingRaised:         c.FundingRaised,
		Website:               c.Website,
		CreatedAt:             now,
	}
}

// SupplierCreate представляет тело запроса на добавление поставщика
type SupplierCreate struct {
	CompanyName      string   `json:"company_name"`
	Country          string   `json:"country"`
	ContactPerson    string   `json:"contact_person"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	ProductTypes     []string `json:"product_types"`
	MinOrderQuantity int      `json:"min_order_quantity"`
	PricePerUnit     float64  `json:"price_per_unit"`
	LeadTimeDays     int      `json:"lead_time_days"`
	QualityRating    float64  `json:"quality_rating"`
	PaymentTerms     string   `json:"payment_terms"`
	Certifications   []string `json:"certifications"`
	Notes            *string  `json:"notes,omitempty"`
}

// Validate проверяет обязательные поля поставщика
func (c *SupplierCreate) Validate() error {
	if err := required("company_name", c.CompanyName, "country", c.Country); err != nil {
		return err
	}
	if c.PricePerUnit <= 0 {
		return invalid("price_per_unit must be positive")
	}
	if c.MinOrderQuantity <= 0 {
		return invalid("min_order_quantity must be positive")
	}
	return nil
}

// Record строит запись с новым идентификатором
func (c *SupplierCreate) Record() *Supplier {
	id, now := newRecordMeta()
	return &Supplier{
		ID:               id,
		CompanyName:      c.CompanyName,
		Country:          c.Country,
		ContactPerson:    c.ContactPerson,
		Email:            c.Email,
		Phone:            c.Phone,
		ProductTypes:     nonNil(c.ProductTypes),
		MinOrderQuantity: c.MinOrderQuantity,
		PricePerUnit:     c.PricePerUnit,
		LeadTimeDays:     c.LeadTimeDays,
		QualityRating:    c.QualityRating,
		PaymentTerms:     c.PaymentTerms,
		Certifications:   nonNil(c.Certifications),
		Notes:            c.Notes,
		CreatedAt:        now,
	}
}

// PartnershipCreate представляет тело запроса на добавление партнерства
type PartnershipCreate struct {
	OrganizationName    string            `json:"organization_name"`
	OrganizationType    string            `json:"organization_type"`
	ContactPerson       string            `json:"contact_person"`
	Email               string            `json:"email"`
	Phone               string            `json:"phone"`
	PartnershipType     string            `json:"partnership_type"`
	PotentialLocations  []string          `json:"potential_locations"`
	RevenueSharingModel string            `json:"revenue_sharing_model"`
	Status              PartnershipStatus `json:"status"`
	Notes               *string           `json:"notes,omitempty"`
}

// Validate проверяет обязательные поля и статус
func (c *PartnershipCreate) Validate() error {
	if err := required("organization_name", c.OrganizationName, "organization_type", c.OrganizationType); err != nil {
		return err
	}
	if !c.Status.Valid() {
		return invalid("unknown status %q", c.Status)
	}
	return nil
}

// Record строит запись с новым идентификатором
func (c *PartnershipCreate) Record() *Partnership {
	id, now := newRecordMeta()
	return &Partnership{
		ID:                  id,
		OrganizationName:    c.OrganizationName,
		OrganizationType:    c.OrganizationType,
		ContactPerson:       c.ContactPerson,
		Email:               c.Email,
		Phone:               c.Phone,
		PartnershipType:     c.PartnershipType,
		PotentialLocations:  nonNil(c.PotentialLocations),
		RevenueSharingModel: c.RevenueSharingModel,
		Status:              c.Status,
		Notes:               c.Notes,
		CreatedAt:           now,
	}
}

// BusinessPlanCreate представляет тело запроса на сохранение готового плана
type BusinessPlanCreate struct {
	PlanName                string             `json:"plan_name"`
	TargetRegion            string             `json:"target_region"`
	TimelineMonths          int                `json:"timeline_months"`
	TotalInvestmentRequired float64            `json:"total_investment_required"`
	TargetStations          int                `json:"target_stations"`
	RevenueProjections      map[string]float64 `json:"revenue_projections"`
	KeyMilestones           []Milestone        `json:"key_milestones"`
	RiskFactors             []string           `json:"risk_factors"`
	MitigationStrategies    []string           `json:"mitigation_strategies"`
}

// Validate проверяет обязательные поля плана
func (c *BusinessPlanCreate) Validate() error {
	if err := required("plan_name", c.PlanName, "target_region", c.TargetRegion); err != nil {
		return err
	}
	if c.TimelineMonths < 0 || c.TargetStations < 0 {
		return invalid("timeline_months and target_stations must not be negative")
	}
	return nil
}

// Record строит запись с новым идентификатором
func (c *BusinessPlanCreate) Record() *BusinessPlan {
	id, now := newRecordMeta()
	projections := c.RevenueProjections
	if projections == nil {
		projections = map[string]float64{}
	}
	milestones := c.KeyMilestones
	if milestones == nil {
		milestones = []Milestone{}
	}
	return &BusinessPlan{
		ID:                      id,
		PlanName:                c.PlanName,
		TargetRegion:            c.TargetRegion,
		TimelineMonths:          c.TimelineMonths,
		TotalInvestmentRequired: c.TotalInvestmentRequired,
		TargetStations:          c.TargetStations,
		RevenueProjections:      projections,
		KeyMilestones:           milestones,
		RiskFactors:             nonNil(c.RiskFactors),
		MitigationStrategies:    nonNil(c.MitigationStrategies),
		CreatedAt:               now,
	}
}

// RegulatoryInfoCreate представляет тело запроса на добавление требования регулятора
type RegulatoryInfoCreate struct {
	RegulationType         string   `json:"regulation_type"`
	State                  string   `json:"state"`
	Description            string   `json:"description"`
	ComplianceRequirements []string `json:"compliance_requirements"`
	FeesApplicable         float64  `json:"fees_applicable"`
	ProcessingTimeDays     int      `json:"processing_time_days"`
	RequiredDocuments      []string `json:"required_documents"`
	Authority              string   `json:"authority"`
}

// Validate проверяет обязательные поля требования
func (c *RegulatoryInfoCreate) Validate() error {
	if err := required("regulation_type", c.RegulationType, "state", c.State); err != nil {
		return err
	}
	if c.FeesApplicable < 0 || c.ProcessingTimeDays < 0 {
		return invalid("fees_applicable and processing_time_days must not be negative")
	}
	return nil
}

// Record строит запись с новым идентификатором
func (c *RegulatoryInfoCreate) Record() *RegulatoryInfo {
	id, now := newRecordMeta()
	return &RegulatoryInfo{
		ID:                     id,
		RegulationType:         c.RegulationType,
		State:                  c.State,
		Description:            c.Description,
		ComplianceRequirements: nonNil(c.ComplianceRequirements),
		FeesApplicable:         c.FeesApplicable,
		ProcessingTimeDays:     c.ProcessingTimeDays,
		RequiredDocuments:      nonNil(c.RequiredDocuments),
		Authority:              c.Authority,
		LastUpdated:            now,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
