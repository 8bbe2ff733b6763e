package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

// Dataset - набор тестовых данных индийского рынка зарядных станций
type Dataset struct {
	MarketData     []models.MarketData
	Competitors    []models.Competitor
	Suppliers      []models.Supplier
	Partnerships   []models.Partnership
	Locations      []models.LocationAnalysis
	RegulatoryInfo []models.RegulatoryInfo
}

// Samples строит набор тестовых данных с новыми идентификаторами и временем now
func Samples(now time.Time) Dataset {
	return Dataset{
		MarketData:     sampleMarketData(now),
		Competitors:    sampleCompetitors(now),
		Suppliers:      sampleSuppliers(now),
		Partnerships:   samplePartnerships(now),
		Locations:      sampleLocations(now),
		RegulatoryInfo: sampleRegulatoryInfo(now),
	}
}

func sampleMarketData(now time.Time) []models.MarketData {
	return []models.MarketData{
		{
			ID:                      uuid.NewString(),
			Region:                  "Karnataka",
			City:                    "Bangalore",
			EVAdoptionRate:          8.5,
			CurrentChargingStations: 450,
			Population:              12000000,
			AverageIncome:           650000,
			MarketSizeMillions:      850,
			GrowthRatePercentage:    35,
			CompetitionLevel:        "High",
			CreatedAt:               now,
		},
		{
			ID:                      uuid.NewString(),
			Region:                  "Maharashtra",
			City:                    "Mumbai",
			EVAdoptionRate:          6.2,
			CurrentChargingStations: 380,
			Population:              20000000,
			AverageIncome:           750000,
			MarketSizeMillions:      1200,
			GrowthRatePercentage:    32,
			CompetitionLevel:        "Very High",
			CreatedAt:               now,
		},
		{
			ID:                      uuid.NewString(),
			Region:                  "Delhi NCR",
			City:                    "Delhi",
			EVAdoptionRate:          7.8,
			CurrentChargingStations: 520,
			Population:              18000000,
			AverageIncome:           680000,
			MarketSizeMillions:      950,
			GrowthRatePercentage:    38,
			CompetitionLevel:        "High",
			CreatedAt:               now,
		},
	}
}

func sampleCompetitors(now time.Time) []models.Competitor {
	return []models.Competitor{
		{
			ID:                    uuid.NewString(),
			CompanyName:           "Tata Power",
			BusinessModel:         "B2B and B2C charging solutions",
			ChargingStationsCount: 1200,
			RegionsCovered:        []string{"Maharashtra", "Karnataka", "Delhi", "Tamil Nadu"},
			PricingModel:          "Pay per kWh",
			AveragePricePerKWh:    18,
			Strengths:             []string{"Established brand", "Wide network", "Corporate partnerships"},
			Weaknesses:            []string{"Higher pricing", "Slow expansion"},
			MarketSharePercentage: 25,
			FundingRaised:         floatPtr(500),
			Website:               strPtr("https://www.tatapower.com"),
			CreatedAt:             now,
		},
		{
			ID:                    uuid.NewString(),
			CompanyName:           "ChargeZone",
			BusinessModel:         "Public and semi-public charging",
			ChargingStationsCount: 800,
			RegionsCovered:        []string{"Karnataka", "Telangana", "Tamil Nadu"},
			PricingModel:          "Subscription + pay per use",
			AveragePricePerKWh:    16,
			Strengths:             []string{"Tech-forward", "Mobile app", "Fast charging"},
			Weaknesses:            []string{"Limited network", "New brand"},
			MarketSharePercentage: 15,
			FundingRaised:         floatPtr(120),
			Website:               strPtr("https://www.chargezone.in"),
			CreatedAt:             now,
		},
		{
			ID:                    uuid.NewString(),
			CompanyName:           "Ather Energy",
			BusinessModel:         "Vehicle + charging ecosystem",
			ChargingStationsCount: 650,
			RegionsCovered:        []string{"Karnataka", "Tamil Nadu", "Maharashtra"},
			PricingModel:          "Free for Ather owners, paid for others",
			AveragePricePerKWh:    15,
			Strengths:             []string{"Integrated ecosystem", "Premium quality", "Tech innovation"},
			Weaknesses:            []string{"Limited to own customers primarily", "High cost"},
			MarketSharePercentage: 12,
			FundingRaised:         floatPtr(400),
			Website:               strPtr("https://www.atherenergy.com"),
			CreatedAt:             now,
		},
	}
}

func sampleSuppliers(now time.Time) []models.Supplier {
	return []models.Supplier{
		{
			ID:               uuid.NewString(),
			CompanyName:      "Shenzhen EVSE Technology",
			Country:          "China",
			ContactPerson:    "Wang Li",
			Email:            "sales@evsetech.com",
			Phone:            "+86-755-2847-9988",
			ProductTypes:     []string{"DC Fast Chargers", "AC Chargers", "Charging Cables"},
			MinOrderQuantity: 50,
			PricePerUnit:     85000,
			LeadTimeDays:     35,
			QualityRating:    8.5,
			PaymentTerms:     "30% advance, 70% on shipment",
			Certifications:   []string{"CE", "FCC", "BIS India"},
			Notes:            strPtr("Reliable supplier with good India export experience"),
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			CompanyName:      "Guangzhou EV Charger Solutions",
			Country:          "China",
			ContactPerson:    "Zhang Wei",
			Email:            "export@gzevcs.com",
			Phone:            "+86-20-8564-7731",
			ProductTypes:     []string{"Ultra Fast Chargers", "Smart Charging Systems"},
			MinOrderQuantity: 25,
			PricePerUnit:     125000,
			LeadTimeDays:     42,
			QualityRating:    9.2,
			PaymentTerms:     "40% advance, 60% on delivery",
			Certifications:   []string{"CE", "UL", "BIS India", "CCS"},
			Notes:            strPtr("Premium quality, higher price point"),
			CreatedAt:        now,
		},
	}
}

func samplePartnerships(now time.Time) []models.Partnership {
	return []models.Partnership{
		{
			ID:                  uuid.NewString(),
			OrganizationName:    "BMRCL (Bangalore Metro)",
			OrganizationType:    "Metro Authority",
			ContactPerson:       "Rajesh Kumar",
			Email:               "partnerships@bmrcl.com",
			Phone:               "+91-80-2294-5555",
			PartnershipType:     "Revenue Sharing",
			PotentialLocations:  []string{"MG Road Metro", "Brigade Road", "Whitefield", "Electronic City"},
			RevenueSharingModel: "70-30 split (us-them)",
			Status:              models.PartnershipInDiscussion,
			Notes:               strPtr("Very interested, needs formal proposal"),
			CreatedAt:           now,
		},
		{
			ID:                  uuid.NewString(),
			OrganizationName:    "Forum Mall",
			OrganizationType:    "Shopping Mall",
			ContactPerson:       "Priya Sharma",
			Email:               "leasing@forummalls.in",
			Phone:               "+91-80-4567-8890",
			PartnershipType:     "Fixed Rent + Revenue Share",
			PotentialLocations:  []string{"Forum Mall Koramangala", "Forum Neighbourhood Whitefield"},
			RevenueSharingModel: "₹50K/month rent + 20% revenue share",
			Status:              models.PartnershipNegotiating,
			Notes:               strPtr("Prime locations, high footfall"),
			CreatedAt:           now,
		},
	}
}

func sampleLocations(now time.Time) []models.LocationAnalysis {
	return []models.LocationAnalysis{
		{
			ID:                     uuid.NewString(),
			Name:                   "MG Road Metro Station",
			Address:                "MG Road, Bangalore, Karnataka 560001",
			Latitude:               12.9716,
			Longitude:              77.5946,
			LocationType:           models.LocationMetroStation,
			DailyTraffic:           15000,
			NearbyAmenities:        []string{"Shopping", "Offices", "Restaurants", "Hotels"},
			CompetitionWithin5km:   3,
			InstallationCost:       450000,
			ExpectedDailyUsage:     180,
			RevenuePotential:       285000,
			PartnershipOpportunity: true,
			ContactInfo:            strPtr("BMRCL Partnership Team"),
			CreatedAt:              now,
		},
		{
			ID:                     uuid.NewString(),
			Name:                   "Electronic City IT Hub",
			Address:                "Electronic City Phase 1, Bangalore 560100",
			Latitude:               12.8456,
			Longitude:              77.6603,
			LocationType:           models.LocationCommercial,
			DailyTraffic:           25000,
			NearbyAmenities:        []string{"IT Companies", "Food Courts", "ATMs", "Parking"},
			CompetitionWithin5km:   2,
			InstallationCost:       380000,
			ExpectedDailyUsage:     220,
			RevenuePotential:       350000,
			PartnershipOpportunity: true,
			ContactInfo:            strPtr("IT Park Management"),
			CreatedAt:              now,
		},
	}
}

func sampleRegulatoryInfo(now time.Time) []models.RegulatoryInfo {
	return []models.RegulatoryInfo{
		{
			ID:             uuid.NewString(),
			RegulationType: "EV Charging Station License",
			State:          "Karnataka",
			Description:    "Mandatory license for operating EV charging stations in Karnataka",
			ComplianceRequirements: []string{
				"Technical safety certification from authorized agency",
				"Electrical contractor license (Class A or B)",
				"Environmental impact assessment (for >10 chargers)",
				"Fire safety certificate from Fire Department",
			},
			FeesApplicable:     25000,
			ProcessingTimeDays: 45,
			RequiredDocuments: []string{
				"Business registration certificate",
				"Technical specifications of charging equipment",
				"Site layout and electrical plans",
				"Insurance coverage certificate",
				"PAN and GST registration",
			},
			Authority:   "Karnataka Electricity Regulatory Commission (KERC)",
			LastUpdated: now,
		},
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
