package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/seed"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

const testPrefix = "/api"

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	store  storage.DocumentStore
	router *mux.Router
}

func newTestServer(t *testing.T, store storage.DocumentStore) *testServer {
	t.Helper()
	h := NewHandlers(storage.NewRepository(store), storage.NewStaticReference(), zap.NewNop())
	h.now = func() time.Time { return testNow }

	router := mux.NewRouter()
	h.RegisterRoutes(router, testPrefix)
	return &testServer{store: store, router: router}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func seeded(t *testing.T) *testServer {
	t.Helper()
	s := newTestServer(t, storage.NewMemoryStorage())
	rec := s.do(t, http.MethodPost, testPrefix+"/initialize-sample-data", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return s
}

func TestHealthAndRoot(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	rec := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody[map[string]string](t, rec)["status"])

	rec = s.do(t, http.MethodGet, testPrefix+"/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	root := decodeBody[map[string]string](t, rec)
	assert.Equal(t, Version, root["version"])
	assert.NotEmpty(t, root["message"])
}

func TestMarketAnalysis(t *testing.T) {
	s := seeded(t)

	rec := s.do(t, http.MethodGet, testPrefix+"/market-analysis/Bangalore", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[MarketAnalysisResponse](t, rec)
	assert.Equal(t, "Bangalore", resp.City)
	assert.Equal(t, "Bangalore", resp.MarketData.City)

	rec = s.do(t, http.MethodGet, testPrefix+"/market-analysis/Atlantis", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, codeNotFound, errResp.Error)
	assert.Equal(t, "Market data not found for this city", errResp.Message)
}

func TestLocationAnalysis(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	rec := s.do(t, http.MethodPost, testPrefix+"/locations", models.LocationAnalysisCreate{
		Name:                 "Indiranagar Hub",
		Address:              "100 Feet Road",
		LocationType:         models.LocationCommercial,
		DailyTraffic:         8000,
		CompetitionWithin5km: 1,
		ExpectedDailyUsage:   40,
		RevenuePotential:     120000,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[models.LocationAnalysis](t, rec)
	require.NotEmpty(t, created.ID)

	rec = s.do(t, http.MethodGet, testPrefix+"/location-analysis/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[LocationAnalysisResponse](t, rec)
	assert.Equal(t, created.ID, resp.Location.ID)

	rec = s.do(t, http.MethodGet, testPrefix+"/location-analysis/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Location not found", decodeBody[ErrorResponse](t, rec).Message)
}

func TestCreateValidation(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/market-data", `{"city":`},
		{"missing city", "/market-data", `{"region":"South","population":1000}`},
		{"unknown location type", "/locations", `{"name":"A","address":"B","location_type":"Spaceport"}`},
		{"non-positive investment", "/financial-models", `{"scenario_name":"x","initial_investment":0,"charging_price_per_kwh":15}`},
		{"negative revenue potential", "/locations", `{"name":"A","address":"B","location_type":"Highway","competition_within_5km":9,"revenue_potential":-500000}`},
		{"unknown partnership status", "/partnerships", `{"organization_name":"BMRCL","organization_type":"Metro Authority","status":"Maybe"}`},
		{"market share above 100", "/competitors", `{"company_name":"Tata Power","market_share_percentage":120}`},
		{"zero supplier price", "/suppliers", `{"company_name":"Shenzhen EVSE","country":"China","price_per_unit":0,"min_order_quantity":10}`},
		{"zero min order", "/suppliers", `{"company_name":"Shenzhen EVSE","country":"China","price_per_unit":1200,"min_order_quantity":0}`},
		{"negative fee", "/regulatory-info", `{"regulation_type":"License","state":"Karnataka","fees_applicable":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, testPrefix+tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, codeInvalidInput, decodeBody[ErrorResponse](t, rec).Error)
		})
	}

	for _, collection := range storage.Collections {
		n, err := s.store.Count(context.Background(), collection, nil)
		require.NoError(t, err)
		assert.Zero(t, n, collection)
	}
}

func TestROICalculator(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	rec := s.do(t, http.MethodGet, testPrefix+"/roi-calculator?investment=1000000&daily_users=100&price_per_kwh=15&avg_charging_kwh=20&monthly_costs=20000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.InDelta(t, 900000, resp["monthly_revenue"], 1e-6)
	assert.InDelta(t, 880000, resp["monthly_profit"], 1e-6)
	assert.InDelta(t, 1056, resp["roi_percentage"], 1e-9)
	assert.InDelta(t, 1000000.0/880000.0, resp["break_even_months"], 1e-9)

	rec = s.do(t, http.MethodGet, testPrefix+"/roi-calculator?investment=1000000&daily_users=100&price_per_kwh=15&avg_charging_kwh=20&monthly_costs=900000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Infinity", resp["break_even_months"])
	assert.Equal(t, "Infinity", resp["payback_period_years"])

	for _, query := range []string{
		"daily_users=100&price_per_kwh=15&avg_charging_kwh=20&monthly_costs=20000",
		"investment=abc&daily_users=100&price_per_kwh=15&avg_charging_kwh=20&monthly_costs=20000",
		"investment=0&daily_users=100&price_per_kwh=15&avg_charging_kwh=20&monthly_costs=20000",
	} {
		rec = s.do(t, http.MethodGet, testPrefix+"/roi-calculator?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestCreateFinancialModel(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	rec := s.do(t, http.MethodPost, testPrefix+"/financial-models", models.FinancialModelCreate{
		ScenarioName:          "Loss making",
		InitialInvestment:     500000,
		ChargingPricePerKWh:   10,
		ExpectedDailyUsers:    1,
		AverageChargingAmount: 200,
		StaffCostMonthly:      100000,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[models.FinancialModel](t, rec)
	assert.Zero(t, created.BreakEvenMonths)

	rec = s.do(t, http.MethodGet, testPrefix+"/financial-models", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.FinancialModel](t, rec), 1)
}

func TestCompetitorAnalysis_Empty(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	rec := s.do(t, http.MethodGet, testPrefix+"/competitor-analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 0, resp["total_competitors"])
	assert.EqualValues(t, 100, resp["market_share_available"])
	assert.Empty(t, resp["top_competitors"])
}

func TestSupplierAnalysis(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	rec := s.do(t, http.MethodGet, testPrefix+"/supplier-analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No suppliers found", decodeBody[map[string]string](t, rec)["message"])

	rec = s.do(t, http.MethodGet, testPrefix+"/suppliers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	s = seeded(t)
	rec = s.do(t, http.MethodGet, testPrefix+"/suppliers/china", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	china := decodeBody[[]models.Supplier](t, rec)
	assert.Len(t, china, 2)
	for _, sup := range china {
		assert.Equal(t, "China", sup.Country)
	}
}

func TestMetroPartnerships(t *testing.T) {
	s := seeded(t)

	rec := s.do(t, http.MethodPost, testPrefix+"/partnerships", models.PartnershipCreate{
		OrganizationName: "Delhi Metro Rail Corporation",
		OrganizationType: "Government",
		ContactPerson:    "R. Sharma",
		Email:            "partners@dmrc.example",
		Phone:            "+91-11-0000000",
		Status:           models.PartnershipPotential,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, testPrefix+"/partnerships/metro-stations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	metro := decodeBody[[]models.Partnership](t, rec)

	names := make([]string, 0, len(metro))
	for _, p := range metro {
		names = append(names, p.OrganizationName)
	}
	assert.ElementsMatch(t, []string{"BMRCL (Bangalore Metro)", "Delhi Metro Rail Corporation"}, names)
}

func TestGenerateBusinessPlan(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	check := func(t *testing.T, rec *httptest.ResponseRecorder) {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		plan := decodeBody[models.BusinessPlan](t, rec)
		assert.NotEmpty(t, plan.ID)
		assert.Equal(t, "Pune", plan.TargetRegion)
		assert.Equal(t, 10, plan.TargetStations)
		assert.Len(t, plan.RevenueProjections, 5)
		assert.Len(t, plan.KeyMilestones, 6)
		assert.NotEmpty(t, plan.RiskFactors)
		assert.NotEmpty(t, plan.MitigationStrategies)
	}

	t.Run("query", func(t *testing.T) {
		check(t, s.do(t, http.MethodPost, testPrefix+"/generate-business-plan?target_city=Pune&investment_budget=5000000&timeline_months=12&target_stations=10", nil))
	})
	t.Run("json body", func(t *testing.T) {
		check(t, s.do(t, http.MethodPost, testPrefix+"/generate-business-plan", map[string]any{
			"target_city":       "Pune",
			"investment_budget": 5000000,
			"timeline_months":   12,
			"target_stations":   10,
		}))
	})
	t.Run("invalid", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, testPrefix+"/generate-business-plan?target_city=Pune&investment_budget=0&timeline_months=12&target_stations=10", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	n, err := s.store.Count(context.Background(), storage.CollectionBusinessPlans, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRegulatoryCompliance(t *testing.T) {
	s := seeded(t)

	rec := s.do(t, http.MethodGet, testPrefix+"/regulatory-compliance/Goa", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Goa", resp["state"])
}

func TestInitializeSampleData_Idempotent(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	var results []seed.Result
	for i := 0; i < 2; i++ {
		rec := s.do(t, http.MethodPost, testPrefix+"/initialize-sample-data", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		results = append(results, decodeBody[seed.Result](t, rec))
	}
	assert.Equal(t, results[0], results[1])
	assert.Equal(t, seed.SuccessMessage, results[0].Message)

	n, err := s.store.Count(context.Background(), storage.CollectionMarketData, nil)
	require.NoError(t, err)
	assert.EqualValues(t, results[0].DataInserted.MarketData, n)
}

type brokenStore struct {
	*storage.MemoryStorage
}

func (brokenStore) DeleteMany(context.Context, string, storage.Filter) (int64, error) {
	return 0, errors.New("connection refused")
}

func (brokenStore) Count(context.Context, string, storage.Filter) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestInitializeSampleData_Failure(t *testing.T) {
	s := newTestServer(t, brokenStore{storage.NewMemoryStorage()})

	rec := s.do(t, http.MethodPost, testPrefix+"/initialize-sample-data", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, codeStoreFailure, resp.Error)
	assert.True(t, strings.HasPrefix(resp.Message, "failed to initialize data: "), resp.Message)
	assert.Contains(t, resp.Message, "connection refused")

	rec = s.do(t, http.MethodGet, testPrefix+"/dashboard-analytics", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, codeInternal, decodeBody[ErrorResponse](t, rec).Error)
}

func TestDashboardAnalytics(t *testing.T) {
	s := seeded(t)

	rec := s.do(t, http.MethodGet, testPrefix+"/dashboard-analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Overview       map[string]int64 `json:"overview"`
		RecentActivity struct {
			LatestLocations    []models.LocationAnalysis `json:"latest_locations"`
			LatestPartnerships []models.Partnership      `json:"latest_partnerships"`
		} `json:"recent_activity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.EqualValues(t, 3, resp.Overview["market_research_entries"])
	assert.EqualValues(t, 2, resp.Overview["analyzed_locations"])
	assert.EqualValues(t, 3, resp.Overview["tracked_competitors"])
	assert.EqualValues(t, 2, resp.Overview["supplier_database"])
	assert.EqualValues(t, 2, resp.Overview["active_partnerships"])
	assert.EqualValues(t, 0, resp.Overview["financial_scenarios"])
	assert.EqualValues(t, 0, resp.Overview["business_plans"])
	assert.EqualValues(t, 1, resp.Overview["regulatory_entries"])
	assert.Len(t, resp.RecentActivity.LatestLocations, 2)
	assert.Len(t, resp.RecentActivity.LatestPartnerships, 2)
}

func TestReferenceEndpoints(t *testing.T) {
	s := newTestServer(t, storage.NewMemoryStorage())

	rec := s.do(t, http.MethodGet, testPrefix+"/location-types", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.ReferenceItem](t, rec), len(models.LocationTypes))

	rec = s.do(t, http.MethodGet, testPrefix+"/regions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody[[]models.Region](t, rec))
}
