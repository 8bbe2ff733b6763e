package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes регистрирует маршруты API под префиксом prefix.
// /health регистрируется без префикса.
func (h *Handlers) RegisterRoutes(router *mux.Router, prefix string) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := router.PathPrefix(prefix).Subrouter()
	api.HandleFunc("/", h.Root).Methods(http.MethodGet)

	api.HandleFunc("/market-data", h.CreateMarketData).Methods(http.MethodPost)
	api.HandleFunc("/market-data", h.ListMarketData).Methods(http.MethodGet)
	api.HandleFunc("/market-analysis/{city}", h.MarketAnalysis).Methods(http.MethodGet)

	api.HandleFunc("/locations", h.CreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/locations", h.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/location-analysis/{id}", h.LocationAnalysis).Methods(http.MethodGet)

	api.HandleFunc("/financial-models", h.CreateFinancialModel).Methods(http.MethodPost)
	api.HandleFunc("/financial-models", h.ListFinancialModels).Methods(http.MethodGet)
	api.HandleFunc("/roi-calculator", h.ROICalculator).Methods(http.MethodGet)

	api.HandleFunc("/competitors", h.CreateCompetitor).Methods(http.MethodPost)
	api.HandleFunc("/competitors", h.ListCompetitors).Methods(http.MethodGet)
	api.HandleFunc("/competitor-analysis", h.CompetitorAnalysis).Methods(http.MethodGet)

	api.HandleFunc("/suppliers", h.CreateSupplier).Methods(http.MethodPost)
	api.HandleFunc("/suppliers", h.ListSuppliers).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/china", h.ChinaSuppliers).Methods(http.MethodGet)
	api.HandleFunc("/supplier-analysis", h.SupplierAnalysis).Methods(http.MethodGet)

	api.HandleFunc("/partnerships", h.CreatePartnership).Methods(http.MethodPost)
	api.HandleFunc("/partnerships", h.ListPartnerships).Methods(http.MethodGet)
	api.HandleFunc("/partnerships/metro-stations", h.MetroPartnerships).Methods(http.MethodGet)

	api.HandleFunc("/business-plans", h.CreateBusinessPlan).Methods(http.MethodPost)
	api.HandleFunc("/business-plans", h.ListBusinessPlans).Methods(http.MethodGet)
	api.HandleFunc("/generate-business-plan", h.GenerateBusinessPlan).Methods(http.MethodPost)

	api.HandleFunc("/regulatory-info", h.CreateRegulatoryInfo).Methods(http.MethodPost)
	api.HandleFunc("/regulatory-info", h.ListRegulatoryInfo).Methods(http.MethodGet)
	api.HandleFunc("/regulatory-compliance/{state}", h.RegulatoryCompliance).Methods(http.MethodGet)

	api.HandleFunc("/initialize-sample-data", h.InitializeSampleData).Methods(http.MethodPost)
	api.HandleFunc("/dashboard-analytics", h.DashboardAnalytics).Methods(http.MethodGet)

	api.HandleFunc("/location-types", h.GetLocationTypes).Methods(http.MethodGet)
	api.HandleFunc("/charging-station-types", h.GetChargingStationTypes).Methods(http.MethodGet)
	api.HandleFunc("/regions", h.GetRegions).Methods(http.MethodGet)
}
