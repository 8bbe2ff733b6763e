package storage

import (
	"context"
	"sort"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

// ReferenceStore - источник справочников для API
type ReferenceStore interface {
	GetLocationTypes(ctx context.Context) ([]models.ReferenceItem, error)
	GetChargingStationTypes(ctx context.Context) ([]models.ReferenceItem, error)
	GetRegions(ctx context.Context) ([]models.Region, error)
}

var locationTypeDescriptions = map[models.LocationType]string{
	models.LocationMetroStation: "Metro and suburban rail stations",
	models.LocationShoppingMall: "Malls and large retail centers",
	models.LocationHighway:      "Highway rest stops and fuel plazas",
	models.LocationResidential:  "Gated communities and apartment blocks",
	models.LocationCommercial:   "Office complexes and business parks",
	models.LocationRestaurant:   "Restaurants and food courts",
	models.LocationHotel:        "Hotels and resorts",
	models.LocationHospital:     "Hospitals and clinics",
}

var chargingStationTypeDescriptions = map[models.ChargingStationType]string{
	models.ChargingLevel1:    "Slow AC charging",
	models.ChargingLevel2:    "Standard AC charging",
	models.ChargingDCFast:    "DC charging up to 150 kW",
	models.ChargingUltraFast: "DC charging above 150 kW",
}

const rootRegion = "India"

// staticStates - регионы, в которых работают компании из тестовых данных
var staticStates = []string{"Karnataka", "Maharashtra", "Delhi NCR", "Tamil Nadu", "Telangana"}

// StaticReference отдает справочники, собранные из перечислений моделей.
// Используется, когда PostgreSQL отключен или недоступен.
type StaticReference struct {
	locationTypes        []models.ReferenceItem
	chargingStationTypes []models.ReferenceItem
	regions              []models.Region
}

// NewStaticReference строит справочники с теми же идентификаторами, что выдает начальная схема PostgreSQL
func NewStaticReference() *StaticReference {
	ref := &StaticReference{}

	for i, t := range models.LocationTypes {
		ref.locationTypes = append(ref.locationTypes, models.ReferenceItem{
			ID:          i + 1,
			Name:        string(t),
			Description: locationTypeDescriptions[t],
		})
	}
	for i, t := range models.ChargingStationTypes {
		ref.chargingStationTypes = append(ref.chargingStationTypes, models.ReferenceItem{
			ID:          i + 1,
			Name:        string(t),
			Description: chargingStationTypeDescriptions[t],
		})
	}

	rootID := 1
	ref.regions = append(ref.regions, models.Region{ID: rootID, Name: rootRegion})
	for i, name := range staticStates {
		parent := rootID
		ref.regions = append(ref.regions, models.Region{ID: i + 2, Name: name, ParentRegionID: &parent})
	}

	sortItems(ref.locationTypes)
	sortItems(ref.chargingStationTypes)
	sort.Slice(ref.regions, func(i, j int) bool { return ref.regions[i].Name < ref.regions[j].Name })

	return ref
}

// GetLocationTypes возвращает типы площадок, отсортированные по имени
func (s *StaticReference) GetLocationTypes(ctx context.Context) ([]models.ReferenceItem, error) {
	return append([]models.ReferenceItem(nil), s.locationTypes...), nil
}

// GetChargingStationTypes возвращает типы зарядных станций, отсортированные по имени
func (s *StaticReference) GetChargingStationTypes(ctx context.Context) ([]models.ReferenceItem, error) {
	return append([]models.ReferenceItem(nil), s.chargingStationTypes...), nil
}

// GetRegions возвращает регионы, отсортированные по имени
func (s *StaticReference) GetRegions(ctx context.Context) ([]models.Region, error) {
	return append([]models.Region(nil), s.regions...), nil
}

func sortItems(items []models.ReferenceItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}
