package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

var (
	areas = []string{
		"Koramangala", "Indiranagar", "Whitefield", "Jayanagar", "Hebbal",
		"Marathahalli", "Yelahanka", "HSR Layout", "Banashankari", "Malleshwaram",
	}
	amenities = []string{
		"Shopping", "Offices", "Restaurants", "Hotels", "Parking",
		"ATMs", "Food Courts", "Hospitals", "Schools", "Gyms",
	}
)

// GenerateLocations генерирует count синтетических площадок в окрестностях Бангалора
func GenerateLocations(count int, rng *rand.Rand, now time.Time) []models.LocationAnalysis {
	locations := make([]models.LocationAnalysis, 0, count)

	for i := 0; i < count; i++ {
		area := areas[rng.Intn(len(areas))]
		locationType := models.LocationTypes[rng.Intn(len(models.LocationTypes))]

		// Примерно 12.8-13.1 северной широты, 77.5-77.8 восточной долготы
		lat := 12.8 + rng.Float64()*0.3
		lon := 77.5 + rng.Float64()*0.3

		// Выбираем 2-4 различных объекта инфраструктуры рядом
		numAmenities := 2 + rng.Intn(3)
		nearby := make([]string, 0, numAmenities)
		used := make(map[string]bool)
		for len(nearby) < numAmenities {
			a := amenities[rng.Intn(len(amenities))]
			if used[a] {
				continue
			}
			used[a] = true
			nearby = append(nearby, a)
		}

		traffic := 2000 + rng.Intn(28000)
		location := models.LocationAnalysis{
			ID:                     uuid.NewString(),
			Name:                   fmt.Sprintf("%s %s %d", area, locationType, i+1),
			Address:                fmt.Sprintf("%d Main Road, %s, Bangalore", rng.Intn(100)+1, area),
			Latitude:               lat,
			Longitude:              lon,
			LocationType:           locationType,
			DailyTraffic:           traffic,
			NearbyAmenities:        nearby,
			CompetitionWithin5km:   rng.Intn(12),
			InstallationCost:       float64(250000 + rng.Intn(350000)),
			ExpectedDailyUsage:     traffic / 100,
			RevenuePotential:       float64(100000 + rng.Intn(900000)),
			PartnershipOpportunity: rng.Intn(2) == 1,
			CreatedAt:              now,
		}

		locations = append(locations, location)
	}

	return locations
}

// LoadLocations читает JSON массив площадок в формате запроса на создание.
// Каждая запись проверяется и получает новый идентификатор.
func LoadLocations(r io.Reader) ([]models.LocationAnalysis, error) {
	var payloads []models.LocationAnalysisCreate
	if err := json.NewDecoder(r).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}

	locations := make([]models.LocationAnalysis, 0, len(payloads))
	for i := range payloads {
		if err := payloads[i].Validate(); err != nil {
			return nil, fmt.Errorf("location %d: %w", i, err)
		}
		locations = append(locations, *payloads[i].Record())
	}

	return locations, nil
}

// AppendLocations добавляет площадки в коллекцию locations, не удаляя существующие
func AppendLocations(ctx context.Context, store storage.DocumentStore, locations []models.LocationAnalysis) error {
	if len(locations) == 0 {
		return nil
	}
	if err := store.InsertMany(ctx, storage.CollectionLocations, toDocs(locations)); err != nil {
		return fmt.Errorf("failed to insert %d locations: %w", len(locations), err)
	}
	return nil
}
