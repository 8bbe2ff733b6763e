package storage

import (
	"context"
	"fmt"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

const (
	fieldID               = "id"
	fieldCity             = "city"
	fieldCountry          = "country"
	fieldState            = "state"
	fieldOrganizationType = "organization_type"
	fieldOrganizationName = "organization_name"
)

// Признаки партнера-оператора метро
const (
	MetroOrganizationType = "Metro Authority"
	MetroNamePattern      = "Metro|BMRCL"
)

// Repository предоставляет типизированный доступ к коллекциям документного хранилища
type Repository struct {
	store DocumentStore
}

// NewRepository создает репозиторий поверх документного хранилища
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// Store возвращает нижележащее документное хранилище
func (r *Repository) Store() DocumentStore {
	return r.store
}

// Create сохраняет запись в коллекцию
func (r *Repository) Create(ctx context.Context, collection string, doc any) error {
	if err := r.store.InsertOne(ctx, collection, doc); err != nil {
		return fmt.Errorf("failed to store %s: %w", collection, err)
	}
	return nil
}

// Count возвращает количество документов коллекции
func (r *Repository) Count(ctx context.Context, collection string) (int64, error) {
	n, err := r.store.Count(ctx, collection, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

func (r *Repository) ListMarketData(ctx context.Context) ([]models.MarketData, error) {
	return find[models.MarketData](ctx, r.store, CollectionMarketData, nil, FindOptions{})
}

// MarketDataByCity возвращает исследование рынка по точному имени города
func (r *Repository) MarketDataByCity(ctx context.Context, city string) (*models.MarketData, error) {
	return findOne[models.MarketData](ctx, r.store, CollectionMarketData, Eq{Field: fieldCity, Value: city})
}

func (r *Repository) ListLocations(ctx context.Context) ([]models.LocationAnalysis, error) {
	return find[models.LocationAnalysis](ctx, r.store, CollectionLocations, nil, FindOptions{})
}

// GetLocation возвращает площадку по идентификатору
func (r *Repository) GetLocation(ctx context.Context, id string) (*models.LocationAnalysis, error) {
	return findOne[models.LocationAnalysis](ctx, r.store, CollectionLocations, Eq{Field: fieldID, Value: id})
}

// RecentLocations возвращает n последних добавленных площадок
func (r *Repository) RecentLocations(ctx context.Context, n int) ([]models.LocationAnalysis, error) {
	return find[models.LocationAnalysis](ctx, r.store, CollectionLocations, nil, recent(n))
}

func (r *Repository) ListFinancialModels(ctx context.Context) ([]models.FinancialModel, error) {
	return find[models.FinancialModel](ctx, r.store, CollectionFinancialModels, nil, FindOptions{})
}

func (r *Repository) ListCompetitors(ctx context.Context) ([]models.Competitor, error) {
	return find[models.Competitor](ctx, r.store, CollectionCompetitors, nil, FindOptions{})
}

func (r *Repository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return find[models.Supplier](ctx, r.store, CollectionSuppliers, nil, FindOptions{})
}

// SuppliersByCountry возвращает поставщиков из указанной страны
func (r *Repository) SuppliersByCountry(ctx context.Context, country string) ([]models.Supplier, error) {
	return find[models.Supplier](ctx, r.store, CollectionSuppliers, Eq{Field: fieldCountry, Value: country}, FindOptions{})
}

func (r *Repository) ListPartnerships(ctx context.Context) ([]models.Partnership, error) {
	return find[models.Partnership](ctx, r.store, CollectionPartnerships, nil, FindOptions{})
}

// MetroPartnerships возвращает партнерства с операторами метро:
// тип организации "Metro Authority" либо название, содержащее Metro или BMRCL без учета регистра.
func (r *Repository) MetroPartnerships(ctx context.Context) ([]models.Partnership, error) {
	filter := Or{
		Eq{Field: fieldOrganizationType, Value: MetroOrganizationType},
		Match{Field: fieldOrganizationName, Pattern: MetroNamePattern, IgnoreCase: true},
	}
	return find[models.Partnership](ctx, r.store, CollectionPartnerships, filter, FindOptions{})
}

// RecentPartnerships возвращает n последних добавленных партнерств
func (r *Repository) RecentPartnerships(ctx context.Context, n int) ([]models.Partnership, error) {
	return find[models.Partnership](ctx, r.store, CollectionPartnerships, nil, recent(n))
}

func (r *Repository) ListBusinessPlans(ctx context.Context) ([]models.BusinessPlan, error) {
	return find[models.BusinessPlan](ctx, r.store, CollectionBusinessPlans, nil, FindOptions{})
}

func (r *Repository) ListRegulatoryInfo(ctx context.Context) ([]models.RegulatoryInfo, error) {
	return find[models.RegulatoryInfo](ctx, r.store, CollectionRegulatoryInfo, nil, FindOptions{})
}

// RegulatoryByState возвращает требования регуляторов штата
func (r *Repository) RegulatoryByState(ctx context.Context, state string) ([]models.RegulatoryInfo, error) {
	return find[models.RegulatoryInfo](ctx, r.store, CollectionRegulatoryInfo, Eq{Field: fieldState, Value: state}, FindOptions{})
}

func recent(n int) FindOptions {
	return FindOptions{SortField: FieldCreatedAt, SortDescending: true, Limit: n}
}

func find[T any](ctx context.Context, store DocumentStore, collection string, filter Filter, opts FindOptions) ([]T, error) {
	items := []T{}
	if err := store.Find(ctx, collection, filter, opts, &items); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	return items, nil
}

func findOne[T any](ctx context.Context, store DocumentStore, collection string, filter Filter) (*T, error) {
	var item T
	if err := store.FindOne(ctx, collection, filter, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
