// Package seed заполняет документное хранилище тестовыми данными.
package seed

import (
	"context"
	"time"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

// SuccessMessage возвращается клиенту после успешной инициализации
const SuccessMessage = "Sample data initialized successfully"

// InsertedCounts - количество вставленных документов по коллекциям
type InsertedCounts struct {
	MarketData     int `json:"market_data"`
	Competitors    int `json:"competitors"`
	Suppliers      int `json:"suppliers"`
	Partnerships   int `json:"partnerships"`
	Locations      int `json:"locations"`
	RegulatoryInfo int `json:"regulatory_info"`
}

// Result - ответ операции инициализации
type Result struct {
	Message      string         `json:"message"`
	DataInserted InsertedCounts `json:"data_inserted"`
}

// InitError сообщает о сбое инициализации.
// Сопоставляется и с apperrors.ErrStoreFailure, и с исходной ошибкой хранилища.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return "failed to initialize data: " + e.Err.Error()
}

func (e *InitError) Unwrap() []error {
	return []error{apperrors.ErrStoreFailure, e.Err}
}

// Initialize очищает коллекции тестовых данных и заполняет их заново.
// Операция не атомарна: при сбое часть коллекций может остаться обновленной.
// Коллекции financial_models и business_plans не затрагиваются.
func Initialize(ctx context.Context, store storage.DocumentStore, now time.Time) (Result, error) {
	data := Samples(now)

	steps := []struct {
		collection string
		docs       []any
	}{
		{storage.CollectionMarketData, toDocs(data.MarketData)},
		{storage.CollectionCompetitors, toDocs(data.Competitors)},
		{storage.CollectionSuppliers, toDocs(data.Suppliers)},
		{storage.CollectionPartnerships, toDocs(data.Partnerships)},
		{storage.CollectionLocations, toDocs(data.Locations)},
		{storage.CollectionRegulatoryInfo, toDocs(data.RegulatoryInfo)},
	}

	for _, step := range steps {
		if err := Replace(ctx, store, step.collection, step.docs); err != nil {
			return Result{}, &InitError{Err: err}
		}
	}

	return Result{
		Message: SuccessMessage,
		DataInserted: InsertedCounts{
			MarketData:     len(data.MarketData),
			Competitors:    len(data.Competitors),
			Suppliers:      len(data.Suppliers),
			Partnerships:   len(data.Partnerships),
			Locations:      len(data.Locations),
			RegulatoryInfo: len(data.RegulatoryInfo),
		},
	}, nil
}

// Replace удаляет все документы коллекции и вставляет docs
func Replace(ctx context.Context, store storage.DocumentStore, collection string, docs []any) error {
	if _, err := store.DeleteMany(ctx, collection, nil); err != nil {
		return err
	}
	return store.InsertMany(ctx, collection, docs)
}

func toDocs[T any](items []T) []any {
	docs := make([]any, 0, len(items))
	for i := range items {
		docs = append(docs, &items[i])
	}
	return docs
}
