// Package storage содержит реализации хранилищ: документное хранилище
// (Elasticsearch/OpenSearch, MongoDB, в памяти) и справочники в PostgreSQL.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Имена коллекций документного хранилища
const (
	CollectionMarketData      = "market_data"
	CollectionLocations       = "locations"
	CollectionFinancialModels = "financial_models"
	CollectionCompetitors     = "competitors"
	CollectionSuppliers       = "suppliers"
	CollectionPartnerships    = "partnerships"
	CollectionBusinessPlans   = "business_plans"
	CollectionRegulatoryInfo  = "regulatory_info"
)

// Collections перечисляет все коллекции приложения
var Collections = []string{
	CollectionMarketData,
	CollectionLocations,
	CollectionFinancialModels,
	CollectionCompetitors,
	CollectionSuppliers,
	CollectionPartnerships,
	CollectionBusinessPlans,
	CollectionRegulatoryInfo,
}

// DefaultFindLimit - максимальное количество документов в выборке без явного лимита
const DefaultFindLimit = 1000

// FieldCreatedAt - поле времени создания, по которому сортируются последние записи
const FieldCreatedAt = "created_at"

// Filter - условие отбора документов. nil означает "все документы".
// Реализации: Eq, Match, Or.
type Filter interface {
	isFilter()
}

// Eq - точное совпадение значения поля
type Eq struct {
	Field string
	Value any
}

// Match - совпадение поля с регулярным выражением (поиск подстроки)
type Match struct {
	Field      string
	Pattern    string
	IgnoreCase bool
}

// Or - логическое ИЛИ вложенных условий
type Or []Filter

func (Eq) isFilter()    {}
func (Match) isFilter() {}
func (Or) isFilter()    {}

// FindOptions задает сортировку и ограничение выборки
type FindOptions struct {
	SortField      string
	SortDescending bool
	Limit          int
}

func (o FindOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultFindLimit
	}
	return o.Limit
}

// DocumentStore - контракт документного хранилища.
// out в Find - указатель на срез, в FindOne - указатель на структуру.
// FindOne возвращает apperrors.ErrNotFound, если документ не найден.
type DocumentStore interface {
	InsertOne(ctx context.Context, collection string, doc any) error
	InsertMany(ctx context.Context, collection string, docs []any) error
	Find(ctx context.Context, collection string, filter Filter, opts FindOptions, out any) error
	FindOne(ctx context.Context, collection string, filter Filter, out any) error
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error)
	Close(ctx context.Context) error
}

// decodeRaw собирает JSON-документы в массив и декодирует его в out
func decodeRaw(docs []json.RawMessage, out any) error {
	if docs == nil {
		docs = []json.RawMessage{}
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode documents: %w", err)
	}
	return nil
}

// documentID извлекает поле id документа, если оно есть
func documentID(doc []byte) string {
	var meta struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(doc, &meta); err != nil {
		return ""
	}
	return meta.ID
}
