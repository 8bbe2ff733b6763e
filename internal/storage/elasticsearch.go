package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
)

// DefaultIndexMapping - маппинг индекса коллекции по умолчанию.
// Строки индексируются как keyword, чтобы работали точные и regexp-запросы.
const DefaultIndexMapping = `{
  "mappings": {
    "dynamic_templates": [
      {"strings_as_keywords": {"match_mapping_type": "string", "mapping": {"type": "keyword"}}}
    ],
    "properties": {
      "created_at": {"type": "date"},
      "last_updated": {"type": "date"}
    }
  }
}`

// ElasticsearchStorage предоставляет документное хранилище поверх Elasticsearch/OpenSearch.
// Каждой коллекции соответствует индекс <prefix><collection>.
// Поиск, подсчет и массовые операции выполняются прямыми HTTP запросами для совместимости с OpenSearch.
type ElasticsearchStorage struct {
	client      *elasticsearch.Client // Официальный клиент Elasticsearch
	indexPrefix string                // Префикс имен индексов
	httpClient  *http.Client          // HTTP клиент для прямых запросов
	baseURL     string                // Базовый URL Elasticsearch/OpenSearch
}

// NewElasticsearchStorageWithURL создает новый экземпляр ElasticsearchStorage с указанным URL.
func NewElasticsearchStorageWithURL(client *elasticsearch.Client, indexPrefix string, baseURL string) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client:      client,
		indexPrefix: indexPrefix,
		httpClient:  &http.Client{},
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// NewElasticsearchStorage создает новый экземпляр ElasticsearchStorage с URL по умолчанию.
// Использует http://localhost:9200 как базовый URL.
func NewElasticsearchStorage(client *elasticsearch.Client, indexPrefix string) *ElasticsearchStorage {
	return NewElasticsearchStorageWithURL(client, indexPrefix, "http://localhost:9200")
}

func (es *ElasticsearchStorage) index(collection string) string {
	return es.indexPrefix + collection
}

// EnsureIndices создает индексы всех коллекций с заданным маппингом
func (es *ElasticsearchStorage) EnsureIndices(ctx context.Context, mappingJSON string) error {
	for _, collection := range Collections {
		if err := es.CreateIndex(ctx, collection, mappingJSON); err != nil {
			return fmt.Errorf("collection %s: %w", collection, err)
		}
	}
	return nil
}

// CreateIndex создает индекс коллекции с заданным маппингом.
// Если индекс уже существует, функция возвращает nil без ошибки.
func (es *ElasticsearchStorage) CreateIndex(ctx context.Context, collection string, mappingJSON string) error {
	index := es.index(collection)

	res, err := es.client.Indices.Exists([]string{index}, es.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = es.client.Indices.Create(
		index,
		es.client.Indices.Create.WithBody(strings.NewReader(mappingJSON)),
		es.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error creating index: %s", string(body))
	}

	return nil
}

// InsertOne индексирует один документ. Поле id документа становится _id.
func (es *ElasticsearchStorage) InsertOne(ctx context.Context, collection string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      es.index(collection),
		DocumentID: documentID(body),
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, es.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error indexing document: %s", string(body))
	}

	return nil
}

// InsertMany индексирует несколько документов за один запрос Bulk API.
func (es *ElasticsearchStorage) InsertMany(ctx context.Context, collection string, docs []any) error {
	if len(docs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}

		action := map[string]any{"_index": es.index(collection)}
		if id := documentID(body); id != "" {
			action["_id"] = id
		}
		meta := map[string]any{"index": action}

		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		buf.Write(body)
		buf.WriteByte('\n')
	}

	res, err := es.do(ctx, http.MethodPost, "/_bulk?refresh=true", "application/x-ndjson", &buf)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error bulk indexing: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int             `json:"status"`
			Error  json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if result.Errors {
		for _, item := range result.Items {
			for _, op := range item {
				if op.Status >= 400 {
					return fmt.Errorf("error bulk indexing: status %d, error: %s", op.Status, string(op.Error))
				}
			}
		}
	}

	return nil
}

// Find выполняет поиск документов коллекции и декодирует их в out
func (es *ElasticsearchStorage) Find(ctx context.Context, collection string, filter Filter, opts FindOptions, out any) error {
	docs, err := es.search(ctx, collection, filter, opts)
	if err != nil {
		return err
	}
	return decodeRaw(docs, out)
}

// FindOne возвращает первый документ, подходящий под фильтр
func (es *ElasticsearchStorage) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	docs, err := es.search(ctx, collection, filter, FindOptions{Limit: 1})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("%s document %w", collection, apperrors.ErrNotFound)
	}
	if err := json.Unmarshal(docs[0], out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// Count возвращает количество документов через _count API
func (es *ElasticsearchStorage) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	body, err := encodeQuery(map[string]any{"query": buildFilterQuery(filter)})
	if err != nil {
		return 0, err
	}

	path := fmt.Sprintf("/%s/_count?ignore_unavailable=true", es.index(collection))
	res, err := es.do(ctx, http.MethodPost, path, "application/json", body)
	if err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return 0, fmt.Errorf("error counting: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Count int64 `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Count, nil
}

// DeleteMany удаляет документы через _delete_by_query
func (es *ElasticsearchStorage) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	body, err := encodeQuery(map[string]any{"query": buildFilterQuery(filter)})
	if err != nil {
		return 0, err
	}

	path := fmt.Sprintf("/%s/_delete_by_query?refresh=true&conflicts=proceed&ignore_unavailable=true", es.index(collection))
	res, err := es.do(ctx, http.MethodPost, path, "application/json", body)
	if err != nil {
		return 0, fmt.Errorf("failed to delete: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return 0, fmt.Errorf("error deleting: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Deleted, nil
}

// Close освобождает простаивающие соединения HTTP клиента
func (es *ElasticsearchStorage) Close(ctx context.Context) error {
	es.httpClient.CloseIdleConnections()
	return nil
}

func (es *ElasticsearchStorage) search(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]json.RawMessage, error) {
	body, err := encodeQuery(buildSearchQuery(filter, opts))
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/%s/_search?ignore_unavailable=true", es.index(collection))
	res, err := es.do(ctx, http.MethodPost, path, "application/json", body)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error searching: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	docs := make([]json.RawMessage, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		docs = append(docs, hit.Source)
	}
	return docs, nil
}

// do выполняет прямой HTTP запрос в обход проверки типа сервера клиентом go-elasticsearch
func (es *ElasticsearchStorage) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, es.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return es.httpClient.Do(req)
}

func encodeQuery(query map[string]any) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	return &buf, nil
}

// buildSearchQuery строит тело запроса _search
func buildSearchQuery(filter Filter, opts FindOptions) map[string]any {
	query := map[string]any{
		"query": buildFilterQuery(filter),
		"size":  opts.limit(),
	}

	if opts.SortField != "" {
		order := "asc"
		if opts.SortDescending {
			order = "desc"
		}
		query["sort"] = []map[string]any{
			{
				opts.SortField: map[string]any{
					"order":         order,
					"unmapped_type": "date",
				},
			},
		}
	}

	return query
}

// buildFilterQuery переводит фильтр в Query DSL.
// Match превращается в regexp по всему значению keyword-поля, поэтому шаблон
// оборачивается в .*(...).* для поиска подстроки.
func buildFilterQuery(filter Filter) map[string]any {
	switch f := filter.(type) {
	case Eq:
		return map[string]any{
			"term": map[string]any{
				f.Field: f.Value,
			},
		}
	case Match:
		return map[string]any{
			"regexp": map[string]any{
				f.Field: map[string]any{
					"value":            ".*(" + f.Pattern + ").*",
					"case_insensitive": f.IgnoreCase,
				},
			},
		}
	case Or:
		should := make([]map[string]any, 0, len(f))
		for _, sub := range f {
			should = append(should, buildFilterQuery(sub))
		}
		return map[string]any{
			"bool": map[string]any{
				"should":               should,
				"minimum_should_match": 1,
			},
		}
	default:
		return map[string]any{
			"match_all": map[string]any{},
		}
	}
}
