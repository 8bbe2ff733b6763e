package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeElasticsearch записывает запросы и отвечает заранее заданными телами по пути
type fakeElasticsearch struct {
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func (f *fakeElasticsearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})
	resp, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		resp = fakeResponse{status: http.StatusOK, body: `{}`}
	}
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (f *fakeElasticsearch) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newTestElasticsearch(t *testing.T, responses map[string]fakeResponse) (*ElasticsearchStorage, *fakeElasticsearch) {
	t.Helper()
	fake := &fakeElasticsearch{responses: responses}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)

	return NewElasticsearchStorageWithURL(client, "ev_", srv.URL), fake
}

func TestBuildFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"nil", nil, `{"match_all":{}}`},
		{"eq", Eq{Field: "city", Value: "Bangalore"}, `{"term":{"city":"Bangalore"}}`},
		{
			"match",
			Match{Field: "organization_name", Pattern: "Metro|BMRCL", IgnoreCase: true},
			`{"regexp":{"organization_name":{"case_insensitive":true,"value":".*(Metro|BMRCL).*"}}}`,
		},
		{
			"or",
			Or{Eq{Field: "organization_type", Value: "Metro Authority"}, Eq{Field: "status", Value: "Active"}},
			`{"bool":{"minimum_should_match":1,"should":[{"term":{"organization_type":"Metro Authority"}},{"term":{"status":"Active"}}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(buildFilterQuery(tt.filter))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestBuildSearchQuery(t *testing.T) {
	q := buildSearchQuery(nil, FindOptions{SortField: FieldCreatedAt, SortDescending: true, Limit: 5})
	got, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": {"match_all": {}},
		"size": 5,
		"sort": [{"created_at": {"order": "desc", "unmapped_type": "date"}}]
	}`, string(got))

	q = buildSearchQuery(nil, FindOptions{})
	assert.Equal(t, DefaultFindLimit, q["size"])
	assert.NotContains(t, q, "sort")
}

func TestElasticsearchStorage_Find(t *testing.T) {
	es, fake := newTestElasticsearch(t, map[string]fakeResponse{
		"POST /ev_docs/_search": {status: http.StatusOK, body: `{"hits":{"hits":[
			{"_source":{"id":"1","name":"Namma Metro"}},
			{"_source":{"id":"2","name":"Phoenix Mall"}}
		]}}`},
	})

	var docs []testDoc
	err := es.Find(context.Background(), "docs", Eq{Field: "kind", Value: "Retail"}, FindOptions{Limit: 10}, &docs)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Namma Metro", docs[0].Name)

	req := fake.last()
	assert.Contains(t, req.Query, "ignore_unavailable=true")
	assert.JSONEq(t, `{"query":{"term":{"kind":"Retail"}},"size":10}`, req.Body)
}

func TestElasticsearchStorage_FindOneNotFound(t *testing.T) {
	es, _ := newTestElasticsearch(t, map[string]fakeResponse{
		"POST /ev_docs/_search": {status: http.StatusOK, body: `{"hits":{"hits":[]}}`},
	})

	var doc testDoc
	err := es.FindOne(context.Background(), "docs", Eq{Field: "id", Value: "x"}, &doc)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestElasticsearchStorage_SearchError(t *testing.T) {
	es, _ := newTestElasticsearch(t, map[string]fakeResponse{
		"POST /ev_docs/_search": {status: http.StatusBadRequest, body: `{"error":"parse"}`},
	})

	var docs []testDoc
	err := es.Find(context.Background(), "docs", nil, FindOptions{}, &docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestElasticsearchStorage_CountAndDelete(t *testing.T) {
	es, fake := newTestElasticsearch(t, map[string]fakeResponse{
		"POST /ev_docs/_count":           {status: http.StatusOK, body: `{"count":7}`},
		"POST /ev_docs/_delete_by_query": {status: http.StatusOK, body: `{"deleted":3}`},
	})
	ctx := context.Background()

	n, err := es.Count(ctx, "docs", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	deleted, err := es.DeleteMany(ctx, "docs", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	req := fake.last()
	assert.Contains(t, req.Query, "refresh=true")
	assert.Contains(t, req.Query, "conflicts=proceed")
	assert.JSONEq(t, `{"query":{"match_all":{}}}`, req.Body)
}

func TestElasticsearchStorage_InsertMany(t *testing.T) {
	es, fake := newTestElasticsearch(t, map[string]fakeResponse{
		"POST /_bulk": {status: http.StatusOK, body: `{"errors":false,"items":[]}`},
	})

	docs := []any{testDoc{ID: "1", Name: "a"}, testDoc{ID: "2", Name: "b"}}
	require.NoError(t, es.InsertMany(context.Background(), "docs", docs))

	req := fake.last()
	assert.Equal(t, "refresh=true", req.Query)

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(req.Body))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"index":{"_index":"ev_docs","_id":"1"}}`, lines[0])
	assert.Contains(t, lines[1], `"name":"a"`)
	assert.JSONEq(t, `{"index":{"_index":"ev_docs","_id":"2"}}`, lines[2])
}

func TestElasticsearchStorage_InsertManyItemError(t *testing.T) {
	es, _ := newTestElasticsearch(t, map[string]fakeResponse{
		"POST /_bulk": {status: http.StatusOK, body: `{"errors":true,"items":[
			{"index":{"status":201}},
			{"index":{"status":400,"error":{"type":"mapper_parsing_exception"}}}
		]}`},
	})

	err := es.InsertMany(context.Background(), "docs", []any{testDoc{ID: "1"}, testDoc{ID: "2"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapper_parsing_exception")
}

func TestElasticsearchStorage_InsertManyEmpty(t *testing.T) {
	es, fake := newTestElasticsearch(t, nil)

	require.NoError(t, es.InsertMany(context.Background(), "docs", nil))
	assert.Empty(t, fake.requests)
}

func TestElasticsearchStorage_InsertOne(t *testing.T) {
	es, fake := newTestElasticsearch(t, map[string]fakeResponse{
		"PUT /ev_docs/_doc/42": {status: http.StatusCreated, body: `{"result":"created"}`},
	})

	require.NoError(t, es.InsertOne(context.Background(), "docs", testDoc{ID: "42", Name: "x"}))

	req := fake.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/ev_docs/_doc/42", req.Path)
	assert.Contains(t, req.Query, "refresh=true")
}

func TestElasticsearchStorage_CreateIndex(t *testing.T) {
	t.Run("creates missing index", func(t *testing.T) {
		es, fake := newTestElasticsearch(t, map[string]fakeResponse{
			"HEAD /ev_docs": {status: http.StatusNotFound},
			"PUT /ev_docs":  {status: http.StatusOK, body: `{"acknowledged":true}`},
		})

		require.NoError(t, es.CreateIndex(context.Background(), "docs", DefaultIndexMapping))

		req := fake.last()
		assert.Equal(t, http.MethodPut, req.Method)
		assert.JSONEq(t, DefaultIndexMapping, req.Body)
	})

	t.Run("keeps existing index", func(t *testing.T) {
		es, fake := newTestElasticsearch(t, map[string]fakeResponse{
			"HEAD /ev_docs": {status: http.StatusOK},
		})

		require.NoError(t, es.CreateIndex(context.Background(), "docs", DefaultIndexMapping))
		assert.Len(t, fake.requests, 1)
	})

	t.Run("reports create failure", func(t *testing.T) {
		es, _ := newTestElasticsearch(t, map[string]fakeResponse{
			"HEAD /ev_docs": {status: http.StatusNotFound},
			"PUT /ev_docs":  {status: http.StatusBadRequest, body: `{"error":"bad mapping"}`},
		})

		err := es.CreateIndex(context.Background(), "docs", "{}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad mapping")
	})
}

func TestNewElasticsearchStorage(t *testing.T) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{})
	require.NoError(t, err)

	es := NewElasticsearchStorage(client, "ev_")
	assert.Equal(t, "http://localhost:9200", es.baseURL)
	assert.Equal(t, "ev_market_data", es.index(CollectionMarketData))

	es = NewElasticsearchStorageWithURL(client, "ev_", "http://search:9200/")
	assert.Equal(t, "http://search:9200", es.baseURL)
}
