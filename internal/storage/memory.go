package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
)

// MemoryStorage хранит документы в памяти процесса.
// Используется в тестах и для локального запуска без внешних зависимостей.
type MemoryStorage struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
}

// NewMemoryStorage создает пустое хранилище в памяти
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{collections: make(map[string][]json.RawMessage)}
}

// InsertOne сохраняет документ в коллекцию
func (ms *MemoryStorage) InsertOne(ctx context.Context, collection string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.collections[collection] = append(ms.collections[collection], raw)
	return nil
}

// InsertMany сохраняет несколько документов. При ошибке кодирования ничего не сохраняется.
func (ms *MemoryStorage) InsertMany(ctx context.Context, collection string, docs []any) error {
	raws := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		raws = append(raws, raw)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.collections[collection] = append(ms.collections[collection], raws...)
	return nil
}

// Find выбирает документы по фильтру с сортировкой и лимитом
func (ms *MemoryStorage) Find(ctx context.Context, collection string, filter Filter, opts FindOptions, out any) error {
	matched, err := ms.match(collection, filter)
	if err != nil {
		return err
	}

	if opts.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			c := compareValues(matched[i].fields[opts.SortField], matched[j].fields[opts.SortField])
			if opts.SortDescending {
				return c > 0
			}
			return c < 0
		})
	}

	if limit := opts.limit(); len(matched) > limit {
		matched = matched[:limit]
	}

	raws := make([]json.RawMessage, 0, len(matched))
	for _, d := range matched {
		raws = append(raws, d.raw)
	}
	return decodeRaw(raws, out)
}

// FindOne возвращает первый документ, подходящий под фильтр
func (ms *MemoryStorage) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	matched, err := ms.match(collection, filter)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return fmt.Errorf("%s document %w", collection, apperrors.ErrNotFound)
	}
	if err := json.Unmarshal(matched[0].raw, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// Count возвращает количество документов, подходящих под фильтр
func (ms *MemoryStorage) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	matched, err := ms.match(collection, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

// DeleteMany удаляет документы, подходящие под фильтр
func (ms *MemoryStorage) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	kept := make([]json.RawMessage, 0, len(ms.collections[collection]))
	var deleted int64
	for _, raw := range ms.collections[collection] {
		fields, err := decodeFields(raw)
		if err != nil {
			return deleted, err
		}
		ok, err := matchFilter(fields, filter)
		if err != nil {
			return deleted, err
		}
		if ok {
			deleted++
			continue
		}
		kept = append(kept, raw)
	}
	ms.collections[collection] = kept
	return deleted, nil
}

// Close ничего не делает: ресурсов для освобождения нет
func (ms *MemoryStorage) Close(ctx context.Context) error {
	return nil
}

type memoryDoc struct {
	raw    json.RawMessage
	fields map[string]any
}

func (ms *MemoryStorage) match(collection string, filter Filter) ([]memoryDoc, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var matched []memoryDoc
	for _, raw := range ms.collections[collection] {
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, err
		}
		ok, err := matchFilter(fields, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, memoryDoc{raw: raw, fields: fields})
		}
	}
	return matched, nil
}

func decodeFields(raw json.RawMessage) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return fields, nil
}

func matchFilter(fields map[string]any, filter Filter) (bool, error) {
	switch f := filter.(type) {
	case nil:
		return true, nil
	case Eq:
		v, ok := fields[f.Field]
		if !ok {
			return false, nil
		}
		return fmt.Sprint(v) == fmt.Sprint(f.Value), nil
	case Match:
		s, ok := fields[f.Field].(string)
		if !ok {
			return false, nil
		}
		pattern := f.Pattern
		if f.IgnoreCase {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", f.Pattern, err)
		}
		return re.MatchString(s), nil
	case Or:
		for _, sub := range f {
			ok, err := matchFilter(fields, sub)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unsupported filter %T", filter)
	}
}

// compareValues сравнивает значения полей после JSON-декодирования.
// Строки в формате RFC 3339 сравниваются как время.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case string:
		if bv, ok := b.(string); ok {
			at, aErr := time.Parse(time.RFC3339Nano, av)
			bt, bErr := time.Parse(time.RFC3339Nano, bv)
			if aErr == nil && bErr == nil {
				return at.Compare(bt)
			}
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	}
	if a == nil && b != nil {
		return -1
	}
	if a != nil && b == nil {
		return 1
	}
	return 0
}
