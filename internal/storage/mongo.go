package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
)

// MongoStorage предоставляет документное хранилище поверх MongoDB.
// Коллекции приложения соответствуют коллекциям базы dbName.
type MongoStorage struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStorage подключается к MongoDB и проверяет соединение
func NewMongoStorage(ctx context.Context, uri, dbName string) (*MongoStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStorage{client: client, db: client.Database(dbName)}, nil
}

// InsertOne сохраняет документ в коллекцию
func (ms *MongoStorage) InsertOne(ctx context.Context, collection string, doc any) error {
	if _, err := ms.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// InsertMany сохраняет несколько документов одним запросом
func (ms *MongoStorage) InsertMany(ctx context.Context, collection string, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	if _, err := ms.db.Collection(collection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert documents: %w", err)
	}
	return nil
}

// Find выбирает документы по фильтру с сортировкой и лимитом
func (ms *MongoStorage) Find(ctx context.Context, collection string, filter Filter, opts FindOptions, out any) error {
	findOpts := options.Find().SetLimit(int64(opts.limit()))
	if opts.SortField != "" {
		order := 1
		if opts.SortDescending {
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: order}})
	}

	cur, err := ms.db.Collection(collection).Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return fmt.Errorf("failed to find documents: %w", err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode documents: %w", err)
	}
	return nil
}

// FindOne возвращает первый документ, подходящий под фильтр
func (ms *MongoStorage) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	err := ms.db.Collection(collection).FindOne(ctx, toBSON(filter)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s document %w", collection, apperrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to find document: %w", err)
	}
	return nil
}

// Count возвращает количество документов, подходящих под фильтр
func (ms *MongoStorage) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := ms.db.Collection(collection).CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}

// DeleteMany удаляет документы, подходящие под фильтр
func (ms *MongoStorage) DeleteMany(ctx context.Context, collection string, filter Filter) (int64, error) {
	res, err := ms.db.Collection(collection).DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to delete documents: %w", err)
	}
	return res.DeletedCount, nil
}

// Close закрывает подключение к MongoDB
func (ms *MongoStorage) Close(ctx context.Context) error {
	return ms.client.Disconnect(ctx)
}

// toBSON переводит фильтр в документ запроса MongoDB
func toBSON(filter Filter) bson.M {
	switch f := filter.(type) {
	case Eq:
		return bson.M{f.Field: f.Value}
	case Match:
		cond := bson.M{"$regex": f.Pattern}
		if f.IgnoreCase {
			cond["$options"] = "i"
		}
		return bson.M{f.Field: cond}
	case Or:
		clauses := make(bson.A, 0, len(f))
		for _, sub := range f {
			clauses = append(clauses, toBSON(sub))
		}
		return bson.M{"$or": clauses}
	default:
		return bson.M{}
	}
}
