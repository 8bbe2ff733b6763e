package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/akozadaev/go_ev_charging_platform/internal/models"
)

// referenceSchema создает таблицы справочников и заполняет их начальными значениями.
// Повторный запуск не меняет существующие записи.
const referenceSchema = `
CREATE TABLE IF NOT EXISTS location_types (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS charging_station_types (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS regions (
	id               SERIAL PRIMARY KEY,
	name             TEXT NOT NULL UNIQUE,
	parent_region_id INTEGER REFERENCES regions(id)
);

INSERT INTO location_types (name, description) VALUES
	('Metro Station', 'Metro and suburban rail stations'),
	('Shopping Mall', 'Malls and large retail centers'),
	('Highway', 'Highway rest stops and fuel plazas'),
	('Residential', 'Gated communities and apartment blocks'),
	('Commercial', 'Office complexes and business parks'),
	('Restaurant', 'Restaurants and food courts'),
	('Hotel', 'Hotels and resorts'),
	('Hospital', 'Hospitals and clinics')
ON CONFLICT (name) DO NOTHING;

INSERT INTO charging_station_types (name, description) VALUES
	('Level 1 (AC 120V)', 'Slow AC charging'),
	('Level 2 (AC 240V)', 'Standard AC charging'),
	('DC Fast Charging', 'DC charging up to 150 kW'),
	('Ultra Fast Charging', 'DC charging above 150 kW')
ON CONFLICT (name) DO NOTHING;

INSERT INTO regions (name) VALUES
	('India')
ON CONFLICT (name) DO NOTHING;

INSERT INTO regions (name, parent_region_id)
SELECT r.name, (SELECT id FROM regions WHERE name = 'India')
FROM (VALUES ('Karnataka'), ('Maharashtra'), ('Delhi NCR'), ('Tamil Nadu'), ('Telangana')) AS r(name)
ON CONFLICT (name) DO NOTHING;
`

// PostgresStorage предоставляет методы для работы со справочниками в PostgreSQL.
type PostgresStorage struct {
	db *sqlx.DB // Подключение к базе данных PostgreSQL
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и устанавливает подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

// EnsureSchema создает таблицы справочников, если их нет
func (ps *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := ps.db.ExecContext(ctx, referenceSchema); err != nil {
		return fmt.Errorf("failed to create reference schema: %w", err)
	}
	return nil
}

// Close закрывает подключение к базе данных PostgreSQL.
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// GetLocationTypes возвращает справочник типов площадок, отсортированный по имени
func (ps *PostgresStorage) GetLocationTypes(ctx context.Context) ([]models.ReferenceItem, error) {
	return ps.selectItems(ctx, "location_types")
}

// GetChargingStationTypes возвращает справочник типов зарядных станций, отсортированный по имени
func (ps *PostgresStorage) GetChargingStationTypes(ctx context.Context) ([]models.ReferenceItem, error) {
	return ps.selectItems(ctx, "charging_station_types")
}

// GetRegions возвращает список всех регионов из справочника.
// Результаты отсортированы по имени. Поддерживает иерархическую структуру через ParentRegionID.
func (ps *PostgresStorage) GetRegions(ctx context.Context) ([]models.Region, error) {
	regions := []models.Region{}
	if err := ps.db.SelectContext(ctx, &regions, `SELECT id, name, parent_region_id FROM regions ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	return regions, nil
}

// selectItems читает таблицу справочника; имя таблицы задается только внутри пакета
func (ps *PostgresStorage) selectItems(ctx context.Context, table string) ([]models.ReferenceItem, error) {
	items := []models.ReferenceItem{}
	query := fmt.Sprintf(`SELECT id, name, description FROM %s ORDER BY name`, table)
	if err := ps.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return items, nil
}
