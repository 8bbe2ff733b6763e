// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Поддерживаемые реализации документного хранилища
const (
	BackendElasticsearch = "elasticsearch"
	BackendMongo         = "mongo"
	BackendMemory        = "memory"
)

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения с fallback на значения по умолчанию.
type Config struct {
	AppPort     string `env:"APP_PORT" env-default:"8080"`     // Порт для HTTP сервера
	APIPrefix   string `env:"API_PREFIX" env-default:"/api"`   // Префикс маршрутов API
	Environment string `env:"ENVIRONMENT" env-default:"local"` // local включает консольные логи
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	CORSOrigins string `env:"CORS_ORIGINS" env-default:"*"` // Список источников через запятую

	StoreBackend string `env:"STORE_BACKEND" env-default:"elasticsearch"`

	ElasticsearchURL         string `env:"ELASTICSEARCH_URL" env-default:"http://localhost:9200"` // URL для подключения к Elasticsearch/OpenSearch
	ElasticsearchIndexPrefix string `env:"ELASTICSEARCH_INDEX_PREFIX" env-default:"ev_"`

	MongoURL string `env:"MONGO_URL" env-default:"mongodb://localhost:27017"`
	DBName   string `env:"DB_NAME" env-default:"ev_charging"`

	Postgres PostgresConfig
}

// PostgresConfig содержит параметры подключения к справочникам в PostgreSQL
type PostgresConfig struct {
	Enabled  bool   `env:"POSTGRES_ENABLED" env-default:"true"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	User     string `env:"POSTGRES_USER" env-default:"ev_user"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"ev_pass"`
	DB       string `env:"POSTGRES_DB" env-default:"ev_reference"`
}

// Load загружает конфигурацию из переменных окружения.
// Если рядом есть файл .env, его значения подставляются в окружение до чтения.
func Load() (*Config, error) {
	// .env необязателен: без него используются переменные окружения
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendElasticsearch, BackendMongo, BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.APIPrefix != "" && !strings.HasPrefix(c.APIPrefix, "/") {
		c.APIPrefix = "/" + c.APIPrefix
	}
	c.APIPrefix = strings.TrimRight(c.APIPrefix, "/")

	return nil
}

// PostgresDSN собирает строку подключения к PostgreSQL
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.DB,
	)
}

// AllowedOrigins разбирает CORS_ORIGINS в список
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
