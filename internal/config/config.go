package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/panoprobe/internal/pkg/utils"
)

// Источники признаков окружения
const (
	FeaturesSourceOverpass = "overpass"
	FeaturesSourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Nominatim NominatimConfig
	Overpass  OverpassConfig
	Imagery   ImageryConfig
	Vision    VisionConfig
	Features  FeaturesConfig
	OSMDB     DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type NominatimConfig struct {
	URL       string
	UserAgent string
	Zoom      int
	RPS       float64
	Timeout   time.Duration
}

type OverpassConfig struct {
	URLs         []string
	RadiusMeters int
	MaxRetries   int
	MaxBackoff   time.Duration
	Timeout      time.Duration
}

type ImageryConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type VisionConfig struct {
	Enabled  bool
	URL      string
	NumViews int
	Timeout  time.Duration
}

type FeaturesConfig struct {
	Source string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	PlaceTTL   time.Duration
	NearbyTTL  time.Duration
	ImageryTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	ConsumerGroup   string
	ConsumerName    string
	ShutdownTimeout time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8000)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("NOMINATIM_USER_AGENT", "panoprobe/1.0")
	v.SetDefault("NOMINATIM_ZOOM", 10)
	v.SetDefault("NOMINATIM_RPS", 1.0)
	v.SetDefault("NOMINATIM_TIMEOUT", 10)

	v.SetDefault("OVERPASS_URLS", "https://overpass.kumi.systems/api/interpreter,https://overpass-api.de/api/interpreter")
	v.SetDefault("OVERPASS_RADIUS", 500)
	v.SetDefault("OVERPASS_MAX_RETRIES", 2)
	v.SetDefault("OVERPASS_MAX_BACKOFF", 5)
	v.SetDefault("OVERPASS_TIMEOUT", 25)

	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("STREETVIEW_URL", "https://maps.googleapis.com/maps/api/streetview")
	v.SetDefault("STREETVIEW_TIMEOUT", 10)

	v.SetDefault("VISION_ENABLED", true)
	v.SetDefault("VISION_BACKEND_URL", "http://localhost:8001")
	v.SetDefault("VISION_NUM_VIEWS", 4)
	v.SetDefault("VISION_TIMEOUT", 30)

	v.SetDefault("FEATURES_SOURCE", FeaturesSourceOverpass)

	v.SetDefault("OSM_DB_HOST", "localhost")
	v.SetDefault("OSM_DB_PORT", 5432)
	v.SetDefault("OSM_DB_USER", "osm")
	v.SetDefault("OSM_DB_PASSWORD", "")
	v.SetDefault("OSM_DB_NAME", "osm")
	v.SetDefault("OSM_DB_SSLMODE", "disable")
	v.SetDefault("OSM_DB_MAX_CONNS", 10)
	v.SetDefault("OSM_DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("OSM_DB_CONN_MAX_LIFETIME", 300)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CACHE_PLACE_TTL", 86400)
	v.SetDefault("CACHE_NEARBY_TTL", 3600)
	v.SetDefault("CACHE_IMAGERY_TTL", 86400)

	v.SetDefault("WORKER_CONSUMER_GROUP", "difficulty-workers")
	v.SetDefault("WORKER_CONSUMER_NAME", "")
	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)
}

// Load читает конфигурацию из окружения. Файл .env необязателен,
// переменные окружения имеют приоритет над ним.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию с указанным env-файлом
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ORIGINS"),
		},
		Nominatim: NominatimConfig{
			URL:       strings.TrimRight(v.GetString("NOMINATIM_URL"), "/"),
			UserAgent: v.GetString("NOMINATIM_USER_AGENT"),
			Zoom:      v.GetInt("NOMINATIM_ZOOM"),
			RPS:       v.GetFloat64("NOMINATIM_RPS"),
			Timeout:   seconds(v, "NOMINATIM_TIMEOUT"),
		},
		Overpass: OverpassConfig{
			URLs:         splitList(v.GetString("OVERPASS_URLS")),
			RadiusMeters: v.GetInt("OVERPASS_RADIUS"),
			MaxRetries:   v.GetInt("OVERPASS_MAX_RETRIES"),
			MaxBackoff:   seconds(v, "OVERPASS_MAX_BACKOFF"),
			Timeout:      seconds(v, "OVERPASS_TIMEOUT"),
		},
		Imagery: ImageryConfig{
			APIKey:  v.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL: strings.TrimRight(v.GetString("STREETVIEW_URL"), "/"),
			Timeout: seconds(v, "STREETVIEW_TIMEOUT"),
		},
		Vision: VisionConfig{
			Enabled:  v.GetBool("VISION_ENABLED"),
			URL:      strings.TrimRight(v.GetString("VISION_BACKEND_URL"), "/"),
			NumViews: v.GetInt("VISION_NUM_VIEWS"),
			Timeout:  seconds(v, "VISION_TIMEOUT"),
		},
		Features: FeaturesConfig{
			Source: strings.ToLower(v.GetString("FEATURES_SOURCE")),
		},
		OSMDB: DatabaseConfig{
			Host:            v.GetString("OSM_DB_HOST"),
			Port:            v.GetInt("OSM_DB_PORT"),
			User:            v.GetString("OSM_DB_USER"),
			Password:        v.GetString("OSM_DB_PASSWORD"),
			DBName:          v.GetString("OSM_DB_NAME"),
			SSLMode:         v.GetString("OSM_DB_SSLMODE"),
			MaxConns:        v.GetInt("OSM_DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("OSM_DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: seconds(v, "OSM_DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			PlaceTTL:   seconds(v, "CACHE_PLACE_TTL"),
			NearbyTTL:  seconds(v, "CACHE_NEARBY_TTL"),
			ImageryTTL: seconds(v, "CACHE_IMAGERY_TTL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			ConsumerGroup:   v.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:    v.GetString("WORKER_CONSUMER_NAME"),
			ShutdownTimeout: seconds(v, "WORKER_SHUTDOWN_TIMEOUT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Features.Source {
	case FeaturesSourceOverpass, FeaturesSourcePostgres:
	default:
		return fmt.Errorf("unknown FEATURES_SOURCE %q", c.Features.Source)
	}
	if c.Features.Source == FeaturesSourceOverpass && len(c.Overpass.URLs) == 0 {
		return errors.New("OVERPASS_URLS must contain at least one endpoint")
	}
	if !utils.ValidateRadius(c.Overpass.RadiusMeters) {
		return fmt.Errorf("OVERPASS_RADIUS must be within 10..5000 m, got %d", c.Overpass.RadiusMeters)
	}
	if c.Nominatim.RPS <= 0 {
		return fmt.Errorf("NOMINATIM_RPS must be positive, got %v", c.Nominatim.RPS)
	}
	for _, origin := range c.CORSOriginList() {
		if origin == "*" {
			return errors.New("CORS_ORIGINS must list explicit origins, wildcard \"*\" is not allowed with credentials")
		}
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func seconds(v *viper.Viper, key string) time.Duration {
	return time.Duration(v.GetInt(key)) * time.Second
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// CORSOriginList возвращает разрешённые origin'ы списком
func (c *Config) CORSOriginList() []string {
	return splitList(c.Server.CORSOrigins)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetOSMDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.OSMDB.Host,
		c.OSMDB.Port,
		c.OSMDB.User,
		c.OSMDB.Password,
		c.OSMDB.DBName,
		c.OSMDB.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
