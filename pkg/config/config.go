package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	Storage StorageConfig
	Catalog CatalogConfig
	Upload  UploadConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración de PostgreSQL (solo con STORAGE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Drivers de almacenamiento soportados.
const (
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// StorageConfig slot durable del catálogo.
type StorageConfig struct {
	Driver        string // bolt, postgres, redis, memory
	SlotKey       string
	BoltPath      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// CatalogConfig comportamiento del almacén.
type CatalogConfig struct {
	StrictNotFound bool // Update/Delete con id inexistente devuelven 404 en vez de no-op
}

// UploadConfig límites de carga de imágenes.
type UploadConfig struct {
	MaxImageBytes int64
	MaxParallel   int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "tienda-infantil"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "tienda_infantil"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getString(v, "STORAGE_DRIVER", DriverBolt)),
			SlotKey:       getString(v, "STORAGE_SLOT_KEY", "products"),
			BoltPath:      getString(v, "STORAGE_BOLT_PATH", "data/tienda.db"),
			RedisAddr:     getString(v, "STORAGE_REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "STORAGE_REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "STORAGE_REDIS_DB", 0),
			RedisPrefix:   getString(v, "STORAGE_REDIS_PREFIX", "tienda:"),
		},
		Catalog: CatalogConfig{
			StrictNotFound: getBool(v, "CATALOG_STRICT_NOT_FOUND", false),
		},
		Upload: UploadConfig{
			MaxImageBytes: int64(getInt(v, "UPLOAD_MAX_IMAGE_BYTES", 10*1024*1024)),
			MaxParallel:   getInt(v, "UPLOAD_MAX_PARALLEL", 4),
		},
	}

	switch cfg.Storage.Driver {
	case DriverBolt, DriverPostgres, DriverRedis, DriverMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
