package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host            string
	Port            string
	Mode            string
	ShutdownTimeout time.Duration
}

type Auth struct {
	Secret string
	TTL    time.Duration
}

type Mongo struct {
	URI        string
	DBName     string
	Collection string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// Enabled reports whether a cache host was configured at all.
func (r RedisCache) Enabled() bool {
	return r.Host != ""
}

type OMDb struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
}

type Videos struct {
	Dir        string
	S3Bucket   string
	S3Prefix   string
	S3Endpoint string
	URLTTL     time.Duration
}

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	HTTP             HTTPServer
	Auth             Auth
	FavoritesBackend string
	Mongo            Mongo
	Postgres         Postgres
	Redis            RedisCache
	OMDb             OMDb
	Videos           Videos
}

const logtag = "[config]"

var secretKeys = map[string]struct{}{
	"JWT_SECRET":     {},
	"DB_PASSWORD":    {},
	"REDIS_PASSWORD": {},
	"OMDB_API_KEY":   {},
	"MONGO_URI":      {},
}

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return FromEnv()
}

// FromEnv builds the config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		HTTP:             *newHTTP(),
		Auth:             *newAuth(),
		FavoritesBackend: getenv("FAVORITES_BACKEND", BackendMongo),
		Mongo:            *newMongo(),
		Postgres:         *newPostgres(),
		Redis:            *newRedis(),
		OMDb:             *newOMDb(),
		Videos:           *newVideos(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:            getenv("HTTP_PORT", "5000"),
		Host:            getenv("HTTP_HOST", ""),
		Mode:            getenv("HTTP_MODE", "RW"),
		ShutdownTimeout: getduration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func newAuth() *Auth {
	return &Auth{
		Secret: getenv("JWT_SECRET", ""),
		TTL:    getduration("JWT_TTL", 24*time.Hour),
	}
}

func newMongo() *Mongo {
	return &Mongo{
		URI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getenv("MONGO_DB", "movieDB"),
		Collection: getenv("MONGO_FAVORITES_COLLECTION", "favorites"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "movieDB"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),

		MaxOpenConns:    getint("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getint("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getduration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", ""),
		Password: getenv("REDIS_PASSWORD", ""),
		TTL:      getduration("CATALOG_CACHE_TTL", 6*time.Hour),
	}
}

func newOMDb() *OMDb {
	return &OMDb{
		APIKey:      getenv("OMDB_API_KEY", ""),
		BaseURL:     getenv("OMDB_BASE_URL", "https://www.omdbapi.com/"),
		Timeout:     getduration("OMDB_TIMEOUT", 10*time.Second),
		Concurrency: getint("CATALOG_LOOKUP_CONCURRENCY", 0),
	}
}

func newVideos() *Videos {
	return &Videos{
		Dir:        getenv("VIDEO_DIR", "./videos"),
		S3Bucket:   getenv("VIDEO_S3_BUCKET", ""),
		S3Prefix:   getenv("VIDEO_S3_PREFIX", "videos/"),
		S3Endpoint: getenv("VIDEO_S3_ENDPOINT", ""),
		URLTTL:     getduration("VIDEO_URL_TTL", 15*time.Minute),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	if _, secret := secretKeys[key]; secret {
		fmt.Printf("%s %s = ***\n", logtag, key)
	} else {
		fmt.Printf("%s %s = %s\n", logtag, key, val)
	}
	return val
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	d, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s: bad duration %q. Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s: bad integer %q. Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return n
}
