package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"production"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Redis      Redis      `yaml:"redis"`
	JWT        JWT        `yaml:"jwt"`
	Log        Log        `yaml:"log"`
	Upload     Upload     `yaml:"upload"`
	Minio      Minio      `yaml:"minio"`
	S3         S3         `yaml:"s3"`
	Media      Media      `yaml:"media"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
	Admin      Admin      `yaml:"admin"`
	Frontend   Frontend   `yaml:"frontend"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"0.0.0.0:5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Database describes either a postgres or a mysql (TiDB) server.
type Database struct {
	Driver       string `yaml:"driver" env:"DB_DRIVER" env-default:"mysql"`
	Host         string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         string `yaml:"port" env:"DB_PORT" env-default:"3306"`
	User         string `yaml:"user" env:"DB_USER" env-default:"root"`
	Password     string `yaml:"password" env:"DB_PASSWORD"`
	Name         string `yaml:"name" env:"DB_NAME" env-default:"mg_films"`
	SSLMode      string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	TLS          bool   `yaml:"tls" env:"DB_SSL"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"5"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
}

type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type JWT struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET"`
	TTL    time.Duration `yaml:"ttl" env:"JWT_TTL" env-default:"24h"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Upload struct {
	Driver      string        `yaml:"driver" env:"UPLOAD_DRIVER" env-default:"auto"`
	LocalDir    string        `yaml:"local_dir" env:"UPLOAD_LOCAL_DIR" env-default:"./uploads"`
	PublicPath  string        `yaml:"public_path" env:"UPLOAD_PUBLIC_PATH" env-default:"/uploads"`
	MaxFileSize int64         `yaml:"max_file_size" env:"UPLOAD_MAX_FILE_SIZE" env-default:"15728640"`
	MaxFiles    int           `yaml:"max_files" env:"UPLOAD_MAX_FILES" env-default:"20"`
	PresignTTL  time.Duration `yaml:"presign_ttl" env:"UPLOAD_PRESIGN_TTL" env-default:"15m"`
}

type Minio struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"mg-films"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
	PublicURL string `yaml:"public_url" env:"MINIO_PUBLIC_URL"`
}

// S3 covers AWS S3 and S3-compatible stores such as Cloudflare R2.
type S3 struct {
	Endpoint        string `yaml:"endpoint" env:"S3_ENDPOINT"`
	AccountID       string `yaml:"account_id" env:"R2_ACCOUNT_ID"`
	Region          string `yaml:"region" env:"S3_REGION" env-default:"auto"`
	AccessKeyID     string `yaml:"access_key_id" env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"S3_SECRET_ACCESS_KEY"`
	Bucket          string `yaml:"bucket" env:"S3_BUCKET" env-default:"mg-films"`
	PublicURL       string `yaml:"public_url" env:"S3_PUBLIC_URL"`
}

type Media struct {
	BaseURL         string `yaml:"base_url" env:"MEDIA_BASE_URL"`
	FallbackVideoID string `yaml:"fallback_video_id" env:"MEDIA_FALLBACK_VIDEO_ID" env-default:"dQw4w9WgXcQ"`
}

type RateLimit struct {
	LoginPerMinute     int `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN" env-default:"10"`
	InquiriesPerMinute int `yaml:"inquiries_per_minute" env:"RATE_LIMIT_INQUIRIES" env-default:"5"`
	// Proxy addresses or CIDRs whose X-Forwarded-For header is believed.
	TrustedProxies []string `yaml:"trusted_proxies" env:"RATE_LIMIT_TRUSTED_PROXIES" env-separator:","`
}

// Admin is the account created on an empty admins table.
type Admin struct {
	Email       string `yaml:"email" env:"ADMIN_EMAIL" env-default:"admin@mgfilms.com"`
	Password    string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin123"`
	Name        string `yaml:"name" env:"ADMIN_NAME" env-default:"MG Films Admin"`
	SeedOnStart bool   `yaml:"seed_on_start" env:"ADMIN_SEED_ON_START" env-default:"true"`
}

type Frontend struct {
	DistDir       string `yaml:"dist_dir" env:"FRONTEND_DIST_DIR" env-default:"./dist"`
	AllowedOrigin string `yaml:"allowed_origin" env:"FRONTEND_URL" env-default:"*"`
}

// Load reads the YAML file at path (if any) and then the environment.
// An empty path means environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist at path: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret must be set (JWT_SECRET)")
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Upload.Driver {
	case "auto", "local", "minio", "s3":
	default:
		return fmt.Errorf("unsupported upload driver %q", c.Upload.Driver)
	}
	if c.Upload.MaxFileSize <= 0 {
		return errors.New("upload max_file_size must be positive")
	}
	for _, entry := range c.RateLimit.TrustedProxies {
		if !validProxy(entry) {
			return fmt.Errorf("invalid trusted proxy %q", entry)
		}
	}
	return nil
}

func validProxy(entry string) bool {
	entry = strings.TrimSpace(entry)
	if strings.Contains(entry, "/") {
		_, err := netip.ParsePrefix(entry)
		return err == nil
	}
	_, err := netip.ParseAddr(entry)
	return err == nil
}

// MustLoad loads .env, then the config file named by CONFIG_PATH or -config.
func MustLoad() *Config {
	// .env is optional
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		if !flag.Parsed() {
			flags := flag.String("config", "", "Path to config file")
			flag.Parse()
			configPath = *flags
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	return cfg
}
