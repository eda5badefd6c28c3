package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
	// PublicBaseURL prefixes every project's baseUrl, e.g. https://api.example.com
	PublicBaseURL string
}

type RootCfg struct {
	ProjectTokenPrefix string
}

type AuthCfg struct {
	JWTSecret string
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RegistryCfg struct {
	SeedOnStart bool
}

type RedisCfg struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type MQCfg struct {
	Enabled  bool
	URL      string
	Exchange string
}

type BlobCfg struct {
	Driver         string
	MaxUploadBytes int64
}

type S3Cfg struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UsePathStyle bool
	PublicURL    string
	SSE          string
}

type GCSCfg struct {
	Bucket    string
	PublicURL string
}

type CORSCfg struct {
	AllowOrigins []string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Root      RootCfg
	Auth      AuthCfg
	Log       LogCfg
	Database  DBCfg
	Registry  RegistryCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	Blob      BlobCfg
	S3        S3Cfg
	GCS       GCSCfg
	CORS      CORSCfg
	Telemetry TelemetryCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	// Defaults apply with or without a config file.
	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// Expand ${ENV} once before parsing.
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return loadFrom(os.ExpandEnv(string(raw)))
	}

	// No file: env + defaults only.
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFrom(expanded string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, err
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	setDefaults(v)

	cfg := new(Config)
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sitekit-api")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.publicBaseURL", "http://localhost:8080")
	v.SetDefault("root.projectTokenPrefix", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("registry.seedOnStart", true)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rabbitmq.exchange", "sitekit.records")
	v.SetDefault("blob.driver", "s3")
	v.SetDefault("blob.maxUploadBytes", 5<<20)
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("cors.allowOrigins", []string{"http://localhost:3000"})
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
