package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"SERVER_HOST"         default:"localhost"`
	HTTPPort    string `envconfig:"SERVER_HTTP_PORT"    default:"8080"`
	GrpcPort    string `envconfig:"SERVER_GRPC_PORT"    default:"50051"`
	ReadTimeout int    `envconfig:"SERVER_READ_TIMEOUT" default:"10"`
}

type Db struct {
	Source string `envconfig:"DB_NAME" default:"newsletter.db"`
}

type Redis struct {
	Addr     string        `envconfig:"REDIS_ADDR"     default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB"       default:"0"`
	PageTTL  time.Duration `envconfig:"REDIS_PAGE_TTL" default:"5m"`
}

type Auth struct {
	JWTSecret    string        `envconfig:"AUTH_JWT_SECRET"    required:"true"`
	TokenTTL     time.Duration `envconfig:"AUTH_TOKEN_TTL"     default:"24h"`
	CookieName   string        `envconfig:"AUTH_COOKIE_NAME"   default:"session"`
	CookieSecure bool          `envconfig:"AUTH_COOKIE_SECURE" default:"false"`
}

type Email struct {
	Transport string `envconfig:"EMAIL_TRANSPORT" default:"smtp"`

	User     string `envconfig:"EMAIL_USER"`
	Host     string `envconfig:"EMAIL_HOST"`
	Port     string `envconfig:"EMAIL_PORT"     default:"587"`
	Password string `envconfig:"EMAIL_PASSWORD"`
	From     string `envconfig:"EMAIL_FROM"     default:"no-reply@newsletter.local"`

	SESRegion    string `envconfig:"SES_REGION"     default:"us-east-1"`
	SESAccessKey string `envconfig:"SES_ACCESS_KEY"`
	SESSecretKey string `envconfig:"SES_SECRET_KEY"`

	SendTimeout time.Duration `envconfig:"EMAIL_SEND_TIMEOUT" default:"15s"`
	Breaker     Breaker
}

type Breaker struct {
	Interval     time.Duration `envconfig:"BREAKER_INTERVAL"      default:"30s"`
	Timeout      time.Duration `envconfig:"BREAKER_TIMEOUT"       default:"15s"`
	RepeatNumber uint32        `envconfig:"BREAKER_REPEAT_NUMBER" default:"5"`
}

// RabbitMQ is optional. With no host configured lead events are not published.
type RabbitMQ struct {
	Host string `envconfig:"RABBITMQ_HOST"`
	Port string `envconfig:"RABBITMQ_PORT"     default:"5672"`
	User string `envconfig:"RABBITMQ_USER"     default:"guest"`
	Pass string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

type Logging struct {
	FilePath    string `envconfig:"LOG_FILE"    default:"logs/newsletter.log"`
	ServiceName string `envconfig:"LOG_SERVICE" default:"newsletter-manager"`
	Level       string `envconfig:"LOG_LEVEL"   default:"info"`
}

type Reporter struct {
	Spec string `envconfig:"REPORTER_SPEC" default:"0 */5 * * * *"`
}

type Config struct {
	Server   Server
	DB       Db
	Redis    Redis
	Auth     Auth
	Email    Email
	RabbitMQ RabbitMQ
	Logging  Logging
	Reporter Reporter
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.HTTPPort
}

func (c *Config) GrpcAddress() string {
	return c.Server.Host + ":" + c.Server.GrpcPort
}

func (r *RabbitMQ) Enabled() bool {
	return r.Host != ""
}

func (r *RabbitMQ) Address() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.User, r.Pass, r.Host, r.Port)
}
