package configuration

import (
	"fmt"
	"os"
	"strconv"

	"swishview/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Stripe      Stripe      `json:"stripe"`
	PayPal      PayPal      `json:"paypal"`
	YouTube     YouTube     `json:"youtube"`
	Pubsub      Pubsub      `json:"pubsub"`
	ServiceBus  ServiceBus  `json:"serviceBus"`
	Analytics   Analytics   `json:"analytics"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
	// FrontendOrigins are allowed CORS origins for the campaign dashboard.
	FrontendOrigins []string `json:"frontendOrigins"`
}

type Database struct {
	Psql  Db `json:"psql"`
	Mssql Db `json:"mssql"`
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Stripe struct {
	SecretKey     string `json:"secretKey"`
	WebhookSecret string `json:"webhookSecret"`
}

type PayPal struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	// BaseURL defaults to the sandbox; use https://api-m.paypal.com in production.
	BaseURL string `json:"baseUrl"`
}

type YouTube struct {
	APIKey string `json:"apiKey"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

type ServiceBus struct {
	Namespace string `json:"namespace"`
	Queue     string `json:"queue"`
}

type Analytics struct {
	// SyncIntervalSeconds drives the background view-count sync job.
	SyncIntervalSeconds int `json:"syncIntervalSeconds"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initProviders(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = "localhost"
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = "5432"
	}

	// Optional MSSQL config via environment variables (Azure SQL in production)
	if v := os.Getenv("MSSQL_DB_NAME"); C.Database.Mssql.Name == "" && v != "" {
		C.Database.Mssql.Name = v
	}
	if v := os.Getenv("MSSQL_HOST"); C.Database.Mssql.Host == "" && v != "" {
		C.Database.Mssql.Host = v
	}
	if v := os.Getenv("MSSQL_PORT"); C.Database.Mssql.Port == "" && v != "" {
		C.Database.Mssql.Port = v
	}
	if v := os.Getenv("MSSQL_USER"); C.Database.Mssql.User == "" && v != "" {
		C.Database.Mssql.User = v
	}
	if v := os.Getenv("MSSQL_PASSWORD"); C.Database.Mssql.Password == "" && v != "" {
		C.Database.Mssql.Password = v
	}
	if C.Database.Mssql.Port == "" {
		C.Database.Mssql.Port = "1433"
	}

	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}

	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = os.Getenv("REDIS_PORT")
	}
	if C.RedisClient.Username == "" {
		C.RedisClient.Username = os.Getenv("REDIS_USERNAME")
	}
	if C.RedisClient.Password == "" {
		C.RedisClient.Password = os.Getenv("REDIS_PASSWORD")
	}
	if C.RedisClient.Host == "" {
		C.RedisClient.Host = "localhost"
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = "6379"
	}
}

func initApp(C *Config) {
	// Prefer SECRET_KEY from environment for JWT signing; overrides config file
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10010
	}
	if len(C.App.FrontendOrigins) == 0 {
		C.App.FrontendOrigins = []string{
			"https://swishview.com",
			"https://admin.swishview.com",
			"http://localhost:5173",
			"http://localhost:3000",
		}
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initProviders(C *Config) {
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		C.Stripe.SecretKey = v
	}
	if v := os.Getenv("STRIPE_WEBHOOK_SECRET"); v != "" {
		C.Stripe.WebhookSecret = v
	}
	if v := os.Getenv("PAYPAL_CLIENT_ID"); v != "" {
		C.PayPal.ClientID = v
	}
	if v := os.Getenv("PAYPAL_CLIENT_SECRET"); v != "" {
		C.PayPal.ClientSecret = v
	}
	if C.PayPal.BaseURL == "" {
		C.PayPal.BaseURL = "https://api-m.sandbox.paypal.com"
	}
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		C.YouTube.APIKey = v
	}
	if v := os.Getenv("PUBSUB_PROJECT_ID"); v != "" {
		C.Pubsub.ProjectID = v
	}
	if C.Pubsub.Topic == "" {
		C.Pubsub.Topic = "campaign-events"
	}
	if v := os.Getenv("SERVICEBUS_NAMESPACE"); v != "" {
		C.ServiceBus.Namespace = v
	}
	if C.ServiceBus.Queue == "" {
		C.ServiceBus.Queue = "ops-alerts"
	}
	if C.Analytics.SyncIntervalSeconds == 0 {
		C.Analytics.SyncIntervalSeconds = 300
	}
}
