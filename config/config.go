package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	Environment      string
	MongoDBConfig    MongoDBConfig
	JWTSecret        string
	IdentityConfig   IdentityConfig
	CloudinaryConfig CloudinaryConfig
	KafkaConfig      KafkaConfig
	SMTPConfig       SMTPConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type IdentityConfig struct {
	ProjectID string
	JWKSURL   string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Server    string
	Port      int
	Sender    string
	Password  string
	Recipient string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		IdentityConfig: IdentityConfig{
			ProjectID: os.Getenv("IDENTITY_PROJECT_ID"),
			JWKSURL:   os.Getenv("IDENTITY_JWKS_URL"),
		},
		CloudinaryConfig: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SMTPConfig: SMTPConfig{
			Server:    os.Getenv("SMTP_SERVER"),
			Sender:    os.Getenv("SMTP_SENDER"),
			Password:  os.Getenv("SMTP_PASSWORD"),
			Recipient: os.Getenv("BOOKING_NOTIFICATION_RECIPIENT"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "curavet"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	return &conf
}
