package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	BaseURL     string
	DatabaseDSN string

	UploadDir     string
	CloudinaryUrl string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AdminAllowedIP    string
	AccessSecret      string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:  getenv("SERVER_PORT", ":3001"),
		BaseURL:     getenv("BASE_URL", "*"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		CloudinaryUrl: os.Getenv("CLOUDINARY_URL"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminAllowedIP:    os.Getenv("ADMIN_ALLOWED_IP"),
		AccessSecret:      getenv("ACCESS_SECRET", "dev-secret-change-me"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
