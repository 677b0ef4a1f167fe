package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// loadEnv reads .env once. A missing file is fine in deployed
// environments where everything comes from real env vars.
func loadEnv() {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
}

func EnvMongoURI() string {
	loadEnv()
	return os.Getenv("MONGOURI")
}

func EnvDBName() string {
	loadEnv()
	if name := os.Getenv("MONGO_DB_NAME"); name != "" {
		return name
	}
	return "jeniiAdmin"
}

func EnvJWTSecret() string {
	loadEnv()
	return os.Getenv("JWT_SECRET")
}

func EnvListenAddr() string {
	loadEnv()
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		return addr
	}
	return ":3000"
}

func EnvStorageProvider() string {
	loadEnv()
	return os.Getenv("STORAGE_PROVIDER")
}

func EnvCloudinaryURL() string {
	loadEnv()
	return os.Getenv("CLOUDINARY_URL")
}

func EnvAWSS3Bucket() string {
	loadEnv()
	return os.Getenv("AWS_S3_BUCKET_NAME")
}

func EnvAWSRegion() string {
	loadEnv()
	return os.Getenv("AWS_REGION")
}

func EnvKafkaBrokers() string {
	loadEnv()
	return os.Getenv("KAFKA_BROKERS")
}

func EnvRazorpayKeyId() string {
	loadEnv()
	return os.Getenv("RAZORPAY_KEY_ID")
}

func EnvRazorpayKeySecret() string {
	loadEnv()
	return os.Getenv("RAZORPAY_KEY_SECRET")
}
