package configprovider

import (
	"fmt"
	"log"
	"os"

	"assetdesk/providers"

	"github.com/joho/godotenv"
)

type EnvConfigProvider struct {
	dbUser     string
	dbPassword string
	dbHost     string
	dbPort     string
	dbName     string
	serverPort string
	redisAddr  string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = os.Getenv("SERVER_PORT")
	e.redisAddr = os.Getenv("REDIS_ADDR")
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}
