package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	config.SetDefault("APP_PORT", "7720")
	config.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	config.SetDefault("CHAT_OPENING_ENABLED", true)

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		panic("failed read config")
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName, appDescription string) {
	return c.Viper.GetString("APP_NAME"), c.Viper.GetString("APP_DESCRIPTION")
}

func (c *Config) GetAppPort() string {
	return c.Viper.GetString("APP_PORT")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

func (c *Config) GetGroqConfig() (baseURL, apiKey, model string) {
	baseURL = c.Viper.GetString("GROQ_BASE_URL")
	apiKey = c.Viper.GetString("GROQ_API_KEY")
	model = c.Viper.GetString("GROQ_MODEL")

	return baseURL, apiKey, model
}

func (c *Config) GetChatOpeningEnabled() bool {
	return c.Viper.GetBool("CHAT_OPENING_ENABLED")
}
