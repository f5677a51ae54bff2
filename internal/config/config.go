package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config guarda as configurações da aplicação
type Config struct {
	HTTPPort    string        // Porta do servidor HTTP
	DBHost      string        // Host do banco de dados
	DBPort      string        // Porta do banco de dados
	DBUser      string        // Usuário do banco de dados
	DBPassword  string        // Senha do banco de dados
	DBName      string        // Nome do banco de dados
	JWTSecret   string        // Segredo do JWT
	TokenExpiry time.Duration // Tempo de vida do token
}

// LoadConfig carrega a configuração a partir do arquivo .env
func LoadConfig() (*Config, error) {
	// Carrega as variáveis de ambiente do arquivo .env
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Arquivo .env não encontrado")
	}

	// Interpreta o tempo de vida do token
	expiry, err := time.ParseDuration(os.Getenv("TOKEN_EXPIRY"))
	if err != nil {
		expiry = 24 * time.Hour // Padrão de 24 horas
	}

	config := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "pagamentos"),
		JWTSecret:   getEnv("JWT_SECRET", "default-secret-key"),
		TokenExpiry: expiry,
	}

	return config, nil
}

// getEnv lê uma variável de ambiente ou devolve o valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
