package config

import (
	"os"
	"strconv"
	"time"
)

// Config agrupa la configuración del servicio leída desde variables de entorno.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	Port        string
	FrontendURL string
	BackendURL  string

	EmailHost string
	EmailPort int
	EmailUser string
	EmailPass string

	PrometheusEnabled bool

	// Timeouts acotados para las fronteras de I/O (base de datos y correo).
	QueryTimeout time.Duration
	MailTimeout  time.Duration

	// Vida máxima de una transacción WebPay pendiente en el cache en memoria.
	TransaccionTTL time.Duration
}

// Load construye la configuración con valores por defecto razonables
// para desarrollo local.
func Load() Config {
	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "restaurante_db"),

		Port:        getEnv("PORT", "5001"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:5001"),

		EmailHost: getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort: getEnvInt("EMAIL_PORT", 587),
		EmailUser: getEnv("EMAIL_USER", ""),
		EmailPass: getEnv("EMAIL_PASS", ""),

		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "") == "true",

		QueryTimeout:   getEnvDuration("QUERY_TIMEOUT", 5*time.Second),
		MailTimeout:    getEnvDuration("MAIL_TIMEOUT", 15*time.Second),
		TransaccionTTL: getEnvDuration("TRANSACCION_TTL", 30*time.Minute),
	}
}

// ConnString arma el string de conexión a PostgreSQL.
func (c Config) ConnString() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=disable"
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
