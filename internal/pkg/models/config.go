package models

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	SMS       SMSConfig
	OTP       OTPConfig
	Alert     AlertConfig
	RateLimit RateLimitConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Driver    string `json:"driver"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NSQConfig holds NSQ configuration for the device event bridge
type NSQConfig struct {
	Address           string   `json:"address"`
	LookupdAddrs      []string `json:"lookupd_addrs"`
	DeviceEventsTopic string   `json:"device_events_topic"`
	Channel           string   `json:"channel"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"` // minutes
	Issuer     string `json:"issuer"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

// SMSConfig holds the SMS gateway (Veevotech) configuration
type SMSConfig struct {
	BaseURL     string `json:"base_url"`
	APIHash     string `json:"api_hash"`
	SenderLabel string `json:"sender_label"`
	TimeoutSecs int    `json:"timeout_secs"`
}

// OTPConfig holds OTP lifecycle configuration
type OTPConfig struct {
	TTLSecs        int `json:"ttl_secs"`        // code validity window
	ResendCooldown int `json:"resend_cooldown"` // UI countdown, seconds
}

// AlertConfig holds emergency alert dispatch configuration
type AlertConfig struct {
	LocationTimeoutMs int `json:"location_timeout_ms"`
}

// RateLimitConfig holds login attempt limiting configuration
type RateLimitConfig struct {
	MaxAttempts int `json:"max_attempts"`
	WindowSecs  int `json:"window_secs"`
}
