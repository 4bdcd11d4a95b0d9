package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// AllowedOrigins are the CORS origins accepted by the API
	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	QuotesCsvPath string `toml:"quotes_csv_path"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// auth
	LoginRateLimitAllowedPerMin int           `toml:"login_rate_limit_allowed_per_min"`
	SessionTTL                  time.Duration `toml:"session_ttl"`
	SessionsCleanupInterval     time.Duration `toml:"sessions_cleanup_interval"`

	Posture PostureConfig `toml:"posture"`
	Chat    ChatConfig    `toml:"chat"`
	Notify  NotifyConfig  `toml:"notify"`
}

type PostureConfig struct {
	// SensorType is either "file" or "websocket"
	SensorType     string   `toml:"sensor_type"`
	SensorFile     string   `toml:"sensor_file"`
	SensorFPS      int      `toml:"sensor_fps"`
	SensorURL      string   `toml:"sensor_url"`
	DefaultMode    string   `toml:"default_mode"`
	AlarmCommand   []string `toml:"alarm_command"`
	AlarmSoundPath string   `toml:"alarm_sound_path"`
	AlarmQueueSize int      `toml:"alarm_queue_size"`
	// AlarmTimeout bounds a single playback of the alarm command
	AlarmTimeout time.Duration `toml:"alarm_timeout"`
	AutoStart    bool          `toml:"auto_start"`
}

type ChatConfig struct {
	AthleteDataPath      string        `toml:"athlete_data_path"`
	GenerationModel      string        `toml:"generation_model"`
	EmbeddingModel       string        `toml:"embedding_model"`
	RequestsPerMinute    int           `toml:"requests_per_minute"`
	SessionTTL           time.Duration `toml:"session_ttl"`
	EmbeddingCacheSizeMB int           `toml:"embedding_cache_size_mb"`
	RetrievedChunksLimit int           `toml:"retrieved_chunks_limit"`
	ChunkSize            int           `toml:"chunk_size"`
	ChunkOverlap         int           `toml:"chunk_overlap"`
}

type NotifyConfig struct {
	SMTPHost             string        `toml:"smtp_host"`
	SMTPPort             int           `toml:"smtp_port"`
	From                 string        `toml:"from"`
	WeeklyReportEnabled  bool          `toml:"weekly_report_enabled"`
	WeeklyReportInterval time.Duration `toml:"weekly_report_interval"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config for env,
// with defaults filled in for unset values.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"http://localhost:8080", "http://localhost:3000"}
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 24 * time.Hour
	}
	if c.SessionsCleanupInterval <= 0 {
		c.SessionsCleanupInterval = 8 * time.Hour
	}

	p := &c.Posture
	if p.SensorType == "" {
		p.SensorType = "file"
	}
	if p.DefaultMode == "" {
		p.DefaultMode = "hand_raise"
	}
	if p.AlarmQueueSize <= 0 {
		p.AlarmQueueSize = 4
	}
	if p.AlarmTimeout <= 0 {
		p.AlarmTimeout = 10 * time.Second
	}

	ch := &c.Chat
	if ch.GenerationModel == "" {
		ch.GenerationModel = "models/gemini-1.5-flash"
	}
	if ch.EmbeddingModel == "" {
		ch.EmbeddingModel = "models/embedding-001"
	}
	if ch.RequestsPerMinute <= 0 {
		ch.RequestsPerMinute = 30
	}
	if ch.SessionTTL <= 0 {
		ch.SessionTTL = 2 * time.Hour
	}
	if ch.EmbeddingCacheSizeMB <= 0 {
		ch.EmbeddingCacheSizeMB = 16
	}
	if ch.RetrievedChunksLimit <= 0 {
		ch.RetrievedChunksLimit = 4
	}
	if ch.ChunkSize <= 0 {
		ch.ChunkSize = 1000
	}
	if ch.ChunkOverlap <= 0 {
		ch.ChunkOverlap = 200
	}

	n := &c.Notify
	if n.SMTPPort == 0 {
		n.SMTPPort = 587
	}
	if n.WeeklyReportInterval <= 0 {
		n.WeeklyReportInterval = 7 * 24 * time.Hour
	}
}
