// Package config отвечает за:
// - загрузку .env (если файл есть)
// - чтение medkeeper.yaml (необязательного)
// - подстановку переменных окружения вида ${MEDKEEPER_DATA_DIR}
// - проставление дефолтов и переопределения из окружения
// - валидацию (чтобы обработчик не стартовал с дырявыми настройками)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/IvanChernomyrdin/medkeeper/internal/shared/utils"
)

// DefaultPath — конфиг, который подхватывается, если путь не задан явно.
const DefaultPath = "configs/medkeeper.yaml"

// EnvConfigPath — переменная окружения с путём к конфигу.
const EnvConfigPath = "MEDKEEPER_CONFIG"

// Config — корневая структура конфига обработчиков.
type Config struct {
	Env     string        `yaml:"env"` // dev|prod|test
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig — где и как лежат файлы с записями.
type StorageConfig struct {
	DataDir       string        `yaml:"data_dir"`
	UsersFile     string        `yaml:"users_file"`
	RemindersFile string        `yaml:"reminders_file"`
	LockTimeout   time.Duration `yaml:"lock_timeout"` // сколько ждать блокировку файла
	LockRetry     time.Duration `yaml:"lock_retry"`
	DirMode       uint32        `yaml:"dir_mode"`
	FileMode      uint32        `yaml:"file_mode"`
	KeepCorrupt   *bool         `yaml:"keep_corrupt"` // сохранять битый файл в <file>.corrupt, по умолчанию true
}

// LogConfig — настройки логирования (zap + lumberjack).
type LogConfig struct {
	Level      string `yaml:"level"` // debug|info|warn|error
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// LoadDotEnv загружает переменные из .env файлов. Отсутствие файла — не ошибка.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ResolvePath выбирает путь к конфигу: флаг, затем MEDKEEPER_CONFIG,
// затем DefaultPath, если такой файл существует. Пустая строка — работать на дефолтах.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	return ""
}

// Load читает YAML (если path не пустой), подставляет переменные окружения вида ${VAR},
// затем проставляет дефолты, применяет переопределения из окружения и валидирует.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		expanded := ExpandEnvStrict(string(raw))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	ApplyDefaults(&cfg)
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(m string) string {
		sub := envRef.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.Storage.UsersFile == "" {
		cfg.Storage.UsersFile = "userdata.json"
	}
	if cfg.Storage.RemindersFile == "" {
		cfg.Storage.RemindersFile = "reminder.json"
	}
	if cfg.Storage.LockTimeout == 0 {
		cfg.Storage.LockTimeout = 5 * time.Second
	}
	if cfg.Storage.LockRetry == 0 {
		cfg.Storage.LockRetry = 20 * time.Millisecond
	}
	if cfg.Storage.DirMode == 0 {
		cfg.Storage.DirMode = 0o700
	}
	if cfg.Storage.FileMode == 0 {
		cfg.Storage.FileMode = 0o600
	}
	if cfg.Storage.KeepCorrupt == nil {
		cfg.Storage.KeepCorrupt = utils.Ptr(true)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = filepath.Join("runtime", "logs")
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 10
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 5
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 30
	}
}

// ApplyEnvOverrides даёт переопределить часть настроек через окружение
// без ${...} в yaml. Например MEDKEEPER_DATA_DIR=/var/lib/medkeeper.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MEDKEEPER_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("MEDKEEPER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MEDKEEPER_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
	if v := os.Getenv("MEDKEEPER_LOCK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Storage.LockTimeout = d
		}
	}
}

// Validate проверяет, что конфиг заполнен корректно.
func (c *Config) Validate() error {
	switch c.Env {
	case "dev", "prod", "test":
	default:
		return fmt.Errorf("env must be dev|prod|test (got %q)", c.Env)
	}

	if strings.Contains(c.Storage.DataDir, "${") {
		return fmt.Errorf("storage.data_dir contains an unexpanded variable: %q", c.Storage.DataDir)
	}
	for name, file := range map[string]string{
		"storage.users_file":     c.Storage.UsersFile,
		"storage.reminders_file": c.Storage.RemindersFile,
	} {
		if file == "" || filepath.Base(file) != file {
			return fmt.Errorf("%s must be a plain file name (got %q)", name, file)
		}
	}
	if c.Storage.UsersFile == c.Storage.RemindersFile {
		return errors.New("storage.users_file and storage.reminders_file must differ")
	}

	if c.Storage.LockTimeout < 0 {
		return fmt.Errorf("storage.lock_timeout must be >= 0 (got %s)", c.Storage.LockTimeout)
	}
	if c.Storage.LockRetry <= 0 {
		return fmt.Errorf("storage.lock_retry must be > 0 (got %s)", c.Storage.LockRetry)
	}
	if c.Storage.DirMode > 0o777 || c.Storage.FileMode > 0o777 {
		return fmt.Errorf("storage.dir_mode/file_mode must be permission bits (got %o/%o)", c.Storage.DirMode, c.Storage.FileMode)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug|info|warn|error (got %q)", c.Log.Level)
	}

	return nil
}

// UsersPath — полный путь к файлу пользователей.
func (c *Config) UsersPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.UsersFile)
}

// RemindersPath — полный путь к файлу напоминаний.
func (c *Config) RemindersPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.RemindersFile)
}
