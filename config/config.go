// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Template TemplateConfig `mapstructure:"template"`
	Fonts    FontsConfig    `mapstructure:"fonts"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Menu     MenuConfig     `mapstructure:"menu"`
	Blocks   BlocksConfig   `mapstructure:"blocks"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

type AppConfig struct {
	StoragePath string        `mapstructure:"storage_path"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

type TelegramConfig struct {
	TokenEnv string `mapstructure:"token_env"`
	Enabled  bool   `mapstructure:"enabled"`
}

type TemplateConfig struct {
	Image  string `mapstructure:"image"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

type FontConfig struct {
	File      string  `mapstructure:"file"`
	Size      float64 `mapstructure:"size"`
	Uppercase bool    `mapstructure:"uppercase"`
	Color     string  `mapstructure:"color"`
}

type FontsConfig struct {
	Title             FontConfig `mapstructure:"title"`
	Description       FontConfig `mapstructure:"description"`
	WarningMultiplier float64    `mapstructure:"warning_multiplier"`
}

type LayoutConfig struct {
	LineSpacing int `mapstructure:"line_spacing"`
	DishSpacing int `mapstructure:"dish_spacing"`
}

type MenuConfig struct {
	Days            []string `mapstructure:"days"`
	MaxDishesPerDay int      `mapstructure:"max_dishes_per_day"`
}

// Стили рамочных блоков: диапазон дат и предупреждение "ланчей не будет"
type BlockStyle struct {
	Background   string `mapstructure:"background"`
	BorderColor  string `mapstructure:"border_color"`
	TextColor    string `mapstructure:"text_color"`
	BorderRadius int    `mapstructure:"border_radius"`
	BorderWidth  int    `mapstructure:"border_width"`
	Padding      int    `mapstructure:"padding"`
}

type BlocksConfig struct {
	Date    BlockStyle `mapstructure:"date"`
	Warning BlockStyle `mapstructure:"warning"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`

	// Настройки пула соединений
	MaxRetries   int           `mapstructure:"max_retries"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	Enabled bool   `mapstructure:"enabled"`
}

type WorkerConfig struct {
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Retention       time.Duration `mapstructure:"retention"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

// ZoneConfig - описание одной зоны шаблона из zones.yaml.
// Порядок объявления зон определяет порядок наложения.
type ZoneConfig struct {
	ID        string `mapstructure:"id"`
	Kind      string `mapstructure:"kind"`
	X         int    `mapstructure:"x"`
	Y         int    `mapstructure:"y"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	MaxHeight int    `mapstructure:"max_height"`
	Required  bool   `mapstructure:"required"`
	Face      string `mapstructure:"face"`
	Align     string `mapstructure:"align"`
}

func LoadZones() ([]ZoneConfig, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("zones")
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, err
	}

	var zones []ZoneConfig
	if err := viperInstance.UnmarshalKey("zones", &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetBotToken читает токен бота из переменной окружения,
// имя переменной задается в config.yaml
func (c *Config) GetBotToken() string {
	env := c.Telegram.TokenEnv
	if env == "" {
		env = "BOT_TOKEN"
	}
	return os.Getenv(env)
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
