package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrUnknownStorage = errors.New("unknown storage")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Storage    string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the game started when the service comes up without a stored one.
type Game struct {
	PebblesCount      uint32 `yaml:"pebbles-count" env:"GAME_PEBBLES_COUNT" env-default:"15"`
	MaxPebblesPerTurn uint32 `yaml:"max-pebbles-per-turn" env:"GAME_MAX_PEBBLES_PER_TURN" env-default:"3"`
	Difficulty        string `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"easy"`
	// Seed of the opponent's random source. Zero means a fresh seed on every start.
	Seed uint64 `yaml:"seed" env:"GAME_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file when it exists, environment variables otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if config.Storage != StorageMemory && config.Storage != StorageRedis {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, config.Storage)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GameConfig - converts the configured defaults into a game config.
func (that *Game) GameConfig() (entity.GameConfig, error) {
	difficulty, err := entity.ParseDifficulty(that.Difficulty)
	if err != nil {
		return entity.GameConfig{}, fmt.Errorf("invalid default game: %w", err)
	}

	return entity.GameConfig{
		PebblesCount:      that.PebblesCount,
		MaxPebblesPerTurn: that.MaxPebblesPerTurn,
		Difficulty:        difficulty,
	}, nil
}
