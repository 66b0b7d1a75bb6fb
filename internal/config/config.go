package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SequenceMemory = "memory"
	SequenceRedis  = "redis"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string      `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort  string      `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis       Redis       `yaml:"redis"`
	Registry    Registry    `yaml:"registry"`
	Minesweeper Minesweeper `yaml:"minesweeper"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Registry selects where session ids come from.
type Registry struct {
	Sequence string `yaml:"sequence" env:"REGISTRY_SEQUENCE" env-default:"memory"`
}

type Minesweeper struct {
	Size  int `yaml:"size" env:"MINESWEEPER_SIZE" env-default:"9"`
	Mines int `yaml:"mines" env:"MINESWEEPER_MINES" env-default:"10"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch config.Registry.Sequence {
	case SequenceMemory, SequenceRedis:
	default:
		return nil, fmt.Errorf("unknown registry sequence %q", config.Registry.Sequence)
	}

	if m := config.Minesweeper; m.Size < 1 || m.Mines < 1 || m.Mines >= m.Size*m.Size {
		return nil, fmt.Errorf("minesweeper cannot fit %d mines on a %dx%d board", m.Mines, m.Size, m.Size)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
