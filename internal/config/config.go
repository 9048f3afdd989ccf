package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/mines/internal/mines"
)

type GameConfig struct {
	Width     int `mapstructure:"width"`
	Height    int `mapstructure:"height"`
	MineCount int `mapstructure:"mine_count"`
}

func (g GameConfig) Params() mines.Params {
	return mines.Params{Width: g.Width, Height: g.Height, MineCount: g.MineCount}
}

type Config struct {
	Mode           string     `mapstructure:"mode"`
	Addr           string     `mapstructure:"addr"`
	AllowedOrigins []string   `mapstructure:"allowed_origins"`
	LogLevel       string     `mapstructure:"log_level"`
	LogFile        string     `mapstructure:"log_file"`
	Seed           uint64     `mapstructure:"seed"`
	Game           GameConfig `mapstructure:"game"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "development")
	v.SetDefault("addr", ":8080")
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
	v.SetDefault("seed", 0)
	v.SetDefault("game.width", mines.Beginner.Width)
	v.SetDefault("game.height", mines.Beginner.Height)
	v.SetDefault("game.mine_count", mines.Beginner.MineCount)
}

// Load reads the JSON config at path, if any, and overlays MINES_*
// environment variables (MINES_ADDR, MINES_GAME_WIDTH, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("mines")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c Config) Validate() error {
	if c.Mode != "development" && c.Mode != "production" {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return c.Game.Params().Validate()
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Level is the configured log level, Debug in development and Info in
// production when unset.
func (c Config) Level() logrus.Level {
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		return level
	}
	if c.Development() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"addr":            c.Addr,
		"allowed_origins": c.AllowedOrigins,
		"log_level":       c.Level().String(),
		"log_file":        c.LogFile,
		"seed":            c.Seed,
		"game":            c.Game.Params().Seed(),
	}
}
