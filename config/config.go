package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Engine   Engine
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Engine carries the evaluation defaults that are not per-position.
type Engine struct {
	// DefaultPassingScore applies when neither the assignment link nor
	// the test itself carries a threshold.
	DefaultPassingScore float64
	// EmptyRequirementVerdict decides how a position with no resolvable
	// tests evaluates: "pass" or "incomplete".
	EmptyRequirementVerdict string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("ENGINE_DEFAULT_PASSING_SCORE", 70.0)
	viper.SetDefault("ENGINE_EMPTY_REQUIREMENT_VERDICT", "pass")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Engine.DefaultPassingScore = viper.GetFloat64("ENGINE_DEFAULT_PASSING_SCORE")
	config.Engine.EmptyRequirementVerdict = viper.GetString("ENGINE_EMPTY_REQUIREMENT_VERDICT")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
