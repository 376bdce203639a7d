package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	AdminSenha         string   `mapstructure:"admin_senha"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

// Load reads the YAML config at path. Deploy values and secrets can be
// overridden through environment variables.
func Load(path string) (*AppConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(path)

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("vp.ReadInConfig -> %w", err)
	}

	conf := AppConfig{}
	if err := vp.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("vp.Unmarshal -> %w", err)
	}

	if v := os.Getenv("PORT"); v != "" {
		conf.API.Port = v
	}
	if v := os.Getenv("ADMIN_SENHA"); v != "" {
		conf.API.AdminSenha = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		conf.Gin.Mode = v
	}
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		conf.Postgres.Host = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		conf.Postgres.Password = v
	}

	return &conf, nil
}
