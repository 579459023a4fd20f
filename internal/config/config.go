package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Site   Site   `yaml:"site"`
	Server Server `yaml:"server"`
}

type Site struct {
	// AllowOrigin is handed to the CORS middleware. "*" by default.
	AllowOrigin string `yaml:"allowOrigin"`
	// BusinessTemplate is the origin path of the {{token}} business page
	// template. Empty means the inline page is used instead.
	BusinessTemplate string `yaml:"businessTemplate"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	OriginURL     string `yaml:"originUrl"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Site.AllowOrigin == "" {
		config.Site.AllowOrigin = "*"
	}

	return config, nil
}
