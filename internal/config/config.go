package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	OrderDB       `yaml:"order_db"`
	LogConfig     `yaml:"log_config"`
	EscrowService `yaml:"escrow-service"`
	KafkaService  `yaml:"kafka-service"`
	Migrations    `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type OrderDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type EscrowService struct {
	BaseURL        string `yaml:"base_url"`
	TokenMint      string `yaml:"token_mint" env-default:"So11111111111111111111111111111111111111112"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"30"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

type Migrations struct {
	Path string `yaml:"path" env-default:"migrations"`
}

func MustLoad() *OrderConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ORDER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
