package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env   string      `yaml:"env" env:"ENV" env-default:"local"`
	HTTP  HTTPConfig  `yaml:"http"`
	Slack SlackConfig `yaml:"slack"`
}

type HTTPConfig struct {
	Port int `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// SlackConfig holds the outbound webhook URLs. Both are required: a missing
// URL is a startup failure, not a first-send failure.
type SlackConfig struct {
	OrderCreateWebhookURL       string `yaml:"order_create_webhook_url" env:"SLACK_ORDER_CREATE_WEBHOOK_URL" env-required:"true"`
	OrderStatusChangeWebhookURL string `yaml:"order_status_change_webhook_url" env:"SLACK_ORDER_STATUS_CHANGE_WEBHOOK_URL" env-required:"true"`
}

func InitConfig() Config {
	configPath := getConfigPath()

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic("failed to read config from env: " + err.Error())
		}

		return cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return cfg
}

func getConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
