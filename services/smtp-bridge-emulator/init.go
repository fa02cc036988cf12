package main

import (
	"os"

	"github.com/e5hapiro/chevra-guest-form/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"
)

type config struct {
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	ApiKeys []string `json:"api_keys" yaml:"api_keys"`

	// Received mails are stored below this directory, one folder per recipient
	EmailsDir string `json:"emails_dir" yaml:"emails_dir"`
	From      string `json:"from" yaml:"from"`
}

func init() {
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	utils.InitLogger(conf.Logging)

	if len(conf.ApiKeys) == 0 {
		panic("No API keys provided for SMTP Bridge emulator.")
	}
	if conf.EmailsDir == "" {
		conf.EmailsDir = "emails"
	}

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}
