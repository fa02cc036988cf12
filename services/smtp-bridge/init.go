package main

import (
	"os"
	"strings"

	"github.com/e5hapiro/chevra-guest-form/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	sc "github.com/e5hapiro/chevra-guest-form/pkg/smtp-client"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// comma separated list, replaces api_keys from the config file
	ENV_SMTP_BRIDGE_API_KEYS = "SMTP_BRIDGE_API_KEYS"
)

type config struct {
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`
	} `json:"gin_config" yaml:"gin_config"`

	ApiKeys []string `json:"api_keys" yaml:"api_keys"`

	SMTPServerConfig struct {
		HighPrio sc.SmtpServerList `json:"high_prio" yaml:"high_prio"`
		LowPrio  sc.SmtpServerList `json:"low_prio" yaml:"low_prio"`
	} `json:"smtp_server_config" yaml:"smtp_server_config"`
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

	secretsOverride()

	if len(conf.ApiKeys) == 0 {
		panic("No API keys provided for SMTP Bridge API.")
	}

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

func secretsOverride() {
	if apiKeys := os.Getenv(ENV_SMTP_BRIDGE_API_KEYS); apiKeys != "" {
		conf.ApiKeys = strings.Split(apiKeys, ",")
	}

	// SMTP passwords per server, e.g. SMTP_PASSWORD_FOR_SMTP_GMAIL_COM
	for _, serverList := range []*sc.SmtpServerList{&conf.SMTPServerConfig.HighPrio, &conf.SMTPServerConfig.LowPrio} {
		for i := range serverList.Servers {
			server := &serverList.Servers[i]
			if password := os.Getenv(utils.GenerateSmtpPasswordEnvVarName(server.Host)); password != "" {
				server.SetPassword(password)
			}
		}
	}
}
