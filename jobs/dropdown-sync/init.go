package main

import (
	"os"
	"time"

	"github.com/e5hapiro/chevra-guest-form/pkg/dropdownsync"
	"github.com/e5hapiro/chevra-guest-form/pkg/utils"
	"gopkg.in/yaml.v2"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_GOOGLE_CREDENTIALS_FILE = "GOOGLE_CREDENTIALS_FILE"
)

const defaultRunTimeout = 2 * time.Minute

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	GoogleCredentialsFile string `json:"google_credentials_file" yaml:"google_credentials_file"`

	RunTimeout time.Duration `json:"run_timeout" yaml:"run_timeout"`

	DropdownSync dropdownsync.Config `json:"dropdown_sync" yaml:"dropdown_sync"`
}

var conf config

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	utils.InitLogger(conf.Logging)

	if credentialsFile := os.Getenv(ENV_GOOGLE_CREDENTIALS_FILE); credentialsFile != "" {
		conf.GoogleCredentialsFile = credentialsFile
	}

	if conf.RunTimeout <= 0 {
		conf.RunTimeout = defaultRunTimeout
	}

	if err := conf.DropdownSync.Validate(); err != nil {
		panic(err)
	}
}
