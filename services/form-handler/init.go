package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/e5hapiro/chevra-guest-form/pkg/apihelpers"
	"github.com/e5hapiro/chevra-guest-form/pkg/db"
	"github.com/e5hapiro/chevra-guest-form/pkg/formhandler"
	"github.com/e5hapiro/chevra-guest-form/pkg/gsheets"
	httpclient "github.com/e5hapiro/chevra-guest-form/pkg/http-client"
	emailsending "github.com/e5hapiro/chevra-guest-form/pkg/messaging/email-sending"
	"github.com/e5hapiro/chevra-guest-form/pkg/messaging/notification"
	messagingTypes "github.com/e5hapiro/chevra-guest-form/pkg/messaging/types"
	"github.com/e5hapiro/chevra-guest-form/pkg/utils"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"gopkg.in/yaml.v2"

	messagingDB "github.com/e5hapiro/chevra-guest-form/pkg/db/messaging"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_FORM_HANDLER_API_KEYS   = "FORM_HANDLER_API_KEYS"
	ENV_SMTP_BRIDGE_API_KEY     = "SMTP_BRIDGE_API_KEY"
	ENV_GOOGLE_CREDENTIALS_FILE = "GOOGLE_CREDENTIALS_FILE"
	ENV_MESSAGING_DB_USERNAME   = "MESSAGING_DB_USERNAME"
	ENV_MESSAGING_DB_PASSWORD   = "MESSAGING_DB_PASSWORD"
)

type FormHandlerConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	ApiKeys []string `json:"api_keys" yaml:"api_keys"`

	// Enables QC logging of every processed submission
	Debug bool `json:"debug" yaml:"debug"`

	InstanceID string `json:"instance_id" yaml:"instance_id"`

	SheetConfig formhandler.SheetConfig `json:"sheet_config" yaml:"sheet_config"`

	GoogleCredentialsFile string `json:"google_credentials_file" yaml:"google_credentials_file"`

	// DB configs
	DBConfigs struct {
		MessagingDB db.DBConfigYaml `json:"messaging_db" yaml:"messaging_db"`
	} `json:"db_configs" yaml:"db_configs"`

	MessagingConfigs messagingTypes.MessagingConfigs `json:"messaging_configs" yaml:"messaging_configs"`
}

var (
	messagingDBService *messagingDB.MessagingDBService
	processor          *formhandler.Processor
)

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

	// Override secrets from environment variables
	secretsOverride()

	if len(conf.ApiKeys) == 0 {
		panic("No API keys provided for form handler.")
	}

	conf.SheetConfig = conf.SheetConfig.WithDefaults()
	if err := conf.SheetConfig.Validate(); err != nil {
		panic(err)
	}

	initDBs()

	initProcessor()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
}

func secretsOverride() {
	if apiKeys := os.Getenv(ENV_FORM_HANDLER_API_KEYS); apiKeys != "" {
		conf.ApiKeys = strings.Split(apiKeys, ",")
	}

	if apiKey := os.Getenv(ENV_SMTP_BRIDGE_API_KEY); apiKey != "" {
		conf.MessagingConfigs.SmtpBridgeConfig.APIKey = apiKey
	}

	if credentialsFile := os.Getenv(ENV_GOOGLE_CREDENTIALS_FILE); credentialsFile != "" {
		conf.GoogleCredentialsFile = credentialsFile
	}

	if dbUsername := os.Getenv(ENV_MESSAGING_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.MessagingDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_MESSAGING_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.MessagingDB.Password = dbPassword
	}
}

func initDBs() {
	if !conf.DBConfigs.MessagingDB.IsConfigured() {
		slog.Info("Messaging DB not configured, sent emails will not be recorded")
		return
	}

	var err error
	messagingDBService, err = messagingDB.NewMessagingDBService(db.DBConfigFromYamlObj(conf.DBConfigs.MessagingDB, []string{conf.InstanceID}))
	if err != nil {
		slog.Error("Error connecting to Messaging DB", slog.String("error", err.Error()))
		messagingDBService = nil
	}
}

func initProcessor() {
	sheetsClient, err := gsheets.NewClient(
		context.Background(),
		option.WithCredentialsFile(conf.GoogleCredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		slog.Error("Error creating Google Sheets client", slog.String("error", err.Error()))
		panic(err)
	}

	var sentEmails notification.SentEmailRecorder
	if messagingDBService != nil {
		sentEmails = messagingDBService
	}

	notifier := notification.NewNotifier(
		emailsending.NewBridgeSender(loadEmailClientHTTPConfig()),
		sentEmails,
		conf.InstanceID,
		conf.MessagingConfigs.GlobalEmailTemplateConstants,
	)

	processor = formhandler.NewProcessor(
		formhandler.NewAnnotator(formhandler.SheetsWriter{Client: sheetsClient}),
		notifier,
		conf.Debug,
	)
}

func loadEmailClientHTTPConfig() *httpclient.ClientConfig {
	return httpclient.NewClientConfig(
		conf.MessagingConfigs.SmtpBridgeConfig.URL,
		conf.MessagingConfigs.SmtpBridgeConfig.APIKey,
		conf.MessagingConfigs.SmtpBridgeConfig.RequestTimeout,
		nil,
	)
}
