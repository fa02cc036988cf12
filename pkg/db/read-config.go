package db

import (
	"fmt"
	"net/url"
)

// IsConfigured reports whether a connection string was given. The messaging
// DB is optional for the form handler.
func (c DBConfigYaml) IsConfigured() bool {
	return c.ConnectionStr != ""
}

func DBConfigFromYamlObj(yamlObj DBConfigYaml, instanceIDs []string) DBConfig {
	credentials := ""
	if yamlObj.Username != "" || yamlObj.Password != "" {
		credentials = url.UserPassword(yamlObj.Username, yamlObj.Password).String() + "@"
	}
	URI := fmt.Sprintf(`mongodb%s://%s%s`, yamlObj.ConnectionPrefix, credentials, yamlObj.ConnectionStr)

	return DBConfig{
		URI:              URI,
		Timeout:          yamlObj.Timeout,
		IdleConnTimeout:  yamlObj.IdleConnTimeout,
		MaxPoolSize:      uint64(yamlObj.MaxPoolSize),
		NoCursorTimeout:  yamlObj.UseNoCursorTimeout,
		DBNamePrefix:     yamlObj.DBNamePrefix,
		InstanceIDs:      instanceIDs,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
