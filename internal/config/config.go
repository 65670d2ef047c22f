// Package config loads the environment-driven configuration of the
// rehosting tool.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Rehost holds everything the rehosting tool needs to reach the object
// store, the CDN and the content API. Every field is required and comes
// from the environment.
type Rehost struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Endpoint        string
	Bucket          string
	CDNBaseURL      string
	APIBaseURL      string
	APIAuthToken    string
}

var rehostEnvKeys = []string{
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_REGION",
	"AWS_ENDPOINT",
	"AWS_BUCKET",
	"CDN_BASE_URL",
	"API_BASE_URL",
	"API_AUTH_TOKEN",
}

// LoadRehost reads the rehosting configuration from the environment and
// fails fast on the first missing variable, before any work starts.
func LoadRehost() (*Rehost, error) {
	v := viper.New()
	v.AutomaticEnv()
	for _, key := range rehostEnvKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	for _, key := range rehostEnvKeys {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	cfg := &Rehost{
		AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		Region:          v.GetString("AWS_REGION"),
		Endpoint:        v.GetString("AWS_ENDPOINT"),
		Bucket:          v.GetString("AWS_BUCKET"),
		CDNBaseURL:      strings.TrimRight(v.GetString("CDN_BASE_URL"), "/"),
		APIBaseURL:      strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		APIAuthToken:    v.GetString("API_AUTH_TOKEN"),
	}

	return cfg, nil
}
