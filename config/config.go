package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort uint16 `envconfig:"MEGACARE_HTTP_SERVER_PORT" default:"8080" required:"true"`

	LineChannelId     string `envconfig:"MEGACARE_LINE_CHANNEL_ID" required:"true"`
	LineChannelSecret string `envconfig:"MEGACARE_LINE_CHANNEL_SECRET" required:"true"`

	TokenSigningKey string `envconfig:"MEGACARE_TOKEN_SIGNING_KEY" required:"true"`
	TokenIssuer     string `envconfig:"MEGACARE_TOKEN_ISSUER" default:"megacare-connect"`

	// AuthMode selects how bearer tokens are verified:
	// "token" verifies tokens issued by this service locally,
	// "line" forwards the credential to the LINE verify endpoint.
	AuthMode string `envconfig:"MEGACARE_AUTH_MODE" default:"token"`

	// LinkerMode selects the device linking strategy:
	// "store" discovers unlinked devices in the document store,
	// "registry" looks the device up in the external patient registry.
	LinkerMode string `envconfig:"MEGACARE_DEVICE_LINKER" default:"store"`

	PatientRegistryUrl    string `envconfig:"MEGACARE_PATIENT_REGISTRY_URL"`
	PatientRegistryApiKey string `envconfig:"MEGACARE_PATIENT_REGISTRY_API_KEY"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
