package config

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	defaultHTTPAddr = ":3646"
	defaultGRPCAddr = ":3647"
)

type Config struct {
	// Backend selects the policy store: nftables, iptables or memory.
	Backend string `yaml:"backend" validate:"oneof=nftables iptables memory"`

	// Table is the nftables table fwgate owns. Chain is the prefix of the
	// iptables chains fwgate owns.
	Table string `yaml:"table" validate:"required"`
	Chain string `yaml:"chain" validate:"required"`

	HTTPAddr string `yaml:"http_addr" validate:"required,hostname_port|startswith=:"`
	GRPCAddr string `yaml:"grpc_addr" validate:"required,hostname_port|startswith=:"`

	// AccessKey is the key remote callers must present. Must be kept safe and secure!
	AccessKey string `yaml:"access_key"`

	ServerSSLCertFile, ServerSSLKeyFile string `yaml:"-"`

	LogMode string `yaml:"log_mode" validate:"oneof=production development quiet"`
}

func defaults() Config {
	return Config{
		Backend:  "nftables",
		Table:    "fwgate",
		Chain:    "FWGATE",
		HTTPAddr: defaultHTTPAddr,
		GRPCAddr: defaultGRPCAddr,
		LogMode:  "production",
	}
}

// New builds the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func New() Config {
	_ = godotenv.Load()

	c := defaults()
	c.applyEnv()
	return c
}

// Load reads a YAML file and then applies environment overrides.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	c := defaults()
	content, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "failed to read config: "+path)
	}

	if err := yaml.Unmarshal(content, &c); err != nil {
		return c, errors.Wrap(err, "failed to parse config: "+path)
	}

	c.applyEnv()
	return c, c.Validate()
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	set(&c.Backend, "FWGATE_BACKEND")
	set(&c.Table, "FWGATE_TABLE")
	set(&c.Chain, "FWGATE_CHAIN")
	set(&c.HTTPAddr, "FWGATE_HTTP_ADDR")
	set(&c.GRPCAddr, "FWGATE_GRPC_ADDR")
	set(&c.AccessKey, "FWGATE_ACCESS_KEY")
	set(&c.LogMode, "FWGATE_LOG_MODE")
	set(&c.ServerSSLCertFile, "SERVER_SSL_CERT_FILE")
	set(&c.ServerSSLKeyFile, "SERVER_SSL_KEY_FILE")
}

func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var vErrors validator.ValidationErrors
		if errors.As(err, &vErrors) && len(vErrors) > 0 {
			first := vErrors[0]
			return fmt.Errorf("invalid config value for %s: %v", first.Field(), first.Value())
		}
		return err
	}
	return nil
}

func (c Config) HasTLSConfig() bool {
	return c.ServerSSLCertFile != "" && c.ServerSSLKeyFile != ""
}
