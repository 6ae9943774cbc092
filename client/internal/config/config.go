package config

import (
	"errors"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
)

const (
	Path = ".fwgate.yml"
)

type (
	// Config is the client profile. The remote section points at a fwgated
	// daemon, the local section picks the backend used by direct commands.
	Config struct {
		Host     string `yaml:"host"`
		GRPCAddr string `yaml:"grpcAddr"`
		Backend  string `yaml:"backend"`
		Table    string `yaml:"table"`
		Chain    string `yaml:"chain"`
	}
)

func defaults() Config {
	return Config{
		Host:     "http://localhost:3646/",
		GRPCAddr: "localhost:3647",
	}
}

// Parse reads the profile from the working directory, then from the home
// directory. A missing profile yields the defaults.
func Parse() (Config, error) {
	c := defaults()
	fi, err := open()
	if errors.Is(err, os.ErrNotExist) {
		c.applyEnv()
		return c, nil
	}
	if err != nil {
		return c, err
	}
	defer fi.Close()

	value, err := io.ReadAll(fi)
	if err != nil {
		return c, err
	}

	if err = yaml.Unmarshal(value, &c); err != nil {
		return c, err
	}

	c.applyEnv()
	return c, nil
}

func SaveConfig(c Config) error {
	value, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(Path, value, 0o600)
}

func open() (*os.File, error) {
	fi, err := os.Open(Path)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		return fi, err
	}

	home, herr := os.UserHomeDir()
	if herr != nil {
		return nil, err
	}
	return os.Open(filepath.Join(home, Path))
}

func (c *Config) applyEnv() {
	for key, dst := range map[string]*string{
		"FWGATE_BACKEND": &c.Backend,
		"FWGATE_TABLE":   &c.Table,
		"FWGATE_CHAIN":   &c.Chain,
	} {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}
