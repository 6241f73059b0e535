package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/Andres-Briones/NablaPoker/internal/util"
)

// Config provides configuration for NablaPoker
type Config struct {
	loaded bool

	ListenAddr string `yaml:"listenAddr" envconfig:"listen_addr"`

	Log struct {
		Level             string
		DisableAccessLogs bool `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}

	Site struct {
		Name    string
		Network string
	}

	HandHistory struct {
		Path string
	} `yaml:"handHistory" envconfig:"hand_history"`

	Table struct {
		Name       string
		Size       int
		SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is fine; the
// defaults and the environment still apply.
func Load() error {
	config = Config{}

	configFile := util.Getenv("NABLA_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("nabla", &config); err != nil {
		return err
	}

	applyDefaults(&config)
	config.loaded = true
	return nil
}

func applyDefaults(c *Config) {
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
	}
	if c.Site.Name == "" {
		c.Site.Name = "NablaPoker"
	}
	if c.Site.Network == "" {
		c.Site.Network = "NablaPoker"
	}
	if c.HandHistory.Path == "" {
		c.HandHistory.Path = "sessions"
	}
	if c.Table.Name == "" {
		c.Table.Name = "cash game"
	}
	if c.Table.Size == 0 {
		c.Table.Size = 6
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = 1
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = 2
	}
}
