// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/luxfi/hacluster/pkg/constants"
)

// Config resolves settings from flags, HACLUSTER_* environment variables
// and an optional config file, in that order of precedence.
type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(constants.ConfigFormat, constants.FormatYAML)
	v.SetDefault(constants.ConfigSSHUser, constants.DefaultSSHUser)
	return &Config{v: v}
}

// Load reads cfgFile, or the default config file from configDir when
// cfgFile is empty. A missing default config file is not an error.
func (c *Config) Load(cfgFile, configDir string) error {
	if cfgFile != "" {
		c.v.SetConfigFile(cfgFile)
		return c.v.ReadInConfig()
	}
	c.v.AddConfigPath(configDir)
	c.v.SetConfigName(constants.DefaultConfigFileName)
	c.v.SetConfigType(constants.DefaultConfigFileType)
	if err := c.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// BindFlags makes explicitly set flags take precedence over other sources.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	return c.v.BindPFlags(flags)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetConfigBoolValue(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}
