package config

import (
	"os"
	"strconv"
)

// FromEnv builds a config from defaults plus environment overrides, for
// running without a config file.
func FromEnv() *Config {
	c := Default()
	c.applyEnv()
	return c
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TASKMASTER_USERNAME"); v != "" {
		c.Auth.Username = v
	}
	if v := os.Getenv("TASKMASTER_PASSWORD"); v != "" {
		c.Auth.Password = v
	}
	if v := os.Getenv("TASKMASTER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := getEnvInt("TASKMASTER_PORT"); v > 0 {
		c.Server.Port = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
