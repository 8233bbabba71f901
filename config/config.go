package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Cache    *Cache    `json:"cache" yaml:"cache"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New reads the YAML file at filename and panics when it cannot be used.
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return conf
}

// Parse decodes a YAML document and fills in defaults for omitted sections.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()

	if conf.Jwt.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}

	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.Expire == 0 {
		c.Jwt.Expire = 7 * 24 * time.Hour
	}
	if c.Cache == nil {
		c.Cache = &Cache{}
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = CacheLocal
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 10 * time.Second
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
