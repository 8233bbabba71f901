package config

import "time"

type Jwt struct {
	Secret string        `json:"secret" yaml:"secret"`
	Expire time.Duration `json:"expire" yaml:"expire"`
}
