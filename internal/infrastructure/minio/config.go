package minio

import "time"

const defaultTimeout = 10 * time.Second

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
}

type UploaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
	// PublicURL prefixes archived object locations; defaults to the endpoint.
	PublicURL string `yaml:"public_url"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

// timeout converts a timeout_in_ms setting; 0 means defaultTimeout.
func timeout(ms int64) time.Duration {
	if ms <= 0 {
		return defaultTimeout
	}

	return time.Duration(ms) * time.Millisecond
}
