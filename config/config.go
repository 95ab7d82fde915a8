package config

import (
	"errors"
	"io/fs"
	"net"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mediabridge/internal/application/usecase"
	"mediabridge/internal/infrastructure/broker"
	"mediabridge/internal/infrastructure/grpcserver"
	"mediabridge/internal/infrastructure/minio"
	"mediabridge/internal/infrastructure/notion"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	GRPCServer      grpcserver.Config      `yaml:"grpc_server"`
	Notion          notion.Config          `yaml:"notion"`
	Uploader        usecase.UploaderConfig `yaml:"uploader"`
	Listing         usecase.ListerConfig   `yaml:"listing"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPServerConfig struct {
	Address   string  `yaml:"address"`
	BodyLimit string  `yaml:"body_limit"`
	RateLimit float64 `yaml:"rate_limit"`
	AccessLog bool    `yaml:"access_log"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.Notion.APIKey = os.Getenv("NOTION_API_KEY")
	if id := os.Getenv("NOTION_DATABASE_ID"); id != "" {
		config.Notion.DatabaseID = id
	}
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.HTTPServer.Address = overrideAddress(config.HTTPServer.Address, os.Getenv("HOST"), os.Getenv("PORT"))

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// ArchiveEnabled reports whether accepted files are copied to MinIO.
func (c *Config) ArchiveEnabled() bool {
	return c.MinIOClient.Endpoint != "" && c.MinIOUploader.Bucket != ""
}

// BrokerEnabled reports whether entry events are published.
func (c *Config) BrokerEnabled() bool {
	return c.BrokerConfig.URI != ""
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Notion.APIKey == "" {
		return errors.New("NOTION_API_KEY is not set")
	}
	if c.Notion.DatabaseID == "" {
		return errors.New("NOTION_DATABASE_ID is not set")
	}
	if c.HTTPServer.Address == "" {
		return errors.New("http_server.address is empty")
	}
	if c.ArchiveEnabled() && (c.MinIOClient.AccessKey == "" || c.MinIOClient.SecretKey == "") {
		return errors.New("minio archive configured without MINIO_ROOT_USER/MINIO_ROOT_PASSWORD")
	}
	if c.BrokerEnabled() && (c.BrokerConfig.StreamName == "" || c.BrokerConfig.GroupName == "") {
		return errors.New("BROKER_URI set but redis_broker_config has no stream_name/group_name")
	}

	return nil
}

func overrideAddress(address, host, port string) string {
	if host == "" && port == "" {
		return address
	}

	h, p, err := net.SplitHostPort(address)
	if err != nil {
		h, p = address, ""
	}
	if host != "" {
		h = host
	}
	if port != "" {
		p = port
	}

	return net.JoinHostPort(h, p)
}
