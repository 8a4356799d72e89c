package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/lending-service/lending/internal/repository/file"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LENDING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LENDING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Notify struct {
	Topic          string        `envconfig:"NOTIFY_TOPIC"`
	BreakerWindow  int           `envconfig:"NOTIFY_CB_WINDOW" default:"100"`
	BreakerTimeout time.Duration `envconfig:"NOTIFY_CB_TIMEOUT" default:"1s"`
	BreakerRatio   float64       `envconfig:"NOTIFY_CB_RATIO" default:"0.2"`
	BreakerRecover int           `envconfig:"NOTIFY_CB_RECOVERY_CALLS" default:"2"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Storage  string     `envconfig:"STORAGE"`
	Files    file.Config
	Database postgres.DB
	Kafka    kafka.Config
	Notify   Notify
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options set values the environment may override.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		if err = config.validate(); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func (c *Config) validate() error {
	switch c.Storage {
	case "":
		c.Storage = StorageFile
		return nil
	case StorageFile, StoragePostgres:
		return nil
	}
	return fmt.Errorf("unknown STORAGE %q, want %s or %s", c.Storage, StorageFile, StoragePostgres)
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
