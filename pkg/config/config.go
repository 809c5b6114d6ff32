// Package config loads the relay configuration from an optional YAML file and
// the process environment. The environment always wins, and the handful of
// variables the deployment contract requires (CLIENT_ID, CLIENT_SECRET,
// REDIRECT_URI, PORT) are bound explicitly.
package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strings"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mitchellh/mapstructure"

	"github.com/spf13/viper"
)

const (
	defaultExtension = "yaml"
	defaultTagName   = "yaml"
)

type Binder interface {
	Bind(v *viper.Viper) error
}

type Loader interface {
	Load(name, path, envPrefix string, binder Binder) (Config, error)
}

type Config struct {
	Oauth     Oauth     `yaml:"oauth"`
	Scheduler Scheduler `yaml:"scheduler"`
	Server    Server    `yaml:"server"`

	DashboardPage string `yaml:"dashboard_page"`
	StaticDir     string `yaml:"static_dir"`
	LogLevel      string `yaml:"log_level"`
	Debug         bool   `yaml:"debug"`
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Oauth, validation.Required),
		validation.Field(&c.Scheduler, validation.Required),
		validation.Field(&c.Server, validation.Required),
		validation.Field(&c.DashboardPage, validation.Required),
		validation.Field(&c.StaticDir, validation.Required),
		validation.Field(&c.LogLevel, validation.Required),
	)
}

// Oauth configures the authorization-code flow against the scheduling
// provider. The authorize and token URLs are provider constants in practice,
// but kept configurable so tests can point them at a fake.
type Oauth struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
	AuthURL      string `yaml:"auth_url"`
	TokenURL     string `yaml:"token_url"`
}

func (o Oauth) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ClientID, validation.Required),
		validation.Field(&o.ClientSecret, validation.Required),
		validation.Field(&o.RedirectURL, validation.Required, is.URL),
		validation.Field(&o.AuthURL, validation.Required, is.URL),
		validation.Field(&o.TokenURL, validation.Required, is.URL),
	)
}

// Scheduler points at the upstream scheduling API that every forwarded
// request targets.
type Scheduler struct {
	APIURL string `yaml:"api_url"`
}

func (s Scheduler) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.APIURL, validation.Required, is.URL),
	)
}

type Server struct {
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
}

func (s Server) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, is.IP),
		validation.Field(&s.Port, validation.Required, is.Port),
	)
}

func (s Server) ListenAddress() string {
	return net.JoinHostPort(s.Address, s.Port)
}

type FileParts struct {
	FileName string
	Path     string
}

func ProcessConfigPath(configFile string) (FileParts, error) {
	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return FileParts{}, fmt.Errorf("convert to absolute path: %w", err)
	}

	fileName := filepath.Base(absolutePath)
	path := filepath.Dir(absolutePath)
	extension := filepath.Ext(fileName)

	if strings.ReplaceAll(strings.ToLower(extension), ".", "") != defaultExtension {
		return FileParts{}, fmt.Errorf("config file must have extension %s, got: %s", defaultExtension, extension)
	}

	return FileParts{
		FileName: fileName[:len(fileName)-len(extension)],
		Path:     path,
	}, nil
}

func NewFileSystemLoader() *FileSystemLoader {
	return &FileSystemLoader{}
}

type FileSystemLoader struct{}

func (fs *FileSystemLoader) Load(name, path, envPrefix string, b Binder) (Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName(name)
	v.SetConfigType(defaultExtension)

	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", "3000")
	v.SetDefault("dashboard_page", "/static/dashboard.html")
	v.SetDefault("static_dir", "static")
	v.SetDefault("log_level", "info")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // So that env vars are translated properly
	v.AutomaticEnv()

	if b != nil {
		err := b.Bind(v)
		if err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(envPrefix)

	err := v.ReadInConfig()
	if err != nil {
		// The config file is optional, a purely environment-driven start is
		// part of the deployment contract.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config

	err = v.Unmarshal(&config, func(cfg *mapstructure.DecoderConfig) {
		cfg.TagName = defaultTagName // We use yaml tags in the config structs so we can marshal to yaml
	})
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, nil
}

type EnvBinder struct {
	binders map[string]string
}

func (e *EnvBinder) Bind(v *viper.Viper) error {
	for envVar, key := range e.binders {
		err := v.BindEnv(key, envVar)
		if err != nil {
			return fmt.Errorf("bind env var %s to key %s: %w", envVar, key, err)
		}
	}

	return nil
}

func NewEnvBinder(binders map[string]string) *EnvBinder {
	return &EnvBinder{
		binders: binders,
	}
}

// NewDefaultEnvBinder wires the environment variables the deployment contract
// names into the config tree.
func NewDefaultEnvBinder() *EnvBinder {
	return NewEnvBinder(map[string]string{
		"CLIENT_ID":         "oauth.client_id",
		"CLIENT_SECRET":     "oauth.client_secret",
		"REDIRECT_URI":      "oauth.redirect_url",
		"PORT":              "server.port",
		"SCHEDULER_API_URL": "scheduler.api_url",
	})
}
