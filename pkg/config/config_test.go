package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gopkg.in/yaml.v3"

	"github.com/oppmote/oppmote-backend/pkg/config"
)

var update = flag.Bool("update", false, "update golden files")

func newFakeConfig() config.Config {
	return config.Config{
		Oauth: config.Oauth{
			ClientID:     "fake_client_id",
			ClientSecret: "fake_client_secret",
			RedirectURL:  "http://localhost:3000/callback",
			AuthURL:      "http://localhost:8081/oauth/authorize",
			TokenURL:     "http://localhost:8081/oauth/token",
		},
		Scheduler: config.Scheduler{
			APIURL: "http://localhost:8081/api",
		},
		Server: config.Server{
			Address: "127.0.0.1",
			Port:    "3000",
		},
		DashboardPage: "/static/dashboard.html",
		StaticDir:     "static",
		LogLevel:      "info",
		Debug:         false,
	}
}

func updateGoldenFiles(t *testing.T, filePath string, cfg config.Config) []byte {
	t.Helper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Errorf("marshal config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0o600)
	if err != nil {
		t.Errorf("write golden file: %v", err)
	}

	return data
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		config    config.Config
		expectErr bool
	}{
		{
			name:      "Valid config",
			config:    newFakeConfig(),
			expectErr: false,
		},
		{
			name: "Missing client id",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Oauth.ClientID = ""

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Scheduler API URL is not a URL",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Scheduler.APIURL = "not a url"

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Invalid port",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Server.Port = "no-such-port"

				return cfg
			}(),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	if *update {
		t.Log("Updating golden files")
		updateGoldenFiles(t, "testdata/config.yaml", newFakeConfig())
		t.Log("Done updating golden files")

		return
	}

	testCases := []struct {
		name      string
		config    string
		path      string
		envPrefix string
		loader    config.Loader
		binder    config.Binder
		envs      map[string]string
		expect    config.Config
		expectErr bool
	}{
		{
			name:      "Standard config",
			config:    "config",
			path:      "testdata",
			loader:    config.NewFileSystemLoader(),
			expect:    newFakeConfig(),
			expectErr: false,
		},
		{
			name:   "Standard config with env overrides",
			config: "config",
			path:   "testdata",
			loader: config.NewFileSystemLoader(),
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.Server.Address = "0.0.0.0"

				return cfg
			}(),
			envs: map[string]string{
				"SERVER_ADDRESS": "0.0.0.0",
			},
		},
		{
			name:      "Standard config with env prefix overrides",
			config:    "config",
			path:      "testdata",
			envPrefix: "oppmote",
			loader:    config.NewFileSystemLoader(),
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.LogLevel = "debug"

				return cfg
			}(),
			envs: map[string]string{
				"OPPMOTE_LOG_LEVEL": "debug",
			},
		},
		{
			name:   "Missing config file falls back to defaults and bound env vars",
			config: "does-not-exist",
			path:   "testdata",
			loader: config.NewFileSystemLoader(),
			binder: config.NewEnvBinder(map[string]string{
				"CLIENT_ID":         "oauth.client_id",
				"CLIENT_SECRET":     "oauth.client_secret",
				"REDIRECT_URI":      "oauth.redirect_url",
				"AUTH_URL":          "oauth.auth_url",
				"TOKEN_URL":         "oauth.token_url",
				"SCHEDULER_API_URL": "scheduler.api_url",
				"PORT":              "server.port",
			}),
			envs: map[string]string{
				"CLIENT_ID":         "fake_client_id",
				"CLIENT_SECRET":     "fake_client_secret",
				"REDIRECT_URI":      "http://localhost:3000/callback",
				"AUTH_URL":          "http://localhost:8081/oauth/authorize",
				"TOKEN_URL":         "http://localhost:8081/oauth/token",
				"SCHEDULER_API_URL": "http://localhost:8081/api",
				"PORT":              "4000",
			},
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.Server.Address = "0.0.0.0"
				cfg.Server.Port = "4000"

				return cfg
			}(),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envs {
				t.Setenv(k, v)
			}

			cfg, err := tc.loader.Load(tc.config, tc.path, tc.envPrefix, tc.binder)
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}

			if !tc.expectErr {
				if diff := cmp.Diff(tc.expect, cfg); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func getWorkingDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Errorf("get working dir: %v", err)
	}

	return wd
}

func TestProcessConfigPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		path      string
		expect    config.FileParts
		expectErr bool
	}{
		{
			name: "Valid config path",
			path: "testdata/config.yaml",
			expect: config.FileParts{
				FileName: "config",
				Path:     filepath.Join(getWorkingDir(t), "testdata"),
			},
		},
		{
			name:      "Invalid extension",
			path:      "testdata/config.json",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := config.ProcessConfigPath(tc.path)
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}

			if !tc.expectErr {
				if diff := cmp.Diff(tc.expect, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
