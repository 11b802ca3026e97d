// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/TFMV/ProjectAddressCheck/internal/matcher"
	"github.com/TFMV/ProjectAddressCheck/pkg/db"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

// DefaultConfigPath is read when CONFIG_PATH is not set.
const DefaultConfigPath = "config.yaml"

type Config struct {
	DBCreds struct {
		Host      string `yaml:"host" env:"DB_HOST"`
		Port      string `yaml:"port" env:"DB_PORT"`
		Username  string `yaml:"username" env:"DB_USERNAME"`
		Password  string `yaml:"password" env:"DB_PASSWORD"`
		Database  string `yaml:"database" env:"DB_DATABASE"`
		LoadTable string `yaml:"load_table" env:"DB_LOAD_TABLE"`
	} `yaml:"db_creds"`

	Server struct {
		Addr string `yaml:"addr" env:"SERVER_ADDR"`
	} `yaml:"server"`

	Check struct {
		Module    string `yaml:"module" env:"CHECK_MODULE"`
		Field     string `yaml:"field" env:"CHECK_FIELD"`
		KeyColumn string `yaml:"key_column" env:"CHECK_KEY_COLUMN"`
		Page      int    `yaml:"page" env:"CHECK_PAGE"`
		PerPage   int    `yaml:"per_page" env:"CHECK_PER_PAGE"`
	} `yaml:"check"`

	Log struct {
		JSON  bool   `yaml:"json" env:"LOG_JSON"`
		File  string `yaml:"file" env:"LOG_FILE"`
		Async bool   `yaml:"async" env:"LOG_ASYNC"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file or variable overrides it.
func Default() *Config {
	var cfg Config
	cfg.DBCreds.Host = "localhost"
	cfg.DBCreds.Port = "5432"
	cfg.DBCreds.LoadTable = matcher.DefaultModule
	cfg.Server.Addr = ":8080"
	cfg.Check.Module = matcher.DefaultModule
	cfg.Check.Field = matcher.DefaultAddressField
	cfg.Check.KeyColumn = "id"
	cfg.Check.Page = 1
	cfg.Check.PerPage = matcher.DefaultPerPage
	return &cfg
}

// LoadConfig loads the configuration from a YAML file and then applies
// environment overrides. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Load reads the file named by CONFIG_PATH, or config.yaml.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}
	return LoadConfig(path)
}

// Validate reports settings that would make every check fail.
func (c *Config) Validate() error {
	var errs []error
	if c.Check.Module == "" {
		errs = append(errs, errors.New("check.module is required"))
	}
	if c.Check.Field == "" {
		errs = append(errs, errors.New("check.field is required"))
	}
	if c.Check.KeyColumn == "" {
		errs = append(errs, errors.New("check.key_column is required"))
	}
	if c.Check.Page < 1 {
		errs = append(errs, fmt.Errorf("check.page must be positive, got %d", c.Check.Page))
	}
	if c.Check.PerPage < 1 {
		errs = append(errs, fmt.Errorf("check.per_page must be positive, got %d", c.Check.PerPage))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Creds returns the database credentials.
func (c *Config) Creds() db.DBCreds {
	return db.DBCreds{
		Host:     c.DBCreds.Host,
		Port:     c.DBCreds.Port,
		Username: c.DBCreds.Username,
		Password: c.DBCreds.Password,
		Database: c.DBCreds.Database,
	}
}

// Query returns the candidate query for the checker.
func (c *Config) Query() matcher.Query {
	return matcher.Query{
		Module:  c.Check.Module,
		Field:   c.Check.Field,
		Page:    c.Check.Page,
		PerPage: c.Check.PerPage,
	}
}
