// Package config loads galleryc settings from a config file, GALLERYC_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"gallery-compiler/internal/compiler"
	"gallery-compiler/internal/native"
	"gallery-compiler/internal/output"
	"gallery-compiler/internal/web"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. GALLERYC_TARGET.
	EnvPrefix = "GALLERYC"
	// FileName is the config file base name searched in $HOME.
	FileName = ".galleryc"
)

// Config is the galleryc configuration.
type Config struct {
	Target      string  `mapstructure:"target"`
	Format      string  `mapstructure:"format"`
	Columns     int     `mapstructure:"columns"`
	Concurrency int     `mapstructure:"concurrency"`
	Strict      bool    `mapstructure:"strict"`
	Classes     Classes `mapstructure:"classes"`
}

// Classes are the CSS class names used by the web target.
type Classes struct {
	Container string `mapstructure:"container"`
	Image     string `mapstructure:"image"`
	Caption   string `mapstructure:"caption"`
}

// Default returns the built-in configuration.
func Default() Config {
	webOpts := web.DefaultOptions()

	return Config{
		Target:      compiler.TargetWeb.String(),
		Format:      "json",
		Columns:     native.DefaultColumnCount,
		Concurrency: compiler.DefaultConfig().Concurrency,
		Classes: Classes{
			Container: webOpts.ContainerClass,
			Image:     webOpts.ImageClass,
			Caption:   webOpts.CaptionClass,
		},
	}
}

// Load reads configuration. An explicit path must exist; without one,
// $HOME/.galleryc.yaml is used when present.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("target", d.Target)
	v.SetDefault("format", d.Format)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("classes.container", d.Classes.Container)
	v.SetDefault("classes.image", d.Classes.Image)
	v.SetDefault("classes.caption", d.Classes.Caption)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := compiler.ParseTarget(c.Target); err != nil {
		return fmt.Errorf("config target: %w", err)
	}

	formats := output.NewFormatterFactory().SupportedFormats()
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("config format: unknown format %q (supported: %v)", c.Format, formats)
	}

	if c.Columns < 1 {
		return fmt.Errorf("config columns: must be at least 1, got %d", c.Columns)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("config concurrency: must be at least 1, got %d", c.Concurrency)
	}

	return nil
}

// CompilerConfig converts c into compiler settings.
func (c Config) CompilerConfig() compiler.Config {
	return compiler.Config{
		Web: web.Options{
			ContainerClass: c.Classes.Container,
			ImageClass:     c.Classes.Image,
			CaptionClass:   c.Classes.Caption,
		},
		Native:      native.Options{ColumnCount: c.Columns},
		Concurrency: c.Concurrency,
	}
}
