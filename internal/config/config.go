package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the tool's settings, built once at startup and passed into
// the command. Command-line flags override whatever the config file says;
// parsing semantics are never affected, only which clips are rendered and
// how.
type Config struct {
	Format           string
	Quiet            bool
	CollectBookmarks bool
	SeparatorWidth   int
}

const configName = "kindle-highlights"

// NewConfig builds a Config from defaults and, when present, a
// kindle-highlights.yaml in the working directory or the home directory.
// An explicit path makes the file mandatory; otherwise a missing file is
// fine and only defaults apply.
func NewConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("format", "text")
	v.SetDefault("quiet", false)
	v.SetDefault("collect_bookmarks", false)
	v.SetDefault("separator_width", 50)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return &Config{
		Format:           v.GetString("format"),
		Quiet:            v.GetBool("quiet"),
		CollectBookmarks: v.GetBool("collect_bookmarks"),
		SeparatorWidth:   v.GetInt("separator_width"),
	}, nil
}
