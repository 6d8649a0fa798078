package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/notesync/pkg/adapters/github"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every recognized environment variable,
// e.g. GITHUB_TOKEN or GITHUB_NOTES_DIR.
const EnvPrefix = "GITHUB"

// legacyPrefix is accepted in .env files written for the web front-end.
const legacyPrefix = "VITE_"

// Configuration keys, as seen by viper.
const (
	KeyToken     = "token"
	KeyOwner     = "owner"
	KeyRepo      = "repo"
	KeyNotesDir  = "notes_dir"
	KeyBranch    = "branch"
	KeyAPIURL    = "api_url"
	KeyExtension = "note_extension"
	KeyPattern   = "note_pattern"
	KeyTimeout   = "timeout"
)

// NewConfigLoader returns a viper instance reading GITHUB_* variables.
func NewConfigLoader() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyNotesDir, github.DefaultNotesDir)
	v.SetDefault(KeyAPIURL, github.DefaultBaseURL)
	v.SetDefault(KeyTimeout, github.DefaultTimeout)
	return v
}

// ReadEnvFile loads a dotenv file into v as defaults, so the process
// environment and bound flags still take precedence. A missing file is not
// an error.
func ReadEnvFile(v *viper.Viper, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	for key, value := range values {
		key = strings.TrimPrefix(key, legacyPrefix)
		name, ok := strings.CutPrefix(key, EnvPrefix+"_")
		if !ok {
			continue
		}
		v.SetDefault(strings.ToLower(name), value)
	}
	return nil
}

// ConfigFromViper snapshots the values of v into an immutable adapter config.
// Nothing is validated here: missing values are reported on first use.
func ConfigFromViper(v *viper.Viper) github.Config {
	return github.Config{
		Token:     v.GetString(KeyToken),
		Owner:     v.GetString(KeyOwner),
		Repo:      v.GetString(KeyRepo),
		NotesDir:  v.GetString(KeyNotesDir),
		Branch:    v.GetString(KeyBranch),
		BaseURL:   v.GetString(KeyAPIURL),
		Extension: v.GetString(KeyExtension),
		Pattern:   v.GetString(KeyPattern),
		Timeout:   v.GetDuration(KeyTimeout),
	}
}

// LoadConfig reads the environment, plus envFile when not empty.
func LoadConfig(envFile string) (github.Config, error) {
	v := NewConfigLoader()
	if envFile != "" {
		if err := ReadEnvFile(v, envFile); err != nil {
			return github.Config{}, err
		}
	}
	return ConfigFromViper(v), nil
}
