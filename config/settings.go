package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Listen           string `yaml:"listen"`
	Project          string `yaml:"project"`
	ClipboardBackend string `yaml:"clipboard"`
	ReplacePolicy    string `yaml:"replace"`
	Verbose          bool   `yaml:"verbose"`
}

func Default() Settings {
	return Settings{
		Listen:           ":8000",
		ClipboardBackend: "system",
		ReplacePolicy:    "ask",
	}
}

var current = Default()

// Load reads yaml settings file over defaults. Missing keys keep default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "Cannot read settings file %q", path)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "Failed to unmarshal settings %q", path)
	}
	switch s.ClipboardBackend {
	case "system", "memory":
	default:
		return s, errors.Errorf("Unknown clipboard backend %q in %q", s.ClipboardBackend, path)
	}
	return s, nil
}

func Set(s Settings) { current = s }

func Get() Settings { return current }

func SetVerbose(verbose bool) { current.Verbose = verbose }

func Verbose() bool { return current.Verbose }
