package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	s, err := Load(writeSettings(t, "project: game.yaml\nclipboard: memory\nverbose: true\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	expected := Settings{
		Listen:           ":8000",
		Project:          "game.yaml",
		ClipboardBackend: "memory",
		ReplacePolicy:    "ask",
		Verbose:          true,
	}
	if s != expected {
		t.Errorf("Load()=%+v; expected %+v", s, expected)
	}
}

func TestLoadErrors(t *testing.T) {
	var tests = []string{
		"clipboard: carrier-pigeon\n",
		"listen: [1, 2\n",
	}
	for _, text := range tests {
		if _, err := Load(writeSettings(t, text)); err == nil {
			t.Errorf("Load(%q) returned no error", text)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load() of missing file returned no error")
	}
}

func TestCurrent(t *testing.T) {
	defer Set(Default())

	Set(Settings{Listen: ":1"})
	SetVerbose(true)
	if !Verbose() || Get().Listen != ":1" {
		t.Errorf("Get()=%+v", Get())
	}
}
