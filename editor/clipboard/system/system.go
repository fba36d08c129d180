// Package system holds external clipboard implementations.
package system

import (
	"log"
	"sync"

	"github.com/pkg/errors"
	"golang.design/x/clipboard"
)

// Clipboard is shared with other applications, which may change it
// between any two calls
type Clipboard interface {
	ReadText() string
	WriteText(text string)
}

// OS is the desktop clipboard
type OS struct{}

func NewOS() (*OS, error) {
	if err := clipboard.Init(); err != nil {
		return nil, errors.Wrapf(err, "Failed to init system clipboard")
	}
	return &OS{}, nil
}

func (*OS) ReadText() string {
	return string(clipboard.Read(clipboard.FmtText))
}

func (*OS) WriteText(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}

// Memory is process local clipboard, used headless and in tests
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) ReadText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *Memory) WriteText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
}

// Writes counts WriteText calls
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Open returns clipboard by backend name: "system" or "memory".
// System clipboard falls back to memory when display is not available.
func Open(backend string) (Clipboard, error) {
	switch backend {
	case "memory":
		return NewMemory(""), nil
	case "system", "":
		c, err := NewOS()
		if err != nil {
			log.Printf("[clipboard] %v, using in-memory clipboard", err)
			return NewMemory(""), nil
		}
		return c, nil
	default:
		return nil, errors.Errorf("Unknown clipboard backend %q", backend)
	}
}
