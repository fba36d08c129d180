package dialog

import (
	"fmt"
	"log"
	"sync"

	"github.com/pkg/errors"
	"github.com/sqweek/dialog"
)

type Policy string

const (
	PolicyAsk    Policy = "ask"
	PolicyAlways Policy = "always"
	PolicyNever  Policy = "never"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAsk, PolicyAlways, PolicyNever:
		return p, nil
	}
	return "", errors.Errorf("Unknown replace policy %q", s)
}

// Native shows a yes/no message box per conflicting custom event.
// Only one box is shown at a time.
type Native struct {
	mu sync.Mutex
}

func (n *Native) ConfirmReplaceCustomEvent(existingName string) (cancel bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	replace := dialog.Message("Custom event %q already exists in this project.\n\nReplace it with the pasted one?", existingName).
		Title(fmt.Sprintf("Replace %q", existingName)).
		YesNo()
	return !replace
}

// Fixed answers without asking, recording names it was asked about
type Fixed struct {
	Replace bool

	mu    sync.Mutex
	asked []string
}

func (f *Fixed) ConfirmReplaceCustomEvent(existingName string) (cancel bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.asked = append(f.asked, existingName)
	log.Printf("[dialog] replace %q: %v", existingName, f.Replace)
	return !f.Replace
}

func (f *Fixed) Asked() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.asked...)
}

type Confirmer interface {
	ConfirmReplaceCustomEvent(existingName string) (cancel bool)
}

func ForPolicy(p Policy) Confirmer {
	switch p {
	case PolicyAlways:
		return &Fixed{Replace: true}
	case PolicyNever:
		return &Fixed{Replace: false}
	default:
		return &Native{}
	}
}
