package clipboard

import (
	"log"
	"sync"

	"github.com/mogaika/studio_clipboard/config"
	"github.com/mogaika/studio_clipboard/editor/entities"
	"github.com/mogaika/studio_clipboard/editor/project"
	"github.com/mogaika/studio_clipboard/utils"
)

// Action is an editor intent handled by Middleware
type Action interface {
	action()
}

type CopyActor struct{ Actor entities.Actor }

type CopyTrigger struct{ Trigger entities.Trigger }

// CopyScene takes scene as stored in project, actors and triggers by id
type CopyScene struct{ Scene entities.Scene }

type CopyEvent struct{ Event entities.ScriptEvent }

type CopyScript struct{ Script []*entities.ScriptEvent }

type CopyText struct{ Text string }

type CopyMetasprites struct{ MetaspriteIDs []string }

type CopyMetaspriteTiles struct{ MetaspriteTileIDs []string }

type PasteCustomEvents struct{}

type PasteSprite struct {
	SpriteAnimationID string
	MetaspriteID      string
}

// FetchClipboard refreshes Middleware.Data from the external clipboard
type FetchClipboard struct{}

func (CopyActor) action()           {}
func (CopyTrigger) action()         {}
func (CopyScene) action()           {}
func (CopyEvent) action()           {}
func (CopyScript) action()          {}
func (CopyText) action()            {}
func (CopyMetasprites) action()     {}
func (CopyMetaspriteTiles) action() {}
func (PasteCustomEvents) action()   {}
func (PasteSprite) action()         {}
func (FetchClipboard) action()      {}

type Project interface {
	Source
	SpriteSource
	Store
}

type Notifier interface {
	Info(format string, a ...interface{})
	Error(format string, a ...interface{})
}

type logNotifier struct{}

func (logNotifier) Info(format string, a ...interface{})  { log.Printf("[clipboard] "+format, a...) }
func (logNotifier) Error(format string, a ...interface{}) { log.Printf("[clipboard] ERROR: "+format, a...) }

type ExternalClipboard interface {
	Reader
	Writer
}

// Middleware runs clipboard actions against project. Each action runs to
// completion before next one starts.
type Middleware struct {
	mu sync.Mutex

	project    Project
	clipboard  ExternalClipboard
	reconciler *Reconciler
	notifier   Notifier

	data Payload
}

func NewMiddleware(p Project, c ExternalClipboard, confirm Confirmer, n Notifier) *Middleware {
	if n == nil {
		n = logNotifier{}
	}
	return &Middleware{
		project:    p,
		clipboard:  c,
		reconciler: NewReconciler(p, confirm),
		notifier:   n,
	}
}

// Data is the payload found by last FetchClipboard, nil when clipboard held none
func (m *Middleware) Data() Payload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}

func (m *Middleware) Handle(a Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch v := a.(type) {
	case CopyActor:
		m.copy(ActorClosure(m.project, &v.Actor))
	case CopyTrigger:
		m.copy(TriggerClosure(m.project, &v.Trigger))
	case CopyScene:
		m.copy(SceneClosure(m.project, &v.Scene))
	case CopyEvent:
		m.copy(EventClosure(m.project, &v.Event))
	case CopyScript:
		m.copy(ScriptClosure(m.project, v.Script))
	case CopyText:
		m.clipboard.WriteText(v.Text)
	case CopyMetasprites:
		m.copy(MetaspritesCopy(m.project, v.MetaspriteIDs))
	case CopyMetaspriteTiles:
		m.copy(MetaspriteTilesCopy(m.project, v.MetaspriteTileIDs))
	case PasteCustomEvents:
		m.pasteCustomEvents()
	case PasteSprite:
		m.pasteSprite(v)
	case FetchClipboard:
		m.fetch()
	default:
		log.Printf("[clipboard] unknown action %T", a)
	}
}

func (m *Middleware) copy(p Payload) {
	if config.Verbose() {
		utils.LogDump(p)
	}
	Copy(m.clipboard, p)

	switch v := p.(type) {
	case *MetaspritesPayload:
		m.notifier.Info("Copied %d metasprites, %d tiles", len(v.Metasprites), len(v.MetaspriteTiles))
	case *MetaspriteTilesPayload:
		m.notifier.Info("Copied %d tiles", len(v.MetaspriteTiles))
	default:
		m.notifier.Info("Copied %s with %d custom events", p.Format(), len(CustomEventsOf(p)))
	}
}

func (m *Middleware) pasteCustomEvents() {
	p, ok := Paste(m.clipboard)
	if !ok {
		return
	}
	customEvents := CustomEventsOf(p)
	if len(customEvents) == 0 {
		return
	}

	report := m.reconciler.PasteCustomEvents(customEvents)
	if config.Verbose() {
		utils.LogDump(report)
	}
	m.notifier.Info("Custom events: %d added, %d replaced, %d unchanged, %d kept",
		len(report.Inserted), len(report.Replaced), len(report.Skipped), len(report.Declined))
}

func (m *Middleware) pasteSprite(v PasteSprite) {
	p, ok := Paste(m.clipboard)
	if !ok {
		return
	}
	newTileIDs := m.reconciler.PasteSprite(p, SpriteDestination{
		SpriteAnimationID: v.SpriteAnimationID,
		MetaspriteID:      v.MetaspriteID,
	})
	if newTileIDs != nil {
		m.notifier.Info("Pasted %d tiles", len(newTileIDs))
	}
}

func (m *Middleware) fetch() {
	raw := m.clipboard.ReadText()
	p, ok := Decode(raw)
	if !ok {
		if format := Peek(raw); format != "" {
			m.notifier.Error("Clipboard holds unreadable %q data: %s", format, utils.Preview(raw, 64))
		}
		m.data = nil
		return
	}
	m.data = p
}

var _ Project = (*project.Project)(nil)
