package clipboard

import "github.com/mogaika/studio_clipboard/editor/entities"

type Format string

const (
	FormatActor           Format = "actor"
	FormatTrigger         Format = "trigger"
	FormatScene           Format = "scene"
	FormatEvent           Format = "event"
	FormatScript          Format = "script"
	FormatMetasprites     Format = "gbstudio.metasprites"
	FormatMetaspriteTiles Format = "gbstudio.metaspritetiles"
)

// IsDocument reports formats that use __type envelope and carry custom event closure
func (f Format) IsDocument() bool {
	switch f {
	case FormatActor, FormatTrigger, FormatScene, FormatEvent, FormatScript:
		return true
	}
	return false
}

// Payload is one of *ActorPayload, *TriggerPayload, *ScenePayload,
// *EventPayload, *ScriptPayload, *MetaspritesPayload, *MetaspriteTilesPayload
type Payload interface {
	Format() Format
	payload()
}

// Closure is what document payload depends on. Nil slices are omitted on the clipboard.
type Closure struct {
	CustomEvents []entities.CustomEvent
	Variables    []entities.Variable
}

type ActorPayload struct {
	Actor entities.Actor
	Closure
}

type TriggerPayload struct {
	Trigger entities.Trigger
	Closure
}

type ScenePayload struct {
	Scene entities.SceneData
	Closure
}

type EventPayload struct {
	Event entities.ScriptEvent
	Closure
}

type ScriptPayload struct {
	Script []*entities.ScriptEvent
	Closure
}

type MetaspritesPayload struct {
	Metasprites     []entities.Metasprite
	MetaspriteTiles []entities.MetaspriteTile
}

type MetaspriteTilesPayload struct {
	MetaspriteTiles []entities.MetaspriteTile
}

func (*ActorPayload) Format() Format           { return FormatActor }
func (*TriggerPayload) Format() Format         { return FormatTrigger }
func (*ScenePayload) Format() Format           { return FormatScene }
func (*EventPayload) Format() Format           { return FormatEvent }
func (*ScriptPayload) Format() Format          { return FormatScript }
func (*MetaspritesPayload) Format() Format     { return FormatMetasprites }
func (*MetaspriteTilesPayload) Format() Format { return FormatMetaspriteTiles }

func (*ActorPayload) payload()           {}
func (*TriggerPayload) payload()         {}
func (*ScenePayload) payload()           {}
func (*EventPayload) payload()           {}
func (*ScriptPayload) payload()          {}
func (*MetaspritesPayload) payload()     {}
func (*MetaspriteTilesPayload) payload() {}

// CustomEventsOf returns custom event closure of document payloads, nil for sprite payloads
func CustomEventsOf(p Payload) []entities.CustomEvent {
	switch v := p.(type) {
	case *ActorPayload:
		return v.CustomEvents
	case *TriggerPayload:
		return v.CustomEvents
	case *ScenePayload:
		return v.CustomEvents
	case *EventPayload:
		return v.CustomEvents
	case *ScriptPayload:
		return v.CustomEvents
	}
	return nil
}
