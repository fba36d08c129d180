package entities

// Command of the script node that calls a custom event.
const CommandCallCustomEvent = "EVENT_CALL_CUSTOM_EVENT"

const ArgCustomEventID = "customEventId"

type ScriptEvent struct {
	ID       string                    `json:"id" yaml:"id"`
	Command  string                    `json:"command" yaml:"command"`
	Args     map[string]interface{}    `json:"args,omitempty" yaml:"args,omitempty"`
	Children map[string][]*ScriptEvent `json:"children,omitempty" yaml:"children,omitempty"`
}

// CalledCustomEventID returns referenced custom event id for call nodes
func (e *ScriptEvent) CalledCustomEventID() (string, bool) {
	if e == nil || e.Command != CommandCallCustomEvent {
		return "", false
	}
	id, ok := e.Args[ArgCustomEventID].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

type Actor struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	X             int            `json:"x" yaml:"x"`
	Y             int            `json:"y" yaml:"y"`
	SpriteSheetID string         `json:"spriteSheetId,omitempty" yaml:"spriteSheetId,omitempty"`
	Script        []*ScriptEvent `json:"script" yaml:"script"`
	StartScript   []*ScriptEvent `json:"startScript" yaml:"startScript"`
	UpdateScript  []*ScriptEvent `json:"updateScript" yaml:"updateScript"`
	Hit1Script    []*ScriptEvent `json:"hit1Script" yaml:"hit1Script"`
	Hit2Script    []*ScriptEvent `json:"hit2Script" yaml:"hit2Script"`
	Hit3Script    []*ScriptEvent `json:"hit3Script" yaml:"hit3Script"`
}

func (a *Actor) Scripts() [][]*ScriptEvent {
	return [][]*ScriptEvent{a.Script, a.StartScript, a.UpdateScript, a.Hit1Script, a.Hit2Script, a.Hit3Script}
}

type Trigger struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	X           int            `json:"x" yaml:"x"`
	Y           int            `json:"y" yaml:"y"`
	Width       int            `json:"width" yaml:"width"`
	Height      int            `json:"height" yaml:"height"`
	Script      []*ScriptEvent `json:"script" yaml:"script"`
	LeaveScript []*ScriptEvent `json:"leaveScript" yaml:"leaveScript"`
}

func (t *Trigger) Scripts() [][]*ScriptEvent {
	return [][]*ScriptEvent{t.Script, t.LeaveScript}
}

// Scene as stored in project, actors and triggers are referenced by id
type Scene struct {
	ID               string         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	BackgroundID     string         `json:"backgroundId,omitempty" yaml:"backgroundId,omitempty"`
	Width            int            `json:"width" yaml:"width"`
	Height           int            `json:"height" yaml:"height"`
	Actors           []string       `json:"actors" yaml:"actors"`
	Triggers         []string       `json:"triggers" yaml:"triggers"`
	Script           []*ScriptEvent `json:"script" yaml:"script"`
	PlayerHit1Script []*ScriptEvent `json:"playerHit1Script" yaml:"playerHit1Script"`
	PlayerHit2Script []*ScriptEvent `json:"playerHit2Script" yaml:"playerHit2Script"`
	PlayerHit3Script []*ScriptEvent `json:"playerHit3Script" yaml:"playerHit3Script"`
}

func (s *Scene) Scripts() [][]*ScriptEvent {
	return [][]*ScriptEvent{s.Script, s.PlayerHit1Script, s.PlayerHit2Script, s.PlayerHit3Script}
}

// SceneData is scene with actors and triggers inlined
type SceneData struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	BackgroundID     string         `json:"backgroundId,omitempty"`
	Width            int            `json:"width"`
	Height           int            `json:"height"`
	Actors           []Actor        `json:"actors"`
	Triggers         []Trigger      `json:"triggers"`
	Script           []*ScriptEvent `json:"script"`
	PlayerHit1Script []*ScriptEvent `json:"playerHit1Script"`
	PlayerHit2Script []*ScriptEvent `json:"playerHit2Script"`
	PlayerHit3Script []*ScriptEvent `json:"playerHit3Script"`
}

func (s *SceneData) Scripts() [][]*ScriptEvent {
	return [][]*ScriptEvent{s.Script, s.PlayerHit1Script, s.PlayerHit2Script, s.PlayerHit3Script}
}

type CustomEvent struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Script      []*ScriptEvent `json:"script" yaml:"script"`
}

// Variable is owned by the actor, trigger or scene whose id is a prefix of variable id
type Variable struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type SpriteAnimation struct {
	ID     string   `json:"id" yaml:"id"`
	Frames []string `json:"frames" yaml:"frames"`
}

type Metasprite struct {
	ID    string   `json:"id" yaml:"id"`
	Tiles []string `json:"tiles" yaml:"tiles"`
}

type MetaspriteTile struct {
	ID           string `json:"id" yaml:"id"`
	MetaspriteID string `json:"metaspriteId,omitempty" yaml:"metaspriteId,omitempty"`
	X            int    `json:"x" yaml:"x"`
	Y            int    `json:"y" yaml:"y"`
	SliceX       int    `json:"sliceX" yaml:"sliceX"`
	SliceY       int    `json:"sliceY" yaml:"sliceY"`
	FlipX        bool   `json:"flipX,omitempty" yaml:"flipX,omitempty"`
	FlipY        bool   `json:"flipY,omitempty" yaml:"flipY,omitempty"`
}
