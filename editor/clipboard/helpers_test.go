package clipboard

import (
	"github.com/mogaika/studio_clipboard/editor/entities"
	"github.com/mogaika/studio_clipboard/editor/project"
)

func callEvent(id string) *entities.ScriptEvent {
	return &entities.ScriptEvent{
		ID:      "call-" + id,
		Command: entities.CommandCallCustomEvent,
		Args:    map[string]interface{}{entities.ArgCustomEventID: id},
	}
}

func textEvent(id, text string) *entities.ScriptEvent {
	return &entities.ScriptEvent{ID: id, Command: "EVENT_TEXT", Args: map[string]interface{}{"text": text}}
}

func script(events ...*entities.ScriptEvent) []*entities.ScriptEvent { return events }

// fixtureProject:
//
//	scene s1 with actor s1a (calls c1) and trigger s1t (calls c3, c-missing)
//	c1 calls c2, c2 calls c1 (cycle), c3 calls nothing
//	variables scoped to s1, s1a, s1t and unrelated x1
//	animation anim1 with metasprite m1 owning tiles t1, t2
func fixtureProject() *project.Project {
	p := project.NewProject("")
	p.Dispatch(project.EditCustomEvent{CustomEventID: "c1", Changes: entities.CustomEvent{Name: "One", Script: script(callEvent("c2"))}})
	p.Dispatch(project.EditCustomEvent{CustomEventID: "c2", Changes: entities.CustomEvent{Name: "Two", Script: script(callEvent("c1"), textEvent("e2", "two"))}})
	p.Dispatch(project.EditCustomEvent{CustomEventID: "c3", Changes: entities.CustomEvent{Name: "Three", Script: script(textEvent("e3", "three"))}})

	p.Dispatch(project.AddScene{Scene: entities.Scene{ID: "s1", Name: "Scene"}})
	p.Dispatch(project.AddActor{SceneID: "s1", Actor: entities.Actor{ID: "s1a", Name: "Actor", Script: script(callEvent("c1"))}})
	p.Dispatch(project.AddTrigger{SceneID: "s1", Trigger: entities.Trigger{ID: "s1t", Name: "Trigger", Script: script(callEvent("c3"), callEvent("c-missing"))}})

	for _, v := range []entities.Variable{
		{ID: "s1__L0", Name: "scene local"},
		{ID: "x1__L0", Name: "unrelated"},
		{ID: "s1a__L0", Name: "actor local"},
		{ID: "s1t__L1", Name: "trigger local"},
	} {
		p.Dispatch(project.AddVariable{Variable: v})
	}

	p.Dispatch(project.AddSpriteAnimation{SpriteAnimationID: "anim1"})
	p.Dispatch(project.AddMetasprite{SpriteAnimationID: "anim1", MetaspriteID: "m1"})
	p.Dispatch(project.AddMetaspriteTile{MetaspriteID: "m1", MetaspriteTileID: "t1", X: 0, Y: 0, SliceX: 8, SliceY: 0})
	p.Dispatch(project.AddMetaspriteTile{MetaspriteID: "m1", MetaspriteTileID: "t2", X: 8, Y: 0, SliceX: 16, SliceY: 0, FlipY: true})
	return p
}

func customEventIDs(customEvents []entities.CustomEvent) []string {
	ids := make([]string, len(customEvents))
	for i, ce := range customEvents {
		ids[i] = ce.ID
	}
	return ids
}

func variableIDs(variables []entities.Variable) []string {
	ids := make([]string, len(variables))
	for i, v := range variables {
		ids[i] = v.ID
	}
	return ids
}

// recorder wraps project and remembers dispatched commands
type recorder struct {
	*project.Project
	commands []project.Command
}

func (r *recorder) Dispatch(cmd project.Command) {
	r.commands = append(r.commands, cmd)
	r.Project.Dispatch(cmd)
}
