package project

import (
	"fmt"

	"github.com/mogaika/studio_clipboard/editor/entities"
	"github.com/mogaika/studio_clipboard/utils"
)

func callCustomEvent(customEventID string) *entities.ScriptEvent {
	return &entities.ScriptEvent{
		ID:      NewID(),
		Command: entities.CommandCallCustomEvent,
		Args:    map[string]interface{}{entities.ArgCustomEventID: customEventID},
	}
}

// NewSample fills new project with a small scene used by -demo mode:
// actors and a trigger calling custom events, a few owned variables
// and one sprite animation with two frames
func NewSample(path string) *Project {
	var names utils.RandomNameGenerator
	p := NewProject(path)

	helperID := NewID()
	p.Dispatch(EditCustomEvent{CustomEventID: helperID, Changes: entities.CustomEvent{
		Name:   names.RandomName(),
		Script: []*entities.ScriptEvent{{ID: NewID(), Command: "EVENT_TEXT", Args: map[string]interface{}{"text": "Hello"}}},
	}})
	mainID := NewID()
	p.Dispatch(EditCustomEvent{CustomEventID: mainID, Changes: entities.CustomEvent{
		Name:   names.RandomName(),
		Script: []*entities.ScriptEvent{callCustomEvent(helperID)},
	}})

	scene := entities.Scene{ID: NewID(), Name: names.RandomName(), Width: 20, Height: 18}
	p.Dispatch(AddScene{Scene: scene})
	p.Dispatch(AddVariable{Variable: entities.Variable{ID: scene.ID + "__L0", Name: "Scene local"}})

	for i := 0; i < 2; i++ {
		actor := entities.Actor{
			ID:     NewID(),
			Name:   names.RandomName(),
			X:      4 + i*4,
			Y:      8,
			Script: []*entities.ScriptEvent{callCustomEvent(mainID)},
		}
		p.Dispatch(AddActor{SceneID: scene.ID, Actor: actor})
		p.Dispatch(AddVariable{Variable: entities.Variable{ID: fmt.Sprintf("%s__L%d", actor.ID, i), Name: "Actor local"}})
	}

	trigger := entities.Trigger{
		ID:     NewID(),
		Name:   names.RandomName(),
		Width:  2,
		Height: 1,
		Script: []*entities.ScriptEvent{{
			ID:      NewID(),
			Command: "EVENT_IF_TRUE",
			Children: map[string][]*entities.ScriptEvent{
				"true":  {callCustomEvent(helperID)},
				"false": {},
			},
		}},
	}
	p.Dispatch(AddTrigger{SceneID: scene.ID, Trigger: trigger})

	animID := NewID()
	p.Dispatch(AddSpriteAnimation{SpriteAnimationID: animID})
	for frame := 0; frame < 2; frame++ {
		add := NewAddMetasprite(animID)
		p.Dispatch(add)
		for i := 0; i < 2; i++ {
			p.Dispatch(NewAddMetaspriteTile(add.MetaspriteID, &entities.MetaspriteTile{X: i * 8, SliceX: i * 8, SliceY: frame * 16}))
		}
	}

	return p
}
