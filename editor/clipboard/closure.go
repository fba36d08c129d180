package clipboard

import (
	"strings"

	"github.com/mogaika/studio_clipboard/editor/entities"
	"github.com/mogaika/studio_clipboard/editor/eventsystem"
)

type CustomEventLookup interface {
	CustomEvent(id string) (*entities.CustomEvent, bool)
}

// Source is the read side of project needed to build document payloads
type Source interface {
	CustomEventLookup
	Actor(id string) (*entities.Actor, bool)
	Trigger(id string) (*entities.Trigger, bool)
	Variables() []entities.Variable
}

type SpriteSource interface {
	Metasprite(id string) (*entities.Metasprite, bool)
	MetaspriteTile(id string) (*entities.MetaspriteTile, bool)
}

// CustomEventClosure resolves ids and everything their scripts call in turn.
// Ids without custom event are dropped, each custom event is visited once
// so call cycles terminate.
func CustomEventClosure(ids []string, lookup CustomEventLookup) []entities.CustomEvent {
	visited := make(map[string]struct{}, len(ids))
	queue := append([]string(nil), ids...)

	var result []entities.CustomEvent
	for len(queue) != 0 {
		id := queue[0]
		queue = queue[1:]

		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}

		customEvent, ok := lookup.CustomEvent(id)
		if !ok || customEvent == nil {
			continue
		}
		result = append(result, *customEvent)
		queue = append(queue, eventsystem.CustomEventIDsInEvents(customEvent.Script)...)
	}
	return result
}

// VariablesOwnedBy returns variables with id prefixed by any of owner ids, in input order
func VariablesOwnedBy(all []entities.Variable, ownerIDs ...string) []entities.Variable {
	var result []entities.Variable
	for _, variable := range all {
		for _, owner := range ownerIDs {
			if owner != "" && strings.HasPrefix(variable.ID, owner) {
				result = append(result, variable)
				break
			}
		}
	}
	return result
}

func ActorClosure(src Source, actor *entities.Actor) *ActorPayload {
	return &ActorPayload{
		Actor: *actor,
		Closure: Closure{
			CustomEvents: CustomEventClosure(eventsystem.CustomEventIDsInActor(actor), src),
			Variables:    VariablesOwnedBy(src.Variables(), actor.ID),
		},
	}
}

func TriggerClosure(src Source, trigger *entities.Trigger) *TriggerPayload {
	return &TriggerPayload{
		Trigger: *trigger,
		Closure: Closure{
			CustomEvents: CustomEventClosure(eventsystem.CustomEventIDsInTrigger(trigger), src),
			Variables:    VariablesOwnedBy(src.Variables(), trigger.ID),
		},
	}
}

// SceneClosure inlines scene actors and triggers from src. Variables of the scene,
// and of every actor and trigger listed in it, are attached.
func SceneClosure(src Source, scene *entities.Scene) *ScenePayload {
	data := eventsystem.DenormalizeScene(scene, src.Actor, src.Trigger)

	owners := make([]string, 0, 1+len(scene.Actors)+len(scene.Triggers))
	owners = append(owners, scene.ID)
	owners = append(owners, scene.Actors...)
	owners = append(owners, scene.Triggers...)

	return &ScenePayload{
		Scene: data,
		Closure: Closure{
			CustomEvents: CustomEventClosure(eventsystem.CustomEventIDsInScene(&data), src),
			Variables:    VariablesOwnedBy(src.Variables(), owners...),
		},
	}
}

func EventClosure(lookup CustomEventLookup, event *entities.ScriptEvent) *EventPayload {
	return &EventPayload{
		Event: *event,
		Closure: Closure{
			CustomEvents: CustomEventClosure(eventsystem.CustomEventIDsInEvent(event), lookup),
		},
	}
}

func ScriptClosure(lookup CustomEventLookup, script []*entities.ScriptEvent) *ScriptPayload {
	return &ScriptPayload{
		Script: script,
		Closure: Closure{
			CustomEvents: CustomEventClosure(eventsystem.CustomEventIDsInEvents(script), lookup),
		},
	}
}

// MetaspritesCopy collects metasprites and tiles they own, missing ids are skipped
func MetaspritesCopy(src SpriteSource, metaspriteIDs []string) *MetaspritesPayload {
	p := &MetaspritesPayload{}
	for _, id := range metaspriteIDs {
		if metasprite, ok := src.Metasprite(id); ok {
			p.Metasprites = append(p.Metasprites, *metasprite)
		}
	}
	for _, metasprite := range p.Metasprites {
		for _, tileID := range metasprite.Tiles {
			if tile, ok := src.MetaspriteTile(tileID); ok {
				p.MetaspriteTiles = append(p.MetaspriteTiles, *tile)
			}
		}
	}
	return p
}

func MetaspriteTilesCopy(src SpriteSource, metaspriteTileIDs []string) *MetaspriteTilesPayload {
	p := &MetaspriteTilesPayload{}
	for _, id := range metaspriteTileIDs {
		if tile, ok := src.MetaspriteTile(id); ok {
			p.MetaspriteTiles = append(p.MetaspriteTiles, *tile)
		}
	}
	return p
}
