// Package eventsystem walks script event trees to find the custom events they call.
package eventsystem

import (
	"sort"

	"github.com/mogaika/studio_clipboard/editor/entities"
)

// WalkEvents calls fn for every node of script in depth first order,
// nil nodes are skipped. Children branches are visited in key order.
func WalkEvents(script []*entities.ScriptEvent, fn func(*entities.ScriptEvent)) {
	for _, event := range script {
		walkEvent(event, fn)
	}
}

func walkEvent(event *entities.ScriptEvent, fn func(*entities.ScriptEvent)) {
	if event == nil {
		return
	}
	fn(event)

	if len(event.Children) == 0 {
		return
	}
	keys := make([]string, 0, len(event.Children))
	for key := range event.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		WalkEvents(event.Children[key], fn)
	}
}

type idSet struct {
	seen map[string]struct{}
	ids  []string
}

func (s *idSet) add(id string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, exists := s.seen[id]; exists {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) collect(script []*entities.ScriptEvent) {
	WalkEvents(script, func(event *entities.ScriptEvent) {
		if id, ok := event.CalledCustomEventID(); ok {
			s.add(id)
		}
	})
}

func (s *idSet) result() []string {
	if s.ids == nil {
		return []string{}
	}
	return s.ids
}

// CustomEventIDsInEvents returns unique custom event ids called from script
func CustomEventIDsInEvents(script []*entities.ScriptEvent) []string {
	var s idSet
	s.collect(script)
	return s.result()
}

func CustomEventIDsInEvent(event *entities.ScriptEvent) []string {
	return CustomEventIDsInEvents([]*entities.ScriptEvent{event})
}

func CustomEventIDsInActor(actor *entities.Actor) []string {
	var s idSet
	if actor != nil {
		for _, script := range actor.Scripts() {
			s.collect(script)
		}
	}
	return s.result()
}

func CustomEventIDsInTrigger(trigger *entities.Trigger) []string {
	var s idSet
	if trigger != nil {
		for _, script := range trigger.Scripts() {
			s.collect(script)
		}
	}
	return s.result()
}

// CustomEventIDsInScene expects scene with actors and triggers already inlined,
// use DenormalizeScene to get one from project scene.
func CustomEventIDsInScene(scene *entities.SceneData) []string {
	var s idSet
	if scene == nil {
		return s.result()
	}
	for _, script := range scene.Scripts() {
		s.collect(script)
	}
	for i := range scene.Actors {
		for _, script := range scene.Actors[i].Scripts() {
			s.collect(script)
		}
	}
	for i := range scene.Triggers {
		for _, script := range scene.Triggers[i].Scripts() {
			s.collect(script)
		}
	}
	return s.result()
}

type ActorLookup func(id string) (*entities.Actor, bool)
type TriggerLookup func(id string) (*entities.Trigger, bool)

// DenormalizeScene resolves scene actor and trigger id lists.
// Ids missing in lookups are dropped.
func DenormalizeScene(scene *entities.Scene, actors ActorLookup, triggers TriggerLookup) entities.SceneData {
	data := entities.SceneData{
		ID:               scene.ID,
		Name:             scene.Name,
		BackgroundID:     scene.BackgroundID,
		Width:            scene.Width,
		Height:           scene.Height,
		Actors:           make([]entities.Actor, 0, len(scene.Actors)),
		Triggers:         make([]entities.Trigger, 0, len(scene.Triggers)),
		Script:           scene.Script,
		PlayerHit1Script: scene.PlayerHit1Script,
		PlayerHit2Script: scene.PlayerHit2Script,
		PlayerHit3Script: scene.PlayerHit3Script,
	}
	for _, id := range scene.Actors {
		if actor, ok := actors(id); ok && actor != nil {
			data.Actors = append(data.Actors, *actor)
		}
	}
	for _, id := range scene.Triggers {
		if trigger, ok := triggers(id); ok && trigger != nil {
			data.Triggers = append(data.Triggers, *trigger)
		}
	}
	return data
}
