package project

import (
	"log"
	"sync"

	"github.com/mogaika/studio_clipboard/editor/entities"
)

// table keeps entities by id in insertion order
type table[T any] struct {
	order []string
	byID  map[string]*T
}

func newTable[T any]() table[T] {
	return table[T]{byID: make(map[string]*T)}
}

func (t *table[T]) get(id string) (*T, bool) {
	v, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	c := *v
	return &c, true
}

func (t *table[T]) has(id string) bool {
	_, ok := t.byID[id]
	return ok
}

func (t *table[T]) put(id string, v T) {
	if _, exists := t.byID[id]; !exists {
		t.order = append(t.order, id)
	}
	t.byID[id] = &v
}

func (t *table[T]) all() []T {
	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		result = append(result, *t.byID[id])
	}
	return result
}

type Project struct {
	mu sync.RWMutex

	path string

	scenes           table[entities.Scene]
	actors           table[entities.Actor]
	triggers         table[entities.Trigger]
	customEvents     table[entities.CustomEvent]
	variables        table[entities.Variable]
	spriteAnimations table[entities.SpriteAnimation]
	metasprites      table[entities.Metasprite]
	metaspriteTiles  table[entities.MetaspriteTile]

	selectedMetaspriteTileIDs []string
}

func NewProject(path string) *Project {
	return &Project{
		path:             path,
		scenes:           newTable[entities.Scene](),
		actors:           newTable[entities.Actor](),
		triggers:         newTable[entities.Trigger](),
		customEvents:     newTable[entities.CustomEvent](),
		variables:        newTable[entities.Variable](),
		spriteAnimations: newTable[entities.SpriteAnimation](),
		metasprites:      newTable[entities.Metasprite](),
		metaspriteTiles:  newTable[entities.MetaspriteTile](),
	}
}

func (p *Project) Path() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.path
}

func (p *Project) CustomEvent(id string) (*entities.CustomEvent, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.customEvents.get(id)
}

func (p *Project) CustomEvents() []entities.CustomEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.customEvents.all()
}

func (p *Project) Scene(id string) (*entities.Scene, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.scenes.get(id)
}

func (p *Project) Scenes() []entities.Scene {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.scenes.all()
}

func (p *Project) Actor(id string) (*entities.Actor, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.actors.get(id)
}

func (p *Project) Actors() []entities.Actor {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.actors.all()
}

func (p *Project) Trigger(id string) (*entities.Trigger, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.triggers.get(id)
}

func (p *Project) Triggers() []entities.Trigger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.triggers.all()
}

func (p *Project) Variable(id string) (*entities.Variable, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.variables.get(id)
}

func (p *Project) Variables() []entities.Variable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.variables.all()
}

func (p *Project) SpriteAnimation(id string) (*entities.SpriteAnimation, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.spriteAnimations.get(id)
}

func (p *Project) Metasprite(id string) (*entities.Metasprite, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.metasprites.get(id)
}

func (p *Project) Metasprites() []entities.Metasprite {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.metasprites.all()
}

func (p *Project) MetaspriteTile(id string) (*entities.MetaspriteTile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.metaspriteTiles.get(id)
}

func (p *Project) MetaspriteTiles() []entities.MetaspriteTile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.metaspriteTiles.all()
}

func (p *Project) SelectedMetaspriteTileIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.selectedMetaspriteTileIDs...)
}

func (p *Project) Dispatch(cmd Command) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch c := cmd.(type) {
	case EditCustomEvent:
		changes := c.Changes
		changes.ID = c.CustomEventID
		p.customEvents.put(c.CustomEventID, changes)
	case AddMetasprite:
		if p.metasprites.has(c.MetaspriteID) {
			log.Printf("[project] metasprite %q already exists", c.MetaspriteID)
			return
		}
		p.metasprites.put(c.MetaspriteID, entities.Metasprite{ID: c.MetaspriteID, Tiles: []string{}})
		if anim, ok := p.spriteAnimations.byID[c.SpriteAnimationID]; ok {
			anim.Frames = append(anim.Frames, c.MetaspriteID)
		}
	case AddMetaspriteTile:
		if p.metaspriteTiles.has(c.MetaspriteTileID) {
			log.Printf("[project] metasprite tile %q already exists", c.MetaspriteTileID)
			return
		}
		p.metaspriteTiles.put(c.MetaspriteTileID, entities.MetaspriteTile{
			ID:           c.MetaspriteTileID,
			MetaspriteID: c.MetaspriteID,
			X:            c.X,
			Y:            c.Y,
			SliceX:       c.SliceX,
			SliceY:       c.SliceY,
			FlipX:        c.FlipX,
			FlipY:        c.FlipY,
		})
		if metasprite, ok := p.metasprites.byID[c.MetaspriteID]; ok {
			metasprite.Tiles = append(metasprite.Tiles, c.MetaspriteTileID)
		}
	case SetSelectedMetaspriteTileIDs:
		p.selectedMetaspriteTileIDs = append([]string{}, c.MetaspriteTileIDs...)
	case AddScene:
		p.scenes.put(c.Scene.ID, c.Scene)
	case AddActor:
		p.actors.put(c.Actor.ID, c.Actor)
		if scene, ok := p.scenes.byID[c.SceneID]; ok {
			scene.Actors = append(scene.Actors, c.Actor.ID)
		}
	case AddTrigger:
		p.triggers.put(c.Trigger.ID, c.Trigger)
		if scene, ok := p.scenes.byID[c.SceneID]; ok {
			scene.Triggers = append(scene.Triggers, c.Trigger.ID)
		}
	case AddVariable:
		p.variables.put(c.Variable.ID, c.Variable)
	case AddSpriteAnimation:
		if !p.spriteAnimations.has(c.SpriteAnimationID) {
			p.spriteAnimations.put(c.SpriteAnimationID, entities.SpriteAnimation{ID: c.SpriteAnimationID, Frames: []string{}})
		}
	default:
		log.Printf("[project] unknown command %T", cmd)
	}
}
