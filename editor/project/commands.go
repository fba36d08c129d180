package project

import (
	"github.com/google/uuid"

	"github.com/mogaika/studio_clipboard/editor/entities"
)

// Command mutates project state when passed to Project.Dispatch.
// Create commands carry their new id, so whoever built the command
// knows what will be created.
type Command interface {
	command()
}

// EditCustomEvent replaces custom event content, or inserts it when absent.
type EditCustomEvent struct {
	CustomEventID string
	Changes       entities.CustomEvent
}

type AddMetasprite struct {
	SpriteAnimationID string
	MetaspriteID      string
}

type AddMetaspriteTile struct {
	MetaspriteID     string
	MetaspriteTileID string
	X, Y             int
	SliceX, SliceY   int
	FlipX, FlipY     bool
}

type SetSelectedMetaspriteTileIDs struct {
	MetaspriteTileIDs []string
}

type AddActor struct {
	SceneID string
	Actor   entities.Actor
}

type AddTrigger struct {
	SceneID string
	Trigger entities.Trigger
}

type AddScene struct {
	Scene entities.Scene
}

type AddVariable struct {
	Variable entities.Variable
}

type AddSpriteAnimation struct {
	SpriteAnimationID string
}

func (EditCustomEvent) command()              {}
func (AddMetasprite) command()                {}
func (AddMetaspriteTile) command()            {}
func (SetSelectedMetaspriteTileIDs) command() {}
func (AddActor) command()                     {}
func (AddTrigger) command()                   {}
func (AddScene) command()                     {}
func (AddVariable) command()                  {}
func (AddSpriteAnimation) command()           {}

func NewID() string {
	uid, err := uuid.NewRandom()
	if err != nil {
		panic(err)
	}
	return uid.String()
}

func NewAddMetasprite(spriteAnimationID string) AddMetasprite {
	return AddMetasprite{
		SpriteAnimationID: spriteAnimationID,
		MetaspriteID:      NewID(),
	}
}

// NewAddMetaspriteTile copies placement of tile, but not its id or owner
func NewAddMetaspriteTile(metaspriteID string, tile *entities.MetaspriteTile) AddMetaspriteTile {
	return AddMetaspriteTile{
		MetaspriteID:     metaspriteID,
		MetaspriteTileID: NewID(),
		X:                tile.X,
		Y:                tile.Y,
		SliceX:           tile.SliceX,
		SliceY:           tile.SliceY,
		FlipX:            tile.FlipX,
		FlipY:            tile.FlipY,
	}
}
