package clipboard

import (
	"bytes"
	"encoding/json"
	"log"

	"github.com/mogaika/studio_clipboard/editor/entities"
	"github.com/mogaika/studio_clipboard/editor/project"
)

// Store is what reconciler reads and mutates
type Store interface {
	CustomEventLookup
	Dispatch(cmd project.Command)
}

// Confirmer asks user whether existing custom event should be replaced.
// Returns true when user cancels replacement.
type Confirmer interface {
	ConfirmReplaceCustomEvent(existingName string) (cancel bool)
}

type Report struct {
	Inserted []string
	Replaced []string
	Skipped  []string
	Declined []string
}

func (r Report) Changed() int { return len(r.Inserted) + len(r.Replaced) }

type SpriteDestination struct {
	SpriteAnimationID string
	MetaspriteID      string
}

type Reconciler struct {
	store   Store
	confirm Confirmer
}

func NewReconciler(store Store, confirm Confirmer) *Reconciler {
	return &Reconciler{store: store, confirm: confirm}
}

func sameContent(a, b *entities.CustomEvent) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

// PasteCustomEvents merges custom events into store one by one, in order.
// Absent events are inserted, identical ones skipped, and differing ones
// replaced only after confirmation. Prompt for next event is not shown
// until previous one is answered.
func (r *Reconciler) PasteCustomEvents(customEvents []entities.CustomEvent) Report {
	var report Report
	for i := range customEvents {
		incoming := customEvents[i]

		existing, exists := r.store.CustomEvent(incoming.ID)
		if exists {
			if sameContent(existing, &incoming) {
				report.Skipped = append(report.Skipped, incoming.ID)
				continue
			}
			if r.confirm.ConfirmReplaceCustomEvent(existing.Name) {
				report.Declined = append(report.Declined, incoming.ID)
				continue
			}
		}

		r.store.Dispatch(project.EditCustomEvent{
			CustomEventID: incoming.ID,
			Changes:       incoming,
		})
		if exists {
			report.Replaced = append(report.Replaced, incoming.ID)
		} else {
			report.Inserted = append(report.Inserted, incoming.ID)
		}
	}
	return report
}

// PasteSprite creates copies of pasted metasprites and tiles and selects
// the new tiles. Metasprites go under dest.SpriteAnimationID, lone tiles
// under dest.MetaspriteID. Returns new tile ids in source order.
func (r *Reconciler) PasteSprite(p Payload, dest SpriteDestination) []string {
	switch v := p.(type) {
	case *MetaspritesPayload:
		return r.pasteMetasprites(v, dest.SpriteAnimationID)
	case *MetaspriteTilesPayload:
		return r.pasteMetaspriteTiles(v, dest.MetaspriteID)
	case nil:
		return nil
	default:
		log.Printf("[clipboard] %s payload can not be pasted as sprite", p.Format())
		return nil
	}
}

func (r *Reconciler) pasteMetasprites(p *MetaspritesPayload, spriteAnimationID string) []string {
	newMetasprites := make([]project.AddMetasprite, len(p.Metasprites))
	for i := range p.Metasprites {
		newMetasprites[i] = project.NewAddMetasprite(spriteAnimationID)
	}
	for _, cmd := range newMetasprites {
		r.store.Dispatch(cmd)
	}

	ownerOfTile := make(map[string]string)
	newMetaspriteIDs := make(map[string]string, len(p.Metasprites))
	for i, metasprite := range p.Metasprites {
		newMetaspriteIDs[metasprite.ID] = newMetasprites[i].MetaspriteID
		for _, tileID := range metasprite.Tiles {
			ownerOfTile[tileID] = metasprite.ID
		}
	}

	newTiles := make([]project.AddMetaspriteTile, len(p.MetaspriteTiles))
	for i := range p.MetaspriteTiles {
		tile := &p.MetaspriteTiles[i]
		owner, listed := ownerOfTile[tile.ID]
		if !listed {
			owner = tile.MetaspriteID
		}
		// unmapped owner leaves tile detached
		newTiles[i] = project.NewAddMetaspriteTile(newMetaspriteIDs[owner], tile)
	}
	return r.addTilesAndSelect(newTiles)
}

func (r *Reconciler) pasteMetaspriteTiles(p *MetaspriteTilesPayload, metaspriteID string) []string {
	newTiles := make([]project.AddMetaspriteTile, len(p.MetaspriteTiles))
	for i := range p.MetaspriteTiles {
		newTiles[i] = project.NewAddMetaspriteTile(metaspriteID, &p.MetaspriteTiles[i])
	}
	return r.addTilesAndSelect(newTiles)
}

func (r *Reconciler) addTilesAndSelect(newTiles []project.AddMetaspriteTile) []string {
	newTileIDs := make([]string, len(newTiles))
	for i, cmd := range newTiles {
		r.store.Dispatch(cmd)
		newTileIDs[i] = cmd.MetaspriteTileID
	}
	r.store.Dispatch(project.SetSelectedMetaspriteTileIDs{MetaspriteTileIDs: newTileIDs})
	return newTileIDs
}
