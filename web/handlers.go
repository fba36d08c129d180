package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/mogaika/studio_clipboard/editor/clipboard"
	"github.com/mogaika/studio_clipboard/editor/entities"
	"github.com/mogaika/studio_clipboard/webutils"
)

type idsRequest struct {
	IDs []string `json:"ids"`
}

type textRequest struct {
	Text string `json:"text"`
}

type pasteSpriteRequest struct {
	SpriteAnimationID string `json:"spriteAnimationId"`
	MetaspriteID      string `json:"metaspriteId"`
}

type actionResponse struct {
	Status string `json:"status,omitempty"`
}

type clipboardResponse struct {
	Format  clipboard.Format `json:"format,omitempty"`
	Payload json.RawMessage  `json:"payload,omitempty"`
}

type pasteSpriteResponse struct {
	Selected []string `json:"selected"`
}

func (s *Server) writeAction(w http.ResponseWriter) {
	var resp actionResponse
	if st, ok := s.status.Last(); ok {
		resp.Status = st.Message
	}
	webutils.WriteJson(w, &resp)
}

func (s *Server) HandlerProject(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, s.project.Document())
}

func (s *Server) HandlerClipboard(w http.ResponseWriter, r *http.Request) {
	s.middleware.Handle(clipboard.FetchClipboard{})

	var resp clipboardResponse
	if p := s.middleware.Data(); p != nil {
		resp.Format = p.Format()
		resp.Payload = json.RawMessage(clipboard.Encode(p))
	}
	webutils.WriteJson(w, &resp)
}

func (s *Server) HandlerCopyEntity(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	id := mux.Vars(r)["id"]

	var action clipboard.Action
	switch kind {
	case "actor":
		if actor, ok := s.project.Actor(id); ok {
			action = clipboard.CopyActor{Actor: *actor}
		}
	case "trigger":
		if trigger, ok := s.project.Trigger(id); ok {
			action = clipboard.CopyTrigger{Trigger: *trigger}
		}
	case "scene":
		if scene, ok := s.project.Scene(id); ok {
			action = clipboard.CopyScene{Scene: *scene}
		}
	}
	if action == nil {
		webutils.WriteError(w, http.StatusNotFound, errors.Errorf("%s %q not found", kind, id))
		return
	}

	s.middleware.Handle(action)
	s.writeAction(w)
}

func (s *Server) HandlerCopyEvent(w http.ResponseWriter, r *http.Request) {
	var event entities.ScriptEvent
	if err := webutils.ReadJson(r, &event); err != nil {
		webutils.WriteError(w, http.StatusBadRequest, err)
		return
	}
	s.middleware.Handle(clipboard.CopyEvent{Event: event})
	s.writeAction(w)
}

func (s *Server) HandlerCopyScript(w http.ResponseWriter, r *http.Request) {
	var script []*entities.ScriptEvent
	if err := webutils.ReadJson(r, &script); err != nil {
		webutils.WriteError(w, http.StatusBadRequest, err)
		return
	}
	s.middleware.Handle(clipboard.CopyScript{Script: script})
	s.writeAction(w)
}

func (s *Server) HandlerCopyText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := webutils.ReadJson(r, &req); err != nil {
		webutils.WriteError(w, http.StatusBadRequest, err)
		return
	}
	s.middleware.Handle(clipboard.CopyText{Text: req.Text})
	s.writeAction(w)
}

func (s *Server) HandlerCopyMetasprites(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := webutils.ReadJson(r, &req); err != nil {
		webutils.WriteError(w, http.StatusBadRequest, err)
		return
	}
	s.middleware.Handle(clipboard.CopyMetasprites{MetaspriteIDs: req.IDs})
	s.writeAction(w)
}

func (s *Server) HandlerCopyMetaspriteTiles(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := webutils.ReadJson(r, &req); err != nil {
		webutils.WriteError(w, http.StatusBadRequest, err)
		return
	}
	s.middleware.Handle(clipboard.CopyMetaspriteTiles{MetaspriteTileIDs: req.IDs})
	s.writeAction(w)
}

func (s *Server) HandlerPasteCustomEvents(w http.ResponseWriter, r *http.Request) {
	s.middleware.Handle(clipboard.PasteCustomEvents{})
	s.writeAction(w)
}

func (s *Server) HandlerPasteSprite(w http.ResponseWriter, r *http.Request) {
	var req pasteSpriteRequest
	if err := webutils.ReadJson(r, &req); err != nil {
		webutils.WriteError(w, http.StatusBadRequest, err)
		return
	}
	s.middleware.Handle(clipboard.PasteSprite{
		SpriteAnimationID: req.SpriteAnimationID,
		MetaspriteID:      req.MetaspriteID,
	})
	webutils.WriteJson(w, &pasteSpriteResponse{Selected: s.project.SelectedMetaspriteTileIDs()})
}

func (s *Server) HandlerSave(w http.ResponseWriter, r *http.Request) {
	if err := s.project.Save(); err != nil {
		webutils.WriteError(w, http.StatusInternalServerError, err)
		return
	}
	s.status.Info("Saved %s", s.project.Path())
	s.writeAction(w)
}

func (s *Server) HandlerStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	s.status.Attach(conn)
}
