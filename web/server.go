package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mogaika/studio_clipboard/editor/clipboard"
	"github.com/mogaika/studio_clipboard/editor/project"
	"github.com/mogaika/studio_clipboard/status"
)

type Server struct {
	project    *project.Project
	middleware *clipboard.Middleware
	status     *status.Hub
	upgrader   websocket.Upgrader
}

func NewServer(p *project.Project, m *clipboard.Middleware, hub *status.Hub) *Server {
	return &Server{
		project:    p,
		middleware: m,
		status:     hub,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/project", s.HandlerProject).Methods("GET")
	r.HandleFunc("/json/clipboard", s.HandlerClipboard).Methods("GET")
	r.HandleFunc("/action/copy/event", s.HandlerCopyEvent).Methods("POST")
	r.HandleFunc("/action/copy/script", s.HandlerCopyScript).Methods("POST")
	r.HandleFunc("/action/copy/text", s.HandlerCopyText).Methods("POST")
	r.HandleFunc("/action/copy/metasprites", s.HandlerCopyMetasprites).Methods("POST")
	r.HandleFunc("/action/copy/metaspritetiles", s.HandlerCopyMetaspriteTiles).Methods("POST")
	r.HandleFunc("/action/copy/{kind:actor|trigger|scene}/{id}", s.HandlerCopyEntity).Methods("POST")
	r.HandleFunc("/action/paste/customevents", s.HandlerPasteCustomEvents).Methods("POST")
	r.HandleFunc("/action/paste/sprite", s.HandlerPasteSprite).Methods("POST")
	r.HandleFunc("/action/save", s.HandlerSave).Methods("POST")
	r.HandleFunc("/ws/status", s.HandlerStatus)
	return r
}

func StartServer(addr string, s *Server) error {
	var h http.Handler = s.Router()
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
