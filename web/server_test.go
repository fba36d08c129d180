package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"

	"github.com/mogaika/studio_clipboard/editor/clipboard"
	"github.com/mogaika/studio_clipboard/editor/clipboard/system"
	"github.com/mogaika/studio_clipboard/editor/dialog"
	"github.com/mogaika/studio_clipboard/editor/entities"
	"github.com/mogaika/studio_clipboard/editor/project"
	"github.com/mogaika/studio_clipboard/status"
)

type testServer struct {
	*httptest.Server
	project   *project.Project
	clipboard *system.Memory
	hub       *status.Hub
}

func newTestServer(t *testing.T) *testServer {
	p := project.NewProject("")
	p.Dispatch(project.EditCustomEvent{CustomEventID: "c1", Changes: entities.CustomEvent{Name: "Foo"}})
	p.Dispatch(project.AddScene{Scene: entities.Scene{ID: "s1"}})
	p.Dispatch(project.AddActor{SceneID: "s1", Actor: entities.Actor{
		ID: "a1",
		Script: []*entities.ScriptEvent{{
			ID:      "e1",
			Command: entities.CommandCallCustomEvent,
			Args:    map[string]interface{}{entities.ArgCustomEventID: "c1"},
		}},
	}})
	p.Dispatch(project.AddSpriteAnimation{SpriteAnimationID: "anim1"})
	p.Dispatch(project.AddMetasprite{SpriteAnimationID: "anim1", MetaspriteID: "m1"})
	p.Dispatch(project.AddMetaspriteTile{MetaspriteID: "m1", MetaspriteTileID: "t1", X: 4})

	ts := &testServer{project: p, clipboard: system.NewMemory(""), hub: status.NewHub()}
	m := clipboard.NewMiddleware(p, ts.clipboard, &dialog.Fixed{Replace: false}, ts.hub)
	ts.Server = httptest.NewServer(NewServer(p, m, ts.hub).Router())
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) (int, string) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	return resp.StatusCode, buf.String()
}

func TestCopyEntity(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.do(t, "POST", "/action/copy/actor/a1", nil)
	if code != http.StatusOK {
		t.Fatalf("copy actor: %d %s", code, body)
	}
	if got := gjson.Get(ts.clipboard.ReadText(), "__customEvents.0.name").String(); got != "Foo" {
		t.Errorf("clipboard custom event name %q", got)
	}
	if !strings.Contains(gjson.Get(body, "status").String(), "Copied actor") {
		t.Errorf("status %s", body)
	}

	code, body = ts.do(t, "GET", "/json/clipboard", nil)
	if code != http.StatusOK || gjson.Get(body, "format").String() != "actor" || gjson.Get(body, "payload.actor.id").String() != "a1" {
		t.Errorf("clipboard: %d %s", code, body)
	}

	if code, _ := ts.do(t, "POST", "/action/copy/actor/missing", nil); code != http.StatusNotFound {
		t.Errorf("copy of missing actor: %d; expected 404", code)
	}
	if code, _ := ts.do(t, "GET", "/action/copy/actor/a1", nil); code != http.StatusMethodNotAllowed {
		t.Errorf("GET copy: %d; expected 405", code)
	}
}

func TestCopyTextClearsClipboardData(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, "POST", "/action/copy/text", map[string]string{"text": "hello"})

	if got := ts.clipboard.ReadText(); got != "hello" {
		t.Errorf("clipboard %q", got)
	}
	_, body := ts.do(t, "GET", "/json/clipboard", nil)
	if gjson.Get(body, "format").Exists() {
		t.Errorf("clipboard response %s; expected no payload", body)
	}
}

func TestPasteSprite(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, "POST", "/action/copy/metasprites", map[string][]string{"ids": {"m1"}})

	code, body := ts.do(t, "POST", "/action/paste/sprite", map[string]string{"spriteAnimationId": "anim1"})
	if code != http.StatusOK || gjson.Get(body, "selected.#").Int() != 1 {
		t.Fatalf("paste sprite: %d %s", code, body)
	}
	if anim, _ := ts.project.SpriteAnimation("anim1"); len(anim.Frames) != 2 {
		t.Errorf("anim1 frames %v", anim.Frames)
	}

	if code, _ := ts.do(t, "POST", "/action/paste/sprite", nil); code != http.StatusBadRequest {
		t.Errorf("paste sprite without body: %d; expected 400", code)
	}
}

func TestPasteCustomEventsKeepsExisting(t *testing.T) {
	ts := newTestServer(t)
	ts.clipboard.WriteText(`{"script": [], "__type": "script", "__customEvents": [{"id": "c1", "name": "Other", "script": []}]}`)

	if code, body := ts.do(t, "POST", "/action/paste/customevents", nil); code != http.StatusOK {
		t.Fatalf("paste: %d %s", code, body)
	}
	if ce, _ := ts.project.CustomEvent("c1"); ce.Name != "Foo" {
		t.Errorf("c1 replaced with %q under never policy", ce.Name)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	ts := newTestServer(t)
	if code, _ := ts.do(t, "POST", "/action/save", nil); code != http.StatusInternalServerError {
		t.Errorf("save: %d; expected 500", code)
	}
}

func TestProject(t *testing.T) {
	ts := newTestServer(t)
	code, body := ts.do(t, "GET", "/json/project", nil)
	if code != http.StatusOK || gjson.Get(body, "customEvents.0.id").String() != "c1" {
		t.Errorf("project: %d %s", code, body)
	}
}

func TestStatusSocket(t *testing.T) {
	ts := newTestServer(t)
	ts.hub.Info("hello")

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws/status", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var st status.Status
	if err := conn.ReadJSON(&st); err != nil {
		t.Fatalf("read: %v", err)
	}
	if st.Message != "hello" || st.Type != status.INFO {
		t.Errorf("status %+v", st)
	}
}
