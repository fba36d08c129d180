package clipboard

import (
	"reflect"
	"testing"

	"github.com/mogaika/studio_clipboard/editor/entities"
)

func TestCustomEventClosure(t *testing.T) {
	p := fixtureProject()

	var tests = []struct {
		in  []string
		out []string
	}{
		{nil, []string{}},
		{[]string{"c3"}, []string{"c3"}},
		{[]string{"c1"}, []string{"c1", "c2"}},
		{[]string{"c2", "c1"}, []string{"c2", "c1"}},
		{[]string{"c-missing", "c3", "c3"}, []string{"c3"}},
	}
	for _, test := range tests {
		result := customEventIDs(CustomEventClosure(test.in, p))
		if !reflect.DeepEqual(result, test.out) {
			t.Errorf("CustomEventClosure(%q)=%q; expected %q", test.in, result, test.out)
		}
	}
}

func TestVariablesOwnedBy(t *testing.T) {
	all := []entities.Variable{{ID: "a1__L0"}, {ID: "a10__L0"}, {ID: "b1__L0"}, {ID: "L0"}}

	var tests = []struct {
		owners []string
		out    []string
	}{
		{nil, []string{}},
		{[]string{""}, []string{}},
		{[]string{"b1"}, []string{"b1__L0"}},
		{[]string{"a1"}, []string{"a1__L0", "a10__L0"}},
		{[]string{"b1", "a10"}, []string{"a10__L0", "b1__L0"}},
	}
	for _, test := range tests {
		result := variableIDs(VariablesOwnedBy(all, test.owners...))
		if !reflect.DeepEqual(result, test.out) {
			t.Errorf("VariablesOwnedBy(%q)=%q; expected %q", test.owners, result, test.out)
		}
	}
}

func TestActorClosure(t *testing.T) {
	p := fixtureProject()
	actor, _ := p.Actor("s1a")

	payload := ActorClosure(p, actor)
	if got := customEventIDs(payload.CustomEvents); !reflect.DeepEqual(got, []string{"c1", "c2"}) {
		t.Errorf("actor custom events=%q; expected [c1 c2]", got)
	}
	if got := variableIDs(payload.Variables); !reflect.DeepEqual(got, []string{"s1a__L0"}) {
		t.Errorf("actor variables=%q; expected [s1a__L0]", got)
	}
}

func TestTriggerClosureDropsMissing(t *testing.T) {
	p := fixtureProject()
	trigger, _ := p.Trigger("s1t")

	payload := TriggerClosure(p, trigger)
	if got := customEventIDs(payload.CustomEvents); !reflect.DeepEqual(got, []string{"c3"}) {
		t.Errorf("trigger custom events=%q; expected [c3]", got)
	}
	if got := variableIDs(payload.Variables); !reflect.DeepEqual(got, []string{"s1t__L1"}) {
		t.Errorf("trigger variables=%q; expected [s1t__L1]", got)
	}
}

func TestSceneClosure(t *testing.T) {
	p := fixtureProject()
	scene, _ := p.Scene("s1")

	payload := SceneClosure(p, scene)
	if len(payload.Scene.Actors) != 1 || payload.Scene.Actors[0].Name != "Actor" {
		t.Errorf("scene actors not inlined: %v", payload.Scene.Actors)
	}
	if got := customEventIDs(payload.CustomEvents); !reflect.DeepEqual(got, []string{"c1", "c3", "c2"}) {
		t.Errorf("scene custom events=%q; expected [c1 c3 c2]", got)
	}
	expected := []string{"s1__L0", "s1a__L0", "s1t__L1"}
	if got := variableIDs(payload.Variables); !reflect.DeepEqual(got, expected) {
		t.Errorf("scene variables=%q; expected %q", got, expected)
	}
}

func TestScriptClosureWithoutCalls(t *testing.T) {
	p := fixtureProject()
	payload := ScriptClosure(p, script(textEvent("e", "hi")))
	if payload.CustomEvents != nil || payload.Variables != nil {
		t.Errorf("ScriptClosure() closure=%+v; expected empty", payload.Closure)
	}
}

func TestMetaspritesCopy(t *testing.T) {
	p := fixtureProject()

	payload := MetaspritesCopy(p, []string{"m1", "missing"})
	if len(payload.Metasprites) != 1 {
		t.Fatalf("len(Metasprites)=%d; expected 1", len(payload.Metasprites))
	}
	var tileIDs []string
	for _, tile := range payload.MetaspriteTiles {
		tileIDs = append(tileIDs, tile.ID)
	}
	if !reflect.DeepEqual(tileIDs, []string{"t1", "t2"}) {
		t.Errorf("tiles=%q; expected [t1 t2]", tileIDs)
	}

	tiles := MetaspriteTilesCopy(p, []string{"t2", "nope"})
	if len(tiles.MetaspriteTiles) != 1 || tiles.MetaspriteTiles[0].ID != "t2" {
		t.Errorf("MetaspriteTilesCopy()=%+v; expected only t2", tiles.MetaspriteTiles)
	}
}
