package verdant

import (
	"fmt"
	"testing"

	"github.com/verdant-ui/verdant/pkg/dom/memdom"
)

// Two writes in one turn enqueue the reaction twice; both deferred runs
// observe the final values.
func TestDeferredRunsSeeFinalState(t *testing.T) {
	state := Wrap(map[string]any{"x": 1, "y": 1})

	var log []string
	dispose := RegisterReaction(func() {
		log = append(log, fmt.Sprintf("%v,%v", state.Get("x"), state.Get("y")))
	})
	defer dispose()
	log = nil

	state.Set("x", 2)
	state.Set("y", 2)
	Flush()

	if len(log) != 2 || log[0] != "2,2" || log[1] != "2,2" {
		t.Errorf("log = %v, want [2,2 2,2]", log)
	}
}

func TestIneffectiveWriteDoesNotSchedule(t *testing.T) {
	state := Wrap(map[string]any{"x": 1})

	runs := 0
	dispose := RegisterReaction(func() {
		_ = state.Get("x")
		runs++
	})
	defer dispose()

	state.Set("x", 1)
	Flush()

	if runs != 1 {
		t.Errorf("runs = %d, want 1 (registration only)", runs)
	}
}

func TestMountLifecycle(t *testing.T) {
	doc := memdom.New()
	doc.AfterDispatch = Flush
	container := doc.CreateElement("div").(*memdom.Node)

	state := Wrap(map[string]any{"count": 0})
	inst := Mount(func(Props) *VNode {
		return H("p", nil, Textf("count: %v", state.Get("count")))
	}, container)

	if got := container.InnerHTML(); got != "<p>count: 0</p>" {
		t.Fatalf("initial html = %s", got)
	}

	state.Set("count", 1)
	Flush()
	if got := container.InnerHTML(); got != "<p>count: 1</p>" {
		t.Errorf("html after flush = %s", got)
	}

	inst.Unmount()
	if got := container.InnerHTML(); got != "" {
		t.Errorf("html after unmount = %s", got)
	}
}

func TestUntrackedReadDoesNotSubscribe(t *testing.T) {
	state := Wrap(map[string]any{"seen": 1, "hidden": 1})

	runs := 0
	dispose := RegisterReaction(func() {
		_ = state.Get("seen")
		Untracked(func() {
			_ = state.Get("hidden")
		})
		runs++
	})
	defer dispose()

	state.Set("hidden", 2)
	Flush()
	if runs != 1 {
		t.Errorf("runs = %d after untracked-key write, want 1", runs)
	}

	state.Set("seen", 2)
	Flush()
	if runs != 2 {
		t.Errorf("runs = %d after tracked-key write, want 2", runs)
	}
}
