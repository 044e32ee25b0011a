package vtest

import (
	"strings"
	"testing"

	"github.com/verdant-ui/verdant/pkg/component"
	"github.com/verdant-ui/verdant/pkg/dom"
	"github.com/verdant-ui/verdant/pkg/dom/memdom"
	"github.com/verdant-ui/verdant/pkg/observe"
	"github.com/verdant-ui/verdant/pkg/vdom"
)

// Harness is a component mounted into a fresh in-memory document.
type Harness struct {
	Doc       *memdom.Document
	Container *memdom.Node
	Instance  *component.Instance
}

// Mount mounts fn into a fresh in-memory document whose event dispatch
// flushes the deferred scheduler, and unmounts it on test cleanup.
func Mount(t *testing.T, fn vdom.Func, opts ...component.Option) *Harness {
	t.Helper()

	doc := memdom.New()
	doc.AfterDispatch = observe.Flush
	container := doc.CreateElement("div").(*memdom.Node)

	inst := component.Mount(fn, container, opts...)
	t.Cleanup(inst.Unmount)

	return &Harness{Doc: doc, Container: container, Instance: inst}
}

// Flush drains the deferred reaction queue.
func (h *Harness) Flush() {
	observe.Flush()
}

// HTML returns the serialized contents of the container.
func (h *Harness) HTML() string {
	return h.Container.InnerHTML()
}

// Dispatch sends an event to the given node and, through the
// document's AfterDispatch hook, flushes the deferred queue.
func (h *Harness) Dispatch(n dom.Node, ev dom.Event) {
	n.DispatchEvent(ev)
}

// ExpectContains fails the test when the rendered output does not
// contain want.
func ExpectContains(t *testing.T, h *Harness, want string) {
	t.Helper()
	if got := h.HTML(); !strings.Contains(got, want) {
		t.Errorf("rendered output missing %q:\n%s", want, got)
	}
}

// ExpectNotContains fails the test when the rendered output contains
// unwanted.
func ExpectNotContains(t *testing.T, h *Harness, unwanted string) {
	t.Helper()
	if got := h.HTML(); strings.Contains(got, unwanted) {
		t.Errorf("rendered output unexpectedly contains %q:\n%s", unwanted, got)
	}
}
