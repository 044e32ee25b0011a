package component

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/verdant-ui/verdant/internal/metrics"
	"github.com/verdant-ui/verdant/pkg/dom"
	"github.com/verdant-ui/verdant/pkg/observe"
	"github.com/verdant-ui/verdant/pkg/vdom"
)

var tracer = otel.Tracer("github.com/verdant-ui/verdant/pkg/component")

// Instance is a mounted component: a component function bound to a
// container, holding the most recently realized tree and its root
// handle.
type Instance struct {
	name      string
	fn        vdom.Func
	props     vdom.Props
	container dom.Node
	doc       dom.Document
	ctx       context.Context

	mu       sync.Mutex
	tree     *vdom.VNode
	root     dom.Node
	reaction *observe.Reaction
}

// Option configures a mount.
type Option func(*Instance)

// WithProps sets the props passed to the component function on every
// render.
func WithProps(props vdom.Props) Option {
	return func(in *Instance) { in.props = props }
}

// WithName names the instance in logs, metrics, and trace spans.
func WithName(name string) Option {
	return func(in *Instance) { in.name = name }
}

// WithContext sets the context used as the parent of render spans.
func WithContext(ctx context.Context) Option {
	return func(in *Instance) { in.ctx = ctx }
}

// Mount renders fn into container and returns the live instance.
// The initial render happens synchronously; afterwards the instance
// re-renders in the deferred flush whenever an observable property it
// read during its latest render changes.
func Mount(fn vdom.Func, container dom.Node, opts ...Option) *Instance {
	in := &Instance{
		name:      "component",
		fn:        fn,
		container: container,
		doc:       container.Document(),
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(in)
	}

	in.start()
	return in
}

// start registers the render reaction; its initial synchronous run
// performs the first mount. The lock is not held across Register
// because the reaction body itself locks.
func (in *Instance) start() {
	r := observe.Register(in.renderCycle)
	in.mu.Lock()
	in.reaction = r
	in.mu.Unlock()
	metrics.Mounts.Inc()
}

// Update forces a synchronous render-and-patch cycle. Unrelated
// subtrees keep their handles. After Unmount, Update performs a fresh
// mount.
func (in *Instance) Update() {
	in.mu.Lock()
	r := in.reaction
	in.mu.Unlock()

	if r == nil {
		in.start()
		return
	}
	r.Invoke()
}

// Unmount detaches the root handle from the container, disposes the
// render reaction, and clears the recorded tree so a later Update is
// treated as an initial mount. Idempotent.
func (in *Instance) Unmount() {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.reaction == nil {
		return
	}
	in.reaction.Dispose()
	in.reaction = nil

	if in.root != nil {
		in.root.Remove()
	}
	in.tree = nil
	in.root = nil
	metrics.Unmounts.Inc()
}

// Root returns the realized root handle, or nil when unmounted.
func (in *Instance) Root() dom.Node {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.root
}

// renderCycle is the reaction body: build a fresh description tree,
// then realize (first run) or patch (subsequent runs).
func (in *Instance) renderCycle() {
	_, span := tracer.Start(in.ctx, "component.render",
		trace.WithAttributes(attribute.String("component", in.name)))
	defer span.End()

	next, ok := in.render()
	if !ok {
		// Render failed; the previous tree stays untouched.
		return
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if in.tree == nil {
		root := vdom.Realize(in.doc, next)
		in.container.AppendChild(root)
		in.tree = next
		in.root = root
		span.SetAttributes(attribute.Bool("initial", true))
		return
	}

	in.root = vdom.Patch(in.doc, in.tree, next)
	in.tree = next
}

// render invokes the component function with panic isolation. A panic
// is reported here, at the render site, and no patch is attempted.
func (in *Instance) render() (tree *vdom.VNode, ok bool) {
	defer func() {
		if v := recover(); v != nil {
			metrics.RenderErrors.Inc()
			slog.Error("component render panicked",
				"component", in.name,
				"panic", v)
			tree, ok = nil, false
		}
	}()

	tree = in.fn(in.props)
	if tree == nil {
		tree = vdom.Text("")
	}
	return tree, true
}
