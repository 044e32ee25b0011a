package observe

import "sync"

// Watcher is a whole-object listener. It receives every effective
// property write on the object it is registered with, regardless of
// which property changed. Watchers are coarser than reactions: they
// are not tracked, not scheduled, and run synchronously inside Set.
type Watcher func(key string, old, new any)

type watcherEntry struct {
	id uint64
	fn Watcher
}

// Object wraps a plain record so that property reads and writes are
// interceptable. Reads performed while a reaction is executing
// subscribe that reaction; effective writes schedule all current
// subscribers of the written property and then notify watchers.
//
// Nested values are not wrapped: storing a map inside an Object does
// not make the inner map observable. Wrap it separately if needed.
type Object struct {
	id uint64

	mu       sync.RWMutex
	values   map[string]any
	deps     map[string]*entry
	watchers []watcherEntry
}

// Wrap creates an observable object seeded with the given record.
// The record is copied; later mutations of initial are not seen.
// A nil initial creates an empty object.
func Wrap(initial map[string]any) *Object {
	values := make(map[string]any, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Object{
		id:     nextID(),
		values: values,
		deps:   make(map[string]*entry),
	}
}

// ID returns the unique identifier for this object.
func (o *Object) ID() uint64 { return o.id }

// Get returns the value of key, or nil if absent. If a reaction is
// active on this goroutine it is subscribed to (o, key) first, so a
// later effective write to key schedules it. Reading an absent key
// still subscribes: the reaction depends on the property, not on its
// presence.
func (o *Object) Get(key string) any {
	r := activeReaction()

	o.mu.Lock()
	value := o.values[key]
	var e *entry
	if r != nil {
		e = o.deps[key]
		if e == nil {
			e = &entry{key: key}
			o.deps[key] = e
		}
	}
	o.mu.Unlock()

	if e != nil {
		e.subscribe(r)
	}
	return value
}

// Peek returns the value of key without subscribing the active
// reaction.
func (o *Object) Peek(key string) any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.values[key]
}

// Has reports whether key is present, without subscribing.
func (o *Object) Has(key string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.values[key]
	return ok
}

// Set writes value to key. Writing a value identical to the current
// one (by value for primitives, by reference for composites) is a
// complete no-op: nothing is scheduled and watchers are not notified.
// Otherwise the write lands synchronously, every reaction currently
// subscribed to key is enqueued once, and watchers run.
//
// Set never fails; reaction panics during the later deferred phase do
// not surface here.
func (o *Object) Set(key string, value any) {
	o.mu.Lock()
	old := o.values[key]
	if identical(old, value) {
		o.mu.Unlock()
		return
	}
	o.values[key] = value
	e := o.deps[key]
	watchers := make([]watcherEntry, len(o.watchers))
	copy(watchers, o.watchers)
	o.mu.Unlock()

	if e != nil {
		e.scheduleAll()
	}
	for _, w := range watchers {
		w.fn(key, old, value)
	}
}

// Watch registers a whole-object listener and returns its remover.
// Watchers fire after dependent reactions have been scheduled, in
// registration order.
func (o *Object) Watch(fn Watcher) (remove func()) {
	id := nextID()

	o.mu.Lock()
	o.watchers = append(o.watchers, watcherEntry{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, w := range o.watchers {
			if w.id == id {
				o.watchers = append(o.watchers[:i], o.watchers[i+1:]...)
				return
			}
		}
	}
}

// Keys returns the property names currently present, without
// subscribing. Order is unspecified.
func (o *Object) Keys() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	keys := make([]string, 0, len(o.values))
	for k := range o.values {
		keys = append(keys, k)
	}
	return keys
}

// Snapshot returns a shallow copy of the current record, without
// subscribing.
func (o *Object) Snapshot() map[string]any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[string]any, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// dependents returns the subscriber count for key. Used by tests.
func (o *Object) dependents(key string) int {
	o.mu.RLock()
	e := o.deps[key]
	o.mu.RUnlock()
	if e == nil {
		return 0
	}
	return e.size()
}
