package observe

import "sync"

// entry is one dependency-registry slot: the set of reactions that
// read a particular property of a particular object. Entries are
// created lazily on first tracked read and live as long as the object.
//
// The index is bidirectional: subscribing records the entry on the
// reaction as well, so re-tracking and disposal can walk backwards and
// remove the reaction from every set it joined. Registry entries
// therefore never retain disposed reactions.
type entry struct {
	key string

	mu   sync.Mutex
	subs []*Reaction
}

// subscribe adds a reaction to this entry's set, deduplicated by ID,
// and records the membership on the reaction.
func (e *entry) subscribe(r *Reaction) {
	if r == nil {
		return
	}

	e.mu.Lock()
	rid := r.id
	for _, existing := range e.subs {
		if existing.id == rid {
			e.mu.Unlock()
			return
		}
	}
	e.subs = append(e.subs, r)
	e.mu.Unlock()

	r.joined(e)
}

// unsubscribe removes a reaction from this entry's set.
func (e *entry) unsubscribe(r *Reaction) {
	if r == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, existing := range e.subs {
		if existing.id == r.id {
			// Swap with last element; set order within an entry is
			// implementation-defined.
			e.subs[i] = e.subs[len(e.subs)-1]
			e.subs = e.subs[:len(e.subs)-1]
			return
		}
	}
}

// scheduleAll enqueues every current subscriber. One enqueue per
// subscriber per call; the scheduler does not coalesce.
func (e *entry) scheduleAll() {
	e.mu.Lock()
	subs := make([]*Reaction, len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, r := range subs {
		schedule(r)
	}
}

// size returns the current subscriber count. Used by tests.
func (e *entry) size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
