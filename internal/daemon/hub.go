package daemon

import (
	"sync"

	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/types"
)

type subscriberSet map[*subscriber]struct{}

// hub indexes connected subscribers by the scope they subscribed to, so a
// board event only visits the subscribers that can want it
type hub struct {
	mu       sync.RWMutex
	all      subscriberSet
	wildcard subscriberSet // zero subscription: every event
	byOrg    map[types.OrgID]subscriberSet
	byBoard  map[types.BoardID]subscriberSet
}

func newHub() *hub {
	return &hub{
		all:      subscriberSet{},
		wildcard: subscriberSet{},
		byOrg:    map[types.OrgID]subscriberSet{},
		byBoard:  map[types.BoardID]subscriberSet{},
	}
}

// add registers a subscriber with the zero subscription
func (h *hub) add(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.all[s] = struct{}{}
	h.index(s)
}

// remove unregisters s and reports whether it was registered
func (h *hub) remove(s *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.all[s]; !ok {
		return false
	}
	h.unindex(s)
	delete(h.all, s)
	return true
}

// subscribe replaces the scope of s
func (h *hub) subscribe(s *subscriber, sub events.SubscribeMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.all[s]; !ok {
		return
	}
	h.unindex(s)
	s.sub = sub
	h.index(s)
}

// recipients returns the subscribers whose scope matches e
func (h *hub) recipients(e events.Event) []*subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()

	// An event without any scope concerns everyone
	if e.OrgID == "" && e.BoardID == "" {
		return h.listLocked(h.all)
	}

	seen := make(subscriberSet)
	var out []*subscriber
	visit := func(set subscriberSet) {
		for s := range set {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			if s.sub.Matches(e) {
				out = append(out, s)
			}
		}
	}
	visit(h.wildcard)
	if e.BoardID != "" {
		visit(h.byBoard[e.BoardID])
	}
	if e.OrgID != "" {
		visit(h.byOrg[e.OrgID])
	}
	return out
}

// list returns every registered subscriber
func (h *hub) list() []*subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.listLocked(h.all)
}

func (h *hub) len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.all)
}

// drain unregisters and returns every subscriber
func (h *hub) drain() []*subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.listLocked(h.all)
	h.all = subscriberSet{}
	h.wildcard = subscriberSet{}
	h.byOrg = map[types.OrgID]subscriberSet{}
	h.byBoard = map[types.BoardID]subscriberSet{}
	return out
}

func (h *hub) listLocked(set subscriberSet) []*subscriber {
	out := make([]*subscriber, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

func (h *hub) index(s *subscriber) {
	if s.sub.OrgID == "" && s.sub.BoardID == "" {
		h.wildcard[s] = struct{}{}
		return
	}
	if s.sub.OrgID != "" {
		addTo(h.byOrg, s.sub.OrgID, s)
	}
	if s.sub.BoardID != "" {
		addTo(h.byBoard, s.sub.BoardID, s)
	}
}

func (h *hub) unindex(s *subscriber) {
	delete(h.wildcard, s)
	removeFrom(h.byOrg, s.sub.OrgID, s)
	removeFrom(h.byBoard, s.sub.BoardID, s)
}

func addTo[K comparable](m map[K]subscriberSet, k K, s *subscriber) {
	set, ok := m[k]
	if !ok {
		set = subscriberSet{}
		m[k] = set
	}
	set[s] = struct{}{}
}

func removeFrom[K comparable](m map[K]subscriberSet, k K, s *subscriber) {
	set, ok := m[k]
	if !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(m, k)
	}
}
