package timezone

import "sync"

// Ref is a shared handle to a Zone. Every value that holds the same Ref sees
// ChangeTo immediately, which is how one zone switch re-zones many dates.
// A Ref is safe for concurrent use.
type Ref struct {
	zone     Zone
	watchers []func(old, updated Zone)
	mu       sync.RWMutex
}

// NewRef returns a handle holding z.
func NewRef(z Zone) *Ref {
	return &Ref{zone: z}
}

// Load returns a snapshot of the referenced zone.
func (r *Ref) Load() Zone {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.zone
}

// ChangeTo replaces every field of the referenced zone with those of z and
// notifies watchers registered with OnChange.
func (r *Ref) ChangeTo(z Zone) {
	r.mu.Lock()
	old := r.zone
	r.zone = z
	watchers := make([]func(old, updated Zone), len(r.watchers))
	copy(watchers, r.watchers)
	r.mu.Unlock()

	for _, fn := range watchers {
		fn(old, z)
	}
}

// OnChange registers fn to run after each ChangeTo.
func (r *Ref) OnChange(fn func(old, updated Zone)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watchers = append(r.watchers, fn)
}
