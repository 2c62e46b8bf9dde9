package authorizer

import (
	"time"

	"github.com/AlexZinkM/walletguard/internal/metrics"

	"github.com/patrickmn/go-cache"
)

// Registry keeps live authorizers by intent ID. Entries not touched within
// the idle timeout are evicted and cancelled.
type Registry struct {
	items *cache.Cache
}

func NewRegistry(idle time.Duration) *Registry {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	c := cache.New(idle, idle/2)
	c.OnEvicted(func(_ string, v interface{}) {
		metrics.ActiveIntents.Dec()
		v.(*Authorizer).Expire()
	})
	return &Registry{items: c}
}

func (r *Registry) Put(a *Authorizer) {
	if err := r.items.Add(a.Intent().ID, a, cache.DefaultExpiration); err == nil {
		metrics.ActiveIntents.Inc()
		return
	}
	r.items.SetDefault(a.Intent().ID, a)
}

// Get returns the authorizer and slides its expiry.
func (r *Registry) Get(id string) (*Authorizer, bool) {
	v, ok := r.items.Get(id)
	if !ok {
		return nil, false
	}
	a := v.(*Authorizer)
	r.items.SetDefault(id, a)
	return a, true
}

// Remove drops the entry, cancelling it if it is still pending.
func (r *Registry) Remove(id string) {
	r.items.Delete(id)
}
