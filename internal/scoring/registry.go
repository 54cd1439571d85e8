package scoring

import (
	"sync/atomic"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

type scorerHolder struct {
	scorer Scorer
}

// Registry holds the active scorer behind an atomically swappable reference.
// Reloading a model replaces the reference without blocking readers.
type Registry struct {
	active atomic.Pointer[scorerHolder]
}

// NewRegistry creates an empty registry. Scoring fails with
// domain.ErrModelUnavailable until a scorer is swapped in.
func NewRegistry() *Registry {
	return &Registry{}
}

// Active returns the current scorer, or domain.ErrModelUnavailable.
func (r *Registry) Active() (Scorer, error) {
	h := r.active.Load()
	if h == nil || h.scorer == nil {
		return nil, domain.ErrModelUnavailable
	}
	return h.scorer, nil
}

// Swap installs scorer as the active model. Passing nil unloads the model.
func (r *Registry) Swap(scorer Scorer) {
	if scorer == nil {
		r.active.Store(nil)
		return
	}
	r.active.Store(&scorerHolder{scorer: scorer})
}
