package scoring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

func TestRegistry_Active_NoModelLoaded(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Active()

	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestRegistry_SwapActivatesScorer(t *testing.T) {
	registry := NewRegistry()
	scorer := NewLogisticScorer("1.0.0", 0, nil)

	registry.Swap(scorer)

	active, err := registry.Active()
	assert.NoError(t, err)
	assert.Equal(t, "1.0.0", active.Version())
}

func TestRegistry_SwapReplacesScorer(t *testing.T) {
	registry := NewRegistry()
	registry.Swap(NewLogisticScorer("1.0.0", 0, nil))
	registry.Swap(NewLogisticScorer("1.1.0", 0, nil))

	active, err := registry.Active()
	assert.NoError(t, err)
	assert.Equal(t, "1.1.0", active.Version())
}

func TestRegistry_SwapNilUnloads(t *testing.T) {
	registry := NewRegistry()
	registry.Swap(NewLogisticScorer("1.0.0", 0, nil))

	registry.Swap(nil)

	_, err := registry.Active()
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestRegistry_ConcurrentSwapAndActive(t *testing.T) {
	registry := NewRegistry()
	registry.Swap(NewLogisticScorer("1.0.0", 0, nil))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Swap(NewLogisticScorer("2.0.0", 0, nil))
		}()
		go func() {
			defer wg.Done()
			if active, err := registry.Active(); err == nil {
				assert.NotEmpty(t, active.Version())
			}
		}()
	}
	wg.Wait()
}
