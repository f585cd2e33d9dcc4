package script

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/tenon/pkg/plan"
)

// EvalTimeout is the maximum wall-clock time a single evaluation may take
// before it is abandoned. Runaway user loops surface as errors instead of
// hanging the caller.
const EvalTimeout = 5 * time.Second

// evalOutcome carries the result of an evaluation goroutine.
type evalOutcome struct {
	plan   *plan.Plan
	errors []EvalError
	err    error
}

// waitWithTimeout waits for an evaluation result, a timeout, or
// supersession by a newer request. The generation counter detects staleness:
// if another Evaluate call started while this one was still running, this
// result is discarded.
func waitWithTimeout(ch <-chan evalOutcome, gen uint64, mu *sync.Mutex, current *uint64) (*plan.Plan, []EvalError, error) {
	select {
	case out := <-ch:
		mu.Lock()
		stale := gen != *current
		mu.Unlock()
		if stale {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return out.plan, out.errors, out.err

	case <-time.After(EvalTimeout):
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
