package rsa

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// DefaultBatchWorkers is used when ServeBatch is given workers ≤ 0.
const DefaultBatchWorkers = 4

// ServeBatch serves reqs in two phases while holding the write lock:
//
//  1. Route every request concurrently on an ants pool. Searches only read
//     the topology, which cannot change while the lock is held.
//  2. Allocate serially in request order, so the outcome equals calling
//     Serve for each request in turn.
//
// If ctx is cancelled before phase 2 starts no allocation is made and
// ctx.Err() is returned. reqs itself is never modified.
func (s *Session) ServeBatch(ctx context.Context, reqs []Request, workers int) ([]Response, error) {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("rsa: batch pool: %w", err)
	}
	defer pool.Release()

	s.mu.Lock()
	defer s.mu.Unlock()

	reqs = slices.Clone(reqs)
	routes := make([]Route, len(reqs))
	errs := make([]error, len(reqs))
	var wg sync.WaitGroup
	for i := range reqs {
		if reqs[i].ID == "" {
			reqs[i].ID = uuid.NewString()
		}
		if err = ctx.Err(); err != nil {
			break
		}
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			routes[i], errs[i] = s.computePathLocked(reqs[i].Source, reqs[i].Destination, reqs[i].Strategy)
		}); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("rsa: batch routing: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Response, len(reqs))
	placed := 0
	for i, req := range reqs {
		out[i] = s.finishLocked(req, routes[i], errs[i])
		if out[i].Err == nil {
			placed++
		}
	}
	s.log.WithFields(logrus.Fields{"requests": len(reqs), "placed": placed, "workers": workers}).Info("batch served")

	return out, nil
}
