package scenario

import (
	"context"

	"github.com/katalvlaran/wdm/rsa"
)

// Outcome is the result of one scenario request.
type Outcome struct {
	Op        string
	Request   Request
	Responses []rsa.Response // one for serve, one per strategy for compare
	Freed     rsa.Route      // route released by a free request
	Reached   []rsa.Reach    // nodes found by a reachable request
	Err       error          // free and reachable failures only
}

// Run plays f.Requests against s in file order. Runs of consecutive serve
// requests go through ServeBatch with the given worker count. A wavelength
// outside the session's range fails the run before any request is played.
// Otherwise only context or pool errors abort the run; per-request failures
// are kept in the outcomes.
func Run(ctx context.Context, s *rsa.Session, f *File, workers int) ([]Outcome, error) {
	if err := f.CheckWavelengths(s.Wavelengths()); err != nil {
		return nil, err
	}
	out := make([]Outcome, 0, len(f.Requests))

	var pending []Request
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		reqs := make([]rsa.Request, len(pending))
		for i, r := range pending {
			reqs[i] = r.toRSA()
		}
		resps, err := s.ServeBatch(ctx, reqs, workers)
		if err != nil {
			return err
		}
		for i, resp := range resps {
			out = append(out, Outcome{Op: OpServe, Request: pending[i], Responses: []rsa.Response{resp}})
		}
		pending = pending[:0]

		return nil
	}

	for _, r := range f.Requests {
		if r.op() == OpServe {
			pending = append(pending, r)
			continue
		}
		if err := flush(); err != nil {
			return out, err
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}
		switch r.op() {
		case OpCompare:
			resps := s.Compare(r.Source, r.Destination, r.Slots, r.Wavelength, r.NonContiguous)
			out = append(out, Outcome{Op: OpCompare, Request: r, Responses: resps})
		case OpFree:
			route, err := s.FreeRoute(r.Source, r.Destination, r.Wavelength)
			out = append(out, Outcome{Op: OpFree, Request: r, Freed: route, Err: err})
		case OpReachable:
			q := rsa.ReachQuery{MaxHops: r.Hops, Slots: r.Slots, Wavelength: r.Wavelength}
			reached, err := s.Reachable(ctx, r.Source, q)
			out = append(out, Outcome{Op: OpReachable, Request: r, Reached: reached, Err: err})
		}
	}
	if err := flush(); err != nil {
		return out, err
	}

	return out, nil
}
