package mock

import "github.com/fwojciec/websum"

var _ websum.Reducer = (*Reducer)(nil)

// Reducer is a mock implementation of websum.Reducer.
type Reducer struct {
	ReduceFn func(html string) (*websum.ReducedContent, error)
}

func (r *Reducer) Reduce(html string) (*websum.ReducedContent, error) {
	return r.ReduceFn(html)
}
