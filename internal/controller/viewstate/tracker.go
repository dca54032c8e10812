package viewstate

import (
	"context"
	"sync"
)

// Ticket identifies one dispatched request. Only the latest ticket of a tracker may write state.
type Ticket struct {
	gen   uint64
	epoch uint64
}

// Tracker hands out monotonically increasing generation ids. Invalidate also
// starts a new epoch, so work begun before it cannot resume. The zero value is ready to use.
type Tracker struct {
	mu      sync.Mutex
	current uint64
	epoch   uint64
}

func (t *Tracker) Begin() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.next()
}

// Current returns the latest ticket without superseding it. Background readers
// use it so that they never displace a request issued by the user.
func (t *Tracker) Current() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Ticket{gen: t.current, epoch: t.epoch}
}

// Resume issues a new ticket only if no Invalidate happened since base was taken.
func (t *Tracker) Resume(base Ticket) (Ticket, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if base.epoch != t.epoch {
		return Ticket{}, false
	}
	return t.next(), true
}

// Apply runs fn only if ticket is still the latest one. fn runs under the tracker
// lock, so a concurrent Begin or Invalidate waits for it to finish.
func (t *Tracker) Apply(ticket Ticket, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ticket.gen != t.current || ticket.epoch != t.epoch {
		return false
	}
	fn()
	return true
}

// Invalidate supersedes every ticket issued so far.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current++
	t.epoch++
}

func (t *Tracker) next() Ticket {
	t.current++
	return Ticket{gen: t.current, epoch: t.epoch}
}

// Fetch loads a value under a fresh ticket and hands it to apply unless a newer
// request was issued meanwhile. A failed fetch applies nothing.
func Fetch[T any](
	ctx context.Context,
	tracker *Tracker,
	fetch func(context.Context) (T, error),
	apply func(T),
) (bool, error) {
	return load(ctx, tracker, tracker.Begin(), fetch, apply)
}

// FetchSince is Fetch for follow-up loads: nothing is fetched when the tracker was
// invalidated after base was taken.
func FetchSince[T any](
	ctx context.Context,
	tracker *Tracker,
	base Ticket,
	fetch func(context.Context) (T, error),
	apply func(T),
) (bool, error) {
	ticket, ok := tracker.Resume(base)
	if !ok {
		return false, nil
	}
	return load(ctx, tracker, ticket, fetch, apply)
}

func load[T any](
	ctx context.Context,
	tracker *Tracker,
	ticket Ticket,
	fetch func(context.Context) (T, error),
	apply func(T),
) (bool, error) {
	value, err := fetch(ctx)
	if err != nil {
		return false, err
	}

	return tracker.Apply(ticket, func() { apply(value) }), nil
}
