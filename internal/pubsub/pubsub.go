// Package pubsub is a synchronous publish/subscribe registry. Every publish
// hands the full current value to each subscriber in subscription order.
package pubsub

import "sort"

// Subscription is a handle returned by Subscribe. Close releases it and may
// be called more than once.
type Subscription interface {
	Close()
}

// Topic fans a value out to its subscribers. The zero value is ready to use.
// A Topic is not safe for concurrent use; all calls are expected to come
// from the single UI goroutine.
type Topic[T any] struct {
	next int
	subs map[int]func(T)
}

type handle[T any] struct {
	topic *Topic[T]
	id    int
}

func (h *handle[T]) Close() {
	if h.topic == nil {
		return
	}
	delete(h.topic.subs, h.id)
	h.topic = nil
}

// Subscribe registers fn. It is not called until the next Publish; callers
// that need the current value pass it themselves (see Store.SubscribeList).
func (t *Topic[T]) Subscribe(fn func(T)) Subscription {
	if t.subs == nil {
		t.subs = make(map[int]func(T))
	}
	t.next++
	t.subs[t.next] = fn
	return &handle[T]{topic: t, id: t.next}
}

// Publish calls every subscriber with v. Subscribers added or removed during
// a publish take effect from the next one.
func (t *Topic[T]) Publish(v T) {
	if len(t.subs) == 0 {
		return
	}
	ids := make([]int, 0, len(t.subs))
	for id := range t.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, t.subs[id])
	}
	for _, fn := range fns {
		fn(v)
	}
}

// Len is the number of live subscriptions.
func (t *Topic[T]) Len() int { return len(t.subs) }
