// Package store keeps the state behind each screen: a source collection,
// the current search inputs and the filtered view derived from them.
// Observers subscribe to state snapshots instead of reading globals.
package store

import (
	"errors"
	"sync"
)

var ErrDuplicateID = errors.New("duplicate identifier in collection")

type Listener[S any] func(S)

// Observable fans state snapshots out to subscribers.
type Observable[S any] struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener[S]
}

// Subscribe registers fn and returns a function that removes it.
func (o *Observable[S]) Subscribe(fn Listener[S]) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.listeners == nil {
		o.listeners = make(map[int]Listener[S])
	}
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// Publish delivers state to every current subscriber, outside any lock.
func (o *Observable[S]) Publish(state S) {
	o.mu.Lock()
	listeners := make([]Listener[S], 0, len(o.listeners))
	for _, l := range o.listeners {
		listeners = append(listeners, l)
	}
	o.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

type keyed interface {
	Key() string
}

func checkUnique[T keyed](items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.Key()]; ok {
			return ErrDuplicateID
		}
		seen[item.Key()] = struct{}{}
	}
	return nil
}
