package impl

import (
	"sort"
	"sync"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"github.com/google/uuid"
)

// mergedWatch combines several underlying watches into one stream. Each
// delivered snapshot is the deduplicated union of the latest snapshot from
// every source, so a rider's pool view and bound-order view arrive as one
// coherent feed.
type mergedWatch struct {
	sources   []repository.OrderWatch
	events    chan repository.OrderSnapshot
	pending   chan repository.OrderSnapshot
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once

	mu     sync.Mutex
	latest []repository.OrderSnapshot
	err    error
}

func newMergedWatch(sources []repository.OrderWatch) repository.OrderWatch {
	w := &mergedWatch{
		sources: sources,
		events:  make(chan repository.OrderSnapshot),
		pending: make(chan repository.OrderSnapshot, 1),
		done:    make(chan struct{}),
		latest:  make([]repository.OrderSnapshot, len(sources)),
	}

	w.wg.Add(len(sources) + 1)
	for i, source := range sources {
		go w.consume(i, source)
	}
	go w.pump()

	return w
}

func (w *mergedWatch) consume(index int, source repository.OrderWatch) {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case snapshot, ok := <-source.Events():
			if !ok {
				if err := source.Err(); err != nil {
					w.mu.Lock()
					if w.err == nil {
						w.err = err
					}
					w.mu.Unlock()
				}

				return
			}
			w.push(w.merge(index, snapshot))
		}
	}
}

// merge records one source's latest snapshot and returns the union.
func (w *mergedWatch) merge(index int, snapshot repository.OrderSnapshot) repository.OrderSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.latest[index] = snapshot

	seen := make(map[uuid.UUID]struct{})
	orders := make([]*entity.Order, 0)
	for _, source := range w.latest {
		for _, order := range source.Orders {
			if _, ok := seen[order.ID]; ok {
				continue
			}
			seen[order.ID] = struct{}{}
			orders = append(orders, order)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return repository.OrderSnapshot{Orders: orders}
}

func (w *mergedWatch) pump() {
	defer w.wg.Done()
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return
		case snapshot := <-w.pending:
			select {
			case w.events <- snapshot:
			case <-w.done:
				return
			}
		}
	}
}

// push never blocks a consumer goroutine: it replaces any undelivered
// snapshot.
func (w *mergedWatch) push(snapshot repository.OrderSnapshot) {
	for {
		select {
		case w.pending <- snapshot:
			return
		default:
			select {
			case <-w.pending:
			default:
			}
		}
	}
}

func (w *mergedWatch) Events() <-chan repository.OrderSnapshot {
	return w.events
}

func (w *mergedWatch) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

// Close is synchronous: after it returns no further event is delivered.
func (w *mergedWatch) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		for _, source := range w.sources {
			source.Close()
		}
	})
	w.wg.Wait()
}
