package memory

import (
	"sync"

	"quickbite/internal/domain/repository"
)

// orderWatch delivers coalesced full snapshots: if the consumer lags, only
// the latest snapshot is kept, which full-snapshot semantics allow.
type orderWatch struct {
	filter     repository.OrderFilter
	events     chan repository.OrderSnapshot
	pending    chan repository.OrderSnapshot
	done       chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
	unregister func()
}

func newOrderWatch(filter repository.OrderFilter) *orderWatch {
	watch := &orderWatch{
		filter:  filter,
		events:  make(chan repository.OrderSnapshot),
		pending: make(chan repository.OrderSnapshot, 1),
		done:    make(chan struct{}),
	}

	watch.wg.Add(1)
	go watch.run()

	return watch
}

func (w *orderWatch) run() {
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

// push never blocks the store: it replaces any undelivered snapshot.
func (w *orderWatch) push(snapshot repository.OrderSnapshot) {
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

func (w *orderWatch) Events() <-chan repository.OrderSnapshot {
	return w.events
}

func (w *orderWatch) Err() error {
	return nil
}

// Close is synchronous: after it returns no further event is delivered.
func (w *orderWatch) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		if w.unregister != nil {
			w.unregister()
		}
	})
	w.wg.Wait()
}
