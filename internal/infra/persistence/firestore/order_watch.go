package firestore

import (
	"context"
	"sync"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// orderWatch rides on a Firestore snapshot listener and delivers coalesced
// full snapshots: if the consumer lags, only the latest snapshot is kept.
type orderWatch struct {
	events    chan repository.OrderSnapshot
	pending   chan repository.OrderSnapshot
	done      chan struct{}
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once

	mu  sync.Mutex
	err error
}

func newOrderWatch(query firestore.Query) *orderWatch {
	// The watch lifetime is governed by Close, not by the request that
	// opened it.
	ctx, cancel := context.WithCancel(context.Background())

	watch := &orderWatch{
		events:  make(chan repository.OrderSnapshot),
		pending: make(chan repository.OrderSnapshot, 1),
		done:    make(chan struct{}),
		cancel:  cancel,
	}

	watch.wg.Add(2)
	go watch.listen(ctx, query)
	go watch.pump()

	return watch
}

func (w *orderWatch) listen(ctx context.Context, query firestore.Query) {
	defer w.wg.Done()

	iter := query.Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if status.Code(err) != codes.Canceled {
				w.setErr(mapStoreError(err, repository.ErrOrderNotFound))
			}
			close(w.done)

			return
		}

		orders, err := collectOrders(snap.Documents)
		if err != nil {
			if status.Code(err) != codes.Canceled {
				w.setErr(err)
			}
			close(w.done)

			return
		}

		w.push(repository.OrderSnapshot{Orders: orders})
	}
}

func collectOrders(docs *firestore.DocumentIterator) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)
	for {
		snap, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return nil, err
			}

			return nil, mapStoreError(err, repository.ErrOrderNotFound)
		}

		order, err := decodeOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (w *orderWatch) pump() {
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

// push never blocks the listener: it replaces any undelivered snapshot.
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

func (w *orderWatch) setErr(err error) {
	w.mu.Lock()
	w.err = err
	w.mu.Unlock()
}

func (w *orderWatch) Events() <-chan repository.OrderSnapshot {
	return w.events
}

func (w *orderWatch) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

// Close is synchronous: after it returns no further event is delivered.
func (w *orderWatch) Close() {
	w.closeOnce.Do(w.cancel)
	w.wg.Wait()
}
