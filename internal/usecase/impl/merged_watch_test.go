package impl

import (
	"sync"
	"testing"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWatch is a channel-backed watch source for driving mergedWatch.
type stubWatch struct {
	events    chan repository.OrderSnapshot
	err       error
	closeOnce sync.Once
	closed    bool
}

func newStubWatch() *stubWatch {
	return &stubWatch{events: make(chan repository.OrderSnapshot, 4)}
}

func (w *stubWatch) Events() <-chan repository.OrderSnapshot { return w.events }
func (w *stubWatch) Err() error                              { return w.err }

func (w *stubWatch) Close() {
	w.closeOnce.Do(func() {
		w.closed = true
		close(w.events)
	})
}

// fail closes the source the way a broken stream would, error set first.
func (w *stubWatch) fail(err error) {
	w.err = err
	w.closeOnce.Do(func() { close(w.events) })
}

func receiveMerged(t *testing.T, watch repository.OrderWatch) repository.OrderSnapshot {
	t.Helper()

	select {
	case snapshot, ok := <-watch.Events():
		require.True(t, ok, "watch closed before delivering a snapshot")

		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")

		return repository.OrderSnapshot{}
	}
}

func TestMergedWatch_UnionsSourcesNewestFirst(t *testing.T) {
	poolSource := newStubWatch()
	boundSource := newStubWatch()
	watch := newMergedWatch([]repository.OrderWatch{poolSource, boundSource})
	defer watch.Close()

	now := time.Now()
	older := &entity.Order{ID: uuid.New(), Status: entity.StatusReadyForPickup, CreatedAt: now.Add(-time.Minute)}
	newer := &entity.Order{ID: uuid.New(), Status: entity.StatusPickedUp, CreatedAt: now}

	poolSource.events <- repository.OrderSnapshot{Orders: []*entity.Order{older}}

	snapshot := receiveMerged(t, watch)
	require.Len(t, snapshot.Orders, 1)
	assert.Equal(t, older.ID, snapshot.Orders[0].ID)

	// The second source contributes its own snapshot plus an overlap; the
	// union carries each order once, newest first.
	boundSource.events <- repository.OrderSnapshot{Orders: []*entity.Order{newer, older}}

	for {
		snapshot = receiveMerged(t, watch)
		if len(snapshot.Orders) == 2 {
			break
		}
	}
	assert.Equal(t, newer.ID, snapshot.Orders[0].ID)
	assert.Equal(t, older.ID, snapshot.Orders[1].ID)
}

func TestMergedWatch_CloseClosesSources(t *testing.T) {
	first := newStubWatch()
	second := newStubWatch()
	watch := newMergedWatch([]repository.OrderWatch{first, second})

	watch.Close()

	assert.True(t, first.closed)
	assert.True(t, second.closed)

	_, ok := <-watch.Events()
	assert.False(t, ok)
	assert.NoError(t, watch.Err())
}

func TestMergedWatch_SourceFailureSurfacesInErr(t *testing.T) {
	healthy := newStubWatch()
	broken := newStubWatch()
	watch := newMergedWatch([]repository.OrderWatch{healthy, broken})
	defer watch.Close()

	streamErr := errors.New("listen stream broke")
	broken.fail(streamErr)

	require.Eventually(t, func() bool {
		return watch.Err() != nil
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, streamErr, watch.Err())
}
