package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	mu   sync.Mutex
	seen []uuid.UUID
	done chan struct{}
	want int
}

func (s *stubRunner) Run(_ context.Context, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, jobID)
	if len(s.seen) == s.want {
		close(s.done)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseQueueRunsEveryJob(t *testing.T) {
	runner := &stubRunner{done: make(chan struct{}), want: 5}
	q := NewParseQueue(runner, discardLogger(), WithWorkers(2), WithQueueSize(8))

	ids := make(map[uuid.UUID]bool)
	for i := 0; i < 5; i++ {
		id := uuid.New()
		ids[id] = true
		require.NoError(t, q.Enqueue(context.Background(), Job{JobID: id, SubmittedAt: time.Now()}))
	}

	select {
	case <-runner.done:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs did not finish in time")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.Len(t, runner.seen, 5)
	for _, id := range runner.seen {
		assert.True(t, ids[id], "unexpected job id %s", id)
	}
}

func TestParseQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	runner := &stubRunner{done: make(chan struct{}), want: 1}
	q := NewParseQueue(runner, discardLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.Empty(t, runner.seen)
}

func TestParseQueueShutdownTwice(t *testing.T) {
	runner := &stubRunner{done: make(chan struct{}), want: 1}
	q := NewParseQueue(runner, discardLogger(), WithWorkers(1))

	ctx := context.Background()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
