package consumer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/scope"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	mu     sync.Mutex
	calls  int
	input  indexing.IndexInput
	userID string
	err    error
	// errs is consumed one per call before err applies.
	errs []error
}

func (f *fakeUseCase) Index(ctx context.Context, in indexing.IndexInput) (indexing.IndexOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.input = in
	f.userID = scope.GetScopeFromContext(ctx).UserID
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return indexing.IndexOutput{Tweets: 1}, err
	}
	return indexing.IndexOutput{Tweets: 1}, f.err
}

func (f *fakeUseCase) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestConsumer(uc indexing.UseCase) *consumer {
	return &consumer{
		l:               log.NewNop(),
		topic:           "tweets.chunks.ready",
		uc:              uc,
		retryBackoff:    time.Millisecond,
		maxRetryBackoff: 4 * time.Millisecond,
	}
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

func (s *fakeSession) markedOffsets() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.marked...)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func claimOf(msgs ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func messageAt(offset int64, value string) *sarama.ConsumerMessage {
	m := message(value)
	m.Offset = offset
	return m
}

func message(value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Topic: "tweets.chunks.ready", Value: []byte(value)}
}

func TestHandleChunksReadyMessage(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(uc)

	err := c.handleChunksReadyMessage(context.Background(), message(
		`{"run_id":"r1","object_key":"2024-05-02/cdc-chunks.json","bucket":"cdc-tweets","chunk_count":3,"ingestion_date":"2024-05-02"}`,
	))
	require.NoError(t, err)
	assert.Equal(t, indexing.IndexInput{
		RunID:         "r1",
		Bucket:        "cdc-tweets",
		ObjectKey:     "2024-05-02/cdc-chunks.json",
		ChunkCount:    3,
		IngestionDate: "2024-05-02",
	}, uc.input)
	assert.Equal(t, "system", uc.userID)
}

func TestHandleChunksReadyMessage_SkipsMalformed(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(uc)

	assert.NoError(t, c.handleChunksReadyMessage(context.Background(), message("{")))
	assert.NoError(t, c.handleChunksReadyMessage(context.Background(), message(`{"run_id":"r1"}`)))
	assert.Zero(t, uc.calls)
}

func TestHandleChunksReadyMessage_UseCaseError(t *testing.T) {
	uc := &fakeUseCase{err: indexing.ErrFileDownloadFailed}
	err := newTestConsumer(uc).handleChunksReadyMessage(context.Background(), message(`{"bucket":"b","object_key":"k"}`))
	assert.True(t, errors.Is(err, indexing.ErrFileDownloadFailed))
}

func TestProcessWithRetry_RetriesTransientErrors(t *testing.T) {
	uc := &fakeUseCase{errs: []error{
		indexing.ErrFileDownloadFailed,
		fmt.Errorf("1 of 2 tweets failed: %w", indexing.ErrUpsertFailed),
	}}
	c := newTestConsumer(uc)

	ok := c.processWithRetry(context.Background(), message(`{"bucket":"b","object_key":"k"}`))
	assert.True(t, ok)
	assert.Equal(t, 3, uc.callCount())
}

func TestProcessWithRetry_DropsPermanentErrors(t *testing.T) {
	for _, err := range []error{indexing.ErrFileNotFound, indexing.ErrFileParseFailed, indexing.ErrInvalidInput} {
		uc := &fakeUseCase{err: err}
		ok := newTestConsumer(uc).processWithRetry(context.Background(), message(`{"bucket":"b","object_key":"k"}`))
		assert.True(t, ok, err)
		assert.Equal(t, 1, uc.callCount(), err)
	}
}

func TestProcessWithRetry_StopsOnCancel(t *testing.T) {
	uc := &fakeUseCase{err: indexing.ErrEmbedFailed}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := newTestConsumer(uc).processWithRetry(ctx, message(`{"bucket":"b","object_key":"k"}`))
	assert.False(t, ok)
	assert.Equal(t, 1, uc.callCount())
}

func TestConsumeClaim_MarksOnlyAfterIndexing(t *testing.T) {
	uc := &fakeUseCase{errs: []error{indexing.ErrUpsertFailed}}
	h := &chunksReadyHandler{consumer: newTestConsumer(uc)}
	session := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(session, claimOf(
		messageAt(10, `{"bucket":"b","object_key":"k1"}`),
		messageAt(11, "{"),
		messageAt(12, `{"bucket":"b","object_key":"k2"}`),
	))
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12}, session.markedOffsets())
	assert.Equal(t, 3, uc.callCount())
}

func TestConsumeClaim_LeavesFailingBatchUnmarked(t *testing.T) {
	uc := &fakeUseCase{err: indexing.ErrEmbedFailed}
	h := &chunksReadyHandler{consumer: newTestConsumer(uc)}
	ctx, cancel := context.WithCancel(context.Background())
	session := &fakeSession{ctx: ctx}

	done := make(chan error, 1)
	go func() {
		done <- h.ConsumeClaim(session, claimOf(
			messageAt(20, `{"bucket":"b","object_key":"k1"}`),
			messageAt(21, `{"bucket":"b","object_key":"k2"}`),
		))
	}()

	require.Eventually(t, func() bool { return uc.callCount() >= 2 }, time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ConsumeClaim did not return after cancel")
	}

	assert.Empty(t, session.markedOffsets())
	assert.Equal(t, "k1", uc.input.ObjectKey)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop()})
	assert.Error(t, err)
	_, err = New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}})
	assert.Error(t, err)
}
