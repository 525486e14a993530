package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/indexing"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/internal/point"
	"tweet-insights-srv/pkg/gemini"
	"tweet-insights-srv/pkg/log"
	"tweet-insights-srv/pkg/minio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoint struct {
	point.UseCase
	mu       sync.Mutex
	upserted map[string][]model.Point
	err      error
}

func (f *fakePoint) Upsert(_ context.Context, in point.UpsertInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.upserted == nil {
		f.upserted = map[string][]model.Point{}
	}
	f.upserted[in.Collection] = append(f.upserted[in.Collection], in.Points...)
	return nil
}

type fakeEmbedding struct {
	embedding.UseCase
	err error
}

func (f *fakeEmbedding) GenerateMany(_ context.Context, in embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	if f.err != nil {
		return embedding.GenerateManyOutput{}, f.err
	}
	vectors := make([][]float32, len(in.Texts))
	for i := range in.Texts {
		vectors[i] = []float32{float32(i)}
	}
	return embedding.GenerateManyOutput{Vectors: vectors}, nil
}

// flakyEmbedding fails any request whose texts include failOn.
type flakyEmbedding struct {
	fakeEmbedding
	failOn string
}

func (f *flakyEmbedding) GenerateMany(ctx context.Context, in embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	for _, text := range in.Texts {
		if text == f.failOn {
			return embedding.GenerateManyOutput{}, errors.New("voyage")
		}
	}
	return f.fakeEmbedding.GenerateMany(ctx, in)
}

type fakeDownloader struct {
	body []byte
	req  *minio.DownloadRequest
	err  error
}

func (f *fakeDownloader) DownloadFile(_ context.Context, req *minio.DownloadRequest) (io.ReadCloser, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(bytes.NewReader(f.body)), nil
}

type fakeGemini struct {
	gemini.IGemini
	out string
	err error
}

func (f *fakeGemini) GenerateContent(_ context.Context, req gemini.GenerateRequest) (string, error) {
	if req.ResponseMimeType != gemini.MimeTypeJSON {
		return "", errors.New("expected JSON mode")
	}
	return f.out, f.err
}

func chunk(tweetID string, index int, text string) model.TweetChunk {
	return model.TweetChunk{
		ID:            fixtureChunkID(tweetID, text),
		TweetID:       tweetID,
		Text:          text,
		ChunkIndex:    index,
		CreatedAt:     time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC),
		Language:      "en",
		Username:      "cdcwatcher",
		SourceURL:     "https://twitter.com/i/web/status/" + tweetID,
		LikeCount:     4,
		IngestionDate: "2024-05-02",
	}
}

func fixtureChunkID(tweetID, text string) string {
	return tweetID + "-" + text
}

func batch(t *testing.T, chunks ...model.TweetChunk) []byte {
	t.Helper()
	data, err := json.Marshal(chunks)
	require.NoError(t, err)
	return data
}

func newTestUseCase(p *fakePoint, e embedding.UseCase, d *fakeDownloader, g *fakeGemini) indexing.UseCase {
	return New(log.NewNop(), p, e, d, g, Config{Concurrency: 2})
}

func TestIndex_Success(t *testing.T) {
	p := &fakePoint{}
	d := &fakeDownloader{body: batch(t,
		chunk("1", 1, "second"),
		chunk("1", 0, "first"),
		chunk("2", 0, "other"),
	)}
	g := &fakeGemini{out: "```json\n" + `{"sentiment":" Positive ","entities":[{"name":"CDC","url":"https://en.wikipedia.org/wiki/CDC"}]}` + "\n```"}
	uc := newTestUseCase(p, &fakeEmbedding{}, d, g)

	out, err := uc.Index(context.Background(), indexing.IndexInput{Bucket: "cdc-tweets", ObjectKey: "2024-05-02/cdc-chunks.json", ChunkCount: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Tweets)
	assert.Equal(t, 3, out.Chunks)
	assert.Equal(t, 2, out.Enriched)
	assert.Zero(t, out.Failed)
	assert.Equal(t, "2024-05-02/cdc-chunks.json", d.req.ObjectName)

	require.Len(t, p.upserted[point.CollectionTweets], 2)
	require.Len(t, p.upserted[point.CollectionTweetChunks], 3)

	var tweet1 model.Point
	for _, pt := range p.upserted[point.CollectionTweets] {
		if pt.ID == PointID("1") {
			tweet1 = pt
		}
	}
	require.NotNil(t, tweet1.Payload)
	assert.Equal(t, "first second", tweet1.Payload["text"])
	assert.Equal(t, "positive", tweet1.Payload["sentiment"])
	assert.Equal(t, "2024-05-01", tweet1.Payload["created_day"])
	assert.Equal(t, time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC).Unix(), tweet1.Payload["created_ts"])
	assert.Equal(t, []interface{}{"CDC"}, tweet1.Payload["linked_entities"])
	assert.Equal(t, []interface{}{"https://en.wikipedia.org/wiki/CDC"}, tweet1.Payload["linked_entity_urls"])

	hit := model.SearchHitFromPayload(tweet1.ID, tweet1.Payload, nil)
	assert.Equal(t, int64(4), hit.LikeCount)
	assert.Equal(t, "cdcwatcher", hit.Username)
}

func TestIndex_EnrichmentFailureStillIndexes(t *testing.T) {
	p := &fakePoint{}
	d := &fakeDownloader{body: batch(t, chunk("1", 0, "text"))}
	uc := newTestUseCase(p, &fakeEmbedding{}, d, &fakeGemini{err: errors.New("quota")})

	out, err := uc.Index(context.Background(), indexing.IndexInput{Bucket: "b", ObjectKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Tweets)
	assert.Zero(t, out.Enriched)

	payload := p.upserted[point.CollectionTweets][0].Payload
	_, hasSentiment := payload["sentiment"]
	assert.False(t, hasSentiment)
	_, hasEntities := payload["linked_entities"]
	assert.False(t, hasEntities)
}

func TestIndex_PerTweetFailuresAreCounted(t *testing.T) {
	d := &fakeDownloader{body: batch(t, chunk("1", 0, "a"), chunk("2", 0, "b"))}

	out, err := newTestUseCase(&fakePoint{}, &fakeEmbedding{err: errors.New("voyage")}, d, &fakeGemini{out: "{}"}).
		Index(context.Background(), indexing.IndexInput{Bucket: "b", ObjectKey: "k"})
	assert.ErrorIs(t, err, indexing.ErrEmbedFailed)
	assert.Equal(t, 2, out.Failed)
	assert.Zero(t, out.Tweets)

	d = &fakeDownloader{body: batch(t, chunk("1", 0, "a"))}
	out, err = newTestUseCase(&fakePoint{err: errors.New("qdrant")}, &fakeEmbedding{}, d, &fakeGemini{out: "{}"}).
		Index(context.Background(), indexing.IndexInput{Bucket: "b", ObjectKey: "k"})
	assert.ErrorIs(t, err, indexing.ErrUpsertFailed)
	assert.Equal(t, 1, out.Failed)
}

func TestIndex_PartialFailureStillIndexesTheRest(t *testing.T) {
	d := &fakeDownloader{body: batch(t, chunk("1", 0, "a"), chunk("2", 0, "b"))}
	emb := &flakyEmbedding{failOn: "b"}
	p := &fakePoint{}

	out, err := newTestUseCase(p, emb, d, &fakeGemini{out: "{}"}).
		Index(context.Background(), indexing.IndexInput{Bucket: "b", ObjectKey: "k"})
	require.Error(t, err)
	assert.ErrorIs(t, err, indexing.ErrEmbedFailed)
	assert.Contains(t, err.Error(), "1 of 2 tweets failed")
	assert.Equal(t, 1, out.Tweets)
	assert.Equal(t, 1, out.Failed)
	assert.Len(t, p.upserted[point.CollectionTweets], 1)
}

func TestIndex_BatchErrors(t *testing.T) {
	uc := newTestUseCase(&fakePoint{}, &fakeEmbedding{}, &fakeDownloader{err: errors.New("connection reset")}, &fakeGemini{})
	_, err := uc.Index(context.Background(), indexing.IndexInput{Bucket: "b", ObjectKey: "k"})
	assert.ErrorIs(t, err, indexing.ErrFileDownloadFailed)

	missing := &minio.StorageError{Code: minio.ErrCodeObjectNotFound, Message: "object not found", Operation: "download_file"}
	uc = newTestUseCase(&fakePoint{}, &fakeEmbedding{}, &fakeDownloader{err: missing}, &fakeGemini{})
	_, err = uc.Index(context.Background(), indexing.IndexInput{Bucket: "b", ObjectKey: "k"})
	assert.ErrorIs(t, err, indexing.ErrFileNotFound)

	uc = newTestUseCase(&fakePoint{}, &fakeEmbedding{}, &fakeDownloader{body: []byte("not json")}, &fakeGemini{})
	_, err = uc.Index(context.Background(), indexing.IndexInput{Bucket: "b", ObjectKey: "k"})
	assert.ErrorIs(t, err, indexing.ErrFileParseFailed)

	_, err = uc.Index(context.Background(), indexing.IndexInput{})
	assert.ErrorIs(t, err, indexing.ErrInvalidInput)
}

func TestPointID_Stable(t *testing.T) {
	assert.Equal(t, PointID("1790-abc"), PointID("1790-abc"))
	assert.NotEqual(t, PointID("1790-abc"), PointID("1790-abd"))
	assert.Len(t, PointID("x"), 36)
}

func TestParseEnrichment(t *testing.T) {
	e, err := parseEnrichment(`{"sentiment":"NEGATIVE","entities":[
		{"name":" CDC ","url":"https://en.wikipedia.org/wiki/Centers_for_Disease_Control_and_Prevention"},
		{"name":"CDC","url":"https://example.com"},
		{"name":"","url":"https://en.wikipedia.org/wiki/X"},
		{"name":"Measles","url":"https://example.com/measles"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "negative", e.Sentiment)
	assert.Equal(t, []indexing.LinkedEntity{
		{Name: "CDC", URL: "https://en.wikipedia.org/wiki/Centers_for_Disease_Control_and_Prevention"},
		{Name: "Measles"},
	}, e.Entities)

	_, err = parseEnrichment("not json")
	assert.ErrorIs(t, err, indexing.ErrEnrichFailed)
}
