package usecase

import (
	"context"
	"errors"
	"testing"

	"tweet-insights-srv/internal/embedding"
	"tweet-insights-srv/internal/embedding/repository"
	"tweet-insights-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	data    map[string][]float32
	getErr  error
	saveErr error
}

func (m *memRepo) Get(_ context.Context, opt repository.GetOptions) ([]float32, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[opt.Key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return v, nil
}

func (m *memRepo) Save(_ context.Context, opt repository.SaveOptions) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[opt.Key] = opt.Vector
	return nil
}

type fakeVoyage struct {
	calls      [][]string
	inputTypes []string
	err        error
}

func (f *fakeVoyage) Embed(_ context.Context, texts []string, inputType string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	f.inputTypes = append(f.inputTypes, inputType)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t))}
	}
	return out, nil
}

func TestGenerateMany_CachesMisses(t *testing.T) {
	repo := &memRepo{data: map[string][]float32{}}
	v := &fakeVoyage{}
	uc := New(repo, v, "voyage-3", log.NewNop())
	ctx := context.Background()

	out, err := uc.GenerateMany(ctx, embedding.GenerateManyInput{Texts: []string{"a", "bbb"}, InputType: embedding.InputTypeDocument})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1}, {3}}, out.Vectors)
	assert.Equal(t, []string{embedding.InputTypeDocument}, v.inputTypes)

	out, err = uc.GenerateMany(ctx, embedding.GenerateManyInput{Texts: []string{"bbb", "cc"}, InputType: embedding.InputTypeDocument})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{3}, {2}}, out.Vectors)
	require.Len(t, v.calls, 2)
	assert.Equal(t, []string{"cc"}, v.calls[1])
}

func TestGenerate_QueryAndDocumentKeysDiffer(t *testing.T) {
	repo := &memRepo{data: map[string][]float32{}}
	v := &fakeVoyage{}
	uc := New(repo, v, "voyage-3", log.NewNop())
	ctx := context.Background()

	_, err := uc.Generate(ctx, embedding.GenerateInput{Text: "cdc"})
	require.NoError(t, err)
	_, err = uc.Generate(ctx, embedding.GenerateInput{Text: "cdc", InputType: embedding.InputTypeDocument})
	require.NoError(t, err)

	assert.Len(t, v.calls, 2)
	assert.Equal(t, []string{embedding.InputTypeQuery, embedding.InputTypeDocument}, v.inputTypes)
}

func TestGenerate_CacheFailuresAreIgnored(t *testing.T) {
	repo := &memRepo{data: map[string][]float32{}, getErr: errors.New("down"), saveErr: errors.New("down")}
	uc := New(repo, &fakeVoyage{}, "voyage-3", log.NewNop())

	out, err := uc.Generate(context.Background(), embedding.GenerateInput{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []float32{5}, out.Vector)
}

func TestGenerate_Errors(t *testing.T) {
	repo := &memRepo{data: map[string][]float32{}}
	uc := New(repo, &fakeVoyage{err: errors.New("429")}, "voyage-3", log.NewNop())
	ctx := context.Background()

	_, err := uc.Generate(ctx, embedding.GenerateInput{})
	assert.ErrorIs(t, err, embedding.ErrEmptyText)

	_, err = uc.Generate(ctx, embedding.GenerateInput{Text: "x"})
	assert.ErrorIs(t, err, embedding.ErrEmbedFailed)
}
