package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text      string
	err       error
	prompts   []string
	maxTokens []int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.maxTokens = append(f.maxTokens, maxTokens)
	return f.text, f.err
}

func TestAnswerGeneratorGenerate(t *testing.T) {
	t.Run("returns completion", func(t *testing.T) {
		fake := &fakeGenerator{text: "You saved a Paris trip."}
		got, err := NewAnswerGenerator(fake).Generate(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "You saved a Paris trip.", got)
		assert.Equal(t, []int{answerMaxTokens}, fake.maxTokens)
	})

	t.Run("empty completion uses placeholder", func(t *testing.T) {
		got, err := NewAnswerGenerator(&fakeGenerator{}).Generate(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, NoAnswerPlaceholder, got)
	})

	t.Run("transport failure", func(t *testing.T) {
		_, err := NewAnswerGenerator(&fakeGenerator{err: errors.New("401 unauthorized")}).Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})

	t.Run("no model", func(t *testing.T) {
		_, err := NewAnswerGenerator(nil).Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})
}

func TestAnswerGeneratorHealthCheck(t *testing.T) {
	ok := &fakeGenerator{text: "OK"}
	assert.True(t, NewAnswerGenerator(ok).HealthCheck(context.Background()))
	assert.Equal(t, []int{healthMaxTokens}, ok.maxTokens)

	for _, err := range []error{errors.New("timeout"), context.DeadlineExceeded} {
		assert.False(t, NewAnswerGenerator(&fakeGenerator{err: err}).HealthCheck(context.Background()))
	}
	assert.False(t, NewAnswerGenerator(nil).HealthCheck(context.Background()))
}
