package questions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-video-server/modules/prompts"
)

type fakeLLM struct {
	calls   []string
	failOn  string
	respond func(prompt string) string
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	f.calls = append(f.calls, prompt)
	if f.failOn != "" && strings.Contains(prompt, f.failOn) {
		return "", errors.New("llm unavailable")
	}
	if f.respond != nil {
		return f.respond(prompt), nil
	}
	return "  Generated question?  ", nil
}

func newPromptStore(t *testing.T, ids ...string) *prompts.Store {
	t.Helper()
	dir := t.TempDir()
	for _, id := range ids {
		content := "Template " + id + ": {job_description} {language} {speaker_name}"
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".prompt"), []byte(content), 0o644))
	}
	return prompts.NewStore(dir)
}

func TestGenerateUsesDefaultTemplatesInOrder(t *testing.T) {
	store := newPromptStore(t, "intro-video", "failed-plan-fix")
	llm := &fakeLLM{}
	svc := NewService(store, llm, []string{"intro-video", "failed-plan-fix"}, "en")

	results, err := svc.Generate(context.Background(), Options{JobDescription: "Go developer"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "intro-video", results[0].TemplateID)
	assert.Equal(t, "failed-plan-fix", results[1].TemplateID)
	assert.Equal(t, "Generated question?", results[0].Text)
	assert.True(t, results[0].Usable())
}

func TestGenerateSkipsUnregisteredTemplates(t *testing.T) {
	store := newPromptStore(t, "intro-video")
	llm := &fakeLLM{}
	svc := NewService(store, llm, []string{"intro-video", "ghost-template"}, "en")

	results, err := svc.Generate(context.Background(), Options{JobDescription: "Go developer"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "intro-video", results[0].TemplateID)
}

func TestGenerateRecordsPerTemplateErrors(t *testing.T) {
	store := newPromptStore(t, "intro-video", "failed-plan-fix")
	llm := &fakeLLM{failOn: "failed-plan-fix"}
	svc := NewService(store, llm, []string{"intro-video", "failed-plan-fix"}, "en")

	results, err := svc.Generate(context.Background(), Options{JobDescription: "Go developer"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Usable())
	assert.False(t, results[1].Usable())
	assert.Equal(t, "llm unavailable", results[1].Error)
	assert.Empty(t, results[1].Text)
}

func TestGenerateAppliesDefaults(t *testing.T) {
	store := newPromptStore(t, "intro-video")
	llm := &fakeLLM{}
	svc := NewService(store, llm, []string{"intro-video"}, "en")

	_, err := svc.Generate(context.Background(), Options{JobDescription: "Go developer"})
	require.NoError(t, err)
	require.Len(t, llm.calls, 1)
	assert.Contains(t, llm.calls[0], "Go developer")
	assert.Contains(t, llm.calls[0], "en")
	assert.Contains(t, llm.calls[0], "our team")
}

func TestGenerateExplicitTemplateList(t *testing.T) {
	store := newPromptStore(t, "intro-video", "failed-plan-fix")
	llm := &fakeLLM{}
	svc := NewService(store, llm, []string{"intro-video", "failed-plan-fix"}, "en")

	results, err := svc.Generate(context.Background(), Options{
		JobDescription: "Go developer",
		TemplateIDs:    []string{"failed-plan-fix"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "failed-plan-fix", results[0].TemplateID)
}
