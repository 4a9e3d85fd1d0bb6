package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-video-server/modules/common/apperr"
)

func TestSelectVoiceDefaultsWithoutCriteria(t *testing.T) {
	assert.Equal(t, "nova", SelectVoice(Criteria{}, "nova"))
	assert.Equal(t, "echo", SelectVoice(Criteria{}, "echo"))
}

func TestSelectVoiceMatureMale(t *testing.T) {
	voice := SelectVoice(Criteria{Gender: "male", Age: 55}, "nova")
	assert.Equal(t, "onyx", voice)
}

func TestSelectVoiceYoungFemale(t *testing.T) {
	voice := SelectVoice(Criteria{Gender: "female", Age: 28}, "alloy")
	assert.Equal(t, "nova", voice)
}

func TestSelectVoiceBritishAccentHint(t *testing.T) {
	voice := SelectVoice(Criteria{Gender: "male", Accent: "british"}, "nova")
	assert.Equal(t, "fable", voice)
}

func TestSelectVoiceIsDeterministic(t *testing.T) {
	criteria := Criteria{Gender: "male", Age: 40}
	first := SelectVoice(criteria, "nova")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectVoice(criteria, "nova"))
	}
}

func newTestService(openAIURL, elevenURL string) *Service {
	return &Service{
		openAIAPIKey:      "sk-test",
		elevenLabsAPIKey:  "el-test",
		defaultVoice:      "nova",
		httpClient:        &http.Client{Timeout: 5 * time.Second},
		openAIBaseURL:     openAIURL,
		elevenLabsBaseURL: elevenURL,
	}
}

func TestGenerateRequiresText(t *testing.T) {
	svc := newTestService("http://unused", "http://unused")

	_, err := svc.Generate(context.Background(), Request{Text: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindMissingInput))
}

func TestGenerateOpenAI(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte("mp3 bytes"))
	}))
	defer server.Close()

	svc := newTestService(server.URL, "http://unused")
	outputPath := filepath.Join(t.TempDir(), "q1.mp3")

	result, err := svc.Generate(context.Background(), Request{
		Text:       "Tell us about yourself.",
		Voice:      "echo",
		OutputPath: outputPath,
	})
	require.NoError(t, err)
	assert.Equal(t, "echo", result.Voice)
	assert.Equal(t, "openai", result.Provider)
	assert.Equal(t, outputPath, result.AudioPath)
	assert.Equal(t, "tts-1-hd", gotBody["model"])
	assert.Equal(t, "echo", gotBody["voice"])

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "mp3 bytes", string(data))
}

func TestGenerateOpenAIUnknownVoiceFallsBackToHeuristic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3 bytes"))
	}))
	defer server.Close()

	svc := newTestService(server.URL, "http://unused")

	result, err := svc.Generate(context.Background(), Request{
		Text:       "Hello",
		Voice:      "not-a-voice",
		OutputPath: filepath.Join(t.TempDir(), "q1.mp3"),
	})
	require.NoError(t, err)
	assert.Equal(t, "nova", result.Voice)
}

func TestGenerateOpenAIErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	svc := newTestService(server.URL, "http://unused")

	_, err := svc.Generate(context.Background(), Request{
		Text:       "Hello",
		OutputPath: filepath.Join(t.TempDir(), "q1.mp3"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindSynthesisFailed))
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateElevenLabs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/voice123", r.URL.Path)
		assert.Equal(t, "el-test", r.Header.Get("xi-api-key"))
		w.Write([]byte("el mp3"))
	}))
	defer server.Close()

	svc := newTestService("http://unused", server.URL)
	outputPath := filepath.Join(t.TempDir(), "q1.mp3")

	result, err := svc.Generate(context.Background(), Request{
		Text:       "Hello",
		Provider:   "elevenlabs",
		VoiceID:    "voice123",
		OutputPath: outputPath,
	})
	require.NoError(t, err)
	assert.Equal(t, "voice123", result.Voice)
	assert.Equal(t, "elevenlabs", result.Provider)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "el mp3", string(data))
}

func TestGenerateElevenLabsRequiresKey(t *testing.T) {
	svc := newTestService("http://unused", "http://unused")
	svc.elevenLabsAPIKey = ""

	_, err := svc.Generate(context.Background(), Request{
		Text:     "Hello",
		Provider: "elevenlabs",
		VoiceID:  "voice123",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindSynthesisFailed))
	assert.Contains(t, err.Error(), "ELEVENLABS_API_KEY")
}
