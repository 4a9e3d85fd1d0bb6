package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"interview-video-server/modules/common/apperr"
)

// elevenLabsRequest - ElevenLabs text-to-speech 요청 바디
type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// generateElevenLabs - ElevenLabs TTS 호출 (억양 지원용 multilingual 모델)
func (s *Service) generateElevenLabs(ctx context.Context, req Request) (*Result, error) {
	if s.elevenLabsAPIKey == "" {
		return nil, apperr.New(apperr.KindSynthesisFailed, "ELEVENLABS_API_KEY not configured")
	}

	body, err := json.Marshal(elevenLabsRequest{
		Text:    req.Text,
		ModelID: "eleven_multilingual_v2",
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
			Style:           0.0,
			UseSpeakerBoost: true,
		},
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to marshal ElevenLabs request")
	}

	url := s.elevenLabsBaseURL + "/text-to-speech/" + req.VoiceID

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to create ElevenLabs request")
	}

	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", s.elevenLabsAPIKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to call ElevenLabs")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, apperr.New(apperr.KindSynthesisFailed, "ElevenLabs API error: %d - %s", resp.StatusCode, string(respBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to read ElevenLabs response")
	}

	if err := os.WriteFile(req.OutputPath, audio, 0o644); err != nil {
		os.Remove(req.OutputPath)
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to write audio file")
	}

	return &Result{
		AudioPath: req.OutputPath,
		Voice:     req.VoiceID,
		Provider:  "elevenlabs",
	}, nil
}
