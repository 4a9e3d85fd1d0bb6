package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"interview-video-server/modules/common/apperr"
	"interview-video-server/modules/common/config"
)

// Profile - OpenAI TTS 음성 특성
type Profile struct {
	Gender string
	Style  string
	Age    string
}

// VoiceProfiles - OpenAI TTS 음성별 특성
var VoiceProfiles = map[string]Profile{
	"nova":    {Gender: "female", Style: "warm", Age: "young"},
	"shimmer": {Gender: "female", Style: "soft", Age: "young"},
	"alloy":   {Gender: "neutral", Style: "balanced", Age: "middle"},
	"echo":    {Gender: "male", Style: "neutral", Age: "middle"},
	"onyx":    {Gender: "male", Style: "deep", Age: "mature"},
	"fable":   {Gender: "male", Style: "british", Age: "middle"},
}

// AvailableVoices - 후보 순서 고정 (동률 시 앞쪽 우선)
var AvailableVoices = []string{"nova", "shimmer", "alloy", "echo", "onyx", "fable"}

// Criteria - 음성 선택 힌트
type Criteria struct {
	Gender string
	Accent string
	Age    int
}

// SelectVoice - 힌트 기반으로 OpenAI 음성 선택 (힌트 없으면 기본값)
func SelectVoice(criteria Criteria, defaultVoice string) string {
	if criteria.Gender == "" && criteria.Accent == "" && criteria.Age == 0 {
		return defaultVoice
	}

	candidates := make([]string, 0, len(AvailableVoices))

	// 성별 우선 필터 (neutral은 항상 포함)
	switch criteria.Gender {
	case "male":
		for _, v := range AvailableVoices {
			if VoiceProfiles[v].Gender == "male" || VoiceProfiles[v].Gender == "neutral" {
				candidates = append(candidates, v)
			}
		}
	case "female":
		for _, v := range AvailableVoices {
			if VoiceProfiles[v].Gender == "female" || VoiceProfiles[v].Gender == "neutral" {
				candidates = append(candidates, v)
			}
		}
	default:
		candidates = append(candidates, AvailableVoices...)
	}

	if len(candidates) == 0 {
		candidates = append(candidates, AvailableVoices...)
	}

	type scoredVoice struct {
		voice string
		score int
	}

	scored := make([]scoredVoice, 0, len(candidates))
	for _, v := range candidates {
		profile := VoiceProfiles[v]
		score := 0

		if criteria.Gender != "" && profile.Gender == criteria.Gender {
			score += 10
		}

		if criteria.Age > 0 {
			switch {
			case criteria.Age < 35 && profile.Age == "young":
				score += 5
			case criteria.Age >= 35 && criteria.Age < 50 && profile.Age == "middle":
				score += 5
			case criteria.Age >= 50 && profile.Age == "mature":
				score += 5
			}
		}

		// OpenAI 음성에는 진짜 억양이 없어서 키워드 힌트만 적용
		if criteria.Accent != "" {
			accentLower := strings.ToLower(criteria.Accent)
			if strings.Contains(accentLower, "british") && v == "fable" {
				score += 3
			}
			if (strings.Contains(accentLower, "deep") || strings.Contains(accentLower, "author")) && v == "onyx" {
				score += 3
			}
		}

		scored = append(scored, scoredVoice{voice: v, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored[0].voice
}

// Service - TTS 음성 합성 서비스 (OpenAI + ElevenLabs)
type Service struct {
	openAIAPIKey     string
	elevenLabsAPIKey string
	defaultVoice     string
	httpClient       *http.Client

	// 테스트에서 교체 가능한 엔드포인트
	openAIBaseURL     string
	elevenLabsBaseURL string
}

// NewService - Service 생성
func NewService(cfg *config.Config) *Service {
	return &Service{
		openAIAPIKey:      cfg.OpenAIAPIKey,
		elevenLabsAPIKey:  cfg.ElevenLabsAPIKey,
		defaultVoice:      cfg.DefaultVoice,
		httpClient:        &http.Client{Timeout: 120 * time.Second},
		openAIBaseURL:     "https://api.openai.com/v1",
		elevenLabsBaseURL: "https://api.elevenlabs.io/v1",
	}
}

// Request - 음성 합성 요청
type Request struct {
	Text       string
	Voice      string
	VoiceID    string
	Provider   string
	Gender     string
	Accent     string
	Age        int
	OutputPath string
}

// Result - 음성 합성 결과
type Result struct {
	AudioPath string
	Voice     string
	Provider  string
}

// Generate - 질문 텍스트 1개를 음성 파일로 합성
// 음성 결정 순서: 명시적 voice(enum 멤버) > 로컬 휴리스틱 > 기본값
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperr.New(apperr.KindMissingInput, "text is required for TTS")
	}

	if req.Provider == "elevenlabs" && req.VoiceID != "" {
		return s.generateElevenLabs(ctx, req)
	}

	return s.generateOpenAI(ctx, req)
}

// generateOpenAI - OpenAI TTS 호출
func (s *Service) generateOpenAI(ctx context.Context, req Request) (*Result, error) {
	var selectedVoice string
	if req.Voice != "" && isAvailableVoice(req.Voice) {
		selectedVoice = req.Voice
	} else {
		selectedVoice = SelectVoice(Criteria{
			Gender: req.Gender,
			Accent: req.Accent,
			Age:    req.Age,
		}, s.defaultVoice)
	}

	body, err := json.Marshal(map[string]interface{}{
		"model":           "tts-1-hd",
		"voice":           selectedVoice,
		"input":           req.Text,
		"response_format": "mp3",
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to marshal TTS request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.openAIBaseURL+"/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to create TTS request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.openAIAPIKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to call OpenAI TTS")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, apperr.New(apperr.KindSynthesisFailed, "OpenAI TTS error: %d - %s", resp.StatusCode, string(respBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to read TTS response")
	}

	if err := os.WriteFile(req.OutputPath, audio, 0o644); err != nil {
		return nil, apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to write audio file")
	}

	return &Result{
		AudioPath: req.OutputPath,
		Voice:     selectedVoice,
		Provider:  "openai",
	}, nil
}

func isAvailableVoice(voice string) bool {
	_, ok := VoiceProfiles[voice]
	return ok
}
