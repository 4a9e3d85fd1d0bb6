package questions

import (
	"context"
	"log"
	"strings"

	"interview-video-server/modules/common/model"
	"interview-video-server/modules/prompts"
)

// 질문 생성 LLM 샘플링 설정
const (
	generateTemperature = 0.7
	generateMaxTokens   = 500
)

// TextGenerator - 질문 생성에 쓰는 LLM 콜라보레이터
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)
}

// Service - 프롬프트 템플릿별 면접 질문 생성
type Service struct {
	store            *prompts.Store
	llm              TextGenerator
	defaultTemplates []string
	defaultLanguage  string
}

// NewService - Service 생성
func NewService(store *prompts.Store, llm TextGenerator, defaultTemplates []string, defaultLanguage string) *Service {
	return &Service{
		store:            store,
		llm:              llm,
		defaultTemplates: defaultTemplates,
		defaultLanguage:  defaultLanguage,
	}
}

// Options - 질문 생성 입력
type Options struct {
	JobDescription string
	Language       string
	SpeakerName    string
	TemplateIDs    []string
}

// Generate - 템플릿 목록 순서대로 LLM 호출해서 질문 생성
// 템플릿 하나가 실패해도 나머지는 계속 진행하고 해당 항목에 error만 기록
func (s *Service) Generate(ctx context.Context, opts Options) ([]model.Question, error) {
	language := opts.Language
	if language == "" {
		language = s.defaultLanguage
	}

	speakerName := opts.SpeakerName
	if speakerName == "" {
		speakerName = "our team"
	}

	templatesToUse := opts.TemplateIDs
	if len(templatesToUse) == 0 {
		templatesToUse = s.defaultTemplates
	}

	available := make(map[string]bool)
	for _, id := range s.store.List() {
		available[id] = true
	}

	var results []model.Question

	for _, templateID := range templatesToUse {
		if !available[templateID] {
			log.Printf("⚠️  [Questions] Template not found, skipping: %s", templateID)
			continue
		}

		text, err := s.generateFromTemplate(ctx, templateID, map[string]string{
			"language":        language,
			"job_description": opts.JobDescription,
			"speaker_name":    speakerName,
		})
		if err != nil {
			log.Printf("❌ [Questions] Error generating from template %s: %v", templateID, err)
			results = append(results, model.Question{
				TemplateID: templateID,
				Error:      err.Error(),
			})
			continue
		}

		results = append(results, model.Question{
			TemplateID: templateID,
			Text:       text,
		})
	}

	return results, nil
}

// generateFromTemplate - 템플릿 1개 렌더링 후 LLM 호출
func (s *Service) generateFromTemplate(ctx context.Context, templateID string, variables map[string]string) (string, error) {
	prompt, err := s.store.Render(templateID, variables)
	if err != nil {
		return "", err
	}

	text, err := s.llm.GenerateText(ctx, prompt, generateTemperature, generateMaxTokens)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
