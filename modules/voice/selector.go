package voice

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"interview-video-server/modules/common/model"
)

// JSONGenerator - 컨텍스트 분석에 쓰는 LLM 콜라보레이터
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, temperature float32, out interface{}) error
}

// Selector - Job 컨텍스트 기반 음성 자동 선택
type Selector struct {
	llm JSONGenerator
}

// NewSelector - Selector 생성
func NewSelector(llm JSONGenerator) *Selector {
	return &Selector{llm: llm}
}

const analyzePromptFormat = `Analyze this job posting and speaker information to determine the best voice characteristics for a video interview.

Job Description:
%s

Speaker Name: %s
Language: %s

Based on the job location, company context, speaker name origin, and overall tone, determine:

1. **accent**: The most appropriate accent. Choose from: american, british, australian, indian, arabic, russian, chinese, latam, spanish, german, french, italian, neutral
   - Consider job location:
     * UK/London → british
     * US/California/New York → american
     * Dubai/UAE/Saudi/Middle East → arabic
     * India/Bangalore/Mumbai → indian
     * Russia/Moscow → russian
     * China/Beijing/Shanghai/Hong Kong → chinese
     * Mexico/Colombia/Argentina/Latin America → latam
     * Spain/Madrid/Barcelona → spanish
     * Germany/Berlin/Munich → german
     * France/Paris → french
     * Italy/Milan/Rome → italian
     * Australia/Sydney → australian
   - Consider speaker name origin (Indian name → indian, Arabic name → arabic, Chinese name → chinese, etc.)
   - If unclear, use "neutral" or "american"

2. **gender**: male or female
   - If speaker name clearly indicates gender, use that
   - Otherwise, infer from context or default to "neutral" (which we'll map to a balanced choice)

3. **age**: young (20-35), middle (35-50), or mature (50+)
   - Consider the seniority of the role
   - Senior/executive roles → mature
   - Entry-level → young
   - Default → middle

4. **reasoning**: Brief explanation of your choice (1-2 sentences)

Respond in JSON format:
{
  "accent": "...",
  "gender": "...",
  "age": "...",
  "reasoning": "..."
}`

// AnalyzeJobContext - LLM으로 {accent, gender, age} 분류
// 실패하면 이름 기반 휴리스틱으로 폴백
func (s *Selector) AnalyzeJobContext(ctx context.Context, jobDescription, speakerName, language string) model.VoiceAnalysis {
	name := speakerName
	if name == "" {
		name = "Not specified"
	}
	lang := language
	if lang == "" {
		lang = "English"
	}

	prompt := fmt.Sprintf(analyzePromptFormat, jobDescription, name, lang)

	var result model.VoiceAnalysis
	if err := s.llm.GenerateJSON(ctx, prompt, 0.3, &result); err != nil {
		log.Printf("⚠️  [VoiceSelector] Error analyzing job context: %v", err)
		return DetectFromName(speakerName)
	}

	if result.Accent == "" {
		result.Accent = "neutral"
	}
	if result.Gender == "" {
		result.Gender = "neutral"
	}
	if result.Age == "" {
		result.Age = "middle"
	}

	return result
}

// DetectFromName - 이름 기반 억양 추정 폴백
func DetectFromName(speakerName string) model.VoiceAnalysis {
	if speakerName == "" {
		return model.VoiceAnalysis{
			Accent:    "neutral",
			Gender:    "neutral",
			Age:       "middle",
			Reasoning: "No name provided, using neutral voice",
		}
	}

	nameLower := strings.ToLower(strings.TrimSpace(speakerName))

	for _, group := range nameAccentGroups {
		for _, n := range group.names {
			if strings.Contains(nameLower, n) {
				return model.VoiceAnalysis{
					Accent:    group.accent,
					Gender:    "neutral",
					Age:       "middle",
					Reasoning: fmt.Sprintf("Name %q suggests %s origin", speakerName, group.accent),
				}
			}
		}
	}

	return model.VoiceAnalysis{
		Accent:    "neutral",
		Gender:    "neutral",
		Age:       "middle",
		Reasoning: "Could not determine accent from name",
	}
}

// SelectVoiceFromLibrary - 카탈로그에서 가장 잘 맞는 음성 선택
// 점수 동률이면 카탈로그 순서 유지 (stable sort)
func SelectVoiceFromLibrary(criteria model.VoiceAnalysis) Voice {
	type scoredVoice struct {
		voice Voice
		score int
	}

	scored := make([]scoredVoice, 0, len(Library))
	for _, v := range Library {
		score := 0

		// 억양 매칭이 가장 중요
		if v.Accent == criteria.Accent {
			score += 100
		} else if v.Accent == "neutral" {
			score += 30 // neutral 음성은 항상 무난함
		} else if criteria.Accent == "neutral" {
			score += 50 // neutral을 원하면 어느 음성이든 어느 정도 괜찮음
		}

		// 성별 매칭
		if criteria.Gender == "neutral" {
			score += 20
		} else if v.Gender == criteria.Gender {
			score += 50
		}

		// 연령대 매칭
		if v.Age == criteria.Age {
			score += 20
		} else if criteria.Age == "middle" {
			score += 10 // middle은 범용적
		}

		scored = append(scored, scoredVoice{voice: v, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored[0].voice
}

// AutoSelect - Job 컨텍스트 분석 후 카탈로그에서 음성 선택
func (s *Selector) AutoSelect(ctx context.Context, jobDescription, speakerName, language string) (*model.VoiceSelection, error) {
	log.Printf("🔍 [VoiceSelector] Analyzing context for speaker: %s", orUnknown(speakerName))

	criteria := s.AnalyzeJobContext(ctx, jobDescription, speakerName, language)
	log.Printf("📊 [VoiceSelector] Analysis: accent=%s, gender=%s, age=%s", criteria.Accent, criteria.Gender, criteria.Age)

	selected := SelectVoiceFromLibrary(criteria)
	log.Printf("✅ [VoiceSelector] Selected: %s (%s) - %s", selected.Name, selected.ID, selected.Description)

	return &model.VoiceSelection{
		VoiceID:          selected.ID,
		VoiceName:        selected.Name,
		VoiceDescription: selected.Description,
		Analysis:         criteria,
	}, nil
}

func orUnknown(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}
