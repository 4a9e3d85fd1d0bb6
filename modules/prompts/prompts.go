package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Store - 프롬프트 템플릿 저장소 ({promptsDir}/{id}.prompt)
type Store struct {
	promptsDir string
}

// NewStore - Store 생성
func NewStore(promptsDir string) *Store {
	return &Store{promptsDir: promptsDir}
}

// Load - 템플릿 원문 로드 (없으면 에러)
func (s *Store) Load(templateID string) (string, error) {
	filePath := filepath.Join(s.promptsDir, templateID+".prompt")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("prompt template not found: %s", templateID)
		}
		return "", fmt.Errorf("failed to read prompt template %s: %w", templateID, err)
	}

	return string(data), nil
}

// Render - 템플릿의 {key} 플레이스홀더를 변수 값으로 치환
func (s *Store) Render(templateID string, variables map[string]string) (string, error) {
	template, err := s.Load(templateID)
	if err != nil {
		return "", err
	}

	for key, value := range variables {
		template = strings.ReplaceAll(template, "{"+key+"}", value)
	}

	return template, nil
}

// List - 사용 가능한 템플릿 ID 목록
func (s *Store) List() []string {
	entries, err := os.ReadDir(s.promptsDir)
	if err != nil {
		return nil
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".prompt") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".prompt"))
	}

	return ids
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Metadata - 템플릿 메타데이터
type Metadata struct {
	ID                     string   `json:"id"`
	Placeholders           []string `json:"placeholders"`
	RequiresJobDescription bool     `json:"requires_job_description"`
	RequiresSpeakerName    bool     `json:"requires_speaker_name"`
}

// GetMetadata - 템플릿의 플레이스홀더 목록과 필수 입력 여부 조회
func (s *Store) GetMetadata(templateID string) (*Metadata, error) {
	template, err := s.Load(templateID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var placeholders []string
	for _, match := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			placeholders = append(placeholders, match[1])
		}
	}

	return &Metadata{
		ID:                     templateID,
		Placeholders:           placeholders,
		RequiresJobDescription: seen["job_description"],
		RequiresSpeakerName:    seen["speaker_name"],
	}, nil
}
