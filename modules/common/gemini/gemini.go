package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Client - Gemini 텍스트/JSON 생성 클라이언트
// 429 에러 시 여러 API 키로 재시도 (각 키당 최대 3번)
type Client struct {
	apiKeys []string
	model   string
}

// NewClient - Client 생성
func NewClient(apiKeys []string, model string) *Client {
	return &Client{
		apiKeys: apiKeys,
		model:   model,
	}
}

// GenerateText - 프롬프트로 텍스트 생성
func (c *Client) GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     floatPtr(temperature),
		MaxOutputTokens: maxTokens,
	}
	return c.generateWithRetry(ctx, prompt, cfg)
}

// GenerateJSON - JSON 응답을 강제하고 out으로 디코딩
func (c *Client) GenerateJSON(ctx context.Context, prompt string, temperature float32, out interface{}) error {
	cfg := &genai.GenerateContentConfig{
		Temperature:      floatPtr(temperature),
		ResponseMIMEType: "application/json",
	}

	text, err := c.generateWithRetry(ctx, prompt, cfg)
	if err != nil {
		return err
	}

	// 혹시 코드 펜스로 감싸져 오면 제거
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

// generateWithRetry - 429 에러 시 여러 API 키로 재시도하는 헬퍼
func (c *Client) generateWithRetry(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if len(c.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys provided")
	}

	const maxRetriesPerKey = 3
	var lastErr error

	content := &genai.Content{
		Parts: []*genai.Part{
			genai.NewPartFromText(prompt),
		},
	}

	// 각 API 키로 시도
	for keyIndex, apiKey := range c.apiKeys {
		// 각 키당 최대 3번 재시도
		for attempt := 1; attempt <= maxRetriesPerKey; attempt++ {
			if attempt > 1 {
				log.Printf("   🔄 [Gemini] Retry attempt %d/%d for key #%d", attempt, maxRetriesPerKey, keyIndex+1)
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				log.Printf("⚠️  [Gemini] Failed to create client with key #%d: %v", keyIndex+1, err)
				lastErr = err
				continue
			}

			result, err := client.Models.GenerateContent(ctx, c.model, []*genai.Content{content}, cfg)
			if err == nil {
				return extractText(result)
			}

			lastErr = err

			// 429가 아닌 다른 에러면 바로 반환 (재시도 안 함)
			if !is429Error(err) {
				return "", err
			}

			log.Printf("⚠️  [Gemini] Key #%d hit rate limit (429) on attempt %d/%d", keyIndex+1, attempt, maxRetriesPerKey)

			if attempt < maxRetriesPerKey {
				time.Sleep(2 * time.Second)
			}
		}

		log.Printf("⚠️  [Gemini] Key #%d exhausted, trying next key...", keyIndex+1)
	}

	return "", fmt.Errorf("all %d API keys exhausted, last error: %w", len(c.apiKeys), lastErr)
}

// extractText - 응답에서 텍스트 추출
func extractText(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var sb strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text in response")
	}

	return text, nil
}

// is429Error - 429 Rate Limit 에러인지 확인
func is429Error(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(strings.ToLower(errStr), "rate limit") ||
		strings.Contains(strings.ToLower(errStr), "quota")
}

// floatPtr - float32 포인터 변환
func floatPtr(f float32) *float32 {
	return &f
}
