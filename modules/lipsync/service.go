package lipsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"interview-video-server/modules/common/apperr"
	"interview-video-server/modules/common/config"
	"interview-video-server/modules/common/download"
)

// fal.ai Sync Labs lipsync 모델 큐 API
const defaultQueueBase = "https://queue.fal.run/fal-ai/sync-lipsync/v2"

// Service - fal.ai 립싱크 API 서비스
type Service struct {
	apiKey       string
	pollInterval time.Duration
	maxWait      time.Duration
	httpClient   *http.Client
	queueBase    string

	// 테스트에서 fake clock으로 교체 가능
	now   func() time.Time
	sleep func(time.Duration)
}

// NewService - Service 생성
func NewService(cfg *config.Config) *Service {
	return &Service{
		apiKey:       cfg.FalAPIKey,
		pollInterval: cfg.LipSyncPollInterval,
		maxWait:      cfg.LipSyncTimeout,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		queueBase:    defaultQueueBase,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// createTaskRequest - 립싱크 작업 생성 요청
type createTaskRequest struct {
	VideoURL string `json:"video_url"`
	AudioURL string `json:"audio_url"`
	Model    string `json:"model"`     // lipsync-2 또는 lipsync-2-pro
	SyncMode string `json:"sync_mode"` // cut_off, loop, bounce, silence, remap
}

// CreateResult - 작업 생성 결과
type CreateResult struct {
	RequestID string
	Status    string
}

// Status - 작업 상태 조회 결과 (Raw는 실패 시 에러 페이로드용)
type Status struct {
	Status string
	Raw    string
}

// Result - 완료된 작업 결과
type Result struct {
	RequestID string
	OutputURL string
}

// makeRequest - fal.ai API 호출 공통 헬퍼
func (s *Service) makeRequest(ctx context.Context, method, url string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Key "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fal.ai API error: %d - %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// CreateJob - 립싱크 작업 제출 (큐 API, 비동기)
func (s *Service) CreateJob(ctx context.Context, videoURL, audioURL string) (*CreateResult, error) {
	reqData := createTaskRequest{
		VideoURL: videoURL,
		AudioURL: audioURL,
		Model:    "lipsync-2",
		SyncMode: "cut_off",
	}

	log.Printf("🚀 [LipSync] Creating lip-sync task...")

	respBody, err := s.makeRequest(ctx, "POST", s.queueBase, reqData)
	if err != nil {
		return nil, err
	}

	var result struct {
		RequestID string `json:"request_id"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	status := result.Status
	if status == "" {
		status = "IN_QUEUE"
	}

	log.Printf("✅ [LipSync] Task created: %s", result.RequestID)
	return &CreateResult{RequestID: result.RequestID, Status: status}, nil
}

// GetJobStatus - 작업 상태 조회
func (s *Service) GetJobStatus(ctx context.Context, requestID string) (*Status, error) {
	statusURL := fmt.Sprintf("%s/requests/%s/status", s.queueBase, requestID)

	respBody, err := s.makeRequest(ctx, "GET", statusURL, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &Status{Status: result.Status, Raw: string(respBody)}, nil
}

// GetResult - 완료된 작업 결과 조회
func (s *Service) GetResult(ctx context.Context, requestID string) (*Result, error) {
	resultURL := fmt.Sprintf("%s/requests/%s", s.queueBase, requestID)

	respBody, err := s.makeRequest(ctx, "GET", resultURL, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Video struct {
			URL string `json:"url"`
		} `json:"video"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &Result{RequestID: requestID, OutputURL: result.Video.URL}, nil
}

// WaitForCompletion - 작업 완료 대기 (폴링)
// COMPLETED → 결과 조회 후 반환, FAILED → 에러, 그 외 상태는 계속 대기
func (s *Service) WaitForCompletion(ctx context.Context, requestID string) (*Result, error) {
	log.Printf("⏳ [LipSync] Waiting for task %s to complete...", requestID)

	deadline := s.now().Add(s.maxWait)

	for s.now().Before(deadline) {
		status, err := s.GetJobStatus(ctx, requestID)
		if err != nil {
			return nil, err
		}

		log.Printf("📊 [LipSync] Status: %s", status.Status)

		switch status.Status {
		case "COMPLETED":
			return s.GetResult(ctx, requestID)
		case "FAILED":
			return nil, apperr.New(apperr.KindRenderFailed, "lip-sync job failed: %s", status.Raw)
		}

		s.sleep(s.pollInterval)
	}

	return nil, apperr.New(apperr.KindTimeout, "lip-sync job timed out after %v", s.maxWait)
}

// Render - 질문 1개에 대한 submit → poll → download 전체 시퀀스
// 반환값은 fal.ai request id (Job 레코드에 기록용)
func (s *Service) Render(ctx context.Context, videoURL, audioURL, outputPath string) (string, error) {
	created, err := s.CreateJob(ctx, videoURL, audioURL)
	if err != nil {
		return "", err
	}

	result, err := s.WaitForCompletion(ctx, created.RequestID)
	if err != nil {
		return created.RequestID, err
	}

	if result.OutputURL == "" {
		return created.RequestID, apperr.New(apperr.KindRenderFailed, "no output video in lip-sync result")
	}

	if err := download.File(result.OutputURL, outputPath); err != nil {
		return created.RequestID, err
	}

	return created.RequestID, nil
}
