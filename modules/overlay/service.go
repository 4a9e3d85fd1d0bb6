package overlay

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"interview-video-server/modules/common/apperr"
)

// Service - 템플릿 비디오에 오디오를 입히는 로컬 ffmpeg 렌더러
type Service struct {
	templatesDir string

	// 테스트에서 교체 가능한 커맨드 러너
	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewService - Service 생성
func NewService(templatesDir string) *Service {
	return &Service{
		templatesDir: templatesDir,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

// FindTemplateVideo - 템플릿 비디오 경로 탐색
// templates/{locale}/{templateId}.mp4 우선, 없으면 templates/default/{templateId}.mp4
func (s *Service) FindTemplateVideo(templateID, locale string) string {
	if locale == "" {
		locale = "en"
	}

	localePath := filepath.Join(s.templatesDir, locale, templateID+".mp4")
	if fileExists(localePath) {
		return localePath
	}

	defaultPath := filepath.Join(s.templatesDir, "default", templateID+".mp4")
	if fileExists(defaultPath) {
		return defaultPath
	}

	return ""
}

// HasAllTemplates - 모든 템플릿 ID에 대해 비디오가 존재하는지 확인
func (s *Service) HasAllTemplates(templateIDs []string, locale string) bool {
	for _, templateID := range templateIDs {
		if s.FindTemplateVideo(templateID, locale) == "" {
			return false
		}
	}
	return true
}

// OverlayAudio - 템플릿 비디오의 오디오 트랙을 새 오디오로 교체
// 비디오 스트림은 재인코딩 없이 복사, 짧은 쪽 스트림 길이에 맞춰 자름
func (s *Service) OverlayAudio(ctx context.Context, templateVideoPath, audioPath, outputPath string) error {
	if !fileExists(templateVideoPath) {
		return apperr.New(apperr.KindRenderFailed, "template video not found: %s", templateVideoPath)
	}

	if !fileExists(audioPath) {
		return apperr.New(apperr.KindRenderFailed, "audio file not found: %s", audioPath)
	}

	args := overlayArgs(templateVideoPath, audioPath, outputPath)

	output, err := s.run(ctx, "ffmpeg", args...)
	if err != nil {
		return apperr.Wrap(apperr.KindRenderFailed, err, "ffmpeg failed: %s", strings.TrimSpace(string(output)))
	}

	return nil
}

// overlayArgs - ffmpeg 오버레이 인자 조립
// ffmpeg -y -i video.mp4 -i audio.mp3 -c:v copy -map 0:v:0 -map 1:a:0 -shortest output.mp4
func overlayArgs(videoPath, audioPath, outputPath string) []string {
	return []string{
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-shortest",
		outputPath,
	}
}

// AudioDuration - ffprobe로 오디오 길이(초) 조회
func (s *Service) AudioDuration(ctx context.Context, audioPath string) (float64, error) {
	output, err := s.run(ctx, "ffprobe",
		"-i", audioPath,
		"-show_entries", "format=duration",
		"-v", "quiet",
		"-of", "csv=p=0",
	)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindRenderFailed, err, "ffprobe failed")
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindRenderFailed, err, "failed to parse ffprobe output")
	}

	return duration, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
