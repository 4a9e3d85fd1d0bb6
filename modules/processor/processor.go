package processor

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"interview-video-server/modules/common/apperr"
	"interview-video-server/modules/common/config"
	"interview-video-server/modules/common/model"
	"interview-video-server/modules/questions"
	"interview-video-server/modules/tts"
)

// JobStore - Job 레코드 저장소
type JobStore interface {
	Save(job *model.Job) error
}

// QuestionGenerator - 템플릿 기반 질문 생성기
type QuestionGenerator interface {
	Generate(ctx context.Context, opts questions.Options) ([]model.Question, error)
}

// VoiceSelector - job description 기반 자동 음성 선택기
type VoiceSelector interface {
	AutoSelect(ctx context.Context, jobDescription, speakerName, language string) (*model.VoiceSelection, error)
}

// SpeechSynthesizer - TTS 합성기
type SpeechSynthesizer interface {
	Generate(ctx context.Context, req tts.Request) (*tts.Result, error)
}

// TemplateRenderer - 템플릿 비디오 + 오디오 오버레이 렌더러
type TemplateRenderer interface {
	FindTemplateVideo(templateID, locale string) string
	HasAllTemplates(templateIDs []string, locale string) bool
	OverlayAudio(ctx context.Context, templateVideoPath, audioPath, outputPath string) error
}

// LipSyncRenderer - 원격 립싱크 렌더러
type LipSyncRenderer interface {
	Render(ctx context.Context, videoURL, audioURL, outputPath string) (string, error)
}

// Processor - Job 파이프라인 전체 실행기
// 질문 생성 → TTS → (템플릿 오버레이 | 립싱크 | 오디오만) → outputs 요약
type Processor struct {
	cfg       *config.Config
	store     JobStore
	questions QuestionGenerator
	voices    VoiceSelector
	tts       SpeechSynthesizer
	overlay   TemplateRenderer
	lipsync   LipSyncRenderer
}

// NewProcessor - Processor 생성
func NewProcessor(cfg *config.Config, store JobStore, questionGen QuestionGenerator, voices VoiceSelector, synth SpeechSynthesizer, overlay TemplateRenderer, lipsync LipSyncRenderer) *Processor {
	return &Processor{
		cfg:       cfg,
		store:     store,
		questions: questionGen,
		voices:    voices,
		tts:       synth,
		overlay:   overlay,
		lipsync:   lipsync,
	}
}

// ProcessJob - Job 1개 처리. 실패 시 failed 상태로 저장하고 에러 반환
func (p *Processor) ProcessJob(ctx context.Context, job *model.Job) error {
	log.Printf("🎬 [Processor] Processing job: %s", job.JobID)

	job.Status = model.StatusProcessing
	job.StartedAt = time.Now().UTC().Format(time.RFC3339)
	if job.QualityMode == "" {
		job.QualityMode = model.ModeTemplate
	}
	if err := p.store.Save(job); err != nil {
		return err
	}

	if err := p.runPipeline(ctx, job); err != nil {
		log.Printf("❌ [Processor] Job %s failed: %v", job.JobID, err)
		job.Status = model.StatusFailed
		job.Error = err.Error()
		job.FailedAt = time.Now().UTC().Format(time.RFC3339)
		if saveErr := p.store.Save(job); saveErr != nil {
			log.Printf("❌ [Processor] Failed to save failed job %s: %v", job.JobID, saveErr)
		}
		return err
	}

	log.Printf("✅ [Processor] Job %s completed", job.JobID)
	return nil
}

func (p *Processor) runPipeline(ctx context.Context, job *model.Job) error {
	// 1. 질문 확보: 직접 제공된 script 또는 job_description에서 생성
	usable, err := p.resolveQuestions(ctx, job)
	if err != nil {
		return err
	}

	// 2. ElevenLabs 사용 가능하고 voice_id가 없으면 자동 음성 선택.
	// 명시적 voice가 지정된 경우 선택 결과는 기록만 하고 합성에는 쓰지 않는다
	voiceID := job.VoiceID
	if voiceID == "" && p.cfg.ElevenLabsAPIKey != "" && p.voices != nil {
		selection, err := p.voices.AutoSelect(ctx, job.JobDescription, job.SpeakerName, job.Language)
		if err != nil {
			log.Printf("⚠️ [Processor] Auto voice selection failed, falling back to defaults: %v", err)
		} else {
			job.AutoSelectedVoice = selection
			if err := p.store.Save(job); err != nil {
				return err
			}
			if job.Voice == "" {
				voiceID = selection.VoiceID
			}
		}
	}

	// 3. 질문별 오디오 합성 (순차, 하나라도 실패하면 Job 전체 실패)
	audioFiles, resolvedVoice, err := p.synthesizeAudio(ctx, job, usable, voiceID)
	if err != nil {
		return err
	}
	job.AudioFiles = audioFiles
	job.SelectedVoice = resolvedVoice
	if err := p.store.Save(job); err != nil {
		return err
	}

	// 4. quality_mode에 따른 비디오 생성
	mode := job.QualityMode
	switch mode {
	case model.ModeAudioOnly:
		// 오디오만 생성, 비디오 단계 생략
	case model.ModeLipSync:
		job.VideoFiles = p.processWithLipSync(ctx, job, audioFiles)
	default:
		locale := p.resolveLocale(job)
		templateIDs := make([]string, 0, len(audioFiles))
		for _, af := range audioFiles {
			templateIDs = append(templateIDs, af.TemplateID)
		}
		if p.overlay != nil && p.overlay.HasAllTemplates(templateIDs, locale) {
			job.VideoFiles = p.processWithTemplates(ctx, job, audioFiles, locale)
		} else {
			log.Printf("⚠️ [Processor] Template videos not found for job %s, audio only", job.JobID)
			job.Note = "Template videos not found. Audio files generated only."
		}
	}

	// 5. outputs 요약 + 부분 실패 분류
	p.summarize(job, mode)

	job.Status = model.StatusCompleted
	job.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	return p.store.Save(job)
}

// resolveQuestions - script가 있으면 단일 custom 질문, 없으면 LLM 생성
func (p *Processor) resolveQuestions(ctx context.Context, job *model.Job) ([]model.Question, error) {
	if job.Script != "" {
		return []model.Question{{TemplateID: "custom", Text: job.Script}}, nil
	}

	if job.JobDescription == "" {
		return nil, apperr.New(apperr.KindMissingInput, "Either script or job_description is required")
	}

	var templateIDs []string
	if job.PromptTemplateID != "" {
		templateIDs = []string{job.PromptTemplateID}
	}

	generated, err := p.questions.Generate(ctx, questions.Options{
		JobDescription: job.JobDescription,
		Language:       job.Language,
		SpeakerName:    job.SpeakerName,
		TemplateIDs:    templateIDs,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindGenerationFailed, err, "question generation failed")
	}

	var usable []model.Question
	for _, q := range generated {
		if q.Usable() {
			usable = append(usable, q)
		}
	}
	if len(usable) == 0 {
		return nil, apperr.New(apperr.KindGenerationFailed, "Failed to generate any questions")
	}

	job.GeneratedQuestions = generated
	if err := p.store.Save(job); err != nil {
		return nil, err
	}

	log.Printf("📝 [Processor] %d/%d questions usable for job %s", len(usable), len(generated), job.JobID)
	return usable, nil
}

// synthesizeAudio - 질문별 TTS. 첫 항목에서 해석된 음성을 이후 항목에 재사용한다
func (p *Processor) synthesizeAudio(ctx context.Context, job *model.Job, items []model.Question, voiceID string) ([]model.AudioFile, string, error) {
	var audioFiles []model.AudioFile
	var resolvedVoice string

	for i, q := range items {
		index := i + 1
		fileName := fmt.Sprintf("%s_%02d_%s.mp3", job.JobID, index, q.TemplateID)
		outputPath := filepath.Join(p.cfg.OutputsDir, fileName)

		req := tts.Request{
			Text:       q.Text,
			Gender:     job.Gender,
			Accent:     job.Accent,
			Age:        job.Age,
			OutputPath: outputPath,
		}
		if job.Voice != "" {
			req.Voice = job.Voice
		} else if resolvedVoice != "" {
			req.Voice = resolvedVoice
		}
		if voiceID != "" {
			req.VoiceID = voiceID
			req.Provider = "elevenlabs"
		} else {
			req.Provider = job.TTSProvider
		}

		result, err := p.tts.Generate(ctx, req)
		if err != nil {
			return nil, "", apperr.Wrap(apperr.KindSynthesisFailed, err, "failed to synthesize audio for question %d", index)
		}
		if resolvedVoice == "" {
			resolvedVoice = result.Voice
		}

		log.Printf("🎵 [Processor] Audio %d/%d generated: %s (voice: %s)", index, len(items), fileName, result.Voice)

		audioFiles = append(audioFiles, model.AudioFile{
			Index:      index,
			TemplateID: q.TemplateID,
			Text:       q.Text,
			AudioFile:  fileName,
			AudioPath:  result.AudioPath,
			AudioURL:   "/outputs/" + fileName,
			Voice:      result.Voice,
			Provider:   result.Provider,
		})
	}

	return audioFiles, resolvedVoice, nil
}

// processWithTemplates - 템플릿 비디오에 오디오 오버레이 (항목별 실패는 인라인 기록)
func (p *Processor) processWithTemplates(ctx context.Context, job *model.Job, audioFiles []model.AudioFile, locale string) []model.VideoFile {
	videoFiles := make([]model.VideoFile, 0, len(audioFiles))

	for _, af := range audioFiles {
		vf := model.VideoFile{
			Index:      af.Index,
			TemplateID: af.TemplateID,
			Text:       af.Text,
			AudioURL:   af.AudioURL,
			Mode:       model.ModeTemplate,
		}

		templateVideo := p.overlay.FindTemplateVideo(af.TemplateID, locale)
		if templateVideo == "" {
			vf.Error = fmt.Sprintf("template video not found: %s", af.TemplateID)
			videoFiles = append(videoFiles, vf)
			continue
		}

		videoName := fmt.Sprintf("%s_%02d_%s.mp4", job.JobID, af.Index, af.TemplateID)
		videoPath := filepath.Join(p.cfg.OutputsDir, videoName)

		if err := p.overlay.OverlayAudio(ctx, templateVideo, af.AudioPath, videoPath); err != nil {
			log.Printf("❌ [Processor] Overlay failed for item %d: %v", af.Index, err)
			vf.Error = err.Error()
		} else {
			log.Printf("🎥 [Processor] Video %d generated: %s", af.Index, videoName)
			vf.VideoFileName = videoName
			vf.VideoPath = videoPath
			vf.VideoURL = "/outputs/" + videoName
		}
		videoFiles = append(videoFiles, vf)
	}

	return videoFiles
}

// processWithLipSync - 원격 립싱크 API로 질문별 비디오 생성
// 전제조건(소스 비디오, PUBLIC_BASE_URL, FAL_API_KEY) 미충족 시 note만 남기고 건너뛴다
func (p *Processor) processWithLipSync(ctx context.Context, job *model.Job, audioFiles []model.AudioFile) []model.VideoFile {
	sourceRel, sourceURL := p.findSourceVideo(job)
	if sourceRel == "" && sourceURL == "" {
		job.Note = "No video source found for lip-sync. Audio files generated only."
		return nil
	}
	if p.cfg.PublicBaseURL == "" {
		job.Note = "Set PUBLIC_BASE_URL for lip-sync. Audio files generated only."
		return nil
	}
	if p.cfg.FalAPIKey == "" {
		job.Note = "Set FAL_API_KEY for lip-sync. Audio files generated only."
		return nil
	}

	videoURL := sourceURL
	if videoURL == "" {
		videoURL = p.cfg.PublicBaseURL + "/inputs/" + sourceRel
	}

	videoFiles := make([]model.VideoFile, 0, len(audioFiles))

	for _, af := range audioFiles {
		vf := model.VideoFile{
			Index:      af.Index,
			TemplateID: af.TemplateID,
			Text:       af.Text,
			AudioURL:   af.AudioURL,
			Mode:       model.ModeLipSync,
		}

		videoName := fmt.Sprintf("%s_%02d_%s.mp4", job.JobID, af.Index, af.TemplateID)
		videoPath := filepath.Join(p.cfg.OutputsDir, videoName)
		audioURL := p.cfg.PublicBaseURL + af.AudioURL

		requestID, err := p.lipsync.Render(ctx, videoURL, audioURL, videoPath)
		vf.LipSyncRequestID = requestID
		if err != nil {
			log.Printf("❌ [Processor] Lip-sync failed for item %d: %v", af.Index, err)
			vf.Error = err.Error()
		} else {
			log.Printf("🎥 [Processor] Lip-sync video %d generated: %s", af.Index, videoName)
			vf.VideoFileName = videoName
			vf.VideoPath = videoPath
			vf.VideoURL = "/outputs/" + videoName
		}
		videoFiles = append(videoFiles, vf)
	}

	return videoFiles
}

// findSourceVideo - 립싱크 소스 비디오 탐색 우선순위:
// video_path(존재 시) → video_url → {inputExamples}/{job_input_dir} 스캔 → {inputExamples}/default-input 스캔
// 로컬 소스는 input-examples 기준 상대 경로로 반환해서 /inputs/ 정적 라우트로 노출한다
func (p *Processor) findSourceVideo(job *model.Job) (relPath, remoteURL string) {
	if job.VideoPath != "" {
		if _, err := os.Stat(job.VideoPath); err == nil {
			if rel, err := filepath.Rel(p.cfg.InputExamplesDir, job.VideoPath); err == nil && !strings.HasPrefix(rel, "..") {
				return filepath.ToSlash(rel), ""
			}
			return filepath.Base(job.VideoPath), ""
		}
		log.Printf("⚠️ [Processor] video_path does not exist: %s", job.VideoPath)
	}

	if job.VideoURL != "" {
		return "", job.VideoURL
	}

	if job.JobInputDir != "" {
		if found := firstVideoIn(filepath.Join(p.cfg.InputExamplesDir, job.JobInputDir)); found != "" {
			return job.JobInputDir + "/" + found, ""
		}
	}

	if found := firstVideoIn(filepath.Join(p.cfg.InputExamplesDir, "default-input")); found != "" {
		return "default-input/" + found, ""
	}

	return "", ""
}

// firstVideoIn - 디렉토리에서 첫 번째 비디오 파일명 반환
func firstVideoIn(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".mp4", ".mov", ".webm":
			return entry.Name()
		}
	}
	return ""
}

func (p *Processor) resolveLocale(job *model.Job) string {
	if job.Locale != "" {
		return job.Locale
	}
	if job.Language != "" {
		return job.Language
	}
	return "en"
}

// summarize - outputs 요약 작성 + 부분 실패 항목 분류 + note 결정
func (p *Processor) summarize(job *model.Job, mode string) {
	outputs := &model.Outputs{
		VideoFiles:  []model.OutputVideo{},
		AudioFiles:  []model.OutputAudio{},
		Voice:       job.SelectedVoice,
		QualityMode: mode,
	}

	for _, af := range job.AudioFiles {
		outputs.AudioFiles = append(outputs.AudioFiles, model.OutputAudio{
			Index:      af.Index,
			TemplateID: af.TemplateID,
			URL:        af.AudioURL,
		})
	}

	var failed []model.FailedItem
	for _, vf := range job.VideoFiles {
		if vf.Succeeded() {
			outputs.VideoFiles = append(outputs.VideoFiles, model.OutputVideo{
				Index:      vf.Index,
				TemplateID: vf.TemplateID,
				VideoURL:   vf.VideoURL,
				AudioURL:   vf.AudioURL,
				Mode:       vf.Mode,
			})
		} else {
			failed = append(failed, model.FailedItem{Index: vf.Index, Error: vf.Error})
		}
	}

	outputs.TotalVideos = len(outputs.VideoFiles)
	outputs.TotalAudio = len(outputs.AudioFiles)
	job.Outputs = outputs

	if len(failed) > 0 && outputs.TotalVideos > 0 {
		job.FailedItems = failed
		job.Note = fmt.Sprintf("Generated %d/%d videos. %d failed.", outputs.TotalVideos, len(job.AudioFiles), len(failed))
	} else if outputs.TotalVideos > 0 {
		job.Note = fmt.Sprintf("Successfully generated %d videos (%s mode).", outputs.TotalVideos, mode)
	} else if job.Note == "" {
		job.Note = fmt.Sprintf("Generated %d audio files.", len(job.AudioFiles))
	}
}
