package model

// Job 상태 상수
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Quality 모드 상수
const (
	ModeTemplate  = "template"   // 템플릿 비디오 + 오디오 오버레이 (저렴, 빠름)
	ModeLipSync   = "lipsync"    // 질문별 풀 립싱크 생성 (고가, 고품질)
	ModeAudioOnly = "audio_only" // 오디오만 생성
)

// Job - 파일로 저장되는 Job 레코드 전체 구조
type Job struct {
	// Identity / lifecycle
	JobID       string `json:"job_id"`
	Status      string `json:"status"`
	QualityMode string `json:"quality_mode,omitempty"`
	CreatedAt   string `json:"created_at"`
	StartedAt   string `json:"started_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
	FailedAt    string `json:"failed_at,omitempty"`

	// 입력 파라미터 (생성 후 불변)
	VideoURL         string `json:"video_url,omitempty"`
	VideoPath        string `json:"video_path,omitempty"`
	Script           string `json:"script,omitempty"`
	JobDescription   string `json:"job_description,omitempty"`
	PromptTemplateID string `json:"prompt_template_id,omitempty"`
	Voice            string `json:"voice,omitempty"`
	VoiceID          string `json:"voice_id,omitempty"`
	TTSProvider      string `json:"tts_provider,omitempty"`
	Language         string `json:"language,omitempty"`
	Locale           string `json:"locale,omitempty"`
	SpeakerName      string `json:"speaker_name,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Accent           string `json:"accent,omitempty"`
	Age              int    `json:"age,omitempty"`
	AudioURL         string `json:"audio_url,omitempty"`
	JobInputDir      string `json:"job_input_dir,omitempty"`

	// 파이프라인 진행 중 추가되는 상태
	GeneratedQuestions []Question      `json:"generated_questions,omitempty"`
	AutoSelectedVoice  *VoiceSelection `json:"auto_selected_voice,omitempty"`
	AudioFiles         []AudioFile     `json:"audio_files,omitempty"`
	SelectedVoice      string          `json:"selected_voice,omitempty"`
	VideoFiles         []VideoFile     `json:"video_files,omitempty"`
	Outputs            *Outputs        `json:"outputs,omitempty"`
	Note               string          `json:"note,omitempty"`
	FailedItems        []FailedItem    `json:"failed_items,omitempty"`
	Error              string          `json:"error,omitempty"`
}

// Question - 템플릿별 생성 결과 (text 또는 error 중 하나)
type Question struct {
	TemplateID string `json:"template_id"`
	Text       string `json:"text,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Usable - 다운스트림에서 사용 가능한 질문인지 확인
func (q Question) Usable() bool {
	return q.Text != "" && q.Error == ""
}

// AudioFile - 질문 1개당 생성되는 오디오 아티팩트 (index는 1부터)
type AudioFile struct {
	Index      int    `json:"index"`
	TemplateID string `json:"template_id"`
	Text       string `json:"text"`
	AudioFile  string `json:"audio_file"`
	AudioPath  string `json:"audio_path"`
	AudioURL   string `json:"audio_url"`
	Voice      string `json:"voice"`
	Provider   string `json:"provider"`
}

// VideoFile - 오디오 아티팩트와 1:1 대응하는 비디오 아티팩트
// VideoFileName이 비어있고 Error가 채워지면 해당 항목만 실패한 것
type VideoFile struct {
	Index            int    `json:"index"`
	TemplateID       string `json:"template_id"`
	Text             string `json:"text"`
	AudioURL         string `json:"audio_url"`
	VideoFileName    string `json:"video_file,omitempty"`
	VideoPath        string `json:"video_path,omitempty"`
	VideoURL         string `json:"video_url,omitempty"`
	LipSyncRequestID string `json:"lipsync_request_id,omitempty"`
	Mode             string `json:"mode,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Succeeded - 비디오 파일이 실제로 생성됐는지 확인
func (v VideoFile) Succeeded() bool {
	return v.VideoFileName != ""
}

// Outputs - Job 완료 시 만들어지는 최종 요약
type Outputs struct {
	VideoFiles  []OutputVideo `json:"video_files"`
	AudioFiles  []OutputAudio `json:"audio_files"`
	TotalVideos int           `json:"total_videos"`
	TotalAudio  int           `json:"total_audio"`
	Voice       string        `json:"voice,omitempty"`
	QualityMode string        `json:"quality_mode"`
}

// OutputVideo - outputs 요약용 비디오 항목
type OutputVideo struct {
	Index      int    `json:"index"`
	TemplateID string `json:"template_id"`
	VideoURL   string `json:"video_url"`
	AudioURL   string `json:"audio_url"`
	Mode       string `json:"mode"`
}

// OutputAudio - outputs 요약용 오디오 항목
type OutputAudio struct {
	Index      int    `json:"index"`
	TemplateID string `json:"template_id"`
	URL        string `json:"url"`
}

// FailedItem - 부분 실패 항목 (index + 원인)
type FailedItem struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// VoiceAnalysis - LLM 또는 이름 휴리스틱이 추론한 음성 특성
type VoiceAnalysis struct {
	Accent    string `json:"accent"`
	Gender    string `json:"gender"`
	Age       string `json:"age"`
	Reasoning string `json:"reasoning"`
}

// VoiceSelection - 자동 선택된 음성 정보
type VoiceSelection struct {
	VoiceID          string        `json:"voiceId"`
	VoiceName        string        `json:"voiceName"`
	VoiceDescription string        `json:"voiceDescription"`
	Analysis         VoiceAnalysis `json:"analysis"`
}
