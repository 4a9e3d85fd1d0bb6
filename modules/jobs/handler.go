package jobs

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"interview-video-server/modules/common/jobstore"
	"interview-video-server/modules/common/model"
	"interview-video-server/modules/prompts"
	"interview-video-server/modules/tts"
	"interview-video-server/modules/voice"
)

// Handler - Job 생성/조회 엔드포인트
type Handler struct {
	store            *jobstore.Store
	prompts          *prompts.Store
	defaultTemplates []string
}

// NewHandler - Handler 생성
func NewHandler(store *jobstore.Store, promptStore *prompts.Store, defaultTemplates []string) *Handler {
	return &Handler{
		store:            store,
		prompts:          promptStore,
		defaultTemplates: defaultTemplates,
	}
}

// RegisterRoutes - 라우터에 Job 엔드포인트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs", h.CreateJob).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/jobs/{jobId}", h.GetJob).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/templates", h.ListTemplates).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/voices", h.ListVoices).Methods("GET", "OPTIONS")
	log.Println("✅ Job routes registered: /api/jobs, /api/jobs/{jobId}, /api/templates, /api/voices")
}

// CreateJobRequest - Job 생성 요청
type CreateJobRequest struct {
	VideoURL         string `json:"video_url"`
	VideoPath        string `json:"video_path"`
	Script           string `json:"script"`
	JobDescription   string `json:"job_description"`
	PromptTemplateID string `json:"prompt_template_id"`
	Voice            string `json:"voice"`
	VoiceID          string `json:"voice_id"`
	TTSProvider      string `json:"tts_provider"`
	Language         string `json:"language"`
	Locale           string `json:"locale"`
	SpeakerName      string `json:"speaker_name"`
	Gender           string `json:"gender"`
	Accent           string `json:"accent"`
	Age              int    `json:"age"`
	QualityMode      string `json:"quality_mode"`
	AudioURL         string `json:"audio_url"`
	JobInputDir      string `json:"job_input_dir"`
}

// CreateJob - Job 제출. pending 상태로 저장하면 워커가 집어간다
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse job request: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Script == "" && req.JobDescription == "" {
		writeError(w, http.StatusBadRequest, "Either script or job_description is required")
		return
	}

	if req.QualityMode != model.ModeAudioOnly && req.VideoURL == "" && req.VideoPath == "" && req.JobInputDir == "" {
		writeError(w, http.StatusBadRequest, "Either video_url, video_path or job_input_dir is required")
		return
	}

	if req.PromptTemplateID != "" && !h.templateExists(req.PromptTemplateID) {
		writeError(w, http.StatusBadRequest, "Unknown prompt_template_id: "+req.PromptTemplateID)
		return
	}

	jobID := "job_" + uuid.New().String()[:8]

	job := &model.Job{
		JobID:       jobID,
		Status:      model.StatusPending,
		QualityMode: req.QualityMode,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),

		VideoURL:         req.VideoURL,
		VideoPath:        req.VideoPath,
		Script:           req.Script,
		JobDescription:   req.JobDescription,
		PromptTemplateID: req.PromptTemplateID,
		Voice:            req.Voice,
		VoiceID:          req.VoiceID,
		TTSProvider:      req.TTSProvider,
		Language:         req.Language,
		Locale:           req.Locale,
		SpeakerName:      req.SpeakerName,
		Gender:           req.Gender,
		Accent:           req.Accent,
		Age:              req.Age,
		AudioURL:         req.AudioURL,
		JobInputDir:      req.JobInputDir,
	}

	if err := h.store.Save(job); err != nil {
		log.Printf("❌ Failed to save job %s: %v", jobID, err)
		writeError(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	log.Printf("📝 Job created: %s (mode: %s)", jobID, job.QualityMode)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"job_id":     jobID,
		"status":     model.StatusPending,
		"created_at": job.CreatedAt,
		"message":    "Job created and queued for processing",
	})
}

// GetJob - Job 상태 조회 (공개 필드만 노출)
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	vars := mux.Vars(r)
	jobID := vars["jobId"]

	job, err := h.store.Load(jobID)
	if err != nil {
		log.Printf("❌ Failed to load job %s: %v", jobID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "Job not found: "+jobID)
		return
	}

	// 공개 필드만 노출 (script, job_description 등 원본 입력은 제외)
	response := map[string]interface{}{
		"job_id":     job.JobID,
		"status":     job.Status,
		"created_at": job.CreatedAt,
	}
	if job.QualityMode != "" {
		response["quality_mode"] = job.QualityMode
	}
	if job.StartedAt != "" {
		response["started_at"] = job.StartedAt
	}
	if job.CompletedAt != "" {
		response["completed_at"] = job.CompletedAt
	}
	if job.FailedAt != "" {
		response["failed_at"] = job.FailedAt
	}
	if len(job.GeneratedQuestions) > 0 {
		response["generated_questions"] = job.GeneratedQuestions
	}
	if job.Outputs != nil {
		response["outputs"] = job.Outputs
	}
	if job.Note != "" {
		response["note"] = job.Note
	}
	if len(job.FailedItems) > 0 {
		response["failed_items"] = job.FailedItems
	}
	if job.Error != "" {
		response["error"] = job.Error
	}

	json.NewEncoder(w).Encode(response)
}

// ListTemplates - 등록된 프롬프트 템플릿 목록
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	ids := h.prompts.List()

	templates := make([]*prompts.Metadata, 0, len(ids))
	for _, id := range ids {
		meta, err := h.prompts.GetMetadata(id)
		if err != nil {
			continue
		}
		templates = append(templates, meta)
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"templates": templates,
		"defaults":  h.defaultTemplates,
	})
}

// ListVoices - 사용 가능한 음성 목록 (ElevenLabs 라이브러리 + OpenAI 기본 음성)
func (h *Handler) ListVoices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"elevenlabs": voice.Library,
		"openai":     tts.AvailableVoices,
	})
}

func (h *Handler) templateExists(templateID string) bool {
	for _, id := range h.prompts.List() {
		if id == templateID {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
