package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"interview-video-server/modules/common/config"
	"interview-video-server/modules/common/gemini"
	"interview-video-server/modules/common/jobstore"
	"interview-video-server/modules/jobs"
	"interview-video-server/modules/lipsync"
	"interview-video-server/modules/overlay"
	"interview-video-server/modules/processor"
	"interview-video-server/modules/prompts"
	"interview-video-server/modules/questions"
	"interview-video-server/modules/tts"
	"interview-video-server/modules/voice"
	"interview-video-server/modules/worker"
)

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "interview-video-server",
	})
}

func ensureDirs(cfg *config.Config) {
	dirs := []string{cfg.UploadsDir, cfg.OutputsDir, cfg.JobsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("❌ Failed to create directory %s: %v", dir, err)
		}
	}
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	ensureDirs(cfg)

	// 협력 객체 구성
	store := jobstore.NewStore(cfg.JobsDir)
	if err := store.EnsureDir(); err != nil {
		log.Fatalf("❌ Failed to prepare jobs directory: %v", err)
	}

	llm := gemini.NewClient(cfg.GeminiAPIKeys, cfg.GeminiModel)
	promptStore := prompts.NewStore(cfg.PromptsDir)
	questionGen := questions.NewService(promptStore, llm, cfg.DefaultTemplates, cfg.DefaultLanguage)
	voiceSelector := voice.NewSelector(llm)
	ttsService := tts.NewService(cfg)
	overlayService := overlay.NewService(cfg.TemplatesDir)
	lipsyncService := lipsync.NewService(cfg)

	proc := processor.NewProcessor(cfg, store, questionGen, voiceSelector, ttsService, overlayService, lipsyncService)

	// 폴링 워커 시작 (백그라운드)
	w := worker.New(store, proc, cfg.WorkerPollInterval)
	go w.Start(context.Background())

	// 라우터 설정
	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	jobHandler := jobs.NewHandler(store, promptStore, cfg.DefaultTemplates)
	jobHandler.RegisterRoutes(r)

	// 정적 파일 (생성된 결과물 + 업로드된 입력)
	r.PathPrefix("/outputs/").Handler(http.StripPrefix("/outputs/", http.FileServer(http.Dir(cfg.OutputsDir))))
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	r.PathPrefix("/inputs/").Handler(http.StripPrefix("/inputs/", http.FileServer(http.Dir(cfg.InputExamplesDir))))

	addr := cfg.GetAddr()
	log.Printf("🚀 Interview Video Server starting on %s", addr)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📝 Submit jobs: POST http://localhost:%s/api/jobs", cfg.Port)
	log.Printf("⏳ Worker polling every %v", cfg.WorkerPollInterval)

	// 서버 시작
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
