package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Server
	Host string
	Port string

	// Gemini API (질문 생성 + 음성 컨텍스트 분석)
	GeminiAPIKeys []string
	GeminiModel   string

	// TTS / Lip-sync API
	OpenAIAPIKey     string
	ElevenLabsAPIKey string
	FalAPIKey        string

	// 립싱크 API가 로컬 파일에 접근할 수 있는 공개 URL (ngrok 등)
	PublicBaseURL string

	// 디렉토리
	UploadsDir       string
	OutputsDir       string
	JobsDir          string
	PromptsDir       string
	TemplatesDir     string
	InputExamplesDir string

	// Worker / 폴링
	WorkerPollInterval  time.Duration
	LipSyncPollInterval time.Duration
	LipSyncTimeout      time.Duration

	// 기본값
	DefaultVoice     string
	DefaultLanguage  string
	DefaultTemplates []string
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	rootDir := getEnv("DATA_ROOT", ".")

	globalConfig = &Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "3000"),

		GeminiAPIKeys: splitKeys(getEnv("GEMINI_API_KEYS", os.Getenv("GEMINI_API_KEY"))),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		ElevenLabsAPIKey: getEnv("ELEVENLABS_API_KEY", ""),
		FalAPIKey:        getEnv("FAL_API_KEY", ""),

		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),

		UploadsDir:       filepath.Join(rootDir, getEnv("UPLOADS_DIR", "data/uploads")),
		OutputsDir:       filepath.Join(rootDir, getEnv("OUTPUTS_DIR", "data/outputs")),
		JobsDir:          filepath.Join(rootDir, getEnv("JOBS_DIR", "data/jobs")),
		PromptsDir:       filepath.Join(rootDir, getEnv("PROMPTS_DIR", "prompts")),
		TemplatesDir:     filepath.Join(rootDir, getEnv("TEMPLATES_DIR", "templates")),
		InputExamplesDir: filepath.Join(rootDir, getEnv("INPUT_EXAMPLES_DIR", "input-examples")),

		WorkerPollInterval:  getEnvMillis("WORKER_POLL_INTERVAL_MS", 2000),
		LipSyncPollInterval: getEnvMillis("LIPSYNC_POLL_INTERVAL_MS", 5000),
		LipSyncTimeout:      getEnvMillis("LIPSYNC_TIMEOUT_MS", 600000), // 10분

		// OpenAI TTS 음성: alloy, echo, fable, onyx, nova, shimmer
		DefaultVoice:    getEnv("DEFAULT_VOICE", "nova"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),

		// 전체 질문 세트 생성 시 사용하는 기본 프롬프트 템플릿
		DefaultTemplates: []string{
			"intro-video",
			"must-have-requirements-check",
			"tell-about-relevant-experience",
			"key-frameworks-in-use",
			"failed-plan-fix",
		},
	}

	// 선택 기능용 키는 경고만 출력 (기능별로 없으면 해당 단계가 스킵됨)
	if len(globalConfig.GeminiAPIKeys) == 0 {
		log.Println("⚠️  GEMINI_API_KEY not set - question generation will fail")
	}
	if globalConfig.OpenAIAPIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY not set - OpenAI TTS will fail")
	}
	if globalConfig.ElevenLabsAPIKey == "" {
		log.Println("⚠️  ELEVENLABS_API_KEY not set - voice auto-selection disabled")
	}
	if globalConfig.FalAPIKey == "" {
		log.Println("⚠️  FAL_API_KEY not set - lip-sync mode disabled")
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Gemini: %s (%d keys)", globalConfig.GeminiModel, len(globalConfig.GeminiAPIKeys))
	log.Printf("   Jobs dir: %s", globalConfig.JobsDir)
	log.Printf("   Worker poll: %v", globalConfig.WorkerPollInterval)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// GetAddr - 서버 리슨 주소 생성
func (c *Config) GetAddr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvMillis - 밀리초 환경변수 파싱
func getEnvMillis(key string, defaultMs int) time.Duration {
	ms := defaultMs
	if str := os.Getenv(key); str != "" {
		if parsed, err := strconv.Atoi(str); err == nil {
			ms = parsed
		}
	}
	return time.Duration(ms) * time.Millisecond
}

// splitKeys - 콤마로 구분된 API 키 목록 파싱
func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(k); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}
