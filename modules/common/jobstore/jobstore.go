package jobstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"interview-video-server/modules/common/model"
)

// Store - Job 레코드 파일 저장소 (jobsDir 아래 {job_id}.json 1개씩)
type Store struct {
	jobsDir string
}

// NewStore - Store 생성
func NewStore(jobsDir string) *Store {
	return &Store{jobsDir: jobsDir}
}

// EnsureDir - jobs 디렉토리 생성
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.jobsDir, 0o755)
}

func (s *Store) jobPath(jobID string) string {
	return filepath.Join(s.jobsDir, jobID+".json")
}

// Save - Job 레코드 전체 덮어쓰기 저장. 임시 파일에 쓴 뒤 rename으로 교체
func (s *Store) Save(job *model.Job) error {
	if err := s.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create jobs dir: %w", err)
	}

	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job %s: %w", job.JobID, err)
	}

	path := s.jobPath(job.JobID)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.JobID, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save job %s: %w", job.JobID, err)
	}

	return nil
}

// Load - Job 레코드 조회 (없으면 nil 반환)
func (s *Store) Load(jobID string) (*model.Job, error) {
	data, err := os.ReadFile(s.jobPath(jobID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read job %s: %w", jobID, err)
	}

	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job %s: %w", jobID, err)
	}

	return &job, nil
}

// ListPending - pending 상태 Job 목록 조회 (created_at 오름차순)
func (s *Store) ListPending() ([]*model.Job, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create jobs dir: %w", err)
	}

	entries, err := os.ReadDir(s.jobsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs dir: %w", err)
	}

	var pending []*model.Job
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		jobID := strings.TrimSuffix(entry.Name(), ".json")
		job, err := s.Load(jobID)
		if err != nil {
			// 깨진 레코드는 건너뛰고 나머지 조회 계속
			log.Printf("⚠️  Skipping unreadable job file %s: %v", entry.Name(), err)
			continue
		}

		if job != nil && job.Status == model.StatusPending {
			pending = append(pending, job)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt < pending[j].CreatedAt
	})

	return pending, nil
}
