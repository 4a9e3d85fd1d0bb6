package worker

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"interview-video-server/modules/common/model"
)

// PendingLister - 대기 중인 Job 목록 조회
type PendingLister interface {
	ListPending() ([]*model.Job, error)
}

// Runner - Job 1개 처리기
type Runner interface {
	ProcessJob(ctx context.Context, job *model.Job) error
}

// Worker - 단일 스레드 폴링 워커. 한 번에 Job 1개만 처리한다
type Worker struct {
	store     PendingLister
	processor Runner
	interval  time.Duration
	busy      atomic.Bool
}

// New - Worker 생성
func New(store PendingLister, processor Runner, interval time.Duration) *Worker {
	return &Worker{
		store:     store,
		processor: processor,
		interval:  interval,
	}
}

// Start - 폴링 루프 시작. ctx 취소 시 종료
func (w *Worker) Start(ctx context.Context) {
	log.Printf("🚀 [Worker] Started (poll interval: %v)", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("🛑 [Worker] Stopped")
			return
		case <-ticker.C:
			w.PollOnce(ctx)
		}
	}
}

// PollOnce - 1회 폴링: 가장 오래된 pending Job을 집어 처리한다
// 이미 처리 중이면 아무것도 하지 않는다
func (w *Worker) PollOnce(ctx context.Context) {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	jobs, err := w.store.ListPending()
	if err != nil {
		log.Printf("❌ [Worker] Failed to list pending jobs: %v", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	job := jobs[0]
	log.Printf("🔍 [Worker] Picked up job: %s (%d pending)", job.JobID, len(jobs))

	if err := w.processor.ProcessJob(ctx, job); err != nil {
		log.Printf("❌ [Worker] Job %s failed: %v", job.JobID, err)
	}
}
