package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vfg2006/settlement-report-api/internal/usecases/reporting"
	"github.com/vfg2006/settlement-report-api/pkg/log"
	"github.com/vfg2006/settlement-report-api/pkg/utils"
)

const jobIDLength = 12

type JobStatus string

const (
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// Job é o estado de uma geração acompanhada pela API
type Job struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	StoreID    int64     `json:"store_id"`
	Status     JobStatus `json:"status"`
	Progress   string    `json:"progress,omitempty"`
	Path       string    `json:"-"`
	ErrorCode  string    `json:"error_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	FinishedAt time.Time `json:"finished_at"`

	handle string
}

func (j Job) Finished() bool {
	return j.Status != JobRunning
}

// GenerateFunc é a geração propriamente dita, recebendo o Display do job
type GenerateFunc func(ctx context.Context, display reporting.Display) (string, error)

// Board guarda os jobs em memória e serve de Display para o Runner
type Board struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	now  func() time.Time
}

func NewBoard() *Board {
	return &Board{
		jobs: make(map[string]*Job),
		now:  time.Now,
	}
}

// Start registra o job e executa fn em segundo plano. Uma loja só tem um job em execução por vez.
func (b *Board) Start(ctx context.Context, userID, storeID int64, fn GenerateFunc) (string, error) {
	id, err := utils.GenerateID(jobIDLength)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id do job: %w", err)
	}

	b.mu.Lock()
	for _, job := range b.jobs {
		if job.UserID == userID && job.StoreID == storeID && !job.Finished() {
			b.mu.Unlock()
			return "", ErrJobInProgress
		}
	}
	b.jobs[id] = &Job{
		ID:        id,
		UserID:    userID,
		StoreID:   storeID,
		Status:    JobRunning,
		CreatedAt: b.now(),
	}
	b.mu.Unlock()

	jobCtx := log.WithJobID(context.WithoutCancel(ctx), id)
	go b.run(jobCtx, id, fn)

	return id, nil
}

func (b *Board) run(ctx context.Context, id string, fn GenerateFunc) {
	logger := log.ForContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("error", fmt.Sprint(r)).Error("tracking: pânico durante a geração")
			b.finish(id, "", fmt.Errorf("pânico na geração: %v", r))
		}
	}()

	path, err := fn(ctx, b.Display(id))
	b.finish(id, path, err)
}

func (b *Board) finish(id, path string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	job, ok := b.jobs[id]
	if !ok {
		return
	}

	job.FinishedAt = b.now()
	job.Progress = ""
	job.handle = ""

	if err != nil {
		job.Status = JobFailed
		job.ErrorCode = reporting.ErrorCode(err)
		job.Error = err.Error()
		return
	}

	job.Status = JobDone
	job.Path = path
}

// Get retorna uma cópia do job
func (b *Board) Get(id string) (Job, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	job, ok := b.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return *job, nil
}

// GetForUser retorna o job apenas se ele pertence ao usuário
func (b *Board) GetForUser(id string, userID int64) (Job, error) {
	job, err := b.Get(id)
	if err != nil {
		return Job{}, err
	}
	if job.UserID != userID {
		return Job{}, ErrJobNotFound
	}
	return job, nil
}

// Prune remove os jobs finalizados há mais de olderThan e retorna quantos saíram
func (b *Board) Prune(olderThan time.Duration) int {
	cutoff := b.now().Add(-olderThan)

	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for id, job := range b.jobs {
		if job.Finished() && job.FinishedAt.Before(cutoff) {
			delete(b.jobs, id)
			removed++
		}
	}
	return removed
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.jobs)
}

// Display devolve o Display associado ao job
func (b *Board) Display(id string) reporting.Display {
	return &jobDisplay{board: b, jobID: id}
}

// jobDisplay expõe a mensagem transitória como o campo Progress do job
type jobDisplay struct {
	board *Board
	jobID string
}

func (d *jobDisplay) Send(_ context.Context, text string) (string, error) {
	handle, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	d.board.mu.Lock()
	defer d.board.mu.Unlock()

	job, ok := d.board.jobs[d.jobID]
	if !ok {
		return "", ErrJobNotFound
	}
	job.handle = handle
	job.Progress = text

	return handle, nil
}

func (d *jobDisplay) Edit(_ context.Context, handle string, text string) error {
	d.board.mu.Lock()
	defer d.board.mu.Unlock()

	job, ok := d.board.jobs[d.jobID]
	if !ok || job.handle != handle {
		return ErrJobNotFound
	}
	job.Progress = text
	return nil
}

func (d *jobDisplay) Delete(_ context.Context, handle string) error {
	d.board.mu.Lock()
	defer d.board.mu.Unlock()

	job, ok := d.board.jobs[d.jobID]
	if !ok || job.handle != handle {
		return ErrJobNotFound
	}
	job.handle = ""
	job.Progress = ""
	return nil
}
