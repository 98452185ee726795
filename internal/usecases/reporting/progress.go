package reporting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/vfg2006/settlement-report-api/pkg/log"
	"go.uber.org/atomic"
)

const (
	DefaultTickInterval = time.Second
	DefaultMaxTicks     = 480
)

type Stage string

const (
	StageInit        Stage = "init"
	StageFetch       Stage = "fetch"
	StageProcess     Stage = "process"
	StageSpreadsheet Stage = "create_excel"
)

// DefaultStages são os textos exibidos ao usuário para cada etapa
var DefaultStages = map[Stage]string{
	StageInit:        "⏳ Подготовка к генерации...",
	StageFetch:       "📡 Получение данных из WB...",
	StageProcess:     "📈 Обработка и объединение данных...",
	StageSpreadsheet: "📄 Формирование Excel файла...",
}

var dots = []string{".", "..", "..."}

// Display é o canal onde a mensagem transitória de progresso é exibida
type Display interface {
	Send(ctx context.Context, text string) (string, error)
	Edit(ctx context.Context, handle string, text string) error
	Delete(ctx context.Context, handle string) error
}

// ProgressCell guarda a etapa atual. Só o pipeline escreve e só o Runner lê.
type ProgressCell struct {
	stage *atomic.String
}

func NewProgressCell(initial Stage) *ProgressCell {
	return &ProgressCell{stage: atomic.NewString(string(initial))}
}

func (c *ProgressCell) Set(stage Stage) {
	c.stage.Store(string(stage))
}

func (c *ProgressCell) Stage() Stage {
	return Stage(c.stage.Load())
}

type Pipeline func(ctx context.Context, progress *ProgressCell) (string, error)

type Runner struct {
	Display      Display
	TickInterval time.Duration
	MaxTicks     int
	Stages       map[Stage]string

	newTicker func(d time.Duration) (<-chan time.Time, func())
	discard   func(path string) error
}

func NewRunner(display Display, tickInterval time.Duration, maxTicks int) *Runner {
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	return &Runner{
		Display:      display,
		TickInterval: tickInterval,
		MaxTicks:     maxTicks,
		Stages:       DefaultStages,
		newTicker:    realTicker,
		discard:      os.Remove,
	}
}

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(d)
	return ticker.C, ticker.Stop
}

type outcome struct {
	path string
	err  error
}

// Run exibe o progresso do pipeline até ele terminar ou estourar MaxTicks.
// A mensagem transitória é sempre removida antes do retorno.
func (r *Runner) Run(ctx context.Context, title string, pipeline Pipeline) (string, error) {
	logger := log.ForContext(ctx)

	progress := NewProgressCell(StageInit)
	displayCtx := context.WithoutCancel(ctx)

	handle, err := r.Display.Send(displayCtx, r.stageText(StageInit, title))
	if err != nil {
		logger.WithField("error", err.Error()).Warn("reporting: erro ao enviar mensagem de progresso")
	}

	pipelineCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				logger.WithField("error", fmt.Sprint(p)).Error("reporting: pânico no pipeline de geração")
				done <- outcome{err: fmt.Errorf("%w: %v", ErrPipelinePanic, p)}
			}
		}()

		path, err := pipeline(pipelineCtx, progress)
		done <- outcome{path: path, err: err}
	}()

	ticks, stop := r.newTicker(r.TickInterval)
	defer stop()

	lastStage := StageInit
	tick := 0

	for {
		select {
		case result := <-done:
			r.remove(displayCtx, handle)
			if result.err != nil {
				return "", classify(result.err)
			}
			// cancelado pelo chamador depois de gravar a planilha
			if err := pipelineCtx.Err(); err != nil {
				r.discardArtifact(displayCtx, result.path)
				return "", err
			}
			return result.path, nil

		case <-ticks:
			tick++
			if tick > r.MaxTicks {
				logger.WithField("ticks", tick-1).Error("reporting: tempo limite excedido, cancelando o pipeline")
				cancel()
				result := <-done
				r.discardArtifact(displayCtx, result.path)
				r.remove(displayCtx, handle)
				return "", ErrTimeout
			}

			stage := progress.Stage()
			text := r.stageText(stage, title)
			if stage == lastStage {
				text += dots[(tick-1)%len(dots)]
			}
			lastStage = stage

			if handle == "" {
				continue
			}
			if err := r.Display.Edit(displayCtx, handle, text); err != nil {
				logger.WithField("error", err.Error()).Warn("reporting: erro ao atualizar mensagem de progresso")
			}
		}
	}
}

func (r *Runner) stageText(stage Stage, title string) string {
	if text, ok := r.Stages[stage]; ok {
		return text
	}
	return title
}

func (r *Runner) remove(ctx context.Context, handle string) {
	if handle == "" {
		return
	}
	if err := r.Display.Delete(ctx, handle); err != nil {
		log.ForContext(ctx).WithField("error", err.Error()).Warn("reporting: erro ao remover mensagem de progresso")
	}
}

// discardArtifact apaga a planilha de uma geração que não será entregue
func (r *Runner) discardArtifact(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := r.discard(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.ForContext(ctx).WithField("error", err.Error()).Warn("reporting: erro ao remover planilha descartada")
	}
}
