// Package scheduler runs pipeline stages in dependency order.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports"
	"go.trai.ch/zerr"
)

// StageStatus represents the status of a stage.
type StageStatus string

const (
	// StatusPending indicates the stage is waiting to be executed.
	StatusPending StageStatus = "Pending"
	// StatusRunning indicates the stage is currently executing.
	StatusRunning StageStatus = "Running"
	// StatusCompleted indicates the stage has finished successfully.
	StatusCompleted StageStatus = "Completed"
	// StatusFailed indicates the stage execution failed.
	StatusFailed StageStatus = "Failed"
)

// Scheduler manages the execution of stages in a dependency graph.
type Scheduler struct {
	logger    ports.Logger
	telemetry ports.Telemetry

	mu          sync.RWMutex
	stageStatus map[string]StageStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(logger ports.Logger, telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		logger:      logger,
		telemetry:   telemetry,
		stageStatus: make(map[string]StageStatus),
	}
}

func (s *Scheduler) initStageStatuses(graph *domain.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stageStatus = make(map[string]StageStatus, graph.StageCount())
	for stage := range graph.Walk() {
		s.stageStatus[stage.Name] = StatusPending
	}
}

func (s *Scheduler) updateStatus(name string, status StageStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stageStatus[name] = status
}

// Status returns the last known status of the named stage.
func (s *Scheduler) Status(name string) StageStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stageStatus[name]
}

// Run validates graph and executes its stages with at most parallelism running at once.
// A stage starts once all its dependencies have completed. A failed stage never releases
// its dependents, so they stay pending; independent stages keep running. All stage
// errors are joined and returned.
func (s *Scheduler) Run(ctx context.Context, graph *domain.Graph, parallelism int) error {
	if err := graph.Validate(); err != nil {
		return err
	}
	if parallelism < 1 {
		parallelism = 1
	}

	s.initStageStatuses(graph)
	state := s.newRunState(ctx, graph, parallelism)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil {
			if state.active == 0 {
				return errors.Join(state.errs, state.ctx.Err())
			}
			// Nothing new starts once cancelled; drain the running stages.
			state.handleResult(<-state.resultsCh)
			continue
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

type result struct {
	stage string
	err   error
}

type runState struct {
	graph       *domain.Graph
	inDegree    map[string]int
	ready       []string
	active      int
	resultsCh   chan result
	errs        error
	ctx         context.Context
	parallelism int
	s           *Scheduler
}

func (s *Scheduler) newRunState(ctx context.Context, graph *domain.Graph, parallelism int) *runState {
	inDegree := make(map[string]int, graph.StageCount())

	var ready []string
	for stage := range graph.Walk() {
		inDegree[stage.Name] = len(stage.Dependencies)
		if len(stage.Dependencies) == 0 {
			ready = append(ready, stage.Name)
		}
	}

	return &runState{
		graph:       graph,
		inDegree:    inDegree,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
		ctx:         ctx,
		parallelism: parallelism,
		s:           s,
	}
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(name, StatusRunning)

		stage, _ := state.graph.Stage(name)
		go func(st domain.Stage) {
			state.resultsCh <- result{stage: st.Name, err: state.execute(st)}
		}(stage)
	}
}

func (state *runState) execute(stage domain.Stage) error {
	ctx, vertex := state.s.telemetry.Record(state.ctx, stage.Name)
	state.s.logger.Debug("stage started", "stage", stage.Name)

	var err error
	if stage.Run != nil {
		err = stage.Run(ctx)
	}
	vertex.Complete(err)
	return err
}

func (state *runState) handleResult(res result) {
	state.active--
	if res.err != nil {
		wrapped := zerr.With(domain.Because(domain.ErrStageFailed, res.err), "stage", res.stage)
		state.errs = errors.Join(state.errs, wrapped)
		state.s.updateStatus(res.stage, StatusFailed)
		return
	}

	state.s.updateStatus(res.stage, StatusCompleted)
	state.s.logger.Debug("stage completed", "stage", res.stage)
	for _, dep := range state.graph.Dependents(res.stage) {
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}
