package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leengari/relq/internal/exercises"
)

// Engine is the main entry point for running exercises
type Engine struct {
	env       exercises.Env
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine over env
func New(env exercises.Env) *Engine {
	return &Engine{
		env:       env,
		observers: make([]Observer, 0),
	}
}

// Env returns the environment exercises run in
func (e *Engine) Env() exercises.Env {
	return e.env
}

// Run executes one exercise. The returned Run is always non-nil; its Err is
// also returned, wrapped with the exercise ID.
func (e *Engine) Run(ex exercises.Exercise) (*Run, error) {
	run := newRun(ex)
	e.notify(Event{Type: EventRunStart, RunID: run.ID, Exercise: ex.ID})

	result, err := ex.Run(e.env)
	run.Duration = time.Since(run.StartTime)
	if err != nil {
		run.Err = fmt.Errorf("exercise %s: %w", ex.ID, err)
		e.notify(Event{
			Type:     EventRunError,
			RunID:    run.ID,
			Exercise: ex.ID,
			Duration: run.Duration,
			Err:      err,
		})
		return run, run.Err
	}

	run.Result = result
	e.notify(Event{
		Type:     EventRunEnd,
		RunID:    run.ID,
		Exercise: ex.ID,
		Duration: run.Duration,
		Rows:     result.Len(),
	})
	return run, nil
}

// RunAll executes the exercises in order. A failing exercise does not stop
// the others; all failures are joined into the returned error. Cancelling ctx
// stops before the next exercise.
func (e *Engine) RunAll(ctx context.Context, list []exercises.Exercise) ([]*Run, error) {
	runs := make([]*Run, 0, len(list))
	var errs []error
	for _, ex := range list {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		run, err := e.Run(ex)
		runs = append(runs, run)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return runs, errors.Join(errs...)
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
