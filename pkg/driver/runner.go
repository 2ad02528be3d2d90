package driver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

// Runner executes scenarios one after the other, in order, each under its
// own timeout.
type Runner struct {
	env       *Env
	logger    polylog.Logger
	scenarios []Scenario
	selection Selection
}

// RunnerOptionFn configures a Runner.
type RunnerOptionFn func(*Runner)

// WithScenarios replaces the catalog of scenarios.
func WithScenarios(scenarios ...Scenario) RunnerOptionFn {
	return func(r *Runner) {
		r.scenarios = scenarios
	}
}

// WithSelection replaces DefaultSelection.
func WithSelection(selection Selection) RunnerOptionFn {
	return func(r *Runner) {
		r.selection = selection
	}
}

// NewRunner returns a runner over Catalog with DefaultSelection. Scenario
// names given in the selection MUST exist.
func NewRunner(env *Env, opts ...RunnerOptionFn) (*Runner, error) {
	r := &Runner{
		env:       env,
		scenarios: Catalog(),
		selection: DefaultSelection(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, name := range r.selection.Names {
		if !r.hasScenario(name) {
			return nil, ErrDriverUnknownScenario.Wrapf("%q", name)
		}
	}

	r.logger = logging.ForComponent(env.Logger(), logging.ComponentRunner)
	return r, nil
}

// Scenarios returns the scenarios of the runner, selected or not.
func (r *Runner) Scenarios() []Scenario {
	return r.scenarios
}

// Run executes every selected scenario and reports on all of them. A failing
// or timed out scenario does not stop the run. Once ctx is done, the
// remaining scenarios are reported as skipped.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{StartedAt: time.Now()}

	for _, scenario := range r.scenarios {
		result := Result{
			Name:       scenario.Name,
			Categories: scenario.CategoryNames(),
			Timeout:    scenario.Timeout,
		}

		switch {
		case !r.selection.Selects(scenario):
			result.Status = StatusSkipped
		case ctx.Err() != nil:
			result.Status = StatusSkipped
			result.Error = ctx.Err().Error()
		default:
			result = r.runScenario(ctx, scenario, result)
		}

		scenarioRunsTotal.WithLabelValues(scenario.Name, string(result.Status)).Inc()
		report.Results = append(report.Results, result)
	}

	report.Duration = time.Since(report.StartedAt)
	r.logger.Info().
		Int(string(StatusPassed), report.Count(StatusPassed)).
		Int(string(StatusFailed), report.Count(StatusFailed)).
		Int(string(StatusTimedOut), report.Count(StatusTimedOut)).
		Int(string(StatusSkipped), report.Count(StatusSkipped)).
		Dur(logging.FieldDuration, report.Duration).
		Msg("run finished")

	return report
}

// runScenario runs scenario in its own goroutine so that a call which ignores
// its context still cannot hold the run past the scenario's timeout.
func (r *Runner) runScenario(ctx context.Context, scenario Scenario, result Result) Result {
	logger := r.logger.With(
		logging.FieldScenario, scenario.Name,
		logging.FieldTimeout, scenario.Timeout.String(),
	)
	logger.Info().Strs(logging.FieldCategories, result.Categories).Msg("scenario started")

	scenarioCtx, cancel := context.WithTimeout(ctx, scenario.Timeout)
	defer cancel()
	scenarioCtx = logger.WithContext(scenarioCtx)

	startTime := time.Now()
	errCh := make(chan error, 1)
	go func() {
		// A panic fails this scenario only.
		defer func() {
			if p := recover(); p != nil {
				errCh <- ErrDriverScenarioPanicked.Wrapf("%v", p)
			}
		}()
		errCh <- scenario.Run(scenarioCtx, r.env, logger)
	}()

	var err error
	select {
	case err = <-errCh:
	case <-scenarioCtx.Done():
		// Prefer the scenario's own result when it raced the deadline.
		select {
		case err = <-errCh:
		default:
			err = scenarioCtx.Err()
		}
	}
	result.Duration = time.Since(startTime)

	switch {
	case err == nil:
		result.Status = StatusPassed
	case errors.Is(scenarioCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		result.Status = StatusTimedOut
		result.Error = ErrDriverScenarioTimedOut.Wrapf("after %s: %v", scenario.Timeout, err).Error()
	default:
		result.Status = StatusFailed
		result.Error = err.Error()
	}

	scenarioDurationSeconds.WithLabelValues(scenario.Name).Observe(result.Duration.Seconds())

	event := logger.Info()
	if result.Status != StatusPassed {
		event = logger.Error().Str("error", result.Error)
	}
	event.
		Str(logging.FieldStatus, string(result.Status)).
		Dur(logging.FieldDuration, result.Duration).
		Msg("scenario finished")

	return result
}

func (r *Runner) hasScenario(name string) bool {
	for _, scenario := range r.scenarios {
		if strings.EqualFold(strings.TrimSpace(name), scenario.Name) {
			return true
		}
	}
	return false
}
