package driver

import (
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
)

// Status is the outcome of a scenario.
type Status string

const (
	StatusPassed   Status = logging.ResultPassed
	StatusFailed   Status = logging.ResultFailed
	StatusSkipped  Status = logging.ResultSkipped
	StatusTimedOut Status = logging.ResultTimedOut
)

// Result is the outcome of one scenario of a run.
type Result struct {
	Name       string        `yaml:"name"`
	Categories []string      `yaml:"categories"`
	Status     Status        `yaml:"status"`
	Timeout    time.Duration `yaml:"-"`
	Duration   time.Duration `yaml:"-"`
	Error      string        `yaml:"error,omitempty"`
}

// resultYAML renders durations as strings (e.g. "1.5s") instead of
// nanoseconds.
type resultYAML struct {
	Name       string   `yaml:"name"`
	Categories []string `yaml:"categories,flow"`
	Status     Status   `yaml:"status"`
	Timeout    string   `yaml:"timeout"`
	Duration   string   `yaml:"duration,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (result Result) MarshalYAML() (any, error) {
	out := resultYAML{
		Name:       result.Name,
		Categories: result.Categories,
		Status:     result.Status,
		Timeout:    result.Timeout.String(),
		Error:      result.Error,
	}
	if result.Duration > 0 {
		out.Duration = result.Duration.Round(time.Millisecond).String()
	}
	return out, nil
}

// Report lists the result of every scenario of a run, in run order.
type Report struct {
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result
}

type reportYAML struct {
	StartedAt string         `yaml:"started_at"`
	Duration  string         `yaml:"duration"`
	Summary   map[Status]int `yaml:"summary"`
	Results   []Result       `yaml:"results"`
}

// Count returns the number of scenarios which ended with status.
func (report *Report) Count(status Status) int {
	var count int
	for _, result := range report.Results {
		if result.Status == status {
			count++
		}
	}
	return count
}

// Failed reports whether any executed scenario failed or timed out.
func (report *Report) Failed() bool {
	return report.Count(StatusFailed) > 0 || report.Count(StatusTimedOut) > 0
}

// Result returns the result of the named scenario.
func (report *Report) Result(name string) (Result, bool) {
	for _, result := range report.Results {
		if result.Name == name {
			return result, true
		}
	}
	return Result{}, false
}

// WriteYAML encodes the report to w.
func (report *Report) WriteYAML(w io.Writer) error {
	out := reportYAML{
		StartedAt: report.StartedAt.UTC().Format(time.RFC3339),
		Duration:  report.Duration.Round(time.Millisecond).String(),
		Summary: map[Status]int{
			StatusPassed:   report.Count(StatusPassed),
			StatusFailed:   report.Count(StatusFailed),
			StatusTimedOut: report.Count(StatusTimedOut),
			StatusSkipped:  report.Count(StatusSkipped),
		},
		Results: report.Results,
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return err
	}
	return encoder.Close()
}

// WriteYAMLFile writes the report to path, replacing any existing file.
func (report *Report) WriteYAMLFile(path string) error {
	reportFile, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = report.WriteYAML(reportFile); err != nil {
		_ = reportFile.Close()
		return err
	}
	return reportFile.Close()
}
