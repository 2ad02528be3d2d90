//go:build e2e

package e2e

import (
	"github.com/stretchr/testify/require"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/driver"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/messages"
)

func (s *suite) TheDriverTargetsTheConfiguredNetwork() {
	env, err := driver.NewEnv(s.config, driver.WithEnvLogger(s.logger))
	require.NoError(s, err)
	s.env = env
}

func (s *suite) TheDriverRunsTheScenario(name string) {
	s.run(driver.Selection{Names: []string{name}})
}

func (s *suite) TheDriverRunsTheCategory(category string) {
	categories, err := driver.ParseCategories(category)
	require.NoError(s, err)
	s.run(driver.Selection{Categories: categories})
}

func (s *suite) run(selection driver.Selection) {
	runner, err := driver.NewRunner(s.requireEnv(), driver.WithSelection(selection))
	require.NoError(s, err)

	report := runner.Run(s.ctx)
	if s.report == nil {
		s.report = report
		return
	}

	// Merge the results of consecutive runs; later non-skipped results win.
	for _, result := range report.Results {
		if result.Status == driver.StatusSkipped {
			continue
		}
		for i := range s.report.Results {
			if s.report.Results[i].Name == result.Name {
				s.report.Results[i] = result
			}
		}
	}
}

func (s *suite) TheScenarioShouldBe(name, status string) {
	require.NotNil(s, s.report, "no scenario has run")

	result, ok := s.report.Result(name)
	require.True(s, ok, "scenario %q is not part of the report", name)
	require.Equal(s, driver.Status(status), result.Status, result.Error)
}

func (s *suite) NoScenarioShouldHaveFailed() {
	require.NotNil(s, s.report, "no scenario has run")
	for _, result := range s.report.Results {
		require.NotEqual(s, driver.StatusFailed, result.Status, "%s: %s", result.Name, result.Error)
		require.NotEqual(s, driver.StatusTimedOut, result.Status, "%s: %s", result.Name, result.Error)
	}
}

func (s *suite) TheContractShouldHoldAMessageWithTopic(topic string) {
	env := s.requireEnv()

	contractClient, err := env.NewClient(s.ctx)
	require.NoError(s, err)
	defer contractClient.Close()

	resBz, err := contractClient.QueryContractSmart(s.ctx, env.Config.ContractAddress, messages.NewGetMessagesByTopic(topic))
	require.NoError(s, err)

	res, err := messages.DecodeMessagesResponse(resBz)
	require.NoError(s, err)
	require.NotEmpty(s, res.Messages)
	for _, message := range res.Messages {
		require.Equal(s, topic, message.Topic)
	}
}

func (s *suite) TheCurrentMessageIDShouldBeAtLeast(minID int64) {
	env := s.requireEnv()

	contractClient, err := env.NewClient(s.ctx)
	require.NoError(s, err)
	defer contractClient.Close()

	resBz, err := contractClient.QueryContractSmart(s.ctx, env.Config.ContractAddress, messages.NewGetCurrentID())
	require.NoError(s, err)

	res, err := messages.DecodeCurrentIDResponse(resBz)
	require.NoError(s, err)
	require.GreaterOrEqual(s, res.ID.Uint64(), uint64(minID))
}
