package driver

var ScenarioRunsTotal = scenarioRunsTotal
