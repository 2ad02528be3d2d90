package driver

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                 = "driver"
	ErrDriverInvalidConfig    = sdkerrors.Register(codespace, 1700, "invalid driver config")
	ErrDriverInvalidCategory  = sdkerrors.Register(codespace, 1701, "invalid scenario category")
	ErrDriverUnknownScenario  = sdkerrors.Register(codespace, 1702, "unknown scenario")
	ErrDriverNoClient         = sdkerrors.Register(codespace, 1703, "no contract client available")
	ErrDriverScenarioTimedOut = sdkerrors.Register(codespace, 1704, "scenario timed out")
	ErrDriverScenarioPanicked = sdkerrors.Register(codespace, 1705, "scenario panicked")
	ErrDriverMetricsServer    = sdkerrors.Register(codespace, 1706, "failed to serve metrics")
)
