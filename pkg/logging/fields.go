// Package logging defines the standard field names and component names used
// for structured logging across the driver, so that every component logs the
// same concept under the same key.
package logging

import "github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"

// Standard field name constants for structured logging.
const (
	// Component identification
	FieldComponent = "component"

	// Scenario fields
	FieldScenario   = "scenario"
	FieldCategories = "categories"
	FieldTimeout    = "timeout"
	FieldStatus     = "status"

	// Chain fields
	FieldChainID   = "chain_id"
	FieldEndpoint  = "endpoint"
	FieldAddress   = "address"
	FieldSigner    = "signer"
	FieldContract  = "contract"
	FieldCodeID    = "code_id"
	FieldChecksum  = "checksum"
	FieldDenom     = "denom"
	FieldAmount    = "amount"
	FieldSequence  = "sequence"
	FieldAccountNo = "account_number"

	// Transaction fields
	FieldTxHash    = "tx_hash"
	FieldHeight    = "height"
	FieldGasWanted = "gas_wanted"
	FieldGasUsed   = "gas_used"
	FieldFee       = "fee"
	FieldCode      = "code"
	FieldMsgTypes  = "msg_types"

	// Payload fields
	FieldQuery    = "query"
	FieldMsg      = "msg"
	FieldResult   = "result"
	FieldEvents   = "events"
	FieldResponse = "response"
	FieldMnemonic = "mnemonic"

	// Timing fields
	FieldDuration = "duration"
	FieldAttempt  = "attempt"

	// Network fields
	FieldURL        = "url"
	FieldHTTPStatus = "http_status"
	FieldPath       = "path"
	FieldSize       = "size"
)

// Component name constants for the "component" field.
const (
	ComponentRunner       = "scenario_runner"
	ComponentScenario     = "scenario"
	ComponentSetup        = "client_setup"
	ComponentTxClient     = "tx_client"
	ComponentTxContext    = "tx_context"
	ComponentFaucetClient = "faucet_client"
	ComponentWallet       = "wallet"
	ComponentCLI          = "cli"
)

// Scenario result constants for the "status" field.
const (
	ResultPassed   = "passed"
	ResultFailed   = "failed"
	ResultSkipped  = "skipped"
	ResultTimedOut = "timed-out"
)

// ForComponent returns a child logger tagged with the given component name.
func ForComponent(logger polylog.Logger, component string) polylog.Logger {
	return logger.With(FieldComponent, component)
}
