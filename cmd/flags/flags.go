package flags

const (
	FlagLogLevel      = "log-level"
	FlagLogLevelUsage = "The logging level (debug|info|warn|error)"
	DefaultLogLevel   = "info"

	FlagLogOutput      = "log-output"
	FlagLogOutputUsage = "The logging output (file path); defaults to stdout"
	DefaultLogOutput   = "-"

	FlagConfig      = "config"
	FlagConfigUsage = "Path to the driver config file; by default messages_config.yaml is searched in $HOME/.messages and the working directory"
	DefaultConfig   = ""

	FlagRPCEndpoint      = "rpc-endpoint"
	FlagRPCEndpointUsage = "CometBFT RPC endpoint of the target network"

	FlagFaucetURL      = "faucet-url"
	FlagFaucetURLUsage = "Faucet credit endpoint which receives POST {denom, address} requests"

	FlagGasPrice      = "gas-price"
	FlagGasPriceUsage = "Gas price used to compute fees (e.g. 0.025ujunox); empty means zero-fee transactions with simulated gas"

	FlagWasmPath      = "wasm-path"
	FlagWasmPathUsage = "Path to the compiled messages contract"

	FlagCategories      = "categories"
	FlagCategoriesUsage = "Scenario categories to run (stable|needs-funds|destructive|faucet|offline)"

	FlagExcludeCategories      = "exclude-categories"
	FlagExcludeCategoriesUsage = "Scenario categories to skip, even if they carry an enabled category"

	FlagScenarios      = "scenarios"
	FlagScenariosUsage = "Scenario names to run regardless of their categories"

	FlagReport      = "report"
	FlagReportUsage = "File path to write the YAML run report to; empty disables the report"

	FlagMetricsAddr      = "metrics-addr"
	FlagMetricsAddrUsage = "Address to serve prometheus metrics on while the run executes (e.g. :9090); empty disables the metrics server"

	FlagPrefix      = "prefix"
	FlagPrefixUsage = "Bech32 account address prefix"

	FlagWords      = "words"
	FlagWordsUsage = "Number of mnemonic words (12|15|18|21|24)"
	DefaultWords   = 12
)
