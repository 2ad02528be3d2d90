package flags

import (
	"strings"

	"github.com/spf13/pflag"
)

// NormalizeConfigKeyNames lets flags be spelled like their config keys,
// e.g. --rpc_endpoint for --rpc-endpoint.
func NormalizeConfigKeyNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
