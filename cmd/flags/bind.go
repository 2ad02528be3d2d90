package flags

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagDescriptor ties a string flag to the viper config key it overrides.
// Default is only shown in the usage; the effective default comes from the
// config layers.
type FlagDescriptor struct {
	FlagName    string
	ConfigKey   string
	Default     string
	Description string
}

// BindFlags registers a string flag on flagSet for each descriptor and binds
// it to its config key on v. A bound flag wins over env vars and the config
// file only when it is set on the command line.
func BindFlags(v *viper.Viper, flagSet *pflag.FlagSet, flagDescriptors ...FlagDescriptor) error {
	for _, flagDesc := range flagDescriptors {
		if flagSet.Lookup(flagDesc.FlagName) == nil {
			flagSet.String(flagDesc.FlagName, flagDesc.Default, flagDesc.Description)
		}

		flag := flagSet.Lookup(flagDesc.FlagName)
		if flag == nil {
			return ErrFlagNotRegistered.Wrapf("flag %q", flagDesc.FlagName)
		}

		if err := v.BindPFlag(flagDesc.ConfigKey, flag); err != nil {
			return err
		}
	}
	return nil
}
