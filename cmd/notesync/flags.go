package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindChanged binds flag to key only when it was set on the command line,
// so an empty flag default never hides an environment value.
func bindChanged(v *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil || !flag.Changed {
		return nil
	}
	return v.BindPFlag(key, flag)
}
