package cli

import flag "github.com/spf13/pflag"

// NewFlagSet returns a clean FlagSet with ContinueOnError. Usage is silenced
// here; callers print Usage themselves to the writer they choose.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}
