// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"dnasearch/internal/version"
)

// Usage prints the help text for fs to out.
func Usage(out io.Writer, fs *flag.FlagSet, name string) {
	fmt.Fprintf(out, "%s – exact DNA pattern search and algorithm timing\n\n", name)
	fmt.Fprintln(out, "License: MIT")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s -p PATTERN -t SEQUENCE [flags]\n", name)
	fmt.Fprintf(out, "  %s -p PATTERN [flags] FILE.fasta|FILE.txt|- ...\n\n", name)

	fmt.Fprintln(out, "Flags:")
	fmt.Fprint(out, fs.FlagUsages())

	fmt.Fprintln(out, "\nAlgorithms: bruteforce | horspool | boyermoore | all")
	fmt.Fprintln(out, "Config:     --config, $DNASEARCH_CONFIG, or $XDG_CONFIG_HOME/dnasearch/config.yaml")
}
