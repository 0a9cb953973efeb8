package cli

import (
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	argsTerminator = "--"
	flagPrefix     = "-"
)

// reorderArgs moves the flags that follow positional arguments in front of them, so that
// `csvfilter people.csv -f state=md` parses like `csvfilter -f state=md people.csv`.
// The flag package stops at the first positional argument otherwise. Arguments after `--` stay positional.
// The first element is the program name and is kept in place.
func reorderArgs(flags []cli.Flag, arguments []string) []string {
	if len(arguments) == 0 {
		return arguments
	}

	takesValue := valueFlagNames(flags)

	var (
		flagArgs   []string
		positional []string
		args       = arguments[1:]
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == argsTerminator:
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case len(arg) > 1 && strings.HasPrefix(arg, flagPrefix):
			flagArgs = append(flagArgs, arg)

			name := strings.TrimLeft(arg, flagPrefix)
			if strings.Contains(name, "=") {
				continue
			}

			if _, ok := takesValue[name]; !ok {
				continue
			}

			// a missing value is left for the flag parser to report
			if i+1 >= len(args) {
				return arguments
			}

			i++
			flagArgs = append(flagArgs, args[i])
		default:
			positional = append(positional, arg)
		}
	}

	reordered := make([]string, 0, len(arguments)+1)
	reordered = append(reordered, arguments[0])
	reordered = append(reordered, flagArgs...)

	if len(positional) > 0 {
		reordered = append(reordered, argsTerminator)
		reordered = append(reordered, positional...)
	}

	return reordered
}

// valueFlagNames returns the names and aliases of the flags that take a value.
func valueFlagNames(flags []cli.Flag) map[string]struct{} {
	names := make(map[string]struct{})

	for _, flag := range flags {
		docFlag, ok := flag.(cli.DocGenerationFlag)
		if !ok || !docFlag.TakesValue() {
			continue
		}

		for _, name := range flag.Names() {
			names[name] = struct{}{}
		}
	}

	return names
}
