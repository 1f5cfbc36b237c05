package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/skinny/pkg/aspect"
)

// registrationUsage documents the flags handled by parseRegistrations.
const registrationUsage = `Flags:
  --subcontrol NAME    Register a subcontrol name (repeatable)
  --state NAME         Register a user state name (repeatable)`

// parseRegistrations registers the subcontrols and user states named by
// --subcontrol and --state flags and returns the remaining arguments.
// Names are registered in the order given, so ids are stable across runs
// with the same flags.
func parseRegistrations(args []string) ([]string, error) {
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var flag, value string
		switch {
		case arg == "--subcontrol" || arg == "--state":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a name", arg)
			}
			flag, value = arg, args[i+1]
			i++
		case strings.HasPrefix(arg, "--subcontrol="), strings.HasPrefix(arg, "--state="):
			flag, value, _ = strings.Cut(arg, "=")
		default:
			rest = append(rest, arg)
			continue
		}
		if value == "" {
			return nil, fmt.Errorf("%s requires a name", flag)
		}
		if err := register(flag, value); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

func register(flag, name string) (err error) {
	// registries panic when full
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot register %q: %v", name, r)
		}
	}()
	if flag == "--subcontrol" {
		aspect.RegisterSubcontrol(name)
	} else {
		aspect.RegisterUserState(name)
	}
	return nil
}
