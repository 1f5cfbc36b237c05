package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/skinny/pkg/skin"
)

func init() {
	RegisterCommand(&Command{
		Name:  "skin",
		Short: "Check and print a skin file",
		Long: `Load a skin file and print it back in key order.

The file is read as YAML (.yaml, .yml) or TOML (.toml). Output uses the
format of the input unless --format is given. Loading fails on the first
hint with an unknown aspect name, color, curve or effect.

` + registrationUsage + `
  --format FORMAT      Output format: yaml or toml`,
		Usage: "skinny skin [--format yaml|toml] [--subcontrol NAME]... <file>",
		Run:   runSkin,
	})
}

func runSkin(args []string) error {
	args, err := parseRegistrations(args)
	if err != nil {
		return err
	}
	args, format, err := parseFormat(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("exactly one skin file is required\n\nUsage: skinny skin <file>")
	}

	s, err := skin.Load(args[0])
	if err != nil {
		return err
	}
	if format == nil {
		f, _ := skin.FormatOf(args[0])
		format = &f
	}
	return printSkin(s, *format)
}

// parseFormat extracts the --format flag. A nil format means none was
// given.
func parseFormat(args []string) ([]string, *skin.Format, error) {
	var rest []string
	var format *skin.Format
	for i := 0; i < len(args); i++ {
		var name string
		switch arg := args[i]; {
		case arg == "--format":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--format requires yaml or toml")
			}
			name = args[i+1]
			i++
		case strings.HasPrefix(arg, "--format="):
			name = strings.TrimPrefix(arg, "--format=")
		default:
			rest = append(rest, arg)
			continue
		}
		f, err := skin.FormatOf("." + name)
		if err != nil {
			return nil, nil, fmt.Errorf("unknown format %q (use yaml or toml)", name)
		}
		format = &f
	}
	return rest, format, nil
}

func printSkin(s *skin.Skin, format skin.Format) error {
	data, err := s.Marshal(format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
