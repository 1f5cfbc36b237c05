package cmd

import (
	"fmt"

	"github.com/go-drift/skinny/pkg/aspect"
)

func init() {
	RegisterCommand(&Command{
		Name:  "aspect",
		Short: "Decode or encode aspect keys",
		Long: `Print the numeric key and the names of each aspect.

An aspect is given either as a hexadecimal key or as names joined by "|",
for example "Margin|Top|Metric" or "Button.Panel|Background|Pressed".
Subcontrols and user states are only known by name after registering them
with --subcontrol and --state, in the order the application registers them.

` + registrationUsage + `
  --fields             Also print each field of the key`,
		Usage: "skinny aspect [--fields] [--subcontrol NAME]... <hex|names>...",
		Run:   runAspect,
	})
}

func runAspect(args []string) error {
	args, err := parseRegistrations(args)
	if err != nil {
		return err
	}

	fields := false
	var values []string
	for _, arg := range args {
		if arg == "--fields" {
			fields = true
			continue
		}
		values = append(values, arg)
	}
	if len(values) == 0 {
		return fmt.Errorf("at least one aspect is required\n\nUsage: skinny aspect <hex|names>...")
	}

	for _, v := range values {
		a, err := aspect.Parse(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "0x%016x  %s\n", uint64(a), a)
		if fields {
			printFields(a)
		}
	}
	return nil
}

func printFields(a aspect.Aspect) {
	row := func(name string, value any) {
		fmt.Fprintf(stdout, "  %-12s %v\n", name, value)
	}
	row("subcontrol", aspect.SubcontrolName(a))
	if a.IsFundamental() {
		row("fundamental", true)
	} else {
		row("primitive", uint64(a.BoxPrimitive())>>16)
		row("edges", fmt.Sprintf("%04b", uint64(a.Edges())>>12))
	}
	row("type", uint64(a.Type())>>8)
	row("animator", a.IsAnimator())
	row("index", a.IndexValue())
	row("state", fmt.Sprintf("%#x", uint64(a.State())>>32))
}
