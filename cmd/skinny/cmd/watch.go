package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-drift/skinny/pkg/skin"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Print a skin file whenever it changes",
		Long: `Load a skin file, print it, and print it again after every change
until interrupted (Ctrl+C).

Changes that leave the file invalid are logged and skipped; the last valid
version stays in effect.

` + registrationUsage + `
  --format FORMAT      Output format: yaml or toml`,
		Usage: "skinny watch [--format yaml|toml] [--subcontrol NAME]... <file>",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	args, err := parseRegistrations(args)
	if err != nil {
		return err
	}
	args, format, err := parseFormat(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("exactly one skin file is required\n\nUsage: skinny watch <file>")
	}
	path := args[0]

	s, err := skin.Load(path)
	if err != nil {
		return err
	}
	if format == nil {
		f, _ := skin.FormatOf(path)
		format = &f
	}
	if err := printSkin(s, *format); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reloads := make(chan *skin.Skin)
	if err := skin.Watch(ctx, path, func(s *skin.Skin) {
		select {
		case reloads <- s:
		case <-ctx.Done():
		}
	}); err != nil {
		return err
	}
	slog.Info("watching skin", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-reloads:
			fmt.Fprintf(stdout, "# reloaded %s at %s\n", path, time.Now().Format(time.TimeOnly))
			if err := printSkin(s, *format); err != nil {
				return err
			}
		}
	}
}
