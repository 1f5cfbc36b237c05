// Package testing provides fakes for deterministic tests of containers and
// transitions.
//
// Install a fake clock to step animations frame by frame:
//
//	clock := skinnytest.InstallClock(t)
//	box.SetCurrentIndex(1)
//	clock.Step(100 * time.Millisecond)
//
// Fake items record visibility, geometry, opacity and translation changes:
//
//	item := skinnytest.NewItem("page", layout.Size{Width: 100, Height: 40})
//
// Import with an alias to avoid clashing with the standard testing package:
//
//	import skinnytest "github.com/go-drift/skinny/pkg/testing"
package testing
