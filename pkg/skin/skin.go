// Package skin holds the hint tables that style controls and reads them from
// skin files.
//
// A skin file lists hints by aspect, in YAML or TOML:
//
//	name: dark
//	hints:
//	  - aspect: Margin|Top
//	    metric: 4
//	  - aspect: TextColor|Disabled
//	    color: gray
//	  - aspect: StackBox.Panel
//	    animation: {duration: 250ms, curve: ease-in-out, effect: slide}
//
// The aspect is written the way aspect.Parse reads it. Subcontrols and user
// states must be registered before the file is loaded.
package skin

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/skinny/pkg/animation"
	"github.com/go-drift/skinny/pkg/aspect"
	"github.com/go-drift/skinny/pkg/errors"
	"github.com/go-drift/skinny/pkg/stack"
)

// Format is the encoding of a skin file.
type Format int

const (
	// YAML is the default format, used for .yaml and .yml files.
	YAML Format = iota
	// TOML is used for .toml files.
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format for the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("unsupported skin file extension %q", filepath.Ext(path))
	}
}

// Skin is a named hint table.
type Skin struct {
	Name string
	// Path is the file the skin was loaded from, if any.
	Path  string
	Hints *Hints
}

// New returns an empty skin.
func New(name string) *Skin {
	return &Skin{Name: name, Hints: NewHints()}
}

type file struct {
	Name  string      `yaml:"name" toml:"name"`
	Hints []fileEntry `yaml:"hints" toml:"hints"`
}

type fileEntry struct {
	Aspect    string         `yaml:"aspect" toml:"aspect"`
	Metric    *float64       `yaml:"metric,omitempty" toml:"metric,omitempty"`
	Flag      *int           `yaml:"flag,omitempty" toml:"flag,omitempty"`
	Color     string         `yaml:"color,omitempty" toml:"color,omitempty"`
	Animation *fileAnimation `yaml:"animation,omitempty" toml:"animation,omitempty"`
}

type fileAnimation struct {
	Duration string `yaml:"duration" toml:"duration"`
	Curve    string `yaml:"curve,omitempty" toml:"curve,omitempty"`
	Effect   string `yaml:"effect,omitempty" toml:"effect,omitempty"`
}

// Load reads a skin file. The format is chosen by the file extension.
// Failures are returned as *errors.SkinnyError.
func Load(path string) (*Skin, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, errors.New("skin.Load", errors.KindConfig, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("skin.Load", errors.KindConfig, path, fmt.Errorf("failed to read skin file: %w", err))
	}
	s, err := Parse(data, format)
	if err != nil {
		var se *errors.SkinnyError
		if stderrors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	s.Path = path
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	slog.Debug("skin loaded", "name", s.Name, "path", path, "hints", s.Hints.Len())
	return s, nil
}

// Parse decodes skin file content.
func Parse(data []byte, format Format) (*Skin, error) {
	var f file
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case TOML:
		err = toml.Unmarshal(data, &f)
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return nil, errors.New("skin.Parse", errors.KindParsing, "", fmt.Errorf("failed to parse skin: %w", err))
	}

	s := New(f.Name)
	for i, e := range f.Hints {
		if err := s.add(e); err != nil {
			return nil, errors.New("skin.Parse", errors.KindParsing, "", fmt.Errorf("hint %d (%s): %w", i, e.Aspect, err))
		}
	}
	return s, nil
}

func (s *Skin) add(e fileEntry) error {
	a, err := aspect.Parse(e.Aspect)
	if err != nil {
		return err
	}

	set := 0
	if e.Metric != nil {
		set++
		s.Hints.SetMetric(a, *e.Metric)
	}
	if e.Flag != nil {
		set++
		s.Hints.SetFlag(a, *e.Flag)
	}
	if e.Color != "" {
		set++
		c, err := ParseColor(e.Color)
		if err != nil {
			return err
		}
		s.Hints.SetColor(a, c)
	}
	if e.Animation != nil {
		set++
		anim, err := parseAnimation(*e.Animation)
		if err != nil {
			return err
		}
		s.Hints.SetAnimation(a, anim)
	}

	switch set {
	case 0:
		return fmt.Errorf("no value")
	case 1:
		return nil
	default:
		return fmt.Errorf("more than one value")
	}
}

func parseAnimation(fa fileAnimation) (Animation, error) {
	d, err := time.ParseDuration(fa.Duration)
	if err != nil {
		return Animation{}, fmt.Errorf("invalid duration: %w", err)
	}
	if d < 0 {
		return Animation{}, fmt.Errorf("negative duration %s", d)
	}
	if _, err := animation.CurveByName(fa.Curve); err != nil {
		return Animation{}, err
	}
	if _, err := stack.EffectByName(fa.Effect); err != nil {
		return Animation{}, err
	}
	return Animation{Duration: d, Curve: fa.Curve, Effect: fa.Effect}, nil
}

// Marshal encodes the skin in the given format. Hints are written in key
// order, so the output of equal skins is identical.
func (s *Skin) Marshal(format Format) ([]byte, error) {
	f := file{Name: s.Name}
	for _, a := range s.Hints.Keys() {
		hint, _ := s.Hints.Get(a)
		e := fileEntry{Aspect: a.String()}
		switch hint.Kind {
		case MetricHint:
			e.Metric = &hint.Metric
		case FlagHint:
			e.Flag = &hint.Flag
		case ColorHint:
			e.Color = formatColor(hint.Color)
		case AnimationHint:
			e.Aspect = (a &^ aspect.Animator).String()
			e.Animation = &fileAnimation{
				Duration: hint.Animation.Duration.String(),
				Curve:    hint.Animation.Curve,
				Effect:   hint.Animation.Effect,
			}
		}
		f.Hints = append(f.Hints, e)
	}

	switch format {
	case YAML:
		return yaml.Marshal(&f)
	case TOML:
		return toml.Marshal(&f)
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
}

// StackAnimator returns a transition animator built from the animation hint
// for hint, or nil when the skin has none. It makes a skin usable as the
// animator provider of stack boxes.
func (s *Skin) StackAnimator(hint aspect.Aspect) stack.Animator {
	anim, ok := s.Hints.Animation(hint)
	if !ok {
		return nil
	}
	curve, err := animation.CurveByName(anim.Curve)
	if err != nil {
		errors.Report(errors.New("skin.StackAnimator", errors.KindAnimation, s.Path, err))
		return nil
	}
	effect, err := stack.EffectByName(anim.Effect)
	if err != nil {
		errors.Report(errors.New("skin.StackAnimator", errors.KindAnimation, s.Path, err))
		return nil
	}
	return stack.NewTransitionAnimator(anim.Duration, curve, effect)
}
