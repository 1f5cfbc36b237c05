package skin_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/skinny/pkg/skin"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"SteelBlue", color.NRGBA{R: 70, G: 130, B: 180, A: 255}},
		{"transparent", color.NRGBA{}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#1e90ff", color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 255}},
		{"#1e90ff80", color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0x80}},
		{" #000000 ", color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := skin.ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "blurple", "#12", "#gggggg", "#1e90ffzz"} {
		_, err := skin.ParseColor(in)
		assert.Error(t, err, "ParseColor(%q)", in)
	}
}
