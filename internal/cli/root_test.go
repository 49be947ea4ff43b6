package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOptions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts renderOpts
		want int
	}{
		"defaults":         {opts: renderOpts{escape: true}, want: 0},
		"include wins":     {opts: renderOpts{escape: true, include: []string{"body"}, exclude: []string{"bold"}}, want: 1},
		"exclude alone":    {opts: renderOpts{escape: true, exclude: []string{"bold"}}, want: 1},
		"all the toggles":  {opts: renderOpts{stripBold: true, missing: true, caption: "c"}, want: 4},
		"escape off added": {opts: renderOpts{escape: false}, want: 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, buildOptions(tt.opts), tt.want)
		})
	}
}
