package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/windrose/internal/render"
)

func TestForFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		want    []string
		wantErr error
	}{
		{name: "all formats in order", formats: []string{"xlsx", "png", "html"}, want: []string{"xlsx", "png", "html"}},
		{name: "none", formats: nil, want: []string{}},
		{name: "unknown", formats: []string{"png", "svg"}, wantErr: render.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderers, err := render.ForFormats(tt.formats)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got := make([]string, len(renderers))
			for i, r := range renderers {
				got[i] = r.Format()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
