package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{name: "two",
			segments: []Segment{{0, 1.5, "Hello"}, {1.5, 3.2, "world"}},
			want:     "[0.00 - 1.50] Hello\n[1.50 - 3.20] world\n",
		},
		{name: "whisper leading space",
			segments: []Segment{{12.346, 14, " Thanks for calling. "}},
			want:     "[12.35 - 14.00] Thanks for calling.\n",
		},
		{name: "none",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSegments(tt.segments))
		})
	}
}
