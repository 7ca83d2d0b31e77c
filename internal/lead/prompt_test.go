package lead

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	transcript := "Agent: hello\nCustomer: how much is the premium plan?"
	p := BuildPrompt(transcript)

	assert.True(t, strings.HasSuffix(p, "Transcript:\n"+transcript+"\n"))
	assert.Contains(t, p, "Possibility: True or Possibility: False")
	assert.Contains(t, p, "Reason:")
	assert.Equal(t, p, BuildPrompt(transcript))
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    Verdict
		wantErr bool
	}{
		{name: "true",
			output: "Possibility: True\nReason: Customer asked about pricing.",
			want:   Verdict{Possibility: true, Reason: "Customer asked about pricing."},
		},
		{name: "false lower case",
			output: "possibility: false\nreason: Not interested at all.",
			want:   Verdict{Possibility: false, Reason: "Not interested at all."},
		},
		{name: "mixed case and spaces",
			output: "  POSSIBILITY:   TRUE  \r\n  Reason:  Wants a demo: next week. ",
			want:   Verdict{Possibility: true, Reason: "Wants a demo: next week."},
		},
		{name: "extra lines",
			output: "Sure!\nPossibility: False\nReason: Wrong number.\nThanks",
			want:   Verdict{Possibility: false, Reason: "Wrong number."},
		},
		{name: "last line wins",
			output: "Possibility: False\nPossibility: True\nReason: a\nReason: b",
			want:   Verdict{Possibility: true, Reason: "b"},
		},
		{name: "no reason",
			output:  "Possibility: True",
			wantErr: true,
		},
		{name: "empty reason",
			output:  "Possibility: True\nReason:   ",
			wantErr: true,
		},
		{name: "bad flag",
			output:  "Possibility: Maybe\nReason: unclear",
			wantErr: true,
		},
		{name: "numbered lines",
			output:  "1) Possibility: True\n2) Reason: x",
			wantErr: true,
		},
		{name: "empty",
			output:  "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerdict(tt.output)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparseable)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
