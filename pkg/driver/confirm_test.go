package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationGateDecisions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Decision
	}{
		{name: "empty input confirms", input: "\n", want: Confirmed},
		{name: "lowercase y confirms", input: "y\n", want: Confirmed},
		{name: "uppercase Y confirms", input: "Y\n", want: Confirmed},
		{name: "lowercase n declines", input: "n\n", want: Declined},
		{name: "uppercase N declines", input: "N\n", want: Declined},
		{name: "anything else declines", input: "maybe\n", want: Declined},
		{name: "whitespace only confirms", input: "   \n", want: Confirmed},
		{name: "closed input declines", input: "", want: Declined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			gate := newConfirmationGate(strings.NewReader(tt.input), &out)

			assert.Equal(t, tt.want, gate.ask("Place order?"))
		})
	}
}

func TestConfirmationGatePromptFormat(t *testing.T) {
	var out strings.Builder
	gate := newConfirmationGate(strings.NewReader("\n"), &out)

	gate.ask("Place order?")

	// Default-yes must be visible in the prompt itself.
	assert.Equal(t, "Place order? [Y/n] ", out.String())
}
