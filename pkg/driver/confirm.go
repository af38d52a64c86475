package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decision is the outcome of the human confirmation step.
type Decision int

const (
	// Confirmed authorizes submission
	Confirmed Decision = iota

	// Declined aborts without submitting; it is not an error
	Declined
)

// confirmationGate blocks the issuing call on a yes/no prompt before any
// order is submitted. An empty response or "y" (any case) confirms,
// everything else declines. The gate blocks only the goroutine that asked;
// the rest of the process keeps running.
type confirmationGate struct {
	in  *bufio.Reader
	out io.Writer
}

func newConfirmationGate(in io.Reader, out io.Writer) *confirmationGate {
	return &confirmationGate{in: bufio.NewReader(in), out: out}
}

// ask suspends until the human answers. A closed input stream declines:
// with nobody left to answer, no order may be submitted.
func (g *confirmationGate) ask(prompt string) Decision {
	fmt.Fprintf(g.out, "%s [Y/n] ", prompt)

	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		return Declined
	}

	response := strings.ToLower(strings.TrimSpace(line))
	if response == "" || response == "y" {
		return Confirmed
	}
	return Declined
}
