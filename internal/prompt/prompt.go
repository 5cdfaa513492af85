// Package prompt collects bill details interactively on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmynk/flatmates/internal/models"
)

// Answers holds values given up front, e.g. by command line flags.
// Nil fields are asked for.
type Answers struct {
	Amount *float64
	Period *string
	Name1  *string
	Days1  *int
	Name2  *string
	Days2  *int
}

// Input is the complete set of values needed to split a bill.
type Input struct {
	Amount float64
	Period string
	Name1  string
	Days1  int
	Name2  string
	Days2  int
}

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer line.
// A final line without newline is accepted; io.ErrUnexpectedEOF is returned
// when input ends before any answer was typed.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: no answer to %q", io.ErrUnexpectedEOF, strings.TrimSpace(question))
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Collect asks for every value missing from given, in the order a person
// would fill in the bill. Parse errors wrap models.ErrInvalidInput.
func (p *Prompter) Collect(given Answers) (*Input, error) {
	in := &Input{}
	var err error

	if given.Amount != nil {
		in.Amount = *given.Amount
	} else if in.Amount, err = p.askAmount(); err != nil {
		return nil, err
	}

	if given.Period != nil {
		in.Period = *given.Period
	} else if in.Period, err = p.Ask("What is the period of the bill? E.g. May 2024 : "); err != nil {
		return nil, err
	}

	if given.Name1 != nil {
		in.Name1 = *given.Name1
	} else if in.Name1, err = p.Ask("What is your name? "); err != nil {
		return nil, err
	}

	if given.Days1 != nil {
		in.Days1 = *given.Days1
	} else if in.Days1, err = p.askDays(in.Name1, in.Period); err != nil {
		return nil, err
	}

	if given.Name2 != nil {
		in.Name2 = *given.Name2
	} else if in.Name2, err = p.Ask("What is your flatmate name? "); err != nil {
		return nil, err
	}

	if given.Days2 != nil {
		in.Days2 = *given.Days2
	} else if in.Days2, err = p.askDays(in.Name2, in.Period); err != nil {
		return nil, err
	}

	return in, nil
}

func (p *Prompter) askAmount() (float64, error) {
	answer, err := p.Ask("Enter the bill amount in dollars: ")
	if err != nil {
		return 0, err
	}
	return models.ParseAmount(answer)
}

func (p *Prompter) askDays(name, period string) (int, error) {
	answer, err := p.Ask(fmt.Sprintf("How many days did %s stay in the house during %s? ", name, period))
	if err != nil {
		return 0, err
	}
	return models.ParseDays(answer)
}
