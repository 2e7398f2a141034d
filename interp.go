package pmpv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Interpreter reads lines, evaluates them against its own Vars and writes
// results to out and diagnostics to errOut.
type Interpreter struct {
	vars     *Vars
	out      io.Writer
	errOut   io.Writer
	prompt   string
	color    bool
	log      *logrus.Logger
	errStyle lipgloss.Style
}

type Option func(*Interpreter)

func WithVars(vars *Vars) Option {
	return func(in *Interpreter) {
		in.vars = vars
	}
}

func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.out = w
	}
}

func WithErrOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.errOut = w
	}
}

// WithPrompt sets the text written to the output before each line is read.
func WithPrompt(prompt string) Option {
	return func(in *Interpreter) {
		in.prompt = prompt
	}
}

// WithColor renders diagnostics in red when the error output supports it.
func WithColor(color bool) Option {
	return func(in *Interpreter) {
		in.color = color
	}
}

func WithLogger(log *logrus.Logger) Option {
	return func(in *Interpreter) {
		in.log = log
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		vars:   NewVars(),
		out:    os.Stdout,
		errOut: os.Stderr,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.color {
		in.errStyle = lipgloss.NewRenderer(in.errOut).NewStyle().
			Foreground(lipgloss.Color("196"))
	}
	return in
}

func (in *Interpreter) Vars() *Vars {
	return in.vars
}

// Exec tokenizes and evaluates a single line. A line that fails to
// tokenize prints nothing on the output; every other line prints exactly
// one line, which is empty unless the line has a value.
func (in *Interpreter) Exec(line string) (Result, error) {
	tokens, err := Tokenize(line, in.vars)
	if err != nil {
		in.diagnose(line, err)
		return Result{}, err
	}
	in.log.Debugf("tokens: %v", Tokens(tokens))

	res, err := Evaluate(tokens, in.vars)
	if err != nil {
		in.diagnose(line, err)
		fmt.Fprintln(in.out)
		return Result{}, err
	}

	switch res.Kind {
	case ResultValue:
		in.log.Debugf("value: %d", res.Value)
		fmt.Fprintln(in.out, res.Value)
	case ResultAssigned:
		in.log.Debugf("bound %s = %d", res.Name, res.Value)
		fmt.Fprintln(in.out)
	default:
		fmt.Fprintln(in.out)
	}
	return res, nil
}

func (in *Interpreter) diagnose(line string, err error) {
	msg := err.Error()
	var e *Error
	if errors.As(err, &e) {
		msg = "Invalid expression: " + e.Msg
		in.log.WithFields(logrus.Fields{
			"kind": e.Kind,
			"line": line,
		}).Debug("line rejected")
	}
	if in.color {
		msg = in.errStyle.Render(msg)
	}
	fmt.Fprintln(in.errOut, msg)
}

// Run executes lines from r until end of input. End of input is not an
// error. Lines are not limited in length.
func (in *Interpreter) Run(r io.Reader) error {
	buf := bufio.NewReader(r)
	for {
		if in.prompt != "" {
			fmt.Fprint(in.out, in.prompt)
		}
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			in.Exec(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
	}
}
