package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Executor runs one command line, already split into arguments.
// It reports command failures itself; a returned error is printed by
// the loop and does not end it.
type Executor func(ctx context.Context, args []string) error

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	prompt    string
	exec      Executor
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithPrompt sets the prompt.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// WithCompleter sets the known commands.
func WithCompleter(c *Completer) Option {
	return func(r *REPL) {
		r.completer = c
	}
}

// WithHistory sets the command history.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// New creates a new REPL instance.
func New(exec Executor, opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		prompt:    "> ",
		exec:      exec,
		completer: NewCompleter(),
		history:   NewHistory(""),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads lines until EOF, "exit", "quit" or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.history.Load(); err != nil {
		fmt.Fprintf(r.output, "warning: load history: %v\n", err)
	}

	err := r.loop(ctx)
	if saveErr := r.history.Save(); saveErr != nil {
		err = errors.Join(err, fmt.Errorf("save history: %w", saveErr))
	}
	return err
}

func (r *REPL) loop(ctx context.Context) error {
	reader := bufio.NewReader(r.input)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(r.output, r.prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		line = strings.TrimSpace(line)
		if line != "" {
			r.history.Add(line)
			if line == "exit" || line == "quit" {
				return nil
			}
			r.execute(ctx, line)
		}

		if eof {
			fmt.Fprintln(r.output)
			return nil
		}
	}
}

func (r *REPL) execute(ctx context.Context, line string) {
	args, err := SplitLine(line)
	if err != nil {
		fmt.Fprintf(r.output, "error: %v\n", err)
		return
	}

	switch {
	case args[0] == "help":
		fmt.Fprintf(r.output, "commands: %s\n", strings.Join(r.completer.Complete(""), ", "))
		fmt.Fprintln(r.output, "builtins: help, history, exit, quit")
		return
	case args[0] == "history":
		r.printHistory()
		return
	case !r.completer.Known(args[0]):
		fmt.Fprintf(r.output, "error: unknown command %q%s\n", args[0], r.hint(args[0]))
		return
	}

	if err := r.exec(ctx, args); err != nil {
		fmt.Fprintf(r.output, "error: %v\n", err)
	}
}

// printHistory lists remembered lines, oldest first.
func (r *REPL) printHistory() {
	n := r.history.Len()
	for i := n - 1; i >= 0; i-- {
		fmt.Fprintf(r.output, "%4d  %s\n", n-i, r.history.Get(i))
	}
}

// hint suggests commands sharing the first letter of name.
func (r *REPL) hint(name string) string {
	if name == "" {
		return ""
	}
	s := r.completer.Complete(name[:1])
	if len(s) == 0 {
		return ""
	}
	return "; try: " + strings.Join(s, ", ")
}

// SplitLine splits a command line into arguments. Single quotes keep
// their content literally; double quotes allow \" and \\ escapes; a
// backslash outside quotes escapes the next character.
func SplitLine(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inArg   bool
		quote   rune
		escaped bool
	)

	for _, ch := range line {
		switch {
		case escaped:
			if quote == '"' && ch != '"' && ch != '\\' {
				cur.WriteRune('\\')
			}
			cur.WriteRune(ch)
			escaped = false
		case quote == '\'':
			if ch == '\'' {
				quote = 0
			} else {
				cur.WriteRune(ch)
			}
		case quote == '"':
			switch ch {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur.WriteRune(ch)
			}
		case ch == '\\':
			escaped, inArg = true, true
		case ch == '\'' || ch == '"':
			quote, inArg = ch, true
		case ch == ' ' || ch == '\t':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(ch)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return nil, errors.New("trailing backslash")
	}
	if inArg {
		args = append(args, cur.String())
	}
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	return args, nil
}
