// Package shell implements the line-oriented console over the object
// registry. Each input line is tokenized, dispatched to a verb, and answered
// with one line of output or one diagnostic. Errors never end the session.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/internal/storage"
)

// Prompt is printed before every line read from a terminal.
const Prompt = "(hbnb) "

// Shell reads commands from in and writes results and diagnostics to out.
type Shell struct {
	registry    *storage.Registry
	in          io.Reader
	out         io.Writer
	interactive bool
	logger      *slog.Logger

	root    *cobra.Command
	stopped bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithInteractive overrides terminal detection on the input.
func WithInteractive(on bool) Option {
	return func(s *Shell) { s.interactive = on }
}

// WithLogger sets the logger used for per-command debug events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a shell over registry. The prompt is shown only when in is a
// terminal, unless WithInteractive says otherwise.
func New(registry *storage.Registry, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		registry:    registry,
		in:          in,
		out:         out,
		interactive: isTerminal(in),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root = s.newRootCmd()
	return s
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newRootCmd builds the verb tree. The root itself never runs; a line that
// does not name a verb is reported as unknown syntax.
func (s *Shell) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hbnb",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.out)

	help := s.newHelpCmd()
	root.SetHelpCommand(help)
	root.AddCommand(
		s.newAllCmd(),
		s.newCountCmd(),
		s.newCreateCmd(),
		s.newDestroyCmd(),
		s.newEOFCmd(),
		help,
		s.newQuitCmd(),
		s.newShowCmd(),
		s.newUpdateCmd(),
	)
	for _, c := range root.Commands() {
		c.DisableFlagParsing = true
		c.SilenceErrors = true
		c.SilenceUsage = true
	}
	return root
}

// Run reads lines until end of input, quit, or ctx is done. End of input
// prints one blank line. Cancellation is observed between lines. Lines have
// no length limit.
func (s *Shell) Run(ctx context.Context) error {
	reader := bufio.NewReader(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.interactive {
			fmt.Fprint(s.out, Prompt)
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		if line == "" && err != nil {
			fmt.Fprintln(s.out)
			return nil
		}
		if s.Execute(ctx, strings.TrimRight(line, "\r\n")) {
			return nil
		}
	}
}

// Execute runs one input line and reports whether the shell should stop.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens, err := shlex.Split(line)
	if err != nil || len(tokens) == 0 {
		s.unknown(line)
		return false
	}
	cmd, _, err := s.root.Find(tokens)
	if err != nil || cmd == s.root {
		s.unknown(line)
		return false
	}

	s.logger.Debug("command", "verb", cmd.Name(), "args", len(tokens)-1)
	s.root.SetArgs(tokens)
	if err := s.root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(s.out, diagnose(err))
	}
	stop := s.stopped
	s.stopped = false
	return stop
}

func (s *Shell) unknown(line string) {
	fmt.Fprintf(s.out, "*** Unknown syntax: %s\n", line)
}

// arg returns args[i], or "" when the line was too short.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
