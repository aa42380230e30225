// Package cli implements the hbnb command line: the root command that
// starts the console, plus init and version.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/internal/shell"
	"github.com/mesh-intelligence/hbnb/internal/storage"
	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataFile  string
	backend   string
	logLevel  string
}

// NewRootCmd creates the top-level "hbnb" command with global flags and all
// subcommands registered. Run without a subcommand it starts the console.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "hbnb",
		Short: "Console for the hbnb object registry",
		Long: "hbnb creates, shows, updates, and destroys typed objects kept in a\n" +
			"single data file. Commands are read one per line from standard input.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, f)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&f.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/hbnb)")
	root.PersistentFlags().StringVar(&f.dataFile, "data-file", "", "backing data file (default: $(CWD)/file.json)")
	root.PersistentFlags().StringVar(&f.backend, "backend", "", "storage backend: json or sqlite (default: json)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(f))

	return root
}

// Execute runs the root command and exits with the appropriate code.
// SIGINT and SIGTERM cancel the console between lines.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hbnb:", err)
	}
	os.Exit(exitCode(err))
}

// runConsole reloads the registry from the configured store and hands it to
// the console on the command's input and output.
func runConsole(cmd *cobra.Command, f *rootFlags) error {
	s, err := loadSettings(f)
	if err != nil {
		return exitError(exitUserError, err)
	}
	logger := newLogger(cmd.ErrOrStderr(), s.logLevel)

	store, err := storage.Open(s.config)
	if err != nil {
		return exitError(exitUserError, err)
	}
	defer store.Close()

	reg := storage.New(types.DefaultCatalog(), store, storage.WithLogger(logger))
	if err := reg.Reload(); err != nil {
		return exitError(exitSysError, err)
	}
	logger.Info("console started", "backend", s.config.Backend, "data_file", store.Location(), "objects", reg.All().Len())

	sh := shell.New(reg, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithLogger(logger))
	if err := sh.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return exitError(exitSysError, err)
	}
	return nil
}

// codedError carries the process exit code for err.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func exitError(code int, err error) error {
	return &codedError{code: code, err: err}
}

// exitCode maps an error returned by the root command to an exit code.
// Errors raised by cobra itself (bad flags, unknown commands) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
