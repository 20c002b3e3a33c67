// Package cli implements the rolodex command-line interface: a thin
// presentation layer that collects raw field values, runs exactly one
// ContactStore operation per command, and renders the outcome.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/dataset"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/rolodex"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// errOutcomeFailed is returned by one-shot commands whose operation ended in
// a non-success outcome. The outcome has already been rendered.
var errOutcomeFailed = errors.New("operation did not succeed")

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	seedFile  string
	noSeed    bool
	jsonMode  bool
	noColor   bool
	verbose   bool
}

// app is the state shared by the commands of one session. A one-shot
// command is a session of one operation; shell keeps the app across lines.
type app struct {
	flags       rootFlags
	settings    settings
	logger      *slog.Logger
	session     string
	store       types.ContactStore
	interactive bool
}

func newApp() *app {
	return &app{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		session: uuid.NewString(),
	}
}

// NewRootCmd creates the top-level "rolodex" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:   "rolodex",
		Short: "An in-memory contact list",
		Long: `Rolodex manages a contact list held in memory for one session.

Each command starts from the seed contacts, runs one operation, and prints
the outcome. Use "rolodex shell" to run several operations against the same
list.`,
		Version:       rolodex.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeStore()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory for dumps (default: $(CWD)/.rolodex-db)")
	pf.StringVar(&a.flags.backend, "backend", "", "store backend: memory or sqlite (default from config)")
	pf.StringVar(&a.flags.seedFile, "seed-file", "", "load seed contacts from a .jsonl, .json, or .yaml file")
	pf.BoolVar(&a.flags.noSeed, "no-seed", false, "start with an empty contact list")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log store operations at debug level")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newShellCmd(a))
	addStoreCommands(root, a)

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errOutcomeFailed) {
			fmt.Fprintln(os.Stderr, "rolodex:", err)
		}
		os.Exit(exitCode(err))
	}
}

// setup loads configuration and the logger. The store itself is opened
// lazily by the first command that needs it.
func (a *app) setup(cmd *cobra.Command) error {
	if a.flags.noColor {
		color.NoColor = true
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Errorf("load config: %w", err))
	}

	a.settings = settingsFrom(v)
	if a.flags.backend != "" {
		a.settings.Backend = a.flags.backend
	}
	if a.flags.seedFile != "" {
		a.settings.SeedFile = a.flags.seedFile
	}
	if a.flags.noSeed {
		a.settings.Seed = false
	}
	if a.flags.verbose {
		a.settings.LogLevel = "debug"
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.settings.LogLevel, a.settings.LogFormat).
		With("session", a.session)
	a.logger.Debug("config loaded", "config_dir", configDir, "backend", a.settings.Backend)
	return nil
}

// dataDir resolves the data directory: flag > config.yaml > env > default.
func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.settings.DataDir)
}

// seed returns a fresh copy of the configured seed contacts.
func (a *app) seed() ([]types.Contact, error) {
	if !a.settings.Seed {
		return nil, nil
	}
	if a.settings.SeedFile != "" {
		contacts, err := dataset.Load(a.settings.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		return contacts, nil
	}
	return types.DefaultSeed(), nil
}

// openStore builds a new store from the seed, replacing any open store.
func (a *app) openStore() (types.ContactStore, error) {
	if err := a.closeStore(); err != nil {
		return nil, err
	}
	seed, err := a.seed()
	if err != nil {
		return nil, err
	}
	dataDir, err := a.dataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	store, err := rolodex.Open(a.settings.storeConfig(dataDir), seed, rolodex.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

// ensureStore returns the session store, opening it on first use.
func (a *app) ensureStore() (types.ContactStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	return a.openStore()
}

// closeStore releases the session store, if any.
func (a *app) closeStore() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	if err != nil {
		return sysError(fmt.Errorf("close store: %w", err))
	}
	return nil
}
