package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	shellPrompt  = "rolodex> "
	maxLineBytes = 1 << 20
)

// ErrLineTooLong is reported for a shell line over maxLineBytes.
var ErrLineTooLong = errors.New("line too long")

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run store commands interactively against one contact list",
		Long: `Shell reads one command per line and runs it against a single contact list
that lives until the shell exits. Every store command (add, remove, list,
search, clear, reset, dump) is available; "exit" or "quit" ends the session.

Example:
  $ rolodex shell
  rolodex> add --name "Eve Adams" --email eve@example.com
  rolodex> search eve
  rolodex> exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd)
		},
	}
}

func (a *app) runShell(cmd *cobra.Command) error {
	a.interactive = true
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	prompt := showPrompt(in)

	if _, err := a.ensureStore(); err != nil {
		return err
	}
	a.logger.Info("shell started")

	reader := bufio.NewReader(in)
	for {
		if prompt {
			fmt.Fprint(out, shellPrompt)
		}
		raw, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, ErrLineTooLong) {
			fmt.Fprintln(errOut, "error:", err)
			continue
		}
		if err != nil {
			return sysError(fmt.Errorf("read input: %w", err))
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		args, err := splitLine(line)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if err := a.runLine(args, in, out, errOut); err != nil {
			fmt.Fprintln(errOut, "error:", err)
		}
	}
	a.logger.Info("shell finished")
	return nil
}

// runLine executes one shell line on a fresh command tree bound to the
// session app, so flag values never leak between lines.
func (a *app) runLine(args []string, in io.Reader, out, errOut io.Writer) error {
	session := &cobra.Command{
		Use:           "rolodex",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	session.CompletionOptions.DisableDefaultCmd = true
	addStoreCommands(session, a)
	session.SetArgs(args)
	session.SetIn(in)
	session.SetOut(out)
	session.SetErr(errOut)
	return session.Execute()
}

// showPrompt reports whether in is an interactive terminal.
func showPrompt(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// splitLine splits a shell line into arguments with POSIX shell quoting.
// An unquoted # starts a comment that runs to the end of the line.
func splitLine(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse line: %w", err)
	}
	return args, nil
}

// readLine returns the next input line without its line ending. A line
// longer than maxLineBytes is consumed in full and reported as
// ErrLineTooLong so the caller can skip it and keep reading.
func readLine(r *bufio.Reader) (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, more, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong && len(line)+len(chunk) <= maxLineBytes {
			line = append(line, chunk...)
		} else {
			tooLong = true
			line = nil
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return string(line), nil
}
