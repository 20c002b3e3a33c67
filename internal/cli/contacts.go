package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/dataset"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// addStoreCommands registers the commands that operate on the session store.
// Both the root command and each shell line use this set.
func addStoreCommands(parent *cobra.Command, a *app) {
	parent.AddCommand(
		newAddCmd(a),
		newRemoveCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newClearCmd(a),
		newResetCmd(a),
		newDumpCmd(a),
	)
}

// contactFlags binds the four contact fields to flags on cmd.
func contactFlags(cmd *cobra.Command, c *types.Contact) {
	cmd.Flags().StringVar(&c.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&c.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&c.PhoneNumber, "phone", "", "contact phone number")
	cmd.Flags().StringVar(&c.Company, "company", "", "contact company")
}

// run performs one store operation and renders its outcome. Outside the
// shell a non-success outcome makes the command fail after rendering.
func (a *app) run(cmd *cobra.Command, op string, fn func(types.ContactStore) (types.Outcome, error)) error {
	store, err := a.ensureStore()
	if err != nil {
		return err
	}
	out, err := fn(store)
	if err != nil {
		return sysError(fmt.Errorf("%s: %w", strings.ToLower(op), err))
	}
	return a.report(cmd, op, out)
}

// report renders out and converts a failed outcome into errOutcomeFailed for
// one-shot commands.
func (a *app) report(cmd *cobra.Command, op string, out types.Outcome) error {
	a.logger.Debug("operation", "op", op, "kind", out.Kind.String())
	if err := notify(cmd.OutOrStdout(), a.flags.jsonMode, op, out); err != nil {
		return err
	}
	if out.OK() || a.interactive {
		return nil
	}
	if err := a.closeStore(); err != nil {
		return err
	}
	return &exitError{code: exitUserError, err: errOutcomeFailed}
}

func newAddCmd(a *app) *cobra.Command {
	var c types.Contact
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add appends a contact to the list. Name and email are required and the
email must not already be in the list. Values are stored exactly as given.

Example:
  rolodex add --name "Eve Adams" --email eve@example.com
  rolodex add --name "Eve Adams" --email eve@example.com --phone 5551234 --company Acme`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opAdd, func(s types.ContactStore) (types.Outcome, error) {
				return s.Add(c)
			})
		},
	}
	contactFlags(cmd, &c)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <email>",
		Short: "Remove the contact with the given email",
		Long: `Remove deletes the contact whose email matches exactly (case-sensitive).

Example:
  rolodex remove jane@example.com`,
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opRemove, func(s types.ContactStore) (types.Outcome, error) {
				return s.Remove(args[0])
			})
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List all contacts",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opList, func(s types.ContactStore) (types.Outcome, error) {
				return s.List()
			})
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var fields types.Contact
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search contacts by any field",
		Long: `Search lists the contacts with a field containing the query, ignoring case.

Without arguments the query is the first non-empty of --name, --email,
--phone, and --company.

Example:
  rolodex search abc
  rolodex search --company corp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := searchQuery(args, fields)
			return a.run(cmd, opSearch, func(s types.ContactStore) (types.Outcome, error) {
				return s.Search(query)
			})
		},
	}
	contactFlags(cmd, &fields)
	return cmd
}

// searchQuery joins positional arguments, or falls back to the first
// non-empty field flag.
func searchQuery(args []string, fields types.Contact) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	for _, v := range []string{fields.Name, fields.Email, fields.PhoneNumber, fields.Company} {
		if v != "" {
			return v
		}
	}
	return ""
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opClear, func(s types.ContactStore) (types.Outcome, error) {
				return s.Clear()
			})
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the list and start again from the seed contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.openStore(); err != nil {
				return err
			}
			return a.run(cmd, opReset, func(s types.ContactStore) (types.Outcome, error) {
				out, err := s.List()
				if err != nil {
					return out, err
				}
				return types.Outcome{
					Kind:    types.KindSuccess,
					Message: fmt.Sprintf("The contact list was reset to %d contact(s)", len(out.Contacts)),
				}, nil
			})
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [path]",
		Short: "Write the current contacts to a JSONL file",
		Long: `Dump writes the current contacts, one JSON object per line, to path or to
contacts.jsonl in the data directory. The file can be passed back with
--seed-file to start a later session from it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.dumpPath(args)
			if err != nil {
				return err
			}
			return a.run(cmd, opDump, func(s types.ContactStore) (types.Outcome, error) {
				out, err := s.List()
				if err != nil {
					return out, err
				}
				if err := dataset.WriteJSONL(path, out.Contacts); err != nil {
					return types.Outcome{}, err
				}
				return types.Outcome{
					Kind:    types.KindSuccess,
					Message: fmt.Sprintf("Wrote %d contact(s) to %s", len(out.Contacts), path),
				}, nil
			})
		},
	}
}

func (a *app) dumpPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dataDir, err := a.dataDir()
	if err != nil {
		return "", sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	return paths.DumpPath(dataDir), nil
}
