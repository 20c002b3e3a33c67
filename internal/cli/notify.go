package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Operation titles shown on notifications.
const (
	opAdd    = "Add Contact"
	opRemove = "Remove Contact"
	opList   = "List Contacts"
	opSearch = "Search Contacts"
	opClear  = "Clear Contacts"
	opReset  = "Reset Contacts"
	opDump   = "Dump Contacts"
)

// notification is the JSON shape of a rendered outcome.
type notification struct {
	Operation string `json:"operation"`
	types.Outcome
}

var (
	successTitle = color.New(color.FgGreen, color.Bold)
	failureTitle = color.New(color.FgRed, color.Bold)
)

// notify renders out for operation op. Failures get the same prominence as
// successes: a bold title line naming the outcome kind, then the text.
func notify(w io.Writer, jsonMode bool, op string, out types.Outcome) error {
	if jsonMode {
		data, err := json.MarshalIndent(notification{Operation: op, Outcome: out}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal outcome: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	title := successTitle
	if !out.OK() {
		title = failureTitle
	}
	if _, err := title.Fprintf(w, "%s [%s]", op, out.Kind); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", out.Text())
	return err
}
