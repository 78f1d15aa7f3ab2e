package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries (no secrets are decrypted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.listEntries(cmd)
		},
	}
}

func (a *App) listEntries(cmd *cobra.Command) error {
	ctx := cmd.Context()
	printHeader(a.out, "List entries")

	session, err := a.authenticate(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	rows, err := a.entryService.List(ctx, session)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		printWarn(a.out, "No entries.")
		return nil
	}

	fmt.Fprintf(a.out, "\nEntries for %s:\n\n", session.Username)
	fmt.Fprintf(a.out, "%-5s%-20s%-20s%s\n", "ID", "Name", "Username", "URL")
	fmt.Fprintln(a.out, strings.Repeat("-", 60))
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-5d%-20s%-20s%s\n", r.ID, r.Name, r.Username, r.URL)
	}
	fmt.Fprintln(a.out)
	return nil
}
