package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Reveal one entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.showEntry(cmd, id)
		},
	}
	addIDFlag(cmd, &id)
	return cmd
}

func (a *App) showEntry(cmd *cobra.Command, id int64) error {
	if id <= 0 {
		return errBadID
	}
	ctx := cmd.Context()
	printHeader(a.out, "Show entry")

	session, err := a.authenticate(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	e, err := a.entryService.Show(ctx, session, id)
	if err != nil {
		return err
	}
	defer e.Wipe()

	fmt.Fprintln(a.out, "\nEntry details:")
	printField(a.out, "Name", e.Name)
	printField(a.out, "Username", e.Username)
	fmt.Fprintf(a.out, "Password: %s\n", e.Password)
	printField(a.out, "URL", e.URL)
	if len(e.Notes) > 0 {
		fmt.Fprintf(a.out, "Notes: %s\n", e.Notes)
	}
	printField(a.out, "Created", e.CreatedAt)
	fmt.Fprintln(a.out)
	return nil
}
