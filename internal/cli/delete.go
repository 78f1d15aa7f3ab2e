package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.deleteEntry(cmd, id)
		},
	}
	addIDFlag(cmd, &id)
	return cmd
}

func (a *App) deleteEntry(cmd *cobra.Command, id int64) error {
	if id <= 0 {
		return errBadID
	}
	ctx := cmd.Context()
	printHeader(a.out, "Delete entry")

	session, err := a.authenticate(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Type YES to delete entry %d: ", id), a.out)
	if err != nil {
		return err
	}
	if confirm != "YES" {
		printWarn(a.out, "Aborted.")
		return nil
	}

	if err := a.entryService.Delete(ctx, session, id); err != nil {
		return err
	}

	printOK(a.out, "Entry %d deleted.", id)
	return nil
}
