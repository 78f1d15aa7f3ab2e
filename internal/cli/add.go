package cli

import (
	"github.com/dmitrijs2005/pmvault/internal/common"
	"github.com/dmitrijs2005/pmvault/internal/services"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.addEntry(cmd)
		},
	}
}

func (a *App) addEntry(cmd *cobra.Command) error {
	ctx := cmd.Context()
	printHeader(a.out, "Add entry")

	session, err := a.authenticate(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	name, err := GetSimpleText(a.reader, "Name (e.g. GitHub): ", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return services.ErrNameRequired
	}

	username, err := GetSimpleText(a.reader, "Account username: ", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.fd, "Account password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	url, err := GetSimpleText(a.reader, "URL (optional): ", a.out)
	if err != nil {
		return err
	}

	notes, err := GetSecretText(a.reader, "Notes (optional): ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(notes)

	id, err := a.entryService.Add(ctx, session, services.NewEntry{
		Name:     name,
		Username: username,
		Password: password,
		URL:      url,
		Notes:    notes,
	})
	if err != nil {
		return err
	}

	printOK(a.out, "Entry created with ID: %d", id)
	return nil
}
