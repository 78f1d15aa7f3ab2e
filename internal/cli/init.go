package cli

import (
	"bytes"

	"github.com/dmitrijs2005/pmvault/internal/common"
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a vault account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.initVault(cmd)
		},
	}
}

func (a *App) initVault(cmd *cobra.Command) error {
	printHeader(a.out, "Initialize password vault")

	username, err := GetSimpleText(a.reader, "Choose username: ", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		return errUsernameRequired
	}

	master, err := GetPassword(a.reader, a.fd, "Create master password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(master)

	confirm, err := GetPassword(a.reader, a.fd, "Confirm master password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(master, confirm) {
		return errPasswordsMismatch
	}

	if err := a.authService.CreateAccount(cmd.Context(), username, master); err != nil {
		return err
	}

	printOK(a.out, "Vault initialized for user: %s", username)
	return nil
}
