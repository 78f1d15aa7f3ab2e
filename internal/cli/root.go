package cli

import (
	"github.com/dmitrijs2005/pmvault/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the pmvault command tree bound to app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pmvault",
		Short: "Local password vault",
		Long: `pmvault stores account passwords and notes in a local SQLite file,
encrypted under a key derived from your master password.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.authService != nil {
				return nil
			}
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return app.setup(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newInitCmd(app),
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newDeleteCmd(app),
	)
	return root
}

func addIDFlag(cmd *cobra.Command, id *int64) {
	cmd.Flags().Int64Var(id, "id", 0, "entry id")
	_ = cmd.MarkFlagRequired("id")
}
