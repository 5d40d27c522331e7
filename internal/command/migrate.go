package command

import (
	"github.com/danevairena/SocialMediaBackend/internal/bootstrap"
	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := bootstrap.Migrate(rt.db); err != nil {
				return err
			}
			cmd.Println("schema is up to date")
			return nil
		},
	}
}
