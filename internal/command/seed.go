package command

import (
	"fmt"

	"github.com/danevairena/SocialMediaBackend/internal/bootstrap"
	userRepo "github.com/danevairena/SocialMediaBackend/internal/modules/user/repository"
	userService "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"
	"github.com/danevairena/SocialMediaBackend/pkg/avatar"
	"github.com/spf13/cobra"
)

func NewSeedCmd() *cobra.Command {
	var printTokens bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users and posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := bootstrap.Migrate(rt.db); err != nil {
				return err
			}
			users, err := bootstrap.SeedDemoData(rt.db, rt.log)
			if err != nil {
				return err
			}

			repo := userRepo.NewUserRepository(rt.db)
			profiles := userService.NewProfileResolver(repo, avatar.NewDecorator(rt.cfg.AvatarBaseURL, rt.cfg.DefaultAvatarPath))
			auth := userService.NewAuthService(repo, profiles, rt.cfg.JWTSecret, rt.cfg.JWTTTL)

			out := cmd.OutOrStdout()
			for i := range users {
				fmt.Fprintf(out, "%d\t%s\t%s\n", users[i].ID, users[i].Username, users[i].Email)
				if !printTokens {
					continue
				}
				resp, err := auth.IssueToken(&users[i])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\ttoken: %s\n", resp.AccessToken)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printTokens, "tokens", true, "print a bearer token for every demo user")
	return cmd
}
