package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/forumhub"
)

var (
	userName     string
	userLogin    string
	userPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage forum users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a forum user",
	Long: `Register a forum user that can log in through POST /login.

The password may be given with --password or through FORUMHUB_USER_PASSWORD.

Examples:
  forumhub-server user add --name "Ana Souza" --login ana --password 's3cret-pass'`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		password := userPassword
		if password == "" {
			password = os.Getenv("FORUMHUB_USER_PASSWORD")
		}
		if password == "" {
			return errors.New("a password is required (--password or FORUMHUB_USER_PASSWORD)")
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		user, err := a.auth.Register(cmd.Context(), forumhub.RegisterRequest{
			Name:     userName,
			Login:    userLogin,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User %q created with id %d\n", user.Login, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd)

	userAddCmd.Flags().StringVar(&userName, "name", "", "display name shown as topic author")
	userAddCmd.Flags().StringVar(&userLogin, "login", "", "login used to authenticate")
	userAddCmd.Flags().StringVar(&userPassword, "password", "", "password (prefer FORUMHUB_USER_PASSWORD)")
	_ = userAddCmd.MarkFlagRequired("name")
	_ = userAddCmd.MarkFlagRequired("login")
}
