package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginEmail == "" {
			return fmt.Errorf("--email is required")
		}
		password := loginPassword
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		c, mgr, err := newStack(store)
		if err != nil {
			return err
		}

		prof, err := c.Login(cmd.Context(), loginEmail, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		mgr.Login(prof.Token, time.Duration(prof.ExpiresIn)*time.Second, &prof.User)

		fmt.Printf("Logged in as %s %s <%s>\n", prof.User.FirstName, prof.User.LastName, prof.User.Email)
		if prof.User.IsPremium {
			fmt.Println("Premium subscription active")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted if omitted)")
}
