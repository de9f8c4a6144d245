package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"MiniCatalog/internal/auth"
	"MiniCatalog/pkg/kit"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin access token with the configured JWT secret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := kit.LoadConfig(envFile)
		if err != nil {
			return err
		}

		tok, err := auth.NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL).New(auth.User{
			ID:       "u_cli",
			Username: cfg.AdminUser,
			Role:     auth.RoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

var hashPassword string

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print the bcrypt hash to use as ADMIN_PASSWORD_HASH",
	Long: `Hash-password reads the password from --password, or from the first line
of standard input when the flag is omitted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := hashPassword
		if pw == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			pw = strings.TrimSpace(line)
		}
		if pw == "" {
			return errors.New("empty password")
		}

		hash, err := auth.HashPassword(pw)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(hash))
		return nil
	},
}

func init() {
	hashPasswordCmd.Flags().StringVar(&hashPassword, "password", "", "password to hash")
}
