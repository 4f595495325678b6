package cmd

import (
	"github.com/spf13/cobra"

	"pizzapension/internal/auth"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password PASSWORD",
		Short: "Print the stored form of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashed, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Hashed Password: %s\n", hashed)
			return nil
		},
	}
}
