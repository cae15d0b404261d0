package main

import (
	"fmt"

	"progest/internal/adapters/auth/sessions"
	"progest/internal/domain/accounts"
	"progest/internal/router"

	"github.com/spf13/cobra"
)

func useraddCmd(configPath *string) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "useradd",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if db == nil {
				return fmt.Errorf("useradd needs database.dsn: the in-memory store does not outlive the process")
			}
			defer db.Close()

			svc := userService(router.NewStores(db).Users, cfg.Bcrypt.Cost)
			u, err := svc.Register(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			log.Info("user created", map[string]any{"user_id": u.ID, "username": u.Username})
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", u.Username, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// userService arma el service de cuentas para el CLI. useradd no abre
// sesiones; el store en memoria solo completa la dependencia.
func userService(users accounts.Repository, bcryptCost int) *accounts.Service {
	return accounts.NewService(users, sessions.NewMemoryStore(), accounts.Options{BcryptCost: bcryptCost})
}
