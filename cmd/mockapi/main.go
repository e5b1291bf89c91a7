package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/motoshop/internal/config"
	"github.com/MikeMC777/motoshop/internal/hostenv"
	"github.com/MikeMC777/motoshop/internal/mockapi"
)

// @title        Motoshop API (mock)
// @version      1.0
// @BasePath     /api/v1
func main() {
	var (
		bare    bool
		devUser int64
	)
	cmd := &cobra.Command{
		Use:   "mockapi",
		Short: "In-memory motorcycle listing API for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if devUser != 0 {
				tok := hostenv.Sign(hostenv.Profile{TelegramID: devUser, FirstName: "Dev"}, "", cfg.BotToken, time.Now())
				fmt.Fprintf(cmd.OutOrStdout(), "API_TOKEN=%q\n", tok)
			}

			store := mockapi.NewStore()
			mockapi.Seed(store)
			srv := mockapi.New(store, mockapi.Options{
				BotToken: cfg.BotToken,
				Admins:   cfg.AdminTelegramIDs,
				Bare:     bare,
			})
			if cfg.BotToken == "" {
				log.Printf("[mockapi] BOT_TOKEN not set, init data signatures are not checked")
			}
			log.Printf("[mockapi] listening on %s (admins=%v)", cfg.MockAPIAddr, cfg.AdminTelegramIDs)
			return srv.Router().Run(cfg.MockAPIAddr)
		},
	}
	cmd.Flags().BoolVar(&bare, "bare", false, "answer T instead of {\"body\": T}")
	cmd.Flags().Int64Var(&devUser, "dev-user", 0, "print signed init data for this Telegram id")
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
