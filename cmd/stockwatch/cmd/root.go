package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockwatch/internal/client"
	"stockwatch/internal/config"
	"stockwatch/internal/headers"
	"stockwatch/internal/monitor"
	"stockwatch/internal/notify"
)

var Config config.Config

var rootCmd = &cobra.Command{
	Use:   "stockwatch",
	Short: "stockwatch polls retailer product pages and alerts on availability changes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		headers.InitProfilePool(64)
		pool := client.NewPool(Config.Proxies)

		var notifiers []notify.Notifier
		if Config.Telegram.Configured() {
			notifiers = append(notifiers, notify.NewTelegram(
				Config.Telegram.BotToken, Config.Telegram.ChatID,
			))
		}
		if Config.Email.Configured() {
			notifiers = append(notifiers, &notify.EmailNotifier{
				From:     Config.Email.From,
				Password: Config.Email.Password,
				To:       Config.Email.To,
				Server:   Config.Email.Server,
				Port:     Config.Email.Port,
			})
		}

		m := monitor.New(monitor.Options{
			Products:   Config.Products,
			StatePath:  Config.StateFile,
			Notifiers:  notifiers,
			Checker:    monitor.NewPageChecker(pool),
			CheckDelay: Config.CheckDelay,
		})

		_, err := m.Run(cmd.Context())
		return err
	},
}

func Execute() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
