package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stockwatch/internal/client"
	"stockwatch/internal/headers"
	"stockwatch/internal/scrape"
)

var (
	checkSelector      string
	checkPriceSelector string
)

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Probe a single product page once and print the result.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headers.InitProfilePool(8)
		pool := client.NewPool(Config.Proxies)

		httpClient, err := pool.New()
		if err != nil {
			return err
		}

		start := time.Now()
		body, err := client.Fetch(httpClient, args[0])
		if err != nil {
			return err
		}

		result, err := scrape.Page(body, checkSelector, checkPriceSelector)
		if err != nil {
			return err
		}

		out, err := json.Marshal(map[string]interface{}{
			"url":        args[0],
			"status":     result.Availability,
			"in_stock":   result.Availability == scrape.InStock,
			"price":      result.Price,
			"latency":    time.Since(start).Seconds(),
			"checked_at": time.Now().Unix(),
		})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkSelector, "selector", "", "extra in-stock marker phrase")
	checkCmd.Flags().StringVar(&checkPriceSelector, "price-selector", "", "CSS selector for the price")
	rootCmd.AddCommand(checkCmd)
}
