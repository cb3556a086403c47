package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oticaisis/storefront/catalog"
	"github.com/oticaisis/storefront/commerce"
	"github.com/oticaisis/storefront/config"
	"github.com/oticaisis/storefront/core/cache"
	cronpkg "github.com/oticaisis/storefront/cron"
)

var jobName string

// buildRegistry wires the maintenance jobs against a fresh catalog view.
func buildRegistry() *cronpkg.Registry {
	cfg := config.LoadAppConfig()
	client := commerce.NewClient(cfg.ShopDomain, cfg.StorefrontToken)
	rdb := config.NewRedis(cfg)
	search := catalog.NewSearchService(cfg.ElasticsearchHost, "oticaisis")
	view := catalog.NewView(client, cache.New(), rdb, search, cfg.FallbackImageURL, cfg.CatalogCacheTTL)

	reg := cronpkg.NewRegistry()
	reg.Register("catalog:warm", "@hourly", func(...string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := view.Warm(ctx); err != nil {
			log.Println("catalog:warm:", err)
			return
		}
		log.Println("catalog:warm: catalog refreshed")
	})
	return reg
}

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	Run: func(cmd *cobra.Command, args []string) {
		reg := buildRegistry()
		if jobName != "" {
			name := strings.ToLower(jobName)
			if j, ok := reg.Lookup(name); ok {
				fmt.Printf("Running cron job: %s\n", name)
				j.Run(args...)
				return
			}
			fmt.Printf("Unknown job: %s\n", jobName)
			os.Exit(1)
		}
		fmt.Println("Starting cron scheduler...")
		c := cronpkg.Start(reg)
		defer c.Stop()
		fmt.Println("Cron scheduler started. Press Ctrl+C to exit.")
		select {}
	},
}

var warmCmd = &cobra.Command{
	Use:   "catalog:warm",
	Short: "Refresh the cached catalog once and exit",
	Run: func(cmd *cobra.Command, args []string) {
		reg := buildRegistry()
		j, _ := reg.Lookup("catalog:warm")
		j.Run(args...)
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
	rootCmd.AddCommand(warmCmd)
}
