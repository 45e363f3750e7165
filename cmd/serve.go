package cmd

import (
	"github.com/packarr/packarr/config"
	"github.com/packarr/packarr/pkg/cache"
	mhttp "github.com/packarr/packarr/pkg/http"
	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/manager"
	"github.com/packarr/packarr/pkg/progress"
	"github.com/packarr/packarr/pkg/storage/sqlite"
	"github.com/packarr/packarr/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the packarr server",
	Long:  `start the packarr server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}
		defer store.Close()

		httpClient := mhttp.NewRateLimitedHTTPClient(
			mhttp.WithBaseBackoff(cfg.Sonarr.BaseBackoff),
			mhttp.WithMaxRetries(cfg.Sonarr.MaxRetries),
		)

		hub := progress.NewHub()

		seasonManager := manager.New(store, hub, manager.DefaultClientFactory(httpClient), cfg.Manager)
		bulk := manager.NewBulkEngine(cache.New[string, *manager.BulkJob](), hub)

		srv := server.New(log, seasonManager, store, hub, bulk)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
