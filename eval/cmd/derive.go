package cmd

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gossipkit/membership"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var deriveFlags struct {
	preset       string
	seeds        []string
	namespace    string
	syncInterval time.Duration
}

func init() {
	deriveCmd.Flags().StringVar(
		&deriveFlags.preset, "preset", "lan", "base preset (lan, wan or local)",
	)
	deriveCmd.Flags().StringSliceVar(
		&deriveFlags.seeds, "seed", nil, "seed member address (repeatable)",
	)
	deriveCmd.Flags().StringVar(
		&deriveFlags.namespace, "namespace", "", "namespace (generated if unset)",
	)
	deriveCmd.Flags().DurationVar(
		&deriveFlags.syncInterval, "sync-interval", 0, "sync interval override",
	)
	rootCmd.AddCommand(deriveCmd)
}

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a variant config from a preset and print it",
	Run: func(cmd *cobra.Command, args []string) {
		var config membership.Config
		switch deriveFlags.preset {
		case "lan":
			config = membership.DefaultLANConfig()
		case "wan":
			config = membership.DefaultWANConfig()
		case "local":
			config = membership.DefaultLocalConfig()
		default:
			log.Fatalf("unknown preset: %s", deriveFlags.preset)
		}

		namespace := deriveFlags.namespace
		if namespace == "" {
			namespace = membership.DefaultNamespace + "-" + uuid.New().String()[:7]
		}

		config = config.
			WithSeedMembers(deriveFlags.seeds...).
			WithNamespace(namespace)
		if deriveFlags.syncInterval != 0 {
			config = config.WithSyncInterval(deriveFlags.syncInterval)
		}

		logger, _ := zap.NewDevelopment()
		defer logger.Sync()

		logger.Info("derived config", zap.Object("config", config))
	},
}
