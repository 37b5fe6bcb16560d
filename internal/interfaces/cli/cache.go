package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veritrav/veritrav/internal/infrastructure/cache"
	"github.com/veritrav/veritrav/internal/infrastructure/monitoring/logging"
)

// NewCacheCmd groups crawl-cache maintenance commands.
func NewCacheCmd(store cache.Store, logger logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Maintain the crawl result cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Remove expired entries from the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := store.Cleanup(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("cache cleanup finished", logging.Int("removed", removed))
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired entries\n", removed)
			return nil
		},
	})

	return cmd
}

//Personal.AI order the ending
