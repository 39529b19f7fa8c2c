package protocol

import (
	"fmt"

	"github.com/datazip-inc/destination-clickhouse/destination"
	"github.com/datazip-inc/destination-clickhouse/logger"
	"github.com/datazip-inc/destination-clickhouse/types"
	"github.com/spf13/cobra"
)

// specCmd represents the spec command
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "spec command",
	RunE: func(_ *cobra.Command, _ []string) error {
		writerType := types.DestinationType(destinationType)
		newFunc, found := destination.RegisteredWriters[writerType]
		if !found {
			return fmt.Errorf("invalid destination type has been passed [%s]", writerType)
		}

		specSchema := map[string]interface{}{
			"spec": newFunc().Spec(),
		}

		logger.FileLogger(specSchema, "spec", ".json")

		return nil
	},
}
