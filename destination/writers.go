package destination

import (
	"context"
	"fmt"

	"github.com/datazip-inc/destination-clickhouse/types"
	"github.com/datazip-inc/destination-clickhouse/utils"
)

type NewFunc func() Writer

var RegisteredWriters = map[types.DestinationType]NewFunc{}

// NewWriter constructs the writer registered for the configured
// destination type, loads the raw settings document into it and runs
// its configuration check.
func NewWriter(ctx context.Context, config *types.WriterConfig) (Writer, error) {
	newfunc, found := RegisteredWriters[config.Type]
	if !found {
		return nil, fmt.Errorf("invalid destination type has been passed [%s]", config.Type)
	}

	adapter := newfunc()
	if err := utils.Unmarshal(config.WriterConfig, adapter.GetConfigRef()); err != nil {
		return nil, err
	}

	if err := adapter.Check(ctx); err != nil {
		return nil, fmt.Errorf("failed to test destination: %s", err)
	}

	return adapter, nil
}
