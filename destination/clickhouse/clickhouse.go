package clickhouse

import (
	"context"

	"github.com/datazip-inc/destination-clickhouse/destination"
	"github.com/datazip-inc/destination-clickhouse/logger"
	"github.com/datazip-inc/destination-clickhouse/types"
)

// ClickHouse resolves user supplied settings into the effective engine,
// clustering and replication configuration for the sink.
type ClickHouse struct {
	settings *Settings
	config   Config
}

func (c *ClickHouse) GetConfigRef() destination.Config {
	c.settings = &Settings{}
	return c.settings
}

func (c *ClickHouse) Type() string {
	return string(types.ClickHouse)
}

func (c *ClickHouse) Check(_ context.Context) error {
	c.config = ResolveConfig(*c.settings)
	if err := c.config.Validate(); err != nil {
		return err
	}

	logger.Infof("resolved clickhouse destination: table_engine=%s database_engine=%s deploy_type=%s cluster=%s replication=%t",
		c.config.TableEngine(), c.config.DatabaseEngine, c.config.Deploy.DeployType, c.config.Deploy.Cluster, c.config.Deploy.Replication)

	return nil
}

// ResolvedConfig exposes the configuration established by Check.
func (c *ClickHouse) ResolvedConfig() Config {
	return c.config
}

func (c *ClickHouse) Spec() any {
	return map[string]any{
		"title": "ClickHouse Destination Spec",
		"type":  "object",
		"properties": map[string]any{
			"engine": map[string]any{
				"title":       "Table Engine",
				"description": "Storage engine used for created tables",
				"type":        "string",
				"default":     "MergeTree",
				"order":       1,
			},
			"database_engine": map[string]any{
				"title":       "Database Engine",
				"description": "Engine governing the database level catalog",
				"type":        "string",
				"default":     "Atomic",
				"order":       2,
			},
			"deploy_type": map[string]any{
				"title":       "Deployment Type",
				"description": "Topology of the target ClickHouse deployment",
				"type":        "object",
				"order":       3,
				"properties": map[string]any{
					"deploy_type": map[string]any{
						"title":   "Mode",
						"type":    "string",
						"default": "clickhouse-cloud",
						"order":   1,
					},
					"cluster": map[string]any{
						"title":       "Cluster",
						"description": "Cluster name used in ON CLUSTER statements",
						"type":        "string",
						"order":       2,
					},
					"replication": map[string]any{
						"title":       "Replication",
						"description": "Create tables with replicated engine variants",
						"type":        "boolean",
						"default":     false,
						"order":       3,
					},
					"database_engine": map[string]any{
						"title":   "Database Engine",
						"type":    "string",
						"default": "Atomic",
						"order":   4,
					},
				},
			},
		},
	}
}

func init() {
	destination.RegisteredWriters[types.ClickHouse] = func() destination.Writer {
		return &ClickHouse{}
	}
}
