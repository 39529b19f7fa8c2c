package clickhouse

import (
	"fmt"
	"strings"

	"github.com/datazip-inc/destination-clickhouse/constants"
)

// Clustered reports whether DDL should target an explicit cluster;
// ClickHouse Cloud manages the topology itself.
func (d DeployConfig) Clustered() bool {
	return d.DeployType != constants.DefaultDeployType
}

// OnClusterClause renders the ON CLUSTER clause for clustered
// deployments; Cluster is already quoted by resolution.
func (d DeployConfig) OnClusterClause() string {
	if !d.Clustered() {
		return ""
	}
	return fmt.Sprintf("ON CLUSTER %s", d.Cluster)
}

// TableEngine returns the engine for created tables, switching to the
// replicated variant when replication is enabled.
func (c Config) TableEngine() string {
	if c.Deploy.Replication {
		return "Replicated" + c.Engine
	}
	return c.Engine
}

// CreateDatabaseStatement renders the CREATE DATABASE DDL carrying the
// resolved database engine and cluster clause.
func (c Config) CreateDatabaseStatement(database string) string {
	parts := []string{fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database)}
	if clause := c.Deploy.OnClusterClause(); clause != "" {
		parts = append(parts, clause)
	}
	parts = append(parts, fmt.Sprintf("ENGINE = %s", c.DatabaseEngine))

	return strings.Join(parts, " ")
}

// CreateTableStatement renders the CREATE TABLE DDL for a preformatted
// column definition list, ordered by the given key.
func (c Config) CreateTableStatement(database, table, columns, orderBy string) string {
	parts := []string{fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s`.`%s`", database, table)}
	if clause := c.Deploy.OnClusterClause(); clause != "" {
		parts = append(parts, clause)
	}
	parts = append(parts, fmt.Sprintf("(%s)", columns))
	parts = append(parts, fmt.Sprintf("ENGINE = %s", c.TableEngine()))
	parts = append(parts, fmt.Sprintf("ORDER BY (%s)", orderBy))

	return strings.Join(parts, " ")
}
