package constants

const (
	ConfigFolder = "CONFIG_FOLDER"

	// DefaultTableEngine is the table storage engine used when the
	// settings document doesn't carry an "engine" key.
	DefaultTableEngine = "MergeTree"
	// DefaultDeployType targets ClickHouse Cloud, where no explicit
	// cluster is addressed in DDL.
	DefaultDeployType = "clickhouse-cloud"
	// DefaultClusterName is the placeholder macro ClickHouse expands
	// to the executing cluster's name.
	DefaultClusterName = "{cluster}"
	// DefaultDatabaseEngine is the database-level catalog engine.
	DefaultDatabaseEngine = "Atomic"
	DefaultReplication    = false
)
