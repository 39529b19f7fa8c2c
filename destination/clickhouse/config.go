package clickhouse

import (
	"strings"

	"github.com/datazip-inc/destination-clickhouse/constants"
	"github.com/datazip-inc/destination-clickhouse/utils"
	"github.com/datazip-inc/destination-clickhouse/utils/typeutils"
)

// Settings is the raw, loosely typed destination settings document as
// supplied by the user. Resolution into Config is total: missing or
// malformed keys fall back to defaults and no error is ever produced.
type Settings map[string]any

// Validate is a no-op; operational validity (e.g. whether the named
// cluster exists) is only established by ClickHouse at DDL execution.
func (s *Settings) Validate() error {
	return nil
}

// DeployConfig is the resolved deployment/clustering sub-configuration.
// Cluster is always single-quote wrapped, ready for interpolation into
// ON CLUSTER clauses.
type DeployConfig struct {
	DeployType     string `json:"deploy_type"`
	Cluster        string `json:"cluster"`
	Replication    bool   `json:"replication"`
	DatabaseEngine string `json:"database_engine"`
}

// Config is the resolved destination configuration driving table engine
// selection, clustering and replication behavior.
type Config struct {
	Engine         string       `json:"engine"`
	Deploy         DeployConfig `json:"deploy_type"`
	DatabaseEngine string       `json:"database_engine"`
}

func (c *Config) Validate() error {
	return utils.Validate(c)
}

// ResolveDeployConfig resolves the deploy_type fragment of the settings
// document. Reading a nil fragment yields all defaults.
func ResolveDeployConfig(fragment map[string]any) DeployConfig {
	return DeployConfig{
		DeployType:     typeutils.StringField(fragment, "deploy_type", constants.DefaultDeployType),
		Cluster:        escapeCluster(typeutils.StringField(fragment, "cluster", constants.DefaultClusterName)),
		Replication:    typeutils.BoolField(fragment, "replication", constants.DefaultReplication),
		DatabaseEngine: typeutils.StringField(fragment, "database_engine", constants.DefaultDatabaseEngine),
	}
}

// DefaultDeployConfig is the all-defaults construction; it must stay in
// lockstep with resolving an absent fragment.
func DefaultDeployConfig() DeployConfig {
	return ResolveDeployConfig(nil)
}

// ResolveConfig resolves the full settings document. The top-level
// database_engine is read independently of the nested fragment's; the
// two can legitimately disagree.
func ResolveConfig(document map[string]any) Config {
	deploy := DefaultDeployConfig()
	if fragment, found := typeutils.ObjectField(document, "deploy_type"); found {
		deploy = ResolveDeployConfig(fragment)
	}

	return Config{
		Engine:         typeutils.StringField(document, "engine", constants.DefaultTableEngine),
		Deploy:         deploy,
		DatabaseEngine: typeutils.StringField(document, "database_engine", constants.DefaultDatabaseEngine),
	}
}

// escapeCluster wraps the cluster identifier in single quotes so it can
// be interpolated into clustered DDL as a string literal. Idempotent;
// pre-quoted input passes through unchanged.
func escapeCluster(input string) string {
	output := input
	if !strings.HasPrefix(output, "'") {
		output = "'" + output
	}
	if !strings.HasSuffix(output, "'") {
		output = output + "'"
	}
	return output
}
