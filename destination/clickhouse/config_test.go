package clickhouse

import (
	"testing"

	"github.com/datazip-inc/destination-clickhouse/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeCluster(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{name: "bare identifier gets quoted", input: "foo", output: "'foo'"},
		{name: "fully quoted stays unchanged", input: "'foo'", output: "'foo'"},
		{name: "missing suffix quote", input: "'foo", output: "'foo'"},
		{name: "missing prefix quote", input: "foo'", output: "'foo'"},
		{name: "default placeholder", input: "{cluster}", output: "'{cluster}'"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, escapeCluster(tc.input))
			// idempotent
			assert.Equal(t, tc.output, escapeCluster(escapeCluster(tc.input)))
		})
	}
}

func TestDefaultDeployConfigPathsAgree(t *testing.T) {
	defaults := DefaultDeployConfig()

	assert.Equal(t, defaults, ResolveDeployConfig(nil))
	assert.Equal(t, defaults, ResolveDeployConfig(map[string]any{}))

	// defaults carry the quoted placeholder on every construction path
	assert.Equal(t, "'{cluster}'", defaults.Cluster)
	assert.Equal(t, "clickhouse-cloud", defaults.DeployType)
	assert.Equal(t, "Atomic", defaults.DatabaseEngine)
	assert.False(t, defaults.Replication)
}

func TestResolveConfigEmptyDocument(t *testing.T) {
	config := ResolveConfig(map[string]any{})

	assert.Equal(t, Config{
		Engine: "MergeTree",
		Deploy: DeployConfig{
			DeployType:     "clickhouse-cloud",
			Cluster:        "'{cluster}'",
			Replication:    false,
			DatabaseEngine: "Atomic",
		},
		DatabaseEngine: "Atomic",
	}, config)

	// documents without a nested fragment always resolve to the default deployment
	assert.Equal(t, DefaultDeployConfig(), ResolveConfig(map[string]any{"engine": "Log"}).Deploy)
	assert.Equal(t, DefaultDeployConfig(), ResolveConfig(nil).Deploy)
}

func TestResolveConfigFullDocument(t *testing.T) {
	config := ResolveConfig(map[string]any{
		"engine":          "ReplacingMergeTree",
		"database_engine": "Ordinary",
		"deploy_type": map[string]any{
			"deploy_type": "on-premise",
			"cluster":     "prod",
			"replication": true,
		},
	})

	assert.Equal(t, "ReplacingMergeTree", config.Engine)
	assert.Equal(t, "on-premise", config.Deploy.DeployType)
	assert.Equal(t, "'prod'", config.Deploy.Cluster)
	assert.True(t, config.Deploy.Replication)
	// nested fragment didn't carry database_engine, leaf default applies
	assert.Equal(t, "Atomic", config.Deploy.DatabaseEngine)
	// top level database_engine resolves independently of the fragment
	assert.Equal(t, "Ordinary", config.DatabaseEngine)
}

func TestResolveConfigPreQuotedCluster(t *testing.T) {
	config := ResolveConfig(map[string]any{
		"deploy_type": map[string]any{
			"cluster": "'analytics'",
		},
	})

	assert.Equal(t, "'analytics'", config.Deploy.Cluster)
	assert.Equal(t, "clickhouse-cloud", config.Deploy.DeployType)
	assert.False(t, config.Deploy.Replication)
	assert.Equal(t, "Atomic", config.Deploy.DatabaseEngine)
}

func TestResolveConfigRoundTrip(t *testing.T) {
	first := ResolveConfig(map[string]any{
		"engine": "SummingMergeTree",
		"deploy_type": map[string]any{
			"deploy_type": "on-premise",
			"cluster":     "events",
			"replication": true,
		},
	})
	assert.Equal(t, "'events'", first.Deploy.Cluster)

	// re-serializing resolved fields into a document and resolving again
	// is a stable fixed point
	document := map[string]any{}
	require.NoError(t, utils.Unmarshal(first, &document))
	second := ResolveConfig(document)

	assert.Equal(t, first, second)
}

func TestResolveConfigIgnoresNonObjectFragment(t *testing.T) {
	// a scalar under deploy_type is not a fragment, defaults apply
	config := ResolveConfig(map[string]any{"deploy_type": "on-premise"})
	assert.Equal(t, DefaultDeployConfig(), config.Deploy)
}

func TestConfigValidate(t *testing.T) {
	config := ResolveConfig(nil)
	assert.NoError(t, config.Validate())

	settings := Settings{}
	assert.NoError(t, settings.Validate())
}
