package protocol

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/datazip-inc/destination-clickhouse/constants"
	_ "github.com/datazip-inc/destination-clickhouse/destination/clickhouse" // registering clickhouse writer
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rootOnce sync.Once

// executeRoot dispatches args through the root command the way main does,
// with viper cleared so tests don't observe each other's folder setup.
func executeRoot(t *testing.T, args ...string) {
	t.Helper()

	rootOnce.Do(func() { CreateRootCommand() })
	viper.Reset()
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
}

func writeDestinationConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "destination.json")
	content := `{"type":"CLICKHOUSE","writer":{"engine":"ReplacingMergeTree","deploy_type":{"deploy_type":"on-premise","cluster":"prod","replication":true}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCheckRunPointsConfigFolderAtDestinationConfig(t *testing.T) {
	path := writeDestinationConfig(t)

	executeRoot(t, "check", "--destination", path)

	// subcommand dispatch must still wire CONFIG_FOLDER and the logger
	assert.Equal(t, filepath.Dir(path), viper.GetString(constants.ConfigFolder))
}

func TestCheckRunNoSaveKeepsTempConfigFolder(t *testing.T) {
	path := writeDestinationConfig(t)

	executeRoot(t, "check", "--destination", path, "--no-save")

	assert.Equal(t, os.TempDir(), viper.GetString(constants.ConfigFolder))
}
