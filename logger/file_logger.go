package logger

import (
	"os"
	"path/filepath"

	"github.com/datazip-inc/destination-clickhouse/constants"
	"github.com/goccy/go-json"
	"github.com/spf13/viper"
)

// FileLogger writes content both to stdout and as an artifact file
// named <name><ext> inside CONFIG_FOLDER.
func FileLogger(content any, name, ext string) {
	b, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		Fatalf("failed to marshal %s artifact: %s", name, err)
	}

	Info(content)

	path := filepath.Join(viper.GetString(constants.ConfigFolder), name+ext)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		Warnf("failed to write %s artifact at %s: %s", name, path, err)
	}
}
