package main

import (
	"os"

	_ "github.com/datazip-inc/destination-clickhouse/destination/clickhouse" // registering clickhouse writer
	"github.com/datazip-inc/destination-clickhouse/logger"
	"github.com/datazip-inc/destination-clickhouse/protocol"
	"github.com/datazip-inc/destination-clickhouse/utils/safego"
)

func main() {
	defer safego.Recovery(true)

	err := protocol.CreateRootCommand().Execute()
	if err != nil {
		logger.Fatal(err)
	}

	os.Exit(0)
}
