// Package main is the entrypoint of the mentis CLI.
package main

import (
	"github.com/Daniromero1410/Mentis/cmd"
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/internal/iocache"
)

func main() {
	defer iocache.CloseStores()
	cmd.SetStoreManager(iocache.Manager)

	if err := cmd.Execute(); err != nil {
		iocache.CloseStores()
		contract.LogFatal("Error", err)
	}
	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Cannot stop profiling", err)
	}
}
