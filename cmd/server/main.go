package main

import (
	_ "github.com/lib/pq"

	"github.com/kgview/kgview/internal/server"
	"github.com/kgview/kgview/internal/util"
	"github.com/kgview/kgview/pkg/logger"
	"github.com/kgview/kgview/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
