package main

import (
	"github.com/graphmind-ai/backend/internal/server"
	"github.com/graphmind-ai/backend/internal/util"
	"github.com/graphmind-ai/backend/pkg/logger"
	"github.com/graphmind-ai/backend/pkg/logger/console"
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
