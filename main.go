package main

import (
	"travelmap/internal/app"
	"travelmap/internal/cli"
)

func main() {
	app.SetupEnvironment()
	cli.Execute()
}
