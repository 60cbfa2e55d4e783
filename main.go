package main

import (
	"github.com/joho/godotenv"

	"github.com/mouse-blink/codelimit/cmd"
)

// version is overridden at build time with -ldflags "-X main.version=vX.Y.Z".
var version = "dev"

func main() {
	_ = godotenv.Load()

	cmd.Execute(version)
}
