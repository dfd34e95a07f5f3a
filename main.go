package main

import (
	"pfeifer.dev/stately/cli"
	"pfeifer.dev/stately/settings"
)

func main() {
	settings.Settings.Load()
	cli.Handle()
}
