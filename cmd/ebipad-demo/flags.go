package main

import "flag"

var (
	logLevelFlag = flag.String("log-level", "info", "Log level (\"debug\", \"info\", \"warn\", \"error\")")
	configFlag   = flag.String("config", "", "Path to a TOML gamepad parameter file")
)
