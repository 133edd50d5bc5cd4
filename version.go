package main

import (
	"fmt"
	"runtime/debug"
)

func printVersion() {
	fmt.Printf("head %s\n", currentVersion())
}

func currentVersion() string {
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok {
		switch info.Main.Version {
		case "", "(devel)":
		default:
			version = info.Main.Version
		}
	}
	return version
}
