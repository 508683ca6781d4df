// Package main is the entry point for menucli.
package main

import (
	"runtime"

	"github.com/oleksiiluchnikov/menucli/internal/cli"
)

func main() {
	// Cocoa/AppKit and the AX APIs require calls to originate from the same
	// OS thread throughout the process lifetime.
	runtime.LockOSThread()

	cli.Execute()
}
