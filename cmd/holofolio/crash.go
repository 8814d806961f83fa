package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

// handleCrash restores the terminal and prints the stack trace before exiting
func handleCrash(r any) {
	if r == nil {
		return
	}
	if activeScreen != nil {
		activeScreen.Fini()
	}
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHOLOFOLIO CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}

// guarded wraps a goroutine body so a panic resets the terminal
func guarded(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		return fn()
	}
}
