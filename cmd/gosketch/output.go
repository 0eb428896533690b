package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

var stderr = termenv.NewOutput(os.Stderr)

// fail prints a highlighted error to stderr
func fail(prefix string, err error) {
	label := stderr.String(prefix + ":").Foreground(stderr.Color("1")).Bold()
	fmt.Fprintf(os.Stderr, "%s %v\n", label, err)
}

// exitOnError reports err and exits when it is non-nil
func exitOnError(prefix string, err error) {
	if err != nil {
		fail(prefix, err)
		os.Exit(1)
	}
}

// warn prints a highlighted warning to stderr
func warn(format string, args ...any) {
	label := stderr.String("Warning:").Foreground(stderr.Color("3"))
	fmt.Fprintf(os.Stderr, "%s %s\n", label, fmt.Sprintf(format, args...))
}

func heading(title string) {
	fmt.Println(title)
	for range title {
		fmt.Print("=")
	}
	fmt.Println()
}
