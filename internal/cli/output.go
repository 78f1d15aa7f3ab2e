package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	headColor = color.New(color.Bold)
)

func printOK(w io.Writer, format string, args ...any) {
	okColor.Fprintf(w, format+"\n", args...)
}

func printWarn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, format+"\n", args...)
}

func printError(w io.Writer, err error) {
	errColor.Fprintf(w, "Error: %v\n", err)
}

func printHeader(w io.Writer, title string) {
	headColor.Fprintf(w, "=== %s ===\n", title)
}

func printField(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%s: %s\n", name, value)
}
