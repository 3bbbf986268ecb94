package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultPager keeps ANSI styling intact
const DefaultPager = "less -R"

// Page writes text through the pager command when out is a terminal,
// otherwise straight to out.
func Page(out *os.File, pager, text string) error {
	if !IsTerminal(out) {
		_, err := io.WriteString(out, text)
		return err
	}
	return runPager(out, pager, text)
}

func runPager(out io.Writer, pager, text string) error {
	args := strings.Fields(pager)
	if len(args) == 0 {
		args = strings.Fields(DefaultPager)
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pager %q failed: %w", args[0], err)
	}
	return nil
}
