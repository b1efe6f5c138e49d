package input

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	chr, err := stdinReader.ReadString('\n')

	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.Trim(chr, "\n")
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction code if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
		// Unknown escape sequence, discard it.
		return ""
	}

	// A bare ESC press reads as escape.
	return "escape"
}

// ReadKey reads a single keypress in raw mode and returns its code:
// "arrow_up" style codes for arrows, "enter", "escape", or the
// character itself. Turn-based play never waits for Enter.
func ReadKey() string {
	// Reset the buffered reader to avoid conflicts with raw mode.
	stdinReader = nil

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	if b == 0x1b {
		return tryReadArrowKey(b)
	}

	// Ctrl+C quits immediately.
	if b == 3 {
		term.Restore(int(os.Stdin.Fd()), oldState)
		fmt.Println()
		os.Exit(0)
	}

	if b == '\n' || b == '\r' {
		return "enter"
	}

	if b >= 32 && b < 127 {
		return string(b)
	}

	return ""
}

// ReadIntent reads one keypress and maps it through the binding layers
func ReadIntent() Intent {
	raw := RawInput{Device: DeviceTerminal, Code: ReadKey()}
	return MapToIntent(NewDebouncedInput(raw))
}
