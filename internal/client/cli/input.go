package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/term"

	"github.com/dmitrijs2005/inkdrop/internal/client/hierarchy"
	"github.com/dmitrijs2005/inkdrop/internal/common"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// readLine reads one line from reader, trimming the trailing newline. If EOF
// occurs after some input was read, the partial line is returned.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// validateOneTimeCode enforces the shape of a pairing code: exactly eight
// characters. Anything else is only detectable by the server.
func validateOneTimeCode(code string) error {
	return validation.Validate(code,
		validation.Required,
		validation.Length(8, 8),
	)
}

// GetOneTimeCode prompts for the 8-character pairing code, re-prompting
// until the input has the right shape. Registration needs a human at the
// keyboard, so a non-interactive stdin fails with common.ErrNotInteractive.
func GetOneTimeCode(reader *bufio.Reader, w io.Writer) (string, error) {
	if !isTerminal(int(os.Stdin.Fd())) {
		return "", common.ErrNotInteractive
	}

	for {
		if _, err := fmt.Fprint(w, "Enter the 8-character one-time code\n> "); err != nil {
			return "", err
		}
		code, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if err := validateOneTimeCode(code); err != nil {
			fmt.Fprintf(w, "Invalid code: %v\n", err)
			continue
		}
		return code, nil
	}
}

// GetYesNo prints a yes/no prompt and reads the answer. An empty line picks
// def; anything unrecognized re-prompts.
func GetYesNo(reader *bufio.Reader, prompt string, def bool, w io.Writer) (bool, error) {
	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}

	for {
		if _, err := fmt.Fprintf(w, "%s %s ", prompt, hint); err != nil {
			return false, err
		}
		answer, err := readLine(reader)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// PickDirectory prints the numbered directory list and reads a selection,
// re-prompting until a valid index is entered.
func PickDirectory(reader *bufio.Reader, dirs []hierarchy.Directory, w io.Writer) (*hierarchy.Directory, error) {
	for i, d := range dirs {
		fmt.Fprintf(w, "%3d  %s\n", i+1, d.Path)
	}

	for {
		if _, err := fmt.Fprintf(w, "Choose the upload directory [1-%d]\n> ", len(dirs)); err != nil {
			return nil, err
		}
		answer, err := readLine(reader)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(dirs) {
			fmt.Fprintln(w, "Not a valid choice")
			continue
		}
		d := dirs[n-1]
		return &d, nil
	}
}
