package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer asks yes/no questions on a terminal. Prompts go to Out (stderr by
// default) so they never mix with a translation printed on stdout.
type Confirmer struct {
	In            io.Reader
	Out           io.Writer
	IsInteractive func() bool
}

func DefaultConfirmer() Confirmer {
	return Confirmer{
		In:  os.Stdin,
		Out: os.Stderr,
		IsInteractive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Ask prints question and returns true only for an explicit "y" or "yes".
func (c Confirmer) Ask(question string) (bool, error) {
	if c.IsInteractive == nil || !c.IsInteractive() {
		return false, fmt.Errorf("cannot ask %q: stdin is not a terminal", question)
	}
	if c.Out != nil {
		fmt.Fprintf(c.Out, "%s (y/n): ", question)
	}
	response, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ConfirmOverwrite asks before replacing path unless force is set.
func (c Confirmer) ConfirmOverwrite(path string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if c.IsInteractive == nil || !c.IsInteractive() {
		return false, fmt.Errorf("output file %s exists and stdin is not a terminal: use -y to overwrite", path)
	}
	return c.Ask(fmt.Sprintf("Output file %s already exists. Overwrite?", path))
}
