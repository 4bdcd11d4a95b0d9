package posture

import (
	"bufio"
	"io"
)

const keyEscape = 0x1b

type modeSwitcher interface {
	SetMode(mode ExerciseMode) error
}

// ReadKeys switches the exercise mode from single key presses until the quit
// key ('q' or ESC): 'r' selects hand raise and 'c' hand curl. Other keys are
// ignored. It returns nil only for the quit key; input ending without one
// yields io.EOF.
func ReadKeys(r io.Reader, switcher modeSwitcher) error {
	br := bufio.NewReader(r)
	for {
		key, err := br.ReadByte()
		if err != nil {
			return err
		}

		switch key {
		case 'r', 'R':
			if err := switcher.SetMode(ModeHandRaise); err != nil {
				return err
			}
		case 'c', 'C':
			if err := switcher.SetMode(ModeHandCurl); err != nil {
				return err
			}
		case 'q', 'Q', keyEscape:
			return nil
		}
	}
}
