package posture

import (
	"fmt"
	"strings"
)

type ExerciseMode string

const (
	ModeHandRaise ExerciseMode = "hand_raise"
	ModeHandCurl  ExerciseMode = "hand_curl"
)

func (m ExerciseMode) String() string {
	return string(m)
}

func (m ExerciseMode) IsValid() bool {
	switch m {
	case ModeHandRaise, ModeHandCurl:
		return true
	default:
		return false
	}
}

// DisplayName is the human readable exercise name shown on rendered frames.
func (m ExerciseMode) DisplayName() string {
	switch m {
	case ModeHandRaise:
		return "Hand Raise"
	case ModeHandCurl:
		return "Hand Curl"
	default:
		return "Unknown"
	}
}

func ParseMode(s string) (ExerciseMode, error) {
	mode := ExerciseMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("unknown exercise mode: %q", s)
	}
	return mode, nil
}
