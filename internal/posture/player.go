package posture

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Player plays the alarm cue once.
type Player interface {
	Play(ctx context.Context) error
}

// CommandPlayer plays the alarm by running an external audio player,
// e.g. ["aplay", "-q", "alarm.wav"].
type CommandPlayer struct {
	command []string
	timeout time.Duration
}

func NewCommandPlayer(command []string, soundPath string, timeout time.Duration) (*CommandPlayer, error) {
	if len(command) == 0 {
		return nil, errors.New("alarm command empty")
	}

	cmd := make([]string, 0, len(command)+1)
	cmd = append(cmd, command...)
	if soundPath != "" {
		cmd = append(cmd, soundPath)
	}

	return &CommandPlayer{
		command: cmd,
		timeout: timeout,
	}, nil
}

func (p *CommandPlayer) Play(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, p.command[0], p.command[1:]...)
	// children of a killed player may hold the output pipe open
	cmd.WaitDelay = time.Second
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("run %s: %w [%s]", strings.Join(p.command, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// LogPlayer only logs the alarm, for headless deployments.
type LogPlayer struct{}

func (LogPlayer) Play(_ context.Context) error {
	log.WithField("component", "alarm").Warnln("!!! posture alarm: incorrect form held too long")
	return nil
}
