package launcher

import (
	"context"
	"os"
	"os/exec"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/logging"
)

// Task is a started game process.
type Task struct {
	Pid  int
	done chan error
}

// NewTask returns a running task and the function that completes it. The
// finish function must be called exactly once.
func NewTask(pid int) (*Task, func(error)) {
	t := &Task{Pid: pid, done: make(chan error, 1)}
	return t, func(err error) {
		t.done <- err
		close(t.done)
	}
}

// Done yields the process exit error once, then is closed.
func (t *Task) Done() <-chan error {
	return t.done
}

// Wait blocks until the process exits or ctx ends.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Launch starts cmd without waiting for it. Cancelling ctx kills the process.
func Launch(ctx context.Context, cmd *Command) (*Task, error) {
	logger := logging.GetLogger("launcher.exec")

	if cmd.Dir != "" {
		if _, err := os.Stat(cmd.Dir); err != nil {
			return nil, errors.Wrap(err, errors.ErrGameNotFound, "game root is not accessible").
				WithDetail("path", cmd.Dir)
		}
	}

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = os.Environ()

	logger.Info().
		Str("command", cmd.Path).
		Strs("args", cmd.Args).
		Str("workingDir", cmd.Dir).
		Str("priority", cmd.Priority).
		Msg("Starting game")

	if err := c.Start(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLaunch, "failed to start %s", cmd.Path).
			WithDetail("command", cmd.String())
	}

	task, finish := NewTask(c.Process.Pid)
	go func() {
		if err := c.Wait(); err != nil {
			logger.Error().Err(err).Int("pid", task.Pid).Msg("Game process exited with error")
			finish(errors.Wrap(err, errors.ErrLaunch, "game process failed").
				WithDetail("pid", task.Pid))
			return
		}
		logger.Info().Int("pid", task.Pid).Msg("Game process exited")
		finish(nil)
	}()
	return task, nil
}
