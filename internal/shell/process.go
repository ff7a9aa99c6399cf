package shell

import (
	"os/exec"
)

// process wraps a started *exec.Cmd into a ProcessHandle: a goroutine owns
// the blocking Wait and publishes the result once on done.
type process struct {
	cmd      *exec.Cmd
	done     chan struct{}
	exitCode int
	waitErr  error
}

func startProcess(cmd *exec.Cmd) (ProcessHandle, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	p := &process{cmd: cmd, done: make(chan struct{})}
	go func() {
		err := cmd.Wait()
		p.exitCode = exitCodeOf(cmd, err)
		p.waitErr = err
		close(p.done)
	}()
	return p, nil
}

func exitCodeOf(cmd *exec.Cmd, waitErr error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if waitErr != nil {
		return -1
	}
	return 0
}

func (p *process) Wait() (int, error) {
	<-p.done
	return p.exitCode, p.waitErr
}

func (p *process) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

func (p *process) Done() <-chan struct{} { return p.done }
