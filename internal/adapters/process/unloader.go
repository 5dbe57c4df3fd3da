// Package process implements the Unloader port by stopping processes that run from a module directory.
package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
	"go.trai.ch/modup/internal/core/domain"
	"go.trai.ch/modup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	gracePeriod  = 5 * time.Second
	pollInterval = 100 * time.Millisecond
)

// proc is the subset of a running process the unloader needs.
type proc interface {
	PID() int32
	Exe(ctx context.Context) (string, error)
	Terminate(ctx context.Context) error
	Kill(ctx context.Context) error
	IsRunning(ctx context.Context) (bool, error)
}

// Unloader implements ports.Unloader.
type Unloader struct {
	logger ports.Logger
	list   func(ctx context.Context) ([]proc, error)
	self   int32
	grace  time.Duration
}

// New creates an Unloader that inspects the processes of the local machine.
func New(logger ports.Logger) *Unloader {
	return &Unloader{
		logger: logger,
		list:   listProcesses,
		//nolint:gosec // PIDs fit in int32
		self:  int32(os.Getpid()),
		grace: gracePeriod,
	}
}

// Unload stops every process whose executable lives under the module's location.
// Processes get a grace period after SIGTERM before they are killed.
func (u *Unloader) Unload(ctx context.Context, module domain.InstalledModule) error {
	procs, err := u.list(ctx)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUnloadFailed.Error()), "module", module.Name)
	}

	for _, p := range procs {
		if p.PID() == u.self {
			continue
		}
		exe, err := p.Exe(ctx)
		if err != nil || !within(module.Location, exe) {
			continue
		}

		u.logger.Info(fmt.Sprintf("Stopping process %d running %s from %s %s", p.PID(), filepath.Base(exe), module.Name, module.Version))
		if err := u.stop(ctx, p); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrUnloadFailed.Error()), "module", module.Name)
			return zerr.With(err, "pid", p.PID())
		}
	}

	return nil
}

func (u *Unloader) stop(ctx context.Context, p proc) error {
	if err := p.Terminate(ctx); err != nil {
		if running, _ := p.IsRunning(ctx); !running {
			return nil
		}
		return err
	}

	deadline := time.Now().Add(u.grace)
	for time.Now().Before(deadline) {
		running, err := p.IsRunning(ctx)
		if err != nil || !running {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}

	if running, _ := p.IsRunning(ctx); !running {
		return nil
	}
	return p.Kill(ctx)
}

// within reports whether path lies inside dir.
func within(dir, path string) bool {
	if dir == "" || path == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// gopsProc adapts a gopsutil process.
type gopsProc struct {
	p *process.Process
}

func (g gopsProc) PID() int32 { return g.p.Pid }

func (g gopsProc) Exe(ctx context.Context) (string, error) { return g.p.ExeWithContext(ctx) }

func (g gopsProc) Terminate(ctx context.Context) error { return g.p.TerminateWithContext(ctx) }

func (g gopsProc) Kill(ctx context.Context) error { return g.p.KillWithContext(ctx) }

func (g gopsProc) IsRunning(ctx context.Context) (bool, error) { return g.p.IsRunningWithContext(ctx) }

func listProcesses(ctx context.Context) ([]proc, error) {
	ps, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]proc, 0, len(ps))
	for _, p := range ps {
		out = append(out, gopsProc{p: p})
	}
	return out, nil
}
