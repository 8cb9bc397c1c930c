// Package wintest provides a scripted libwin.Platform for tests.
package wintest

import (
	"errors"
	"unsafe"

	"beginner-gl/Beginner/libwin"
)

var _ libwin.Platform = (*Platform)(nil)

var (
	ErrInit   = errors.New("wintest: init failed")
	ErrCreate = errors.New("wintest: window creation failed")
)

type Platform struct {
	InitErr   error
	CreateErr error
	// CloseAfter is the number of presented frames after which the window
	// reports a close request. Zero closes before the first frame.
	CloseAfter int
	// OnPoll runs on every PollEvents, after the poll count is updated.
	OnPoll func(p *Platform)

	Inited     int
	Terminated int
	Polls      int
	Configs    []libwin.Config
	Windows    []*Window
}

func (p *Platform) Init() error {
	p.Inited++
	return p.InitErr
}

func (p *Platform) CreateWindow(cfg libwin.Config) (libwin.Window, error) {
	p.Configs = append(p.Configs, cfg)
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	w := &Window{
		Width:      cfg.Width,
		Height:     cfg.Height,
		closeAfter: p.CloseAfter,
	}
	p.Windows = append(p.Windows, w)
	return w, nil
}

func (p *Platform) PollEvents() {
	p.Polls++
	if p.OnPoll != nil {
		p.OnPoll(p)
	}
}

func (p *Platform) ProcAddress(name string) unsafe.Pointer {
	return nil
}

func (p *Platform) Terminate() {
	p.Terminated++
	for _, w := range p.Windows {
		w.Destroyed = true
	}
}

type Window struct {
	Width, Height  int
	Current        bool
	Swaps          int
	CloseRequested bool
	Destroyed      bool
	// ShouldCloseChecks counts ShouldClose queries.
	ShouldCloseChecks int

	closeAfter int
}

func (w *Window) MakeContextCurrent() {
	w.Current = true
}

func (w *Window) FramebufferSize() (int, int) {
	return w.Width, w.Height
}

func (w *Window) ShouldClose() bool {
	w.ShouldCloseChecks++
	return w.CloseRequested || w.Swaps >= w.closeAfter
}

func (w *Window) SwapBuffers() {
	w.Swaps++
}

func (w *Window) Destroy() {
	w.Destroyed = true
}
