package ui

import (
	"context"
	"sync"

	"github.com/kdduha/pdf-converter/internal/client"
)

// Event is a user interaction delivered to Run.
type Event interface {
	isEvent()
}

type DropTargetClicked struct{}

// FilesChosen is the picker's change event. Files may be empty when the dialog was cancelled.
type FilesChosen struct {
	Files []client.File
}

type FormatClicked struct {
	Button FormatButton
}

type SubmitClicked struct{}

func (DropTargetClicked) isEvent() {}
func (FilesChosen) isEvent()       {}
func (FormatClicked) isEvent()     {}
func (SubmitClicked) isEvent()     {}

// Run dispatches events one at a time until events is closed or ctx is done.
// Submissions run on their own goroutine so later events are still handled
// while a request is outstanding; Run waits for them before returning.
func (c *Controller) Run(ctx context.Context, events <-chan Event) error {
	c.Init()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case DropTargetClicked:
				c.ActivatePicker()
			case FilesChosen:
				c.SelectFile(ev.Files)
			case FormatClicked:
				c.SelectFormat(ev.Button)
			case SubmitClicked:
				wg.Add(1)
				go func() {
					defer wg.Done()
					c.Submit(ctx)
				}()
			}
		}
	}
}
