package ui

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/models"
)

const (
	StatusConverting = "Converting..."
	StatusSucceeded  = "Conversion successful!"
)

type Converter interface {
	Convert(ctx context.Context, file client.File, format string) (*models.ConvertResponse, error)
}

// Controller owns the selection state of one page session.
type Controller struct {
	page      Page
	converter Converter
	logger    *log.Logger

	mu      sync.Mutex
	file    client.File
	format  string
	enabled bool
	busy    bool
	attempt uint64
}

func New(page Page, converter Converter, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		page:      page,
		converter: converter,
		logger:    logger,
	}
}

// Init brings the submit control in line with the empty selection.
func (c *Controller) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
}

// CanConvert reports whether both a file and a format are selected.
func (c *Controller) CanConvert() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canConvertLocked()
}

func (c *Controller) Selection() (client.File, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.file, c.format
}

func (c *Controller) ActivatePicker() {
	c.page.OpenFilePicker()
}

// SelectFile records the first picked entry. A cancelled dialog reports no
// entries and keeps the previous selection.
func (c *Controller) SelectFile(files []client.File) {
	if len(files) == 0 || files[0] == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.file = files[0]
	c.page.SetFileLabel(c.file.Name())
	c.refreshLocked()
}

func (c *Controller) SelectFormat(btn FormatButton) {
	if btn == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, b := range c.page.FormatButtons() {
		b.SetActive(false)
	}
	btn.SetActive(true)
	c.format = btn.Format()
	c.refreshLocked()
}

// Submit runs one request/response cycle. It returns once the status area
// shows the outcome. Clicks on a disabled control and incomplete selections
// are ignored.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if !c.enabled || !c.canConvertLocked() {
		c.mu.Unlock()
		return
	}
	c.busy = true
	c.attempt++
	attempt := c.attempt
	file, format := c.file, c.format
	c.page.SetSubmitEnabled(false)
	c.enabled = false
	c.page.SetStatus(StatusConverting)
	c.mu.Unlock()

	requestID := uuid.NewString()
	c.logger.Printf("convert %s to %s: attempt %d, request %s\n", file.Name(), format, attempt, requestID)

	resp, err := c.converter.Convert(client.WithRequestID(ctx, requestID), file, format)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		c.busy = false
		c.refreshLocked()
	}()

	if err == nil && resp == nil {
		err = fmt.Errorf("%w: empty result", client.ErrMalformedResponse)
	}
	if err != nil {
		c.logger.Printf("convert %s failed: %v\n", file.Name(), err)
		c.page.SetStatus(client.Message(err))
		return
	}

	c.page.SetResult(StatusSucceeded, Link{
		Href:  resp.DownloadURL,
		Label: "Download " + resp.Filename,
	})
}

func (c *Controller) canConvertLocked() bool {
	return c.file != nil && c.format != ""
}

func (c *Controller) refreshLocked() {
	enabled := !c.busy && c.canConvertLocked()
	c.enabled = enabled
	c.page.SetSubmitEnabled(enabled)
}
