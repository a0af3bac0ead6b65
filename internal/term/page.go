// Package term renders the upload-and-convert page to a text terminal.
package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/kdduha/pdf-converter/internal/ui"
)

type Button struct {
	page   *Page
	format string
	active bool
}

func (b *Button) Format() string { return b.format }

func (b *Button) SetActive(active bool) {
	b.page.mu.Lock()
	defer b.page.mu.Unlock()
	b.active = active
}

func (b *Button) Active() bool {
	b.page.mu.Lock()
	defer b.page.mu.Unlock()
	return b.active
}

// Page writes every visible change as one line to out.
type Page struct {
	mu      sync.Mutex
	out     io.Writer
	buttons []*Button
	enabled bool
	status  string
	link    *ui.Link
}

func NewPage(out io.Writer, formats []string) *Page {
	p := &Page{out: out}
	for _, f := range formats {
		p.buttons = append(p.buttons, &Button{page: p, format: f})
	}
	return p
}

// Button returns the selector for format, or nil if the page has none.
func (p *Page) Button(format string) *Button {
	for _, b := range p.buttons {
		if b.format == format {
			return b
		}
	}
	return nil
}

func (p *Page) OpenFilePicker() {
	p.printf("choose a file")
}

func (p *Page) SetFileLabel(name string) {
	p.printf("file: %s", name)
}

func (p *Page) FormatButtons() []ui.FormatButton {
	out := make([]ui.FormatButton, len(p.buttons))
	for i, b := range p.buttons {
		out[i] = b
	}
	return out
}

func (p *Page) SetSubmitEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

func (p *Page) SetStatus(text string) {
	p.mu.Lock()
	p.status, p.link = text, nil
	p.mu.Unlock()
	p.printf("%s", text)
}

func (p *Page) SetResult(message string, link ui.Link) {
	p.mu.Lock()
	p.status, p.link = message, &link
	p.mu.Unlock()
	p.printf("%s %s: %s", message, link.Label, link.Href)
}

func (p *Page) SubmitEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Result returns the current status text and download link, if any.
func (p *Page) Result() (string, *ui.Link) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.link
}

func (p *Page) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format+"\n", args...)
}
