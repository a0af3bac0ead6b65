//go:build js && wasm

// Package dom binds the upload controller to the browser document.
package dom

import (
	"syscall/js"

	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/ui"
)

type Button struct {
	el js.Value
}

func (b *Button) Format() string {
	return b.el.Get("dataset").Get("format").String()
}

func (b *Button) SetActive(active bool) {
	classes := b.el.Get("classList")
	if active {
		classes.Call("add", "active")
		return
	}
	classes.Call("remove", "active")
}

// Page wraps the elements of the converter markup.
type Page struct {
	doc        js.Value
	uploadArea js.Value
	label      js.Value
	fileInput  js.Value
	convertBtn js.Value
	status     js.Value
	buttons    []*Button
}

// Bind looks the controller's elements up in doc. Missing elements are not handled.
func Bind(doc js.Value) *Page {
	p := &Page{
		doc:        doc,
		uploadArea: doc.Call("getElementById", "uploadArea"),
		fileInput:  doc.Call("getElementById", "fileInput"),
		convertBtn: doc.Call("getElementById", "convertBtn"),
		status:     doc.Call("getElementById", "status"),
	}
	p.label = p.uploadArea.Call("querySelector", "p")

	nodes := doc.Call("querySelectorAll", ".format-btn")
	for i := 0; i < nodes.Length(); i++ {
		p.buttons = append(p.buttons, &Button{el: nodes.Index(i)})
	}
	return p
}

// Listen forwards DOM events to events. release frees the Go callbacks and is
// only safe once the page is being torn down.
func (p *Page) Listen(events chan<- ui.Event) (release func()) {
	var funcs []js.Func
	on := func(el js.Value, name string, fn func(js.Value)) {
		f := js.FuncOf(func(this js.Value, args []js.Value) any {
			var ev js.Value
			if len(args) > 0 {
				ev = args[0]
			}
			fn(ev)
			return nil
		})
		el.Call("addEventListener", name, f)
		funcs = append(funcs, f)
	}

	on(p.uploadArea, "click", func(js.Value) {
		events <- ui.DropTargetClicked{}
	})
	on(p.fileInput, "change", func(js.Value) {
		list := p.fileInput.Get("files")
		var files []client.File
		for i := 0; i < list.Length(); i++ {
			files = append(files, &jsFile{v: list.Index(i)})
		}
		events <- ui.FilesChosen{Files: files}
	})
	for _, b := range p.buttons {
		on(b.el, "click", func(js.Value) {
			events <- ui.FormatClicked{Button: b}
		})
	}
	on(p.convertBtn, "click", func(js.Value) {
		events <- ui.SubmitClicked{}
	})

	return func() {
		for _, f := range funcs {
			f.Release()
		}
	}
}

func (p *Page) OpenFilePicker() {
	p.fileInput.Call("click")
}

func (p *Page) SetFileLabel(name string) {
	p.label.Set("textContent", name)
}

func (p *Page) FormatButtons() []ui.FormatButton {
	out := make([]ui.FormatButton, len(p.buttons))
	for i, b := range p.buttons {
		out[i] = b
	}
	return out
}

func (p *Page) SetSubmitEnabled(enabled bool) {
	p.convertBtn.Set("disabled", !enabled)
}

func (p *Page) SetStatus(text string) {
	p.status.Set("textContent", text)
}

// SetResult renders message followed by a download anchor. Server values are
// assigned as text and attributes, never parsed as markup.
func (p *Page) SetResult(message string, link ui.Link) {
	p.status.Set("textContent", message+" ")

	a := p.doc.Call("createElement", "a")
	a.Set("href", link.Href)
	a.Call("setAttribute", "download", "")
	a.Set("textContent", link.Label)
	p.status.Call("appendChild", a)
}
