//go:build js && wasm

package dom

import (
	"bytes"
	"errors"
	"io"
	"syscall/js"
)

// jsFile adapts a browser File to client.File.
type jsFile struct {
	v js.Value
}

func (f *jsFile) Name() string {
	return f.v.Get("name").String()
}

func (f *jsFile) Open() (io.ReadCloser, error) {
	buf, err := await(f.v.Call("arrayBuffer"))
	if err != nil {
		return nil, err
	}

	u8 := js.Global().Get("Uint8Array").New(buf)
	data := make([]byte, u8.Get("length").Int())
	js.CopyBytesToGo(data, u8)
	return io.NopCloser(bytes.NewReader(data)), nil
}

// await blocks the calling goroutine until promise settles. It must not be
// called from inside a js.Func callback.
func await(promise js.Value) (js.Value, error) {
	var (
		result js.Value
		err    error
		done   = make(chan struct{})
	)

	onResolve := js.FuncOf(func(this js.Value, args []js.Value) any {
		result = args[0]
		close(done)
		return nil
	})
	defer onResolve.Release()

	onReject := js.FuncOf(func(this js.Value, args []js.Value) any {
		msg := ""
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			msg = args[0].Get("message").String()
		}
		if msg == "" {
			msg = "failed to read file"
		}
		err = errors.New(msg)
		close(done)
		return nil
	})
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)
	<-done
	return result, err
}
