//go:build js && wasm

package main

import (
	"context"
	"log"
	"syscall/js"

	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/ui"
	"github.com/kdduha/pdf-converter/internal/ui/dom"
)

func main() {
	logger := log.Default()

	origin := js.Global().Get("location").Get("origin").String()
	cl, err := client.New(origin, nil)
	if err != nil {
		logger.Fatalf("client error: %v", err)
	}

	page := dom.Bind(js.Global().Get("document"))
	controller := ui.New(page, cl, logger)

	events := make(chan ui.Event, 32)
	release := page.Listen(events)
	defer release()

	logger.Println("converter controller initialized")
	if err := controller.Run(context.Background(), events); err != nil {
		logger.Printf("controller stopped: %v", err)
	}
}
