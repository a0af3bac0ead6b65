package term

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/models"
	"github.com/kdduha/pdf-converter/internal/ui"
)

type stubConverter struct {
	resp *models.ConvertResponse
	err  error
}

func (s stubConverter) Convert(context.Context, client.File, string) (*models.ConvertResponse, error) {
	return s.resp, s.err
}

func TestPageDrivenByController(t *testing.T) {
	var out bytes.Buffer
	page := NewPage(&out, models.Formats)
	c := ui.New(page, stubConverter{resp: &models.ConvertResponse{DownloadURL: "/download/x.csv", Filename: "x.csv"}}, nil)
	c.Init()

	if page.SubmitEnabled() {
		t.Fatal("submit enabled without selection")
	}

	c.SelectFile([]client.File{client.NewFile("x.pdf", nil)})
	c.SelectFormat(page.Button(models.FormatCSV))
	if !page.SubmitEnabled() {
		t.Fatal("submit disabled with full selection")
	}
	if !page.Button(models.FormatCSV).Active() || page.Button(models.FormatDOCX).Active() {
		t.Fatal("wrong active button")
	}

	c.Submit(context.Background())

	status, link := page.Result()
	if status != ui.StatusSucceeded || link == nil || link.Href != "/download/x.csv" {
		t.Fatalf("status=%q link=%+v", status, link)
	}
	text := out.String()
	for _, want := range []string{"file: x.pdf", ui.StatusConverting, "Download x.csv: /download/x.csv"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPageShowsFailure(t *testing.T) {
	var out bytes.Buffer
	page := NewPage(&out, []string{"docx"})
	c := ui.New(page, stubConverter{err: &client.StatusError{StatusCode: 400, Message: "Invalid format"}}, nil)
	c.Init()
	c.SelectFile([]client.File{client.NewFile("x.pdf", nil)})
	c.SelectFormat(page.Button("docx"))
	c.Submit(context.Background())

	status, link := page.Result()
	if status != "Invalid format" || link != nil {
		t.Fatalf("status=%q link=%+v", status, link)
	}
	if page.Button("odt") != nil {
		t.Fatal("unexpected button")
	}
}
