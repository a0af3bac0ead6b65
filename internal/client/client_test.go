package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConvertSendsMultipart(t *testing.T) {
	var (
		gotFile   []byte
		gotName   string
		gotFormat string
		gotID     string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != ConvertPath {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer f.Close()
		gotFile, _ = io.ReadAll(f)
		gotName = hdr.Filename
		gotFormat = r.FormValue("format")
		gotID = r.Header.Get(RequestIDHeader)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"download_url":"/files/abc.docx","filename":"report.docx"}`)
	}))
	defer srv.Close()

	c, err := New(srv.URL, srv.Client())
	if err != nil {
		t.Fatal(err)
	}

	resp, err := c.Convert(WithRequestID(context.Background(), "req-1"), NewFile("report.pdf", []byte("%PDF-1.4")), "docx")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if resp.DownloadURL != "/files/abc.docx" || resp.Filename != "report.docx" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if string(gotFile) != "%PDF-1.4" || gotName != "report.pdf" || gotFormat != "docx" {
		t.Fatalf("server saw file=%q name=%q format=%q", gotFile, gotName, gotFormat)
	}
	if gotID != "req-1" {
		t.Fatalf("request id = %q", gotID)
	}
}

func TestConvertStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server reason", http.StatusBadRequest, `{"error":"Unsupported format"}`, "Unsupported format"},
		{"no reason", http.StatusInternalServerError, `{}`, DefaultErrorMessage},
		{"not json", http.StatusTooManyRequests, "Too many requests", DefaultErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c, _ := New(srv.URL, srv.Client())
			_, err := c.Convert(context.Background(), NewFile("a.pdf", nil), "csv")

			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if se.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", se.StatusCode, tt.status)
			}
			if got := Message(err); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestConvertMalformedSuccess(t *testing.T) {
	for _, body := range []string{"<html>", `{"filename":"x.docx"}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		}))

		c, _ := New(srv.URL, srv.Client())
		_, err := c.Convert(context.Background(), NewFile("a.pdf", nil), "docx")
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("body %q: expected ErrMalformedResponse, got %v", body, err)
		}
		srv.Close()
	}
}

func TestConvertTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, _ := New(url, nil)
	_, err := c.Convert(context.Background(), NewFile("a.pdf", []byte("x")), "docx")
	if err == nil {
		t.Fatal("expected error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Fatalf("transport failure must not be a StatusError: %v", err)
	}
	if Message(err) == "" {
		t.Fatal("expected non-empty message")
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download/abc_report.docx" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "converted")
	}))
	defer srv.Close()

	c, _ := New(srv.URL+"/", srv.Client())

	var buf bytes.Buffer
	n, err := c.Download(context.Background(), "/download/abc_report.docx", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len("converted")) || buf.String() != "converted" {
		t.Fatalf("got %d bytes %q", n, buf.String())
	}

	if _, err := c.Download(context.Background(), "/download/missing", io.Discard); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestMessage(t *testing.T) {
	if got := Message(errors.New("")); got != DefaultErrorMessage {
		t.Fatalf("empty error message = %q", got)
	}
	if got := Message(errors.New("boom")); got != "boom" {
		t.Fatalf("Message() = %q", got)
	}
	if got := Message(nil); got != "" {
		t.Fatalf("Message(nil) = %q", got)
	}
}
