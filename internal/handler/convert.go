package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/models"
	"github.com/kdduha/pdf-converter/internal/service"
)

type convertService interface {
	Convert(ctx context.Context, req *models.ConvertRequest) (*models.ConvertResponse, error)
}

type ConvertHandler struct {
	service       convertService
	maxUploadSize int64
}

func NewConvertHandler(service convertService, maxUploadSize int64) *ConvertHandler {
	return &ConvertHandler{
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}

// Convert godoc
// @Summary Convert a PDF
// @Description Upload a PDF and convert it to docx, csv or xlsx. Errors are reported as JSON with an error field.
// @Tags convert
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Param format formData string true "Output format" Enums(docx, csv, xlsx)
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /convert [post]
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		// An empty file input arrives as a part with filename="", which
		// the multipart reader files under values.
		if _, ok := r.MultipartForm.Value["file"]; ok && errors.Is(err, http.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, "No file selected")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	req := &models.ConvertRequest{
		FileName: header.Filename,
		Format:   r.FormValue("format"),
		Data:     data,
	}

	ctx := r.Context()
	if id := middleware.GetReqID(ctx); id != "" {
		ctx = client.WithRequestID(ctx, id)
	}

	resp, err := h.service.Convert(ctx, req)
	if err != nil {
		code, msg := service.Status(err)
		writeError(w, code, msg)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, models.ErrorResponse{Error: msg})
}
