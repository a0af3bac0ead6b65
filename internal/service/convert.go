package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kdduha/pdf-converter/internal/client"
	"github.com/kdduha/pdf-converter/internal/metrics"
	"github.com/kdduha/pdf-converter/internal/models"
	"github.com/kdduha/pdf-converter/internal/preflight"
)

type Cache interface {
	Get(ctx context.Context, key string) (*models.ConvertResponse, bool, error)
	Set(ctx context.Context, key string, value *models.ConvertResponse) error
}

type Upstream interface {
	Convert(ctx context.Context, file client.File, format string) (*models.ConvertResponse, error)
}

type Inspector interface {
	Inspect(data []byte) (*preflight.Report, error)
}

type ConvertService struct {
	logger    *log.Logger
	upstream  Upstream
	inspector Inspector
	cache     Cache
}

func NewConvertService(logger *log.Logger, upstream Upstream, inspector Inspector) *ConvertService {
	return &ConvertService{
		logger:    logger,
		upstream:  upstream,
		inspector: inspector,
	}
}

func (s *ConvertService) SetCacheClient(cache Cache) {
	s.cache = cache
}

func (s *ConvertService) Convert(ctx context.Context, req *models.ConvertRequest) (resp *models.ConvertResponse, err error) {
	start := time.Now()
	status := metrics.StatusOK
	defer func() {
		if err != nil {
			status = metrics.StatusFailed
			var se *Error
			if errors.As(err, &se) && se.Code == http.StatusBadRequest {
				status = metrics.StatusRejected
			}
		}
		metrics.ConversionsTotal(status, req.Format)
		metrics.ConversionDuration(status, req.Format, time.Since(start))
	}()

	if err := req.Validate(); err != nil {
		return nil, badRequest(err.Error(), nil)
	}
	metrics.UploadSize(len(req.Data))

	report, err := s.inspector.Inspect(req.Data)
	if err != nil {
		s.logger.Printf("preflight %s: %v\n", req.FileName, err)
		return nil, badRequest(preflight.ErrInvalidPDF.Error(), err)
	}
	s.logger.Printf("preflight %s: %d pages\n", req.FileName, report.Pages)

	key := getCacheKey(req)
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			s.logger.Println("served from cache")
			status = metrics.StatusCached
			return cached, nil
		}
	}

	resp, err = s.upstream.Convert(ctx, client.NewFile(req.FileName, req.Data), req.Format)
	if err != nil {
		var ue *client.StatusError
		if errors.As(err, &ue) {
			return nil, err
		}
		return nil, &Error{Code: http.StatusBadGateway, Message: "conversion service unavailable", Err: err}
	}
	if resp.Filename == "" {
		resp.Filename = req.OutputName()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			s.logger.Printf("failed to set cache: %v\n", err)
		}
	}
	return resp, nil
}

func getCacheKey(req *models.ConvertRequest) string {
	hash := sha256.New()
	hash.Write([]byte(req.FileName))
	hash.Write([]byte{0})
	hash.Write(req.Data)
	return fmt.Sprintf("%s-%s", hex.EncodeToString(hash.Sum(nil)), req.Format)
}
