package licenseimage

import (
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"service-rental/internal/apperr"
	"service-rental/internal/logx"
)

var extensions = map[string]string{
	"image/png": ".png",
	"image/bmp": ".bmp",
}

// Service stores driver's-license images and links them to couriers.
type Service struct {
	couriers         courierRepository
	storage          blobStorage
	attached         *prometheus.CounterVec
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService creates a license image Service. attached may be nil.
func NewService(c courierRepository, s blobStorage, attached *prometheus.CounterVec, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{couriers: c, storage: s, attached: attached, logger: logger, operationTimeout: timeout}
}

// Attach stores data as the license image of the courier and records the
// returned location on it. Any earlier image for the same courier and
// extension is replaced.
//
// The blob write and the courier update are not atomic: if the update fails
// the blob stays behind and the courier keeps its previous path.
func (s *Service) Attach(ctx context.Context, courierID uuid.UUID, data []byte, mediaType string) (string, error) {
	if len(data) == 0 {
		return "", apperr.Invalid("file is required", "file")
	}
	ext, ok := extensionFor(mediaType)
	if !ok {
		return "", apperr.Invalid("only PNG or BMP are allowed", "file")
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	c, err := s.couriers.Get(ctx, courierID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", apperr.ErrNotFound
	}

	contentType := mediaTypeOf(mediaType)
	location, err := s.storage.Put(ctx, courierID.String()+ext, data, contentType)
	if err != nil {
		return "", fmt.Errorf("store license image: %w", err)
	}

	c.LicenseImagePath = &location
	updated, err := s.couriers.Update(ctx, c)
	if err != nil {
		s.logger.Error("license image stored but courier not updated",
			logx.String("courier_id", courierID.String()),
			logx.String("location", location),
			logx.Err(err),
		)
		return "", err
	}
	if !updated {
		return "", apperr.ErrNotFound
	}

	if s.attached != nil {
		s.attached.WithLabelValues(strings.TrimPrefix(ext, ".")).Inc()
	}
	s.logger.Info("license image attached",
		logx.String("courier_id", courierID.String()),
		logx.String("location", location),
		logx.Int("size", len(data)),
	)
	return location, nil
}

func mediaTypeOf(declared string) string {
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}

func extensionFor(declared string) (string, bool) {
	ext, ok := extensions[mediaTypeOf(declared)]
	return ext, ok
}
