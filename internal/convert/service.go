// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/pdiddy/xml2json/pkg/types"
)

// Recorder persists successful conversions. The archive store implements it.
type Recorder interface {
	Save(ctx context.Context, rec types.ConversionRecord) (int64, error)
}

// Service runs conversions for the CLI and optionally records each result.
type Service struct {
	conv     *Converter
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wraps conv. recorder may be nil.
func NewService(conv *Converter, recorder Recorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{conv: conv, recorder: recorder, logger: logger, now: time.Now}
}

// ProcessXML converts xmlInput and returns the JSON text.
func (s *Service) ProcessXML(ctx context.Context, xmlInput string) (string, error) {
	res, err := s.Process(ctx, "inline", bytes.NewReader([]byte(xmlInput)))
	if err != nil {
		return "", err
	}
	return res.JSON, nil
}

// Process converts the document read from r. source names the input in logs
// and in the archive.
func (s *Service) Process(ctx context.Context, source string, r io.Reader) (Result, error) {
	s.logger.Info("processing XML input", "source", source)

	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", source, err)
	}

	res, err := s.conv.ConvertBytes(data)
	if err != nil {
		s.logger.Error("processing XML", "source", source, "err", err)
		return Result{}, fmt.Errorf("failed to process XML: %w", err)
	}

	if s.recorder != nil {
		sum := sha256.Sum256(data)
		rec := types.ConversionRecord{
			Source:      source,
			Digest:      hex.EncodeToString(sum[:]),
			RootTag:     res.RootTag,
			TotalScore:  strconv.FormatInt(res.TotalScore, 10),
			JSON:        res.JSON,
			ConvertedAt: s.now().UTC(),
		}
		if _, err := s.recorder.Save(ctx, rec); err != nil {
			return Result{}, fmt.Errorf("archiving %s: %w", source, err)
		}
	}
	return res, nil
}
