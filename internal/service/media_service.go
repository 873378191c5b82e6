package service

import (
	"context"
	"io"

	"charity-ledger-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type mediaService struct {
	log zerolog.Logger
}

// NewMediaService creates the media store. Uploads are accepted and dropped:
// no storage backend is wired yet, and an empty media reference is valid on
// every campaign.
// TODO: back this with object storage once a bucket is provisioned.
func NewMediaService(log zerolog.Logger) ports.MediaStore {
	return &mediaService{log: log}
}

// Upload drains the reader and returns an empty reference.
func (s *mediaService) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("filename", filename).Int64("bytes", n).Msg("media upload discarded, no storage backend")
	return "", nil
}
