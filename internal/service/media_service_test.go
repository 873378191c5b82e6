package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaService_UploadReturnsEmptyReference(t *testing.T) {
	svc := NewMediaService(zerolog.Nop())

	ref, err := svc.Upload(context.Background(), "banner.png", strings.NewReader("pretend image bytes"))
	require.NoError(t, err)
	assert.Empty(t, ref)
}
