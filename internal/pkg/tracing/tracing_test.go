package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: false}, nil)

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_EmptyEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: true}, nil)

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_RejectsBadConfig(t *testing.T) {
	_, err := Setup(context.Background(), Config{
		Enabled:     true,
		Endpoint:    "http://localhost:4318",
		SampleRatio: 1.5,
	}, nil)
	assert.ErrorContains(t, err, "sample ratio")

	_, err = Setup(context.Background(), Config{
		Enabled:     true,
		Endpoint:    "ftp://collector:4318",
		SampleRatio: 1,
	}, nil)
	assert.ErrorContains(t, err, "scheme")
}
