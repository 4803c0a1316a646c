package surfaceless

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
)

var _ platform.Backend = (*Backend)(nil)

func TestRegistered(t *testing.T) {
	assert.Contains(t, platform.Registered(), enum.PlatformSurfacelessEGL)
}
