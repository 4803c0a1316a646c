package waffle

import (
	_ "github.com/1broseidon/glwaffle/internal/backend/surfaceless"
	_ "github.com/1broseidon/glwaffle/internal/backend/x11egl"
)
