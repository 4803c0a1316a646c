package configattrs

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

func lockThread(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	werror.Reset()
	t.Cleanup(werror.Reset)
}

func TestParse_NilAndEmptyYieldDefaults(t *testing.T) {
	lockThread(t)

	fromNil, err := Parse(nil)
	require.NoError(t, err)
	fromEmpty, err := Parse([]int32{0})
	require.NoError(t, err)

	assert.Equal(t, Default(), fromNil)
	assert.Equal(t, Default(), fromEmpty)
	assert.True(t, fromNil.DoubleBuffered)
	assert.False(t, fromNil.SampleBuffers)
	assert.Equal(t, int32(0), fromNil.Samples)
	assert.Equal(t, enum.DontCare, fromNil.ColorBufferSize)
}

func TestParse_ColorBufferSizeSkipsDontCare(t *testing.T) {
	lockThread(t)

	a, err := Parse([]int32{
		enum.RedSize, 5,
		enum.GreenSize, 6,
		enum.AlphaSize, 8,
		0,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(5), a.RedSize)
	assert.Equal(t, int32(6), a.GreenSize)
	assert.Equal(t, int32(8), a.AlphaSize)
	assert.Equal(t, enum.DontCare, a.BlueSize)
	assert.Equal(t, int32(19), a.ColorBufferSize)
}

func TestParse_BadBooleanValue(t *testing.T) {
	lockThread(t)

	_, err := Parse([]int32{enum.DoubleBuffered, 0x31415926, 0})
	require.Error(t, err)
	assert.Equal(t, werror.BadAttribute, werror.CodeOf(err))

	info := werror.GetInfo()
	assert.Equal(t, werror.BadAttribute, info.Code)
	assert.Contains(t, info.Message, "WAFFLE_DOUBLE_BUFFERED")
	assert.Contains(t, info.Message, "0x31415926")
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		list     []int32
		code     werror.Code
		contains []string
	}{
		{
			name:     "unregistered key reported in hex with index",
			list:     []int32{enum.RedSize, 8, 0x7777, 1, 0},
			code:     werror.BadAttribute,
			contains: []string{"0x7777", "index 2"},
		},
		{
			name:     "registered key in the wrong list reported by name",
			list:     []int32{enum.Platform, enum.PlatformGLX, 0},
			code:     werror.BadAttribute,
			contains: []string{"WAFFLE_PLATFORM", "index 0"},
		},
		{
			name:     "negative size",
			list:     []int32{enum.DepthSize, -3, 0},
			code:     werror.BadAttribute,
			contains: []string{"WAFFLE_DEPTH_SIZE"},
		},
		{
			name:     "dangling key",
			list:     []int32{enum.RedSize, 8, enum.GreenSize},
			code:     werror.BadAttribute,
			contains: []string{"WAFFLE_GREEN_SIZE", "no value"},
		},
		{
			name:     "unknown profile",
			list:     []int32{enum.ContextProfile, 0x1234, 0},
			code:     werror.BadAttribute,
			contains: []string{"WAFFLE_CONTEXT_PROFILE", "0x1234"},
		},
		{
			name:     "samples without sample buffers",
			list:     []int32{enum.Samples, 4, 0},
			code:     werror.IncompatibleAttributes,
			contains: []string{"WAFFLE_SAMPLES", "WAFFLE_SAMPLE_BUFFERS"},
		},
		{
			name:     "sample buffers outside 0/1",
			list:     []int32{enum.SampleBuffers, 2, 0},
			code:     werror.BadAttribute,
			contains: []string{"WAFFLE_SAMPLE_BUFFERS", "0x2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lockThread(t)
			_, err := Parse(tt.list)
			require.Error(t, err)
			assert.Equal(t, tt.code, werror.CodeOf(err))
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
			assert.Equal(t, tt.code, werror.GetCode())
		})
	}
}

func TestParse_LastPairWins(t *testing.T) {
	lockThread(t)

	a, err := Parse([]int32{
		enum.RedSize, 8,
		enum.DoubleBuffered, 0,
		enum.RedSize, 4,
		enum.DoubleBuffered, 1,
		0,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), a.RedSize)
	assert.True(t, a.DoubleBuffered)
}

func TestParse_OrderDoesNotMatter(t *testing.T) {
	lockThread(t)

	a, err := Parse([]int32{enum.StencilSize, 8, enum.DepthSize, 24, enum.SampleBuffers, 1, enum.Samples, 4, 0})
	require.NoError(t, err)
	b, err := Parse([]int32{enum.Samples, 4, enum.SampleBuffers, 1, enum.DepthSize, 24, enum.StencilSize, 8, 0})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_SkipsContextAPI(t *testing.T) {
	lockThread(t)

	a, err := Parse([]int32{enum.ContextAPI, enum.ContextOpenGLES2, enum.RedSize, 8, 0})
	require.NoError(t, err)
	assert.Equal(t, enum.None, a.ContextAPI)
	assert.Equal(t, int32(8), a.RedSize)
}

func TestParse_IgnoresDataPastSentinel(t *testing.T) {
	lockThread(t)

	a, err := Parse([]int32{enum.RedSize, 8, 0, 0, 0x7777, 1})
	require.NoError(t, err)
	assert.Equal(t, int32(8), a.RedSize)
}

func parseBoth(t *testing.T, list []int32) (Attrs, error) {
	t.Helper()
	a, err := Parse(list)
	require.NoError(t, err)
	return a, ParseContext(list, &a)
}

func TestParseContext_MissingAPI(t *testing.T) {
	lockThread(t)
	for _, list := range [][]int32{nil, {0}, {enum.RedSize, 8, 0}} {
		a := Default()
		err := ParseContext(list, &a)
		require.Error(t, err)
		assert.Equal(t, werror.BadAttribute, werror.CodeOf(err))
		assert.Contains(t, err.Error(), "attribute list is missing required key WAFFLE_CONTEXT_API")
		werror.Reset()
	}
}

func TestParseContext_DefaultVersions(t *testing.T) {
	tests := []struct {
		name         string
		api          enum.Enum
		extra        []int32
		major, minor int32
	}{
		{"gl", enum.ContextOpenGL, nil, 1, 0},
		{"es1", enum.ContextOpenGLES1, nil, 1, 0},
		{"es2", enum.ContextOpenGLES2, nil, 2, 0},
		{"es3", enum.ContextOpenGLES3, nil, 3, 0},
		{"es1 keeps explicit minor", enum.ContextOpenGLES1, []int32{enum.ContextMinorVersion, 1}, 1, 1},
		{"gl keeps explicit minor", enum.ContextOpenGL, []int32{enum.ContextMinorVersion, 5}, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lockThread(t)
			list := append([]int32{enum.ContextAPI, tt.api}, tt.extra...)
			a, err := parseBoth(t, append(list, 0))
			require.NoError(t, err)
			assert.Equal(t, tt.api, a.ContextAPI)
			assert.Equal(t, tt.major, a.MajorVersion)
			assert.Equal(t, tt.minor, a.MinorVersion)
			assert.Equal(t, enum.None, a.Profile)
		})
	}
}

func TestParseContext_Profiles(t *testing.T) {
	lockThread(t)

	a, err := parseBoth(t, []int32{
		enum.ContextAPI, enum.ContextOpenGL,
		enum.ContextMajorVersion, 3,
		enum.ContextMinorVersion, 2,
		0,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ContextCoreProfile, a.Profile, "3.2+ defaults to core")

	a, err = parseBoth(t, []int32{
		enum.ContextAPI, enum.ContextOpenGL,
		enum.ContextMajorVersion, 4,
		enum.ContextProfile, enum.ContextCompatProfile,
		0,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ContextCompatProfile, a.Profile)
	assert.Equal(t, int32(0), a.MinorVersion)
}

func TestParseContext_Rejections(t *testing.T) {
	tests := []struct {
		name string
		list []int32
	}{
		{"unknown api", []int32{enum.ContextAPI, 0x4242, 0}},
		{"es2 at 3.0", []int32{enum.ContextAPI, enum.ContextOpenGLES2, enum.ContextMajorVersion, 3, 0}},
		{"es1 at 1.2", []int32{enum.ContextAPI, enum.ContextOpenGLES1, enum.ContextMajorVersion, 1, enum.ContextMinorVersion, 2, 0}},
		{"es3 at 2.0", []int32{enum.ContextAPI, enum.ContextOpenGLES3, enum.ContextMajorVersion, 2, 0}},
		{"gl 0.9", []int32{enum.ContextAPI, enum.ContextOpenGL, enum.ContextMajorVersion, 0, enum.ContextMinorVersion, 9, 0}},
		{"profile on gl 3.1", []int32{enum.ContextAPI, enum.ContextOpenGL, enum.ContextMajorVersion, 3, enum.ContextMinorVersion, 1, enum.ContextProfile, enum.ContextCoreProfile, 0}},
		{"no profile on gl 3.2", []int32{enum.ContextAPI, enum.ContextOpenGL, enum.ContextMajorVersion, 3, enum.ContextMinorVersion, 2, enum.ContextProfile, enum.None, 0}},
		{"dont care profile on gl 4.5", []int32{enum.ContextAPI, enum.ContextOpenGL, enum.ContextMajorVersion, 4, enum.ContextMinorVersion, 5, enum.ContextProfile, enum.DontCare, 0}},
		{"profile on es2", []int32{enum.ContextAPI, enum.ContextOpenGLES2, enum.ContextProfile, enum.ContextCoreProfile, 0}},
		{"forward compatible on gl 2.1", []int32{enum.ContextAPI, enum.ContextOpenGL, enum.ContextMajorVersion, 2, enum.ContextMinorVersion, 1, enum.ContextForwardCompatible, 1, 0}},
		{"forward compatible on es3", []int32{enum.ContextAPI, enum.ContextOpenGLES3, enum.ContextForwardCompatible, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lockThread(t)
			_, err := parseBoth(t, tt.list)
			require.Error(t, err)
			assert.Equal(t, werror.BadAttribute, werror.CodeOf(err))
		})
	}
}

func TestParseInit(t *testing.T) {
	lockThread(t)

	p, err := ParseInit([]int32{enum.Platform, enum.PlatformX11EGL, 0})
	require.NoError(t, err)
	assert.Equal(t, enum.PlatformX11EGL, p)

	for _, list := range [][]int32{nil, {0}} {
		werror.Reset()
		_, err := ParseInit(list)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "attribute list is missing required key WAFFLE_PLATFORM")
	}

	werror.Reset()
	_, err = ParseInit([]int32{enum.Platform, enum.PlatformGLX, enum.ContextAPI, enum.ContextOpenGL, 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAFFLE_CONTEXT_API")

	werror.Reset()
	_, err = ParseInit([]int32{enum.Platform, 0x99, 0})
	require.Error(t, err)
	assert.Equal(t, werror.BadAttribute, werror.CodeOf(err))
	assert.Contains(t, err.Error(), "0x99")
}

func TestParseWindow(t *testing.T) {
	lockThread(t)

	w, err := ParseWindow([]int{int(enum.WindowWidth), 320, int(enum.WindowHeight), 240, 0})
	require.NoError(t, err)
	assert.Equal(t, WindowAttrs{Width: 320, Height: 240}, w)

	w, err = ParseWindow([]int{int(enum.WindowFullscreen), 1, 0})
	require.NoError(t, err)
	assert.True(t, w.Fullscreen)

	bad := [][]int{
		nil,
		{int(enum.WindowWidth), 320, 0},
		{int(enum.WindowWidth), 0, int(enum.WindowHeight), 240, 0},
		{int(enum.WindowWidth), 320, int(enum.WindowHeight), 240, int(enum.RedSize), 8, 0},
		{int(enum.WindowFullscreen), 7, 0},
	}
	for _, list := range bad {
		werror.Reset()
		_, err := ParseWindow(list)
		require.Error(t, err, "list %v", list)
		assert.Equal(t, werror.BadAttribute, werror.CodeOf(err))
	}
}
