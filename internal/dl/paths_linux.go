package dl

var defaultPaths = map[string]string{
	KeyGL:    "libGL.so.1",
	KeyGLES1: "libGLESv1_CM.so.1",
	KeyGLES2: "libGLESv2.so.2",
	KeyGLES3: "libGLESv2.so.2",
	KeyEGL:   "libEGL.so.1",
	KeyX11:   "libX11.so.6",
}
