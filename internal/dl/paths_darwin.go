package dl

const openGLFramework = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

var defaultPaths = map[string]string{
	KeyGL: openGLFramework,
}
