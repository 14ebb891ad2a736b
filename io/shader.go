package io

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"mesh-instancing/render"
)

// ReadShaderSource returns the contents of the shader file at path. A file
// that cannot be read is logged and yields an empty source, which the
// driver then rejects at compile time. The failure goes to render.Logger so
// it shares a channel with the shader diagnostics.
func ReadShaderSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		render.Logger().Error("failed to open shader file", "path", path, "error", err)
		return ""
	}
	return string(data)
}

func ArrayToVec3(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}
