package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glade/internal/engine/model"
)

// GPUMesh is a model.Mesh uploaded into a VAO with an index buffer.
type GPUMesh struct {
	Name       string
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// UploadMesh creates GPU buffers for mesh. Returns nil for an empty mesh.
func UploadMesh(mesh *model.Mesh) *GPUMesh {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil
	}

	m := &GPUMesh{Name: mesh.Name}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	// VBO
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(model.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 12)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 24)
	gl.EnableVertexAttribArray(2)

	// EBO
	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(mesh.Indices))
	gl.BindVertexArray(0)

	return m
}

// Draw issues the indexed draw call.
func (m *GPUMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *GPUMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}

// IndexCount returns the number of indices drawn.
func (m *GPUMesh) IndexCount() int32 {
	return m.indexCount
}
