// Package formats provides parsers for the asset file formats loaded from the
// resource directory.
package formats

// Note: Wavefront OBJ geometry is implemented in obj.go
