package assets

import "fmt"

// Kind classifies a failed asset.
type Kind int

const (
	KindGeometry Kind = iota
	KindTexture
	KindShader
)

func (k Kind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindTexture:
		return "texture"
	case KindShader:
		return "shader"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// LoadError reports an asset that could not be loaded. The asset is left
// unconstructed.
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
