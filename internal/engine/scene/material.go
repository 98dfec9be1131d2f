package scene

import "github.com/Faultbox/glade/pkg/math"

// Material is a Phong material.
type Material struct {
	Name      string
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// Palette is the fixed set of materials the lit pass cycles through.
var Palette = [...]Material{
	{
		Name:      "copper",
		Ambient:   math.Vec3{X: 0.19125, Y: 0.0735, Z: 0.0225},
		Diffuse:   math.Vec3{X: 0.7038, Y: 0.27048, Z: 0.0828},
		Specular:  math.Vec3{X: 0.256777, Y: 0.137622, Z: 0.086014},
		Shininess: 12.8,
	},
	{
		Name:      "gold",
		Ambient:   math.Vec3{X: 0.329412, Y: 0.223529, Z: 0.027451},
		Diffuse:   math.Vec3{X: 0.780392, Y: 0.568627, Z: 0.113725},
		Specular:  math.Vec3{X: 0.992157, Y: 0.941176, Z: 0.807843},
		Shininess: 27.8974,
	},
	{
		Name:      "jade",
		Ambient:   math.Vec3{X: 0.1, Y: 0.18725, Z: 0.1745},
		Diffuse:   math.Vec3{X: 0.396, Y: 0.74151, Z: 0.69102},
		Specular:  math.Vec3{X: 0.297254, Y: 0.30829, Z: 0.306678},
		Shininess: 12.8,
	},
	{
		Name:      "moss",
		Ambient:   math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		Diffuse:   math.Vec3{X: 0.1, Y: 0.35, Z: 0.1},
		Specular:  math.Vec3{X: 0.45, Y: 0.55, Z: 0.45},
		Shininess: 0.25,
	},
}

// materialIndex wraps i into the palette range.
func materialIndex(i int) int {
	n := len(Palette)
	return ((i % n) + n) % n
}
