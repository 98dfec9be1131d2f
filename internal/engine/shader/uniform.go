package shader

// Uniform identifies a uniform variable used by the scene programs.
// Locations are resolved once at link time.
type Uniform int

const (
	Projection Uniform = iota
	View
	Model
	Texture0
	EyePos
	Eye
	Skybox
	MatAmb
	MatDif
	MatSpec
	Shine
	LightPos

	uniformCount
)

var uniformNames = [uniformCount]string{
	Projection: "P",
	View:       "V",
	Model:      "M",
	Texture0:   "Texture0",
	EyePos:     "eyePos",
	Eye:        "eye",
	Skybox:     "skybox",
	MatAmb:     "MatAmb",
	MatDif:     "MatDif",
	MatSpec:    "MatSpec",
	Shine:      "shine",
	LightPos:   "lightPos",
}

// String returns the GLSL name of the uniform.
func (u Uniform) String() string {
	if u < 0 || u >= uniformCount {
		return "unknown"
	}
	return uniformNames[u]
}

// Uniforms returns every known uniform in declaration order.
func Uniforms() []Uniform {
	all := make([]Uniform, uniformCount)
	for i := range all {
		all[i] = Uniform(i)
	}
	return all
}

// Locations maps uniforms to program locations. Unknown or inactive
// uniforms have location -1, which OpenGL ignores on upload.
type Locations [uniformCount]int32

// ResolveLocations fills a location table using lookup for each uniform name.
func ResolveLocations(lookup func(name string) int32) Locations {
	var locs Locations
	for i := range locs {
		locs[i] = lookup(uniformNames[i])
	}
	return locs
}

// Get returns the location of u, or -1 when u is out of range.
func (l *Locations) Get(u Uniform) int32 {
	if u < 0 || u >= uniformCount {
		return -1
	}
	return l[u]
}
