package scene

import (
	"fmt"
	"image"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/glade/internal/assets"
	"github.com/Faultbox/glade/internal/engine/model"
	"github.com/Faultbox/glade/internal/engine/scatter"
	"github.com/Faultbox/glade/internal/engine/scene/shaders"
	"github.com/Faultbox/glade/internal/engine/shader"
	"github.com/Faultbox/glade/internal/engine/terrain"
	"github.com/Faultbox/glade/internal/engine/texture"
	"github.com/Faultbox/glade/internal/logger"
	"github.com/Faultbox/glade/pkg/formats"
)

// Resource file names.
const (
	TerrainFile   = "terrain.obj"
	SkyCubeFile   = "cube.obj"
	TreeFile      = "tree.obj"
	StructureFile = "shack.obj"
	TotemFile     = "totem.obj"
	FigureFile    = "dummy.obj"

	GroundTextureFile    = "grass.jpg"
	TreeTextureFile      = "crate.jpg"
	StructureTextureFile = "shacktex.jpg"
	SkyFacePattern       = "cracks/bluecloud_%s.jpg"
)

// meshGroup draws every shape of a multi-shape file as one object.
type meshGroup []*GPUMesh

func (g meshGroup) Draw() {
	for _, m := range g {
		m.Draw()
	}
}

func (g meshGroup) Delete() {
	for _, m := range g {
		m.Delete()
	}
}

type loader struct {
	mgr *assets.Manager
	log *zap.Logger
}

// Load compiles the programs, uploads meshes and textures, builds the height
// field and scatters the trees. The programs and the terrain are required;
// any other asset that fails is logged and left nil so its draw is skipped.
func Load(cfg Config, mgr *assets.Manager, rng *rand.Rand) (Content, error) {
	if err := CheckRequired(mgr); err != nil {
		return Content{}, err
	}

	l := &loader{mgr: mgr, log: logger.Named("scene.load")}
	var c Content

	programs := []struct {
		dst        *Program
		name       string
		vert, frag string
	}{
		{&c.Programs.Sky, "sky", shaders.SkyVertex, shaders.SkyFragment},
		{&c.Programs.Textured, "textured", shaders.TexturedVertex, shaders.TexturedFragment},
		{&c.Programs.Lit, "lit", shaders.LitVertex, shaders.LitFragment},
	}
	for _, p := range programs {
		prog, err := l.program(p.name, p.vert, p.frag)
		if err != nil {
			New(cfg, nil, c).Close()
			return Content{}, err
		}
		*p.dst = prog
	}

	terrainOBJ, err := mgr.LoadOBJ(TerrainFile)
	if err != nil {
		New(cfg, nil, c).Close()
		return Content{}, err
	}
	c.Heights = terrain.NewHeightField()
	for i := range terrainOBJ.Shapes {
		c.Heights.Build(terrainOBJ.Shapes[i].Positions)
	}
	l.log.Info("height field built", zap.Int("cells", c.Heights.Len()))
	c.Meshes.Ground = l.upload(TerrainFile, terrainOBJ, model.BuildOptions{TexTile: cfg.TerrainTile})

	c.Trees = scatter.Scatter(rng, cfg.ScatterCenter, cfg.Exclusion, cfg.Outer, cfg.TreeCount)
	l.log.Info("trees scattered", zap.Int("count", len(c.Trees)))

	c.Meshes.Sky = l.meshFile(SkyCubeFile)
	c.Meshes.Tree = l.meshFile(TreeFile)
	c.Meshes.Structure = l.meshFile(StructureFile)
	c.Meshes.Totem = l.meshFile(TotemFile)
	c.Meshes.Figure, c.Normalization = l.figure(FigureFile)

	c.Textures.Ground = l.texture2D(GroundTextureFile, texture.Options{Unit: 2, WrapS: texture.Repeat, WrapT: texture.Repeat, Mipmaps: true})
	c.Textures.Tree = l.texture2D(TreeTextureFile, texture.Options{Unit: 0})
	c.Textures.Structure = l.texture2D(StructureTextureFile, texture.Options{Unit: 1})
	c.Textures.Sky = l.cubemap(SkyFacePattern)

	return c, nil
}

func (l *loader) program(name, vertFile, fragFile string) (Program, error) {
	vert, err := l.mgr.LoadShaderSource(vertFile)
	if err != nil {
		return nil, err
	}
	frag, err := l.mgr.LoadShaderSource(fragFile)
	if err != nil {
		return nil, err
	}

	p, err := shader.NewProgram(name, vert, frag)
	if err != nil {
		return nil, &assets.LoadError{Kind: assets.KindShader, Path: vertFile + "+" + fragFile, Err: err}
	}
	active, missing := uniformReport(name, p.Has)
	if len(missing) > 0 {
		l.log.Warn("program lacks pass uniforms", zap.String("name", name), zap.Strings("missing", missing))
	}
	l.log.Debug("program linked", zap.String("name", name), zap.Uint32("id", p.ID), zap.Int("uniforms", active))
	return p, nil
}

// upload builds and uploads every shape of obj. Returns nil when nothing uploads.
func (l *loader) upload(file string, obj *formats.OBJ, opts model.BuildOptions) Mesh {
	var group meshGroup
	vertices, indices := 0, 0
	for i := range obj.Shapes {
		mesh := model.BuildMesh(&obj.Shapes[i], opts)
		if gpu := UploadMesh(mesh); gpu != nil {
			group = append(group, gpu)
			vertices += len(mesh.Vertices)
			indices += int(gpu.IndexCount())
		}
	}
	if len(group) == 0 {
		l.log.Warn("mesh has no drawable shapes", zap.String("path", file))
		return nil
	}
	l.log.Debug("mesh uploaded", zap.String("path", file), zap.Int("shapes", len(group)), zap.Int("vertices", vertices), zap.Int("indices", indices))
	return group
}

func (l *loader) meshFile(file string) Mesh {
	obj, err := l.mgr.LoadOBJ(file)
	if err != nil {
		l.log.Warn("mesh unavailable", zap.String("path", file), zap.Error(err))
		return nil
	}
	return l.upload(file, obj, model.BuildOptions{})
}

// figure loads a multi-part model and derives the shared normalization of
// its parts.
func (l *loader) figure(file string) ([]Mesh, model.Normalization) {
	identity := model.Normalization{Scale: 1}

	obj, err := l.mgr.LoadOBJ(file)
	if err != nil {
		l.log.Warn("figure unavailable", zap.String("path", file), zap.Error(err))
		return nil, identity
	}

	var (
		parts   []Mesh
		extents []model.Extent
	)
	for i := range obj.Shapes {
		mesh := model.BuildMesh(&obj.Shapes[i], model.BuildOptions{})
		extents = append(extents, mesh.Extent)
		if gpu := UploadMesh(mesh); gpu != nil {
			parts = append(parts, gpu)
		}
	}

	norm := model.Normalize(extents)
	center := norm.Translate.Array()
	l.log.Info("figure loaded",
		zap.String("path", file),
		zap.Int("parts", len(parts)),
		zap.Float32("scale", norm.Scale),
		zap.Float32s("center", center[:]),
	)
	return parts, norm
}

func (l *loader) texture2D(file string, opts texture.Options) Texture {
	img, err := l.mgr.LoadImage(file)
	if err != nil {
		l.log.Warn("texture unavailable", zap.String("path", file), zap.Error(err))
		return nil
	}
	tex, err := texture.New2D(texture.ImageToRGBA(img, true), opts)
	if err != nil {
		l.log.Warn("texture upload failed", zap.String("path", file), zap.Error(err))
		return nil
	}
	l.log.Debug("texture loaded", zap.String("path", file), zap.Int("width", tex.Width), zap.Int("height", tex.Height), zap.Int32("unit", opts.Unit))
	return tex
}

func (l *loader) cubemap(pattern string) Texture {
	var faces [texture.CubeFaces]*image.RGBA
	for i, suffix := range texture.FaceSuffixes {
		file := fmt.Sprintf(pattern, suffix)
		img, err := l.mgr.LoadImage(file)
		if err != nil {
			l.log.Warn("sky face unavailable", zap.String("path", file), zap.Error(err))
			return nil
		}
		faces[i] = texture.ImageToRGBA(img, false)
	}

	cube, err := texture.NewCubemap(faces)
	if err != nil {
		l.log.Warn("sky cubemap rejected", zap.Error(err))
		return nil
	}
	l.log.Debug("sky cubemap loaded", zap.Int("size", cube.Size))
	return cube
}
