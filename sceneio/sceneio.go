// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sceneio loads a scene description from YAML into a
// scene.Scene, the same string-keyed-config-to-domain-struct
// approach load.Shd uses for shader descriptions: decode into a
// plain yaml-tagged struct, then validate and translate each field
// through a lookup map, wrapping decode/validation failures as a
// single construction error rather than partially populating the
// scene.
package sceneio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/colour"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/load"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/octree"
	"github.com/galvanized/raytrace/scene"
	"github.com/galvanized/raytrace/shading"
	"github.com/galvanized/raytrace/shapes"
	"github.com/galvanized/raytrace/texture"
)

// LoadFile resolves name through loc and loads the scene it names.
// Use this instead of Load when the scene description lives alongside
// its referenced textures in a load.Locator's resource set (disk
// directory or zip bundle) rather than already in memory. Unlike
// Load, a material's optional texture field is resolved through loc.
func LoadFile(loc load.Locator, name string) (*scene.Scene, error) {
	f, err := loc.GetResource(name)
	if err != nil {
		return nil, fmt.Errorf("sceneio: %s: %w", name, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("sceneio: %s: %w", name, err)
	}
	return loadScene(data, loc)
}

// Load decodes data as a scene description and returns the
// populated Scene. Every shape/light/view name collision or
// unsupported kind aborts the whole load with a wrapped error — no
// partially populated scene is returned. A material naming a texture
// file can only be resolved by LoadFile, since Load has no Locator to
// find it through.
func Load(data []byte) (*scene.Scene, error) {
	return loadScene(data, nil)
}

func loadScene(data []byte, loc load.Locator) (*scene.Scene, error) {
	var cfg sceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("sceneio: yaml %w", err)
	}

	cfgScene := cfg.Scene
	sceneCfg := scene.DefaultConfig()
	if cfgScene.Octree != nil {
		sceneCfg.UseOctree = *cfgScene.Octree
	}
	if cfgScene.OctreeThreshold > 0 {
		sceneCfg.OctreeSplitThreshold = cfgScene.OctreeThreshold
	}
	if cfgScene.MaxReflections > 0 {
		sceneCfg.MaxReflections = cfgScene.MaxReflections
	}
	scn := scene.New(sceneCfg)

	for _, sc := range cfg.Shapes {
		shape, err := buildShape(sc, loc)
		if err != nil {
			return nil, fmt.Errorf("sceneio: shape %q: %w", sc.Name, err)
		}
		if _, err := scn.AddShape(shape, sc.Name); err != nil {
			return nil, fmt.Errorf("sceneio: shape %q: %w", sc.Name, err)
		}
	}

	for _, lc := range cfg.Lights {
		lgt, err := buildLight(lc)
		if err != nil {
			return nil, fmt.Errorf("sceneio: light %q: %w", lc.Name, err)
		}
		if _, err := scn.AddLight(lgt, lc.Name); err != nil {
			return nil, fmt.Errorf("sceneio: light %q: %w", lc.Name, err)
		}
	}

	for _, vc := range cfg.Views {
		view, err := buildView(vc)
		if err != nil {
			return nil, fmt.Errorf("sceneio: view %q: %w", vc.Name, err)
		}
		if _, err := scn.AddView(view, vc.Name); err != nil {
			return nil, fmt.Errorf("sceneio: view %q: %w", vc.Name, err)
		}
	}

	return scn, nil
}

// sceneConfig is the top-level shape of a scene description file.
type sceneConfig struct {
	Scene struct {
		Octree          *bool `yaml:"octree"`
		OctreeThreshold int   `yaml:"octreeThreshold"`
		MaxReflections  int   `yaml:"maxReflections"`
	} `yaml:"scene"`
	Shapes []shapeConfig `yaml:"shapes"`
	Lights []lightConfig `yaml:"lights"`
	Views  []viewConfig  `yaml:"views"`
}

type vecConfig []float64

func (v vecConfig) v3() *lin.V3 {
	if len(v) != 3 {
		return lin.NewV3()
	}
	return lin.NewV3S(v[0], v[1], v[2])
}

type colourConfig []float64

func (c colourConfig) colour() *colour.Colour {
	if len(c) != 3 {
		return nil
	}
	return colour.New(c[0], c[1], c[2])
}

type transformConfig struct {
	Translate vecConfig `yaml:"translate"`
	Scale     vecConfig `yaml:"scale"`
	RotateAxis vecConfig `yaml:"rotateAxis"`
	RotateDegrees float64 `yaml:"rotateDegrees"`
}

func (t *transformConfig) build() *shapes.Transform {
	if t == nil {
		return shapes.New()
	}
	var opts []shapes.Option
	if len(t.Translate) == 3 {
		v := t.Translate
		opts = append(opts, shapes.Translate(v[0], v[1], v[2]))
	}
	if len(t.Scale) == 3 {
		v := t.Scale
		opts = append(opts, shapes.Scale(v[0], v[1], v[2]))
	}
	if len(t.RotateAxis) == 3 {
		opts = append(opts, shapes.Rotate(t.RotateAxis.v3(), t.RotateDegrees))
	}
	return shapes.New(opts...)
}

type materialConfig struct {
	Diffuse      colourConfig `yaml:"diffuse"`
	Specular     colourConfig `yaml:"specular"`
	Transparency colourConfig `yaml:"transparency"`
	Texture      string       `yaml:"texture"`
}

func (m *materialConfig) build() *shapes.Material {
	if m == nil {
		return &shapes.Material{}
	}
	return &shapes.Material{
		Diffuse:      m.Diffuse.colour(),
		Specular:     m.Specular.colour(),
		Transparency: m.Transparency.colour(),
	}
}

// buildMapped builds the Material the same way build does, then
// overrides Diffuse with a texture Mapper (built from mapper) when the
// config names a texture file and a Locator is available to resolve
// it. A named texture without a Locator (Load rather than LoadFile)
// is an error rather than silently falling back to a flat colour.
func (m *materialConfig) buildMapped(loc load.Locator, mapper func(texture.Texture) shapes.Mapper) (*shapes.Material, error) {
	mat := m.build()
	if m == nil || m.Texture == "" {
		return mat, nil
	}
	if loc == nil {
		return nil, fmt.Errorf("material names texture %q but the scene was loaded without a Locator", m.Texture)
	}
	img, err := texture.LoadImageNamed(loc, m.Texture)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", m.Texture, err)
	}
	mat.Mapper = mapper(img)
	return mat, nil
}

type shapeConfig struct {
	Name      string           `yaml:"name"`
	Kind      string           `yaml:"kind"`
	Radius    float64          `yaml:"radius"`
	YTop      float64          `yaml:"yTop"`
	YBottom   float64          `yaml:"yBottom"`
	Left      float64          `yaml:"left"`
	Right     float64          `yaml:"right"`
	Top       float64          `yaml:"top"`
	Bottom    float64          `yaml:"bottom"`
	Vertices  []vecConfig      `yaml:"vertices"`
	Transform *transformConfig `yaml:"transform"`
	Material  *materialConfig  `yaml:"material"`
	CapMaterial *materialConfig `yaml:"capMaterial"`
	Mesh        string          `yaml:"mesh"`
	MeshOctreeThreshold int     `yaml:"meshOctreeThreshold"`
}

// shapeBuilders maps a config's kind string to the constructor that
// builds it, mirroring load.Shd's string-to-enum lookup-map idiom.
// Builders for kinds with a uv projection resolve their material
// through the kind-specific texture mapper (e.g. spherical uv for a
// sphere, cylindrical for a cylinder); the polygon and mesh builders
// use the flat material only and ignore any texture setting.
var shapeBuilders = map[string]func(shapeConfig, load.Locator) (shapes.Shape, error){
	"sphere": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere requires a positive radius")
		}
		mat, err := sc.Material.buildMapped(loc, texture.SphereMapper)
		if err != nil {
			return nil, err
		}
		return shapes.NewSphere(sc.Radius, sc.Transform.build(), mat), nil
	},
	"cylinder": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		mat, err := sc.Material.buildMapped(loc, texture.CylinderMapper)
		if err != nil {
			return nil, err
		}
		return shapes.NewCylinder(sc.Transform.build(), mat), nil
	},
	"cappedcylinder": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		mat, err := sc.Material.buildMapped(loc, texture.CylinderMapper)
		if err != nil {
			return nil, err
		}
		return shapes.NewCappedCylinder(sc.Transform.build(), mat, sc.CapMaterial.build()), nil
	},
	"cone": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		mat, err := sc.Material.buildMapped(loc, func(t texture.Texture) shapes.Mapper {
			return texture.ConeMapper(t, sc.YTop, sc.YBottom)
		})
		if err != nil {
			return nil, err
		}
		return shapes.NewCone(sc.YTop, sc.YBottom, sc.Transform.build(), mat), nil
	},
	"cappedcone": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		mat, err := sc.Material.buildMapped(loc, func(t texture.Texture) shapes.Mapper {
			return texture.ConeMapper(t, sc.YTop, sc.YBottom)
		})
		if err != nil {
			return nil, err
		}
		return shapes.NewCappedCone(sc.YTop, sc.YBottom, sc.Transform.build(), mat, sc.CapMaterial.build()), nil
	},
	"disc": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		mat, err := sc.Material.buildMapped(loc, texture.DiscMapper)
		if err != nil {
			return nil, err
		}
		return shapes.NewDisc(sc.Transform.build(), mat), nil
	},
	"rectangle": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		mat, err := sc.Material.buildMapped(loc, func(t texture.Texture) shapes.Mapper {
			return texture.RectangleMapper(t, sc.Left, sc.Top, sc.Right-sc.Left, sc.Bottom-sc.Top)
		})
		if err != nil {
			return nil, err
		}
		return shapes.NewRectangle(sc.Left, sc.Right, sc.Top, sc.Bottom, sc.Transform.build(), mat), nil
	},
	"triangle": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		if len(sc.Vertices) != 3 {
			return nil, fmt.Errorf("triangle requires exactly 3 vertices, got %d", len(sc.Vertices))
		}
		mat, err := sc.Material.buildMapped(loc, texture.TriangleMapper)
		if err != nil {
			return nil, err
		}
		return shapes.NewTriangle(sc.Vertices[0].v3(), sc.Vertices[1].v3(), sc.Vertices[2].v3(),
			sc.Transform.build(), mat), nil
	},
	"polygon": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		if len(sc.Vertices) < 4 {
			return nil, fmt.Errorf("polygon requires at least 4 vertices, got %d", len(sc.Vertices))
		}
		verts := make([]*lin.V3, len(sc.Vertices))
		for i, v := range sc.Vertices {
			verts[i] = v.v3()
		}
		return shapes.NewPolygon(verts, sc.Transform.build(), sc.Material.build()), nil
	},
	"mesh": func(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
		if sc.Mesh == "" {
			return nil, fmt.Errorf("mesh requires a mesh file name")
		}
		if loc == nil {
			return nil, fmt.Errorf("mesh %q can only be resolved through LoadFile, not Load", sc.Mesh)
		}
		f, err := loc.GetResource(sc.Mesh)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", sc.Mesh, err)
		}
		defer f.Close()
		tris, err := shapes.LoadPolyMesh(f)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", sc.Mesh, err)
		}
		threshold := sc.MeshOctreeThreshold
		if threshold <= 0 {
			threshold = 8
		}
		box := tris[0].WorldAABB()
		for _, tr := range tris[1:] {
			box = box.Union(tr.WorldAABB())
		}
		index := octree.New(box, threshold, 0)
		return shapes.NewPolyMesh(tris, index, sc.Transform.build(), sc.Material.build()), nil
	},
}

func buildShape(sc shapeConfig, loc load.Locator) (shapes.Shape, error) {
	build, ok := shapeBuilders[sc.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported shape kind %q", sc.Kind)
	}
	return build(sc, loc)
}

type lightConfig struct {
	Name     string       `yaml:"name"`
	Kind     string       `yaml:"kind"`
	Position vecConfig    `yaml:"position"`
	Colour   colourConfig `yaml:"colour"`
	Samples  int          `yaml:"samples"`
	Length   float64      `yaml:"length"`
	Transform *transformConfig `yaml:"transform"`
}

var lightBuilders = map[string]func(lightConfig) (light.Light, error){
	"point": func(lc lightConfig) (light.Light, error) {
		if len(lc.Position) != 3 {
			return nil, fmt.Errorf("point light requires a position")
		}
		return light.NewPoint(lc.Position.v3(), lc.Colour.colour()), nil
	},
	"spotlight": func(lc lightConfig) (light.Light, error) {
		return light.NewSpotlight(lc.Transform.build(), lc.Colour.colour(), lc.Samples), nil
	},
	"conical": func(lc lightConfig) (light.Light, error) {
		return light.NewConical(lc.Transform.build(), lc.Colour.colour(), lc.Length), nil
	},
}

func buildLight(lc lightConfig) (light.Light, error) {
	build, ok := lightBuilders[lc.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported light kind %q", lc.Kind)
	}
	return build(lc)
}

type antialiasConfig struct {
	Mode       string  `yaml:"mode"`
	X          int     `yaml:"x"`
	Y          int     `yaml:"y"`
	Stochastic bool    `yaml:"stochastic"`
	EdgeThreshold float64 `yaml:"edgeThreshold"`
}

var antialiasModes = map[string]camera.Antialias{
	"none":       camera.NoAA,
	"grid":       camera.GridAA,
	"stochastic": camera.StochasticAA,
	"edgedetect": camera.EdgeDetectAA,
}

type viewConfig struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"` // "centered" or "lookat"
	EyeZ       float64  `yaml:"eyeZ"`
	Eye        vecConfig `yaml:"eye"`
	LookAt     vecConfig `yaml:"lookAt"`
	ViewWidth  float64  `yaml:"viewWidth"`
	EyeDistance float64 `yaml:"eyeDistance"`
	Scale      float64  `yaml:"scale"`
	RollDegrees float64 `yaml:"rollDegrees"`
	Physical struct {
		Left, Top, Right, Bottom int
	} `yaml:"physical"`
	ViewRect *struct {
		Left, Top, Right, Bottom float64
	} `yaml:"viewRect"`
	Ambient colourConfig `yaml:"ambient"`
	MaxReflect int `yaml:"maxReflect"`
	Antialias *antialiasConfig `yaml:"antialias"`
	MaxProcesses int `yaml:"maxProcesses"`
}

func buildView(vc viewConfig) (*camera.View, error) {
	physical := camera.Rect{Left: vc.Physical.Left, Top: vc.Physical.Top, Right: vc.Physical.Right, Bottom: vc.Physical.Bottom}
	ambient := vc.Ambient.colour()
	lighting := shading.NewBasic(ambient, vc.MaxReflect)

	var view *camera.View
	switch vc.Kind {
	case "", "centered":
		if vc.ViewRect == nil {
			return nil, fmt.Errorf("centered view requires viewRect")
		}
		vr := camera.ViewRect{Left: vc.ViewRect.Left, Top: vc.ViewRect.Top, Right: vc.ViewRect.Right, Bottom: vc.ViewRect.Bottom}
		view = camera.NewView(vc.EyeZ, physical, vr, lighting, nil)
	case "lookat":
		if len(vc.Eye) != 3 || len(vc.LookAt) != 3 {
			return nil, fmt.Errorf("lookat view requires eye and lookAt")
		}
		var err error
		view, err = camera.NewViewLookAt(vc.Eye.v3(), vc.LookAt.v3(), vc.ViewWidth, vc.EyeDistance,
			physical, vc.Scale, vc.RollDegrees, lighting, nil)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported view kind %q", vc.Kind)
	}

	if vc.Antialias != nil {
		mode, ok := antialiasModes[vc.Antialias.Mode]
		if !ok {
			return nil, fmt.Errorf("unsupported antialias mode %q", vc.Antialias.Mode)
		}
		view.Antialias = camera.AntialiasSettings{
			Mode:          mode,
			X:             vc.Antialias.X,
			Y:             vc.Antialias.Y,
			Stochastic:    vc.Antialias.Stochastic,
			EdgeThreshold: vc.Antialias.EdgeThreshold,
		}
	}
	view.MaxProcesses = vc.MaxProcesses
	return view, nil
}
