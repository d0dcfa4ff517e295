package loader

import (
	"encoding/json"
	"fmt"
	"io"
	gomath "math"
	"os"

	"prism/pkg/camera"
	"prism/pkg/canvas"
	"prism/pkg/geometry"
	"prism/pkg/math"
	"prism/pkg/renderer"
	"prism/pkg/shading"
)

// meshDivideThreshold is the child count above which flattened meshes are
// subdivided into nested groups.
const meshDivideThreshold = 8

// Vec3 is a JSON [x, y, z] triple.
type Vec3 [3]float64

func (v Vec3) point() math.Point3 { return math.Point3{X: v[0], Y: v[1], Z: v[2]} }

func (v Vec3) vector() math.Vector3 { return math.Vector3{X: v[0], Y: v[1], Z: v[2]} }

func (v Vec3) color() canvas.Color { return canvas.NewColor(v[0], v[1], v[2]) }

// CameraConfig positions the camera. Fov is in degrees.
type CameraConfig struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Fov    float64 `json:"fov"`
	From   Vec3    `json:"from"`
	To     Vec3    `json:"to"`
	Up     Vec3    `json:"up"`
}

// LightConfig places the scene's point light.
type LightConfig struct {
	At        *Vec3 `json:"at,omitempty"`
	Intensity *Vec3 `json:"intensity,omitempty"`
}

// TransformStep is one affine operation; steps compose left to right by
// post-multiplication.
type TransformStep struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// PatternConfig describes a procedural pattern with either two colors or two
// sub-patterns.
type PatternConfig struct {
	Type      string          `json:"type"`
	Colors    []Vec3          `json:"colors,omitempty"`
	Patterns  []PatternConfig `json:"patterns,omitempty"`
	Transform []TransformStep `json:"transform,omitempty"`
}

// MaterialConfig overrides material fields; nil fields keep the preset's
// defaults.
type MaterialConfig struct {
	Preset          string         `json:"preset,omitempty"`
	Color           *Vec3          `json:"color,omitempty"`
	Ambient         *float64       `json:"ambient,omitempty"`
	Diffuse         *float64       `json:"diffuse,omitempty"`
	Specular        *float64       `json:"specular,omitempty"`
	Shininess       *float64       `json:"shininess,omitempty"`
	Reflective      *float64       `json:"reflective,omitempty"`
	Transparency    *float64       `json:"transparency,omitempty"`
	RefractiveIndex *float64       `json:"refractiveIndex,omitempty"`
	Pattern         *PatternConfig `json:"pattern,omitempty"`
}

// ShapeConfig describes one shape; the type tag selects which of the
// type-specific fields apply.
type ShapeConfig struct {
	Type       string          `json:"type"`
	Material   *MaterialConfig `json:"material,omitempty"`
	Transform  []TransformStep `json:"transform,omitempty"`
	CastShadow *bool           `json:"castShadow,omitempty"`

	Radius   *float64      `json:"radius,omitempty"`   // sphere
	Min      *float64      `json:"min,omitempty"`      // cylinder, cone
	Max      *float64      `json:"max,omitempty"`      // cylinder, cone
	Closed   *bool         `json:"closed,omitempty"`   // cylinder, cone
	P1       *Vec3         `json:"p1,omitempty"`       // triangle
	P2       *Vec3         `json:"p2,omitempty"`       // triangle
	P3       *Vec3         `json:"p3,omitempty"`       // triangle
	Children []ShapeConfig `json:"children,omitempty"` // group
	Vertices []Vec3        `json:"vertices,omitempty"` // mesh
	Faces    [][]int       `json:"faces,omitempty"`    // mesh
	Baked    string        `json:"baked,omitempty"`    // mesh cache file
}

// SceneConfig is the root of a scene file.
type SceneConfig struct {
	Camera CameraConfig  `json:"camera"`
	Light  LightConfig   `json:"light"`
	Shapes []ShapeConfig `json:"shapes"`
}

// LoadScene reads and builds a scene file.
func LoadScene(path string) (*renderer.Scene, *camera.Camera, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	defer f.Close()
	return ParseScene(f)
}

// ParseScene decodes a scene config and builds the scene and camera,
// rejecting unknown shape and pattern types and singular transforms before
// anything reaches the render phase.
func ParseScene(r io.Reader) (*renderer.Scene, *camera.Camera, error) {
	var config SceneConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&config); err != nil {
		return nil, nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	cam, err := buildCamera(config.Camera)
	if err != nil {
		return nil, nil, err
	}

	sc := renderer.NewScene()
	sc.Light = buildLight(config.Light)
	for i, shapeCfg := range config.Shapes {
		shape, err := buildShape(shapeCfg, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("shape %d: %w", i, err)
		}
		sc.AddObject(shape)
	}

	return sc, cam, nil
}

func buildCamera(cfg CameraConfig) (*camera.Camera, error) {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 50
	}
	fov := cfg.Fov
	if fov == 0 {
		fov = 90
	}

	cam := camera.New(width, height, fov*gomath.Pi/180)

	from, to, up := cfg.From, cfg.To, cfg.Up
	if up == (Vec3{}) {
		up = Vec3{0, 1, 0}
	}
	if from == to {
		return nil, fmt.Errorf("camera: from and to coincide at %v", from)
	}
	if err := cam.LookAt(from.point(), to.point(), up.vector()); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return cam, nil
}

func buildLight(cfg LightConfig) shading.PointLight {
	light := shading.DefaultLight()
	if cfg.At != nil {
		light.Position = cfg.At.point()
	}
	if cfg.Intensity != nil {
		light.Intensity = cfg.Intensity.color()
	}
	return light
}

// buildShape constructs one shape. Groups pass their material config down as
// inherited, so children without a material of their own take the group's.
func buildShape(cfg ShapeConfig, inherited *MaterialConfig) (geometry.Shape, error) {
	material := cfg.Material
	if material == nil {
		material = inherited
	}

	var shape geometry.Shape

	switch cfg.Type {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "cylinder":
		cy := geometry.NewCylinder()
		applyTruncation(&cy.Min, &cy.Max, &cy.Closed, cfg)
		shape = cy
	case "cone":
		co := geometry.NewCone()
		applyTruncation(&co.Min, &co.Max, &co.Closed, cfg)
		shape = co
	case "triangle":
		if cfg.P1 == nil || cfg.P2 == nil || cfg.P3 == nil {
			return nil, fmt.Errorf("triangle needs p1, p2 and p3")
		}
		shape = geometry.NewTriangle(cfg.P1.point(), cfg.P2.point(), cfg.P3.point())
	case "group":
		g := geometry.NewGroup()
		// Children must be complete before they are added; the group folds
		// their boxes into its aggregate on AddChild.
		for i, childCfg := range cfg.Children {
			child, err := buildShape(childCfg, material)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			g.AddChild(child)
		}
		shape = g
		if err := applyTransform(shape, cfg); err != nil {
			return nil, err
		}
		return finishShape(shape, cfg, nil)
	case "mesh":
		g, err := buildMesh(cfg)
		if err != nil {
			return nil, err
		}
		if material != nil {
			m, err := buildMaterial(*material)
			if err != nil {
				return nil, err
			}
			for _, tri := range geometry.Triangles(g) {
				tri.SetMaterial(m)
			}
		}
		shape = g
		if err := applyTransform(shape, cfg); err != nil {
			return nil, err
		}
		return finishShape(shape, cfg, nil)
	case "":
		return nil, fmt.Errorf("shape has no type")
	default:
		return nil, fmt.Errorf("unknown shape type %q", cfg.Type)
	}

	if err := applyTransform(shape, cfg); err != nil {
		return nil, err
	}
	return finishShape(shape, cfg, material)
}

// finishShape applies the effective material and the shadow flag.
func finishShape(shape geometry.Shape, cfg ShapeConfig, material *MaterialConfig) (geometry.Shape, error) {
	if material != nil {
		m, err := buildMaterial(*material)
		if err != nil {
			return nil, err
		}
		shape.SetMaterial(m)
	}
	if cfg.CastShadow != nil {
		shape.SetCastShadow(*cfg.CastShadow)
	}
	return shape, nil
}

func applyTruncation(min, max *float64, closed *bool, cfg ShapeConfig) {
	if cfg.Min != nil {
		*min = *cfg.Min
	}
	if cfg.Max != nil {
		*max = *cfg.Max
	}
	if cfg.Closed != nil {
		*closed = *cfg.Closed
	}
}

func applyTransform(shape geometry.Shape, cfg ShapeConfig) error {
	m, err := buildTransform(cfg.Transform)
	if err != nil {
		return err
	}
	if cfg.Radius != nil {
		// A sphere radius is shorthand for a uniform object-space scaling.
		r := *cfg.Radius
		if r <= 0 {
			return fmt.Errorf("radius must be positive, got %v", r)
		}
		m = m.Mul(math.Scaling(r, r, r))
	}
	if err := shape.SetTransform(m); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	return nil
}

func buildTransform(steps []TransformStep) (math.Matrix4, error) {
	m := math.Identity4()
	for _, step := range steps {
		stepM, err := transformStep(step)
		if err != nil {
			return math.Matrix4{}, err
		}
		m = m.Mul(stepM)
	}
	return m, nil
}

func transformStep(step TransformStep) (math.Matrix4, error) {
	need := func(n int) error {
		if len(step.Args) != n {
			return fmt.Errorf("transform op %q needs %d args, got %d", step.Op, n, len(step.Args))
		}
		return nil
	}
	a := step.Args

	switch step.Op {
	case "translate":
		if err := need(3); err != nil {
			return math.Matrix4{}, err
		}
		return math.Translation(a[0], a[1], a[2]), nil
	case "scale":
		if err := need(3); err != nil {
			return math.Matrix4{}, err
		}
		return math.Scaling(a[0], a[1], a[2]), nil
	case "rotate_x":
		if err := need(1); err != nil {
			return math.Matrix4{}, err
		}
		return math.RotationX(a[0]), nil
	case "rotate_y":
		if err := need(1); err != nil {
			return math.Matrix4{}, err
		}
		return math.RotationY(a[0]), nil
	case "rotate_z":
		if err := need(1); err != nil {
			return math.Matrix4{}, err
		}
		return math.RotationZ(a[0]), nil
	case "shear":
		if err := need(6); err != nil {
			return math.Matrix4{}, err
		}
		return math.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}
	return math.Matrix4{}, fmt.Errorf("unknown transform op %q", step.Op)
}

func buildMaterial(cfg MaterialConfig) (shading.Material, error) {
	var m shading.Material
	switch cfg.Preset {
	case "":
		m = shading.DefaultMaterial()
	case "glass":
		m = shading.GlassMaterial()
	default:
		return shading.Material{}, fmt.Errorf("unknown material preset %q", cfg.Preset)
	}

	if cfg.Color != nil {
		m.Color = cfg.Color.color()
	}
	if cfg.Ambient != nil {
		m.Ambient = *cfg.Ambient
	}
	if cfg.Diffuse != nil {
		m.Diffuse = *cfg.Diffuse
	}
	if cfg.Specular != nil {
		m.Specular = *cfg.Specular
	}
	if cfg.Shininess != nil {
		m.Shininess = *cfg.Shininess
	}
	if cfg.Reflective != nil {
		m.Reflective = *cfg.Reflective
	}
	if cfg.Transparency != nil {
		m.Transparency = *cfg.Transparency
	}
	if cfg.RefractiveIndex != nil {
		m.RefractiveIndex = *cfg.RefractiveIndex
	}
	if cfg.Pattern != nil {
		p, err := buildPattern(*cfg.Pattern)
		if err != nil {
			return shading.Material{}, err
		}
		m.Pattern = p
	}
	return m, nil
}

func buildPattern(cfg PatternConfig) (shading.Pattern, error) {
	var p shading.Pattern

	if cfg.Type == "blend" {
		if len(cfg.Patterns) != 2 {
			return nil, fmt.Errorf("blend pattern needs 2 sub-patterns, got %d", len(cfg.Patterns))
		}
		p1, err := buildPattern(cfg.Patterns[0])
		if err != nil {
			return nil, err
		}
		p2, err := buildPattern(cfg.Patterns[1])
		if err != nil {
			return nil, err
		}
		p = shading.NewBlendPattern(p1, p2)
	} else {
		if len(cfg.Colors) != 2 {
			return nil, fmt.Errorf("pattern %q needs 2 colors, got %d", cfg.Type, len(cfg.Colors))
		}
		a, b := cfg.Colors[0].color(), cfg.Colors[1].color()
		switch cfg.Type {
		case "striped":
			p = shading.NewStripePattern(a, b)
		case "gradient":
			p = shading.NewGradientPattern(a, b)
		case "ring":
			p = shading.NewRingPattern(a, b)
		case "checkered":
			p = shading.NewCheckerPattern(a, b)
		default:
			return nil, fmt.Errorf("unknown pattern type %q", cfg.Type)
		}
	}

	if len(cfg.Transform) > 0 {
		m, err := buildTransform(cfg.Transform)
		if err != nil {
			return nil, err
		}
		if err := p.SetTransform(m); err != nil {
			return nil, fmt.Errorf("pattern transform: %w", err)
		}
	}
	return p, nil
}

func buildMesh(cfg ShapeConfig) (*geometry.Group, error) {
	if cfg.Baked != "" {
		g, err := LoadBakedMesh(cfg.Baked)
		if err != nil {
			return nil, err
		}
		g.Divide(meshDivideThreshold)
		return g, nil
	}

	if len(cfg.Vertices) == 0 || len(cfg.Faces) == 0 {
		return nil, fmt.Errorf("mesh needs vertices and faces, or a baked file")
	}
	mesh := &geometry.Mesh{Faces: cfg.Faces}
	for _, v := range cfg.Vertices {
		mesh.Vertices = append(mesh.Vertices, v.point())
	}
	g, err := mesh.Group()
	if err != nil {
		return nil, err
	}
	g.Divide(meshDivideThreshold)
	return g, nil
}
