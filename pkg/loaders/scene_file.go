package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	// ErrUnexpectedToken is returned when the scene text does not match the grammar
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnexpectedEOF is returned when the scene text ends inside a block
	ErrUnexpectedEOF = errors.New("unexpected end of scene file")
)

// token is a single word of scene text with the line it came from
type token struct {
	text string
	line int
}

// SceneParser encapsulates the state and logic for parsing scene files
type SceneParser struct {
	tokens  []token
	pos     int
	scene   *scene.Scene
	current *material.Material // Material assigned to the next object
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseScene parses scene content from an io.Reader
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	tokens, err := tokenize(reader)
	if err != nil {
		return nil, err
	}

	parser := &SceneParser{
		tokens: tokens,
		scene:  scene.NewScene(nil),
	}
	if err := parser.parse(); err != nil {
		return nil, err
	}
	return parser.scene, nil
}

// tokenize splits the input into words, dropping comments and isolating braces
func tokenize(reader io.Reader) ([]token, error) {
	var tokens []token

	scanner := bufio.NewScanner(reader)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.Index(text, "#"); i >= 0 {
			text = text[:i]
		}
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		text = strings.ReplaceAll(text, "{", " { ")
		text = strings.ReplaceAll(text, "}", " } ")

		for _, field := range strings.Fields(text) {
			tokens = append(tokens, token{text: field, line: line})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return tokens, nil
}

func (p *SceneParser) parse() error {
	for !p.done() {
		tok := p.next()
		var err error
		switch tok.text {
		case "PerspectiveCamera":
			err = p.parseCamera()
		case "Lights":
			err = p.parseLights()
		case "Background":
			err = p.parseBackground()
		case "Materials":
			err = p.parseMaterials()
		case "Group":
			var group *geometry.Group
			group, err = p.parseGroup()
			if err == nil {
				p.scene.Group = group
			}
		default:
			err = unexpected(tok)
		}
		if err != nil {
			return err
		}
	}

	if p.scene.Camera == nil {
		return errors.New("scene file has no PerspectiveCamera")
	}
	return nil
}

func (p *SceneParser) parseCamera() error {
	if err := p.expect("{"); err != nil {
		return err
	}

	center := core.NewVec3(0, 0, 10)
	direction := core.NewVec3(0, 0, -1)
	up := core.NewVec3(0, 1, 0)
	angle := 30.0

	err := p.fields(map[string]func() error{
		"center":    p.vec3Into(&center),
		"direction": p.vec3Into(&direction),
		"up":        p.vec3Into(&up),
		"angle":     p.floatInto(&angle),
	})
	if err != nil {
		return err
	}

	p.scene.Camera = scene.NewPerspectiveCamera(center, direction, up, angle)
	return nil
}

func (p *SceneParser) parseLights() error {
	if err := p.expect("{"); err != nil {
		return err
	}
	count, err := p.countField("numLights")
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		if p.done() {
			return ErrUnexpectedEOF
		}
		tok := p.next()
		switch tok.text {
		case "DirectionalLight":
			if err := p.expect("{"); err != nil {
				return err
			}
			var direction, color core.Vec3
			err = p.fields(map[string]func() error{
				"direction": p.vec3Into(&direction),
				"color":     p.vec3Into(&color),
			})
			p.scene.AddDirectionalLight(direction, color)
		case "PointLight":
			if err := p.expect("{"); err != nil {
				return err
			}
			var position, color core.Vec3
			var falloff float64
			err = p.fields(map[string]func() error{
				"position": p.vec3Into(&position),
				"color":    p.vec3Into(&color),
				"falloff":  p.floatInto(&falloff),
			})
			p.scene.AddPointLight(position, color, falloff)
		default:
			err = unexpected(tok)
		}
		if err != nil {
			return err
		}
	}

	return p.expect("}")
}

func (p *SceneParser) parseBackground() error {
	if err := p.expect("{"); err != nil {
		return err
	}

	var color, ambient core.Vec3
	var top, bottom *core.Vec3
	err := p.fields(map[string]func() error{
		"color":        p.vec3Into(&color),
		"ambientLight": p.vec3Into(&ambient),
		"topColor": func() error {
			v, err := p.vec3()
			top = &v
			return err
		},
		"bottomColor": func() error {
			v, err := p.vec3()
			bottom = &v
			return err
		},
	})
	if err != nil {
		return err
	}

	p.scene.AmbientLight = ambient
	switch {
	case top != nil && bottom != nil:
		p.scene.Background = scene.NewGradientBackground(*top, *bottom)
	case top != nil || bottom != nil:
		return errors.New("Background needs both topColor and bottomColor for a gradient")
	default:
		p.scene.Background = scene.NewSolidBackground(color)
	}
	return nil
}

func (p *SceneParser) parseMaterials() error {
	if err := p.expect("{"); err != nil {
		return err
	}
	count, err := p.countField("numMaterials")
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		if p.done() {
			return ErrUnexpectedEOF
		}
		tok := p.next()
		if tok.text != "Material" && tok.text != "PhongMaterial" {
			return unexpected(tok)
		}
		if err := p.expect("{"); err != nil {
			return err
		}

		m := material.NewMaterial(core.NewVec3(1, 1, 1), core.Vec3{}, 0)
		err := p.fields(map[string]func() error{
			"diffuseColor":  p.vec3Into(&m.DiffuseColor),
			"specularColor": p.vec3Into(&m.SpecularColor),
			"shininess":     p.floatInto(&m.Shininess),
		})
		if err != nil {
			return err
		}
		p.scene.AddMaterial(m)
	}

	if len(p.scene.Materials) > 0 {
		p.current = p.scene.Materials[0]
	}
	return p.expect("}")
}

func (p *SceneParser) parseGroup() (*geometry.Group, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	group := geometry.NewGroup()
	expected := -1
	if p.peek() == "numObjects" {
		count, err := p.countField("numObjects")
		if err != nil {
			return nil, err
		}
		expected = count
	}

	for {
		if p.done() {
			return nil, ErrUnexpectedEOF
		}
		tok := p.next()
		switch tok.text {
		case "}":
			if expected >= 0 && group.Len() != expected {
				return nil, fmt.Errorf("line %d: Group declares %d objects but contains %d", tok.line, expected, group.Len())
			}
			return group, nil
		case "MaterialIndex":
			index, err := p.int()
			if err != nil {
				return nil, err
			}
			if index < 0 || index >= len(p.scene.Materials) {
				return nil, fmt.Errorf("line %d: material index %d out of range [0, %d)", tok.line, index, len(p.scene.Materials))
			}
			p.current = p.scene.Materials[index]
		default:
			obj, err := p.parseObject(tok)
			if err != nil {
				return nil, err
			}
			group.Add(obj)
		}
	}
}

// parseObject parses the primitive introduced by tok
func (p *SceneParser) parseObject(tok token) (geometry.Primitive, error) {
	switch tok.text {
	case "Group":
		return p.parseGroup()
	case "Transform":
		return p.parseTransform()
	}

	if p.current == nil {
		return nil, fmt.Errorf("line %d: %s has no material (define Materials first)", tok.line, tok.text)
	}
	mat := p.current

	if err := p.expect("{"); err != nil {
		return nil, err
	}

	switch tok.text {
	case "Sphere":
		var center core.Vec3
		radius := 1.0
		err := p.fields(map[string]func() error{
			"center": p.vec3Into(&center),
			"radius": p.floatInto(&radius),
		})
		return geometry.NewSphere(center, radius, mat), err

	case "Plane":
		normal := core.NewVec3(0, 1, 0)
		var offset float64
		err := p.fields(map[string]func() error{
			"normal": p.vec3Into(&normal),
			"offset": p.floatInto(&offset),
		})
		return geometry.NewPlane(normal, offset, mat), err

	case "Cone":
		var center core.Vec3
		axis := core.NewVec3(0, 1, 0)
		height, radius := 1.0, 1.0
		err := p.fields(map[string]func() error{
			"center": p.vec3Into(&center),
			"axis":   p.vec3Into(&axis),
			"height": p.floatInto(&height),
			"radius": p.floatInto(&radius),
		})
		return geometry.NewCone(center, axis, height, radius, mat), err

	case "Triangle":
		var v [3]core.Vec3
		var n [3]*core.Vec3
		handlers := map[string]func() error{}
		for i := 0; i < 3; i++ {
			i := i
			handlers[fmt.Sprintf("vertex%d", i)] = p.vec3Into(&v[i])
			handlers[fmt.Sprintf("normal%d", i)] = func() error {
				normal, err := p.vec3()
				n[i] = &normal
				return err
			}
		}
		if err := p.fields(handlers); err != nil {
			return nil, err
		}
		if n[0] == nil && n[1] == nil && n[2] == nil {
			return geometry.NewFlatTriangle(v[0], v[1], v[2], mat), nil
		}
		if n[0] == nil || n[1] == nil || n[2] == nil {
			return nil, fmt.Errorf("line %d: Triangle needs either no normals or all three", tok.line)
		}
		return geometry.NewTriangle(v[0], v[1], v[2], *n[0], *n[1], *n[2], mat), nil
	}

	return nil, unexpected(tok)
}

// parseTransform composes transform statements left to right until the wrapped object
func (p *SceneParser) parseTransform() (geometry.Primitive, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}

	matrix := mgl64.Ident4()
	for {
		if p.done() {
			return nil, ErrUnexpectedEOF
		}
		tok := p.next()

		var step mgl64.Mat4
		switch tok.text {
		case "Translate":
			v, err := p.vec3()
			if err != nil {
				return nil, err
			}
			step = mgl64.Translate3D(v.X, v.Y, v.Z)
		case "Scale":
			v, err := p.vec3()
			if err != nil {
				return nil, err
			}
			step = mgl64.Scale3D(v.X, v.Y, v.Z)
		case "UniformScale":
			s, err := p.float()
			if err != nil {
				return nil, err
			}
			step = mgl64.Scale3D(s, s, s)
		case "XRotate", "YRotate", "ZRotate":
			deg, err := p.float()
			if err != nil {
				return nil, err
			}
			rad := mgl64.DegToRad(deg)
			switch tok.text {
			case "XRotate":
				step = mgl64.HomogRotate3DX(rad)
			case "YRotate":
				step = mgl64.HomogRotate3DY(rad)
			default:
				step = mgl64.HomogRotate3DZ(rad)
			}
		case "Rotate":
			if err := p.expect("{"); err != nil {
				return nil, err
			}
			axis := core.NewVec3(0, 0, 1)
			var deg float64
			err := p.fields(map[string]func() error{
				"axis":  p.vec3Into(&axis),
				"angle": p.floatInto(&deg),
			})
			if err != nil {
				return nil, err
			}
			step = mgl64.HomogRotate3D(mgl64.DegToRad(deg), axis.Normalize().ToMgl())
		case "Matrix4f":
			var rows [4]mgl64.Vec4
			for r := 0; r < 4; r++ {
				for c := 0; c < 4; c++ {
					v, err := p.float()
					if err != nil {
						return nil, err
					}
					rows[r][c] = v
				}
			}
			step = mgl64.Mat4FromRows(rows[0], rows[1], rows[2], rows[3])
		default:
			child, err := p.parseObject(tok)
			if err != nil {
				return nil, err
			}
			if err := p.expect("}"); err != nil {
				return nil, err
			}
			return geometry.NewTransform(matrix, child), nil
		}

		matrix = matrix.Mul4(step)
	}
}

// fields reads "name value" pairs until the closing brace, dispatching by name
func (p *SceneParser) fields(handlers map[string]func() error) error {
	for {
		if p.done() {
			return ErrUnexpectedEOF
		}
		tok := p.next()
		if tok.text == "}" {
			return nil
		}
		handler, ok := handlers[tok.text]
		if !ok {
			return unexpected(tok)
		}
		if err := handler(); err != nil {
			return err
		}
	}
}

// countField reads "name n" and returns n
func (p *SceneParser) countField(name string) (int, error) {
	if err := p.expect(name); err != nil {
		return 0, err
	}
	n, err := p.int()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", name, n)
	}
	return n, nil
}

func (p *SceneParser) vec3Into(dst *core.Vec3) func() error {
	return func() error {
		v, err := p.vec3()
		*dst = v
		return err
	}
}

func (p *SceneParser) floatInto(dst *float64) func() error {
	return func() error {
		v, err := p.float()
		*dst = v
		return err
	}
}

func (p *SceneParser) vec3() (core.Vec3, error) {
	var values [3]float64
	for i := range values {
		v, err := p.float()
		if err != nil {
			return core.Vec3{}, err
		}
		values[i] = v
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func (p *SceneParser) float() (float64, error) {
	if p.done() {
		return 0, ErrUnexpectedEOF
	}
	tok := p.next()
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("line %d: expected number, got %q", tok.line, tok.text)
	}
	return v, nil
}

func (p *SceneParser) int() (int, error) {
	if p.done() {
		return 0, ErrUnexpectedEOF
	}
	tok := p.next()
	v, err := strconv.Atoi(tok.text)
	if err != nil {
		return 0, fmt.Errorf("line %d: expected integer, got %q", tok.line, tok.text)
	}
	return v, nil
}

func (p *SceneParser) expect(text string) error {
	if p.done() {
		return ErrUnexpectedEOF
	}
	tok := p.next()
	if tok.text != text {
		return fmt.Errorf("line %d: %w %q, expected %q", tok.line, ErrUnexpectedToken, tok.text, text)
	}
	return nil
}

func (p *SceneParser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[p.pos].text
}

func (p *SceneParser) next() token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *SceneParser) done() bool {
	return p.pos >= len(p.tokens)
}

func unexpected(tok token) error {
	return fmt.Errorf("line %d: %w %q", tok.line, ErrUnexpectedToken, tok.text)
}
