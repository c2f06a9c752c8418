package app

import (
	"errors"
	"fmt"
	"os"

	"wirecam/gfx/camera"
	"wirecam/gfx/geom"
	"wirecam/gfx/mesh"
	"wirecam/gfx/scene"

	"gopkg.in/yaml.v3"
)

var ErrUnknownObject = errors.New("unknown object kind")

// Vec is a position or direction written as a three-element YAML sequence.
type Vec [3]float64

func (v Vec) Vector3() geom.Vector3 { return geom.V3(v[0], v[1], v[2]) }

// CameraConfig is the camera pose.
type CameraConfig struct {
	Position  Vec    `yaml:"position,flow"`
	Direction Vec    `yaml:"direction,flow"`
	Mode      string `yaml:"mode"`
}

// ObjectConfig describes one sample mesh.
type ObjectConfig struct {
	Kind     string  `yaml:"kind"`
	Position Vec     `yaml:"position,flow"`
	Size     float64 `yaml:"size"`
	// Minor and Segments only apply to a torus.
	Minor    float64 `yaml:"minor,omitempty"`
	Segments [2]int  `yaml:"segments,flow"`
}

// Config is the scene file.
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Zoom   float64 `yaml:"zoom"`
	Axes   bool    `yaml:"axes"`
	HUD    bool    `yaml:"hud"`
	// Orbit turns the camera around the world Y axis by that many degrees per
	// frame, keeping it pointed at the origin.
	Orbit float64 `yaml:"orbit"`

	Camera  CameraConfig   `yaml:"camera"`
	Objects []ObjectConfig `yaml:"objects"`
}

// DefaultConfig is a cube, a pyramid and a torus in front of the camera.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 320,
		Zoom:   20,
		HUD:    true,
		Camera: CameraConfig{
			Position:  Vec{0, 0, -8},
			Direction: Vec{0, 0, 8},
			Mode:      camera.Perspective.String(),
		},
		Objects: []ObjectConfig{
			{Kind: "cube", Size: 2},
			{Kind: "pyramid", Position: Vec{3, -1, 0}, Size: 2},
			{Kind: "torus", Position: Vec{-3, 0, 0}, Size: 1, Minor: 0.4, Segments: [2]int{12, 6}},
		},
	}
}

// LoadConfig reads a YAML scene file on top of DefaultConfig. An empty path or
// a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func (cfg Config) Marshal() ([]byte, error) { return yaml.Marshal(cfg) }

// NewCamera builds the configured camera.
func (cfg Config) NewCamera() (*camera.Camera, error) {
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return nil, err
	}
	return camera.New(cfg.Camera.Position.Vector3(), cfg.Camera.Direction.Vector3(), mode)
}

// BuildObjects turns the object list into scene objects.
func (cfg Config) BuildObjects() ([]scene.Object, error) {
	objs := make([]scene.Object, 0, len(cfg.Objects))
	for i, o := range cfg.Objects {
		size := o.Size
		if size <= 0 {
			size = 1
		}
		pos := o.Position.Vector3()
		switch o.Kind {
		case "cube":
			objs = append(objs, mesh.Cube(pos, size))
		case "pyramid":
			objs = append(objs, mesh.Pyramid(pos, size))
		case "torus":
			minor := o.Minor
			if minor <= 0 {
				minor = size / 3
			}
			objs = append(objs, mesh.Torus(pos, size, minor, o.Segments[0], o.Segments[1]))
		default:
			return nil, fmt.Errorf("%w: objects[%d] %q", ErrUnknownObject, i, o.Kind)
		}
	}
	return objs, nil
}
