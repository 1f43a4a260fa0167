package scratchroad

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema []byte

// ErrInvalidConfig wraps every configuration problem reported by LoadConfig
// and Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tuning constant. It is set once at startup.
type Config struct {
	Scratch   ScratchConfig  `yaml:"scratch"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Lanes     LaneConfig     `yaml:"lanes"`
	Meter     MeterConfig    `yaml:"meter"`
	// SnapshotDir is where coverage snapshots are written.
	SnapshotDir string `yaml:"snapshot_dir"`
	Debug       bool   `yaml:"debug"`
}

// ScratchConfig controls the coverage buffer, the brush and region sampling.
type ScratchConfig struct {
	BufferWidth  int `yaml:"buffer_width"`
	BufferHeight int `yaml:"buffer_height"`
	// BrushRadius is in buffer cells.
	BrushRadius   int     `yaml:"brush_radius"`
	BrushShape    string  `yaml:"brush_shape"`
	BrushStrength float64 `yaml:"brush_strength"`
	// SamplesPerAxis is K in the K×K region sampling grid.
	SamplesPerAxis  int     `yaml:"samples_per_axis"`
	SampleThreshold float64 `yaml:"sample_threshold"`
	CompletionRatio float64 `yaml:"completion_ratio"`
	// Regions lists explicit region bounds. When empty, RegionCols×RegionRows
	// grid regions are used.
	Regions    []Rect `yaml:"regions"`
	RegionCols int    `yaml:"region_cols"`
	RegionRows int    `yaml:"region_rows"`
}

// ObstacleConfig controls spawning and obstacle motion. Distances are road
// units; Y decreases toward the viewer.
type ObstacleConfig struct {
	Types         []string `yaml:"types"`
	PoolSize      int      `yaml:"pool_size"`
	MaxObstacles  int      `yaml:"max_obstacles"`
	SpawnInterval float64  `yaml:"spawn_interval"`
	StreakLimit   int      `yaml:"streak_limit"`
	// MinHorizontalGap and MinHeightGap must both be violated for a spawn
	// to be rejected.
	MinHorizontalGap float64 `yaml:"min_horizontal_gap"`
	MinHeightGap     float64 `yaml:"min_height_gap"`
	RoadWidth        float64 `yaml:"road_width"`
	CenterBias       float64 `yaml:"center_bias"`
	SpawnY           float64 `yaml:"spawn_y"`
	ExitY            float64 `yaml:"exit_y"`
	Speed            float64 `yaml:"speed"`
	Scale            Range   `yaml:"scale"`
	LateralSpread    float64 `yaml:"lateral_spread"`
	Acceleration     float64 `yaml:"acceleration"`
}

// LaneConfig controls the lane-marking model.
type LaneConfig struct {
	PoolSize          int       `yaml:"pool_size"`
	MaxVisible        int       `yaml:"max_visible"`
	StartX            float64   `yaml:"start_x"`
	StartY            float64   `yaml:"start_y"`
	EndY              float64   `yaml:"end_y"`
	FixedSpacing      float64   `yaml:"fixed_spacing"`
	Spacings          []float64 `yaml:"spacings"`
	StartScale        Vec2      `yaml:"start_scale"`
	EndScale          Vec2      `yaml:"end_scale"`
	InitialSpeed      float64   `yaml:"initial_speed"`
	MaxSpeed          float64   `yaml:"max_speed"`
	Acceleration      float64   `yaml:"acceleration"`
	VelocitySmoothing float64   `yaml:"velocity_smoothing"`
	SpeedRampSeconds  float64   `yaml:"speed_ramp_seconds"`
}

// MeterConfig controls the eased progress display.
type MeterConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Scratch: ScratchConfig{
			BufferWidth:     256,
			BufferHeight:    256,
			BrushRadius:     12,
			BrushShape:      "square",
			BrushStrength:   1,
			SamplesPerAxis:  3,
			SampleThreshold: 0.3,
			CompletionRatio: 0.5,
			RegionCols:      3,
			RegionRows:      3,
		},
		Obstacles: ObstacleConfig{
			Types:            []string{"cone", "barrel", "rock"},
			PoolSize:         5,
			MaxObstacles:     4,
			SpawnInterval:    0.02,
			StreakLimit:      4,
			MinHorizontalGap: 0.5,
			MinHeightGap:     1,
			RoadWidth:        1,
			CenterBias:       0.1,
			SpawnY:           3.16,
			ExitY:            -6,
			Speed:            2,
			Scale:            Range{Min: 0.1, Max: 3},
			LateralSpread:    4,
			Acceleration:     2.5,
		},
		Lanes: LaneConfig{
			PoolSize:          4,
			MaxVisible:        4,
			StartX:            0.15,
			StartY:            5.7,
			EndY:              -1,
			FixedSpacing:      1.8,
			Spacings:          []float64{0.8, 1.2, 1.8, 2.5, 3.3, 4.2, 5.2, 6.3, 7.5, 8.8},
			StartScale:        Vec2{X: 0.05, Y: 0.02},
			EndScale:          Vec2{X: 0.4, Y: 0.5},
			InitialSpeed:      5,
			MaxSpeed:          15,
			Acceleration:      2,
			VelocitySmoothing: 5,
			SpeedRampSeconds:  0.25,
		},
		Meter:       MeterConfig{Seconds: 0.3},
		SnapshotDir: "snapshots",
	}
}

// LoadConfig decodes YAML on top of DefaultConfig. The raw document is
// checked against the embedded JSON schema first, then cross-field rules are
// applied by Validate.
func LoadConfig(data []byte) (Config, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: decode yaml: %w", ErrInvalidConfig, err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	if err := validateSchema(doc); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode yaml: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validateSchema checks a decoded YAML document against the embedded schema.
func validateSchema(doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(configSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: schema: %w", ErrInvalidConfig, err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, problems)
	}
	return nil
}

// Validate checks cross-field rules the schema cannot express.
func (c Config) Validate() error {
	s := c.Scratch
	if s.BufferWidth <= 0 || s.BufferHeight <= 0 {
		return fmt.Errorf("%w: scratch buffer %dx%d", ErrInvalidConfig, s.BufferWidth, s.BufferHeight)
	}
	if _, ok := ParseBrushShape(s.BrushShape); !ok {
		return fmt.Errorf("%w: unknown brush shape %q", ErrInvalidConfig, s.BrushShape)
	}
	if s.SamplesPerAxis < 1 {
		return fmt.Errorf("%w: samples_per_axis must be >= 1", ErrInvalidConfig)
	}
	if len(s.Regions) == 0 && (s.RegionCols <= 0 || s.RegionRows <= 0) {
		return fmt.Errorf("%w: no scratch regions configured", ErrInvalidConfig)
	}

	o := c.Obstacles
	if len(o.Types) == 0 {
		return fmt.Errorf("%w: no obstacle types", ErrInvalidConfig)
	}
	if o.PoolSize < 1 || o.MaxObstacles < 1 {
		return fmt.Errorf("%w: obstacle pool_size and max_obstacles must be >= 1", ErrInvalidConfig)
	}
	if o.SpawnY <= o.ExitY {
		return fmt.Errorf("%w: obstacle spawn_y %v must be above exit_y %v", ErrInvalidConfig, o.SpawnY, o.ExitY)
	}
	if o.Scale.Max < o.Scale.Min {
		return fmt.Errorf("%w: obstacle scale max %v < min %v", ErrInvalidConfig, o.Scale.Max, o.Scale.Min)
	}
	if o.StreakLimit < 1 {
		return fmt.Errorf("%w: streak_limit must be >= 1", ErrInvalidConfig)
	}

	l := c.Lanes
	if l.StartY <= l.EndY {
		return fmt.Errorf("%w: lane start_y %v must be above end_y %v", ErrInvalidConfig, l.StartY, l.EndY)
	}
	if l.StartScale.Y <= 0 {
		return fmt.Errorf("%w: lane start_scale.y must be > 0", ErrInvalidConfig)
	}
	if l.MaxVisible < 1 || l.PoolSize < 1 {
		return fmt.Errorf("%w: lane pool_size and max_visible must be >= 1", ErrInvalidConfig)
	}
	if len(l.Spacings) < l.MaxVisible-1 {
		return fmt.Errorf("%w: lane spacings has %d entries, need %d", ErrInvalidConfig, len(l.Spacings), l.MaxVisible-1)
	}
	if l.MaxSpeed < l.InitialSpeed {
		return fmt.Errorf("%w: lane max_speed %v < initial_speed %v", ErrInvalidConfig, l.MaxSpeed, l.InitialSpeed)
	}
	return nil
}

// regionBounds returns the configured regions, falling back to the grid.
func (s ScratchConfig) regionBounds() []Rect {
	if len(s.Regions) > 0 {
		return s.Regions
	}
	return GridRegions(s.RegionCols, s.RegionRows)
}
