package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay parameter. Distances are in playfield units,
// speeds are units per tick.
type Tuning struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`

	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	PlayerLift   float64 `yaml:"player_lift"` // Distance from the bottom edge to the player's top

	BulletWidth  float64 `yaml:"bullet_width"`
	BulletHeight float64 `yaml:"bullet_height"`
	BulletSpeed  float64 `yaml:"bullet_speed"`

	EnemySize        float64 `yaml:"enemy_size"`
	EnemyBaseSpeed   float64 `yaml:"enemy_base_speed"`
	EnemySpeedJitter float64 `yaml:"enemy_speed_jitter"`
	MaxEnemies       int     `yaml:"max_enemies"` // 0 = unbounded

	SpawnInterval time.Duration `yaml:"spawn_interval"`
	EffectTTL     time.Duration `yaml:"effect_ttl"`
	FrameRate     int           `yaml:"frame_rate"`
	ScrollSpeed   float64       `yaml:"scroll_speed"`
	KeyHold       time.Duration `yaml:"key_hold"`         // Held window after an auto-repeat press
	KeyRepeatWait time.Duration `yaml:"key_repeat_delay"` // Held window after a first press
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Width:         480,
		Height:        640,
		WallThickness: 10,

		PlayerWidth:  50,
		PlayerHeight: 50,
		PlayerSpeed:  5,
		PlayerLift:   100,

		BulletWidth:  5,
		BulletHeight: 10,
		BulletSpeed:  7,

		EnemySize:        50,
		EnemyBaseSpeed:   2,
		EnemySpeedJitter: 2,

		SpawnInterval: time.Second,
		EffectTTL:     time.Second,
		FrameRate:     60,
		ScrollSpeed:   2,
		KeyHold:       80 * time.Millisecond,
		KeyRepeatWait: 500 * time.Millisecond,
	}
}

// FrameTime returns the duration of a single frame.
func (t Tuning) FrameTime() time.Duration {
	return time.Second / time.Duration(t.FrameRate)
}

// Validate reports every inconsistent field.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	positive("width", t.Width)
	positive("height", t.Height)
	positive("player_width", t.PlayerWidth)
	positive("player_height", t.PlayerHeight)
	positive("bullet_width", t.BulletWidth)
	positive("bullet_height", t.BulletHeight)
	positive("bullet_speed", t.BulletSpeed)
	positive("enemy_size", t.EnemySize)
	positive("enemy_base_speed", t.EnemyBaseSpeed)

	if t.WallThickness < 0 {
		errs = append(errs, fmt.Errorf("wall_thickness must not be negative, got %g", t.WallThickness))
	}
	if t.PlayerWidth+2*t.WallThickness > t.Width {
		errs = append(errs, fmt.Errorf("player_width %g does not fit between walls of width %g", t.PlayerWidth, t.Width))
	}
	if t.EnemySize > t.Width {
		errs = append(errs, fmt.Errorf("enemy_size %g exceeds width %g", t.EnemySize, t.Width))
	}
	if t.PlayerLift < t.PlayerHeight || t.PlayerLift > t.Height {
		errs = append(errs, fmt.Errorf("player_lift must be within [player_height, height], got %g", t.PlayerLift))
	}
	if t.EnemySpeedJitter < 0 {
		errs = append(errs, fmt.Errorf("enemy_speed_jitter must not be negative, got %g", t.EnemySpeedJitter))
	}
	if t.MaxEnemies < 0 {
		errs = append(errs, fmt.Errorf("max_enemies must not be negative, got %d", t.MaxEnemies))
	}
	if t.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %s", t.SpawnInterval))
	}
	if t.EffectTTL <= 0 {
		errs = append(errs, fmt.Errorf("effect_ttl must be positive, got %s", t.EffectTTL))
	}
	if t.FrameRate <= 0 || t.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("frame_rate must be within (0, 240], got %d", t.FrameRate))
	}
	if t.KeyHold <= 0 {
		errs = append(errs, fmt.Errorf("key_hold must be positive, got %s", t.KeyHold))
	}
	if t.KeyRepeatWait < t.KeyHold {
		errs = append(errs, fmt.Errorf("key_repeat_delay %s must not be shorter than key_hold %s", t.KeyRepeatWait, t.KeyHold))
	}
	return errors.Join(errs...)
}

// DecodeTuning reads YAML from r on top of the defaults. Unknown keys are rejected.
func DecodeTuning(r io.Reader) (Tuning, error) {
	t := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("open tuning: %w", err)
	}
	defer f.Close()
	return DecodeTuning(f)
}
