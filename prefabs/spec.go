package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	TuningFile = "tuning.yaml"
	LevelFile  = "level.yaml"
)

// HealthCeiling bounds max_health. Player health always lies in
// [0, HealthCeiling].
const HealthCeiling = 100

// ErrInvalidTuning is returned by Validate and LoadTuning.
var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Tuning holds the gameplay constants for every entity.
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Snowman SnowmanTuning `yaml:"snowman"`
}

// PlayerTuning velocities are in host units per frame.
type PlayerTuning struct {
	MaxHealth        int           `yaml:"max_health"`
	WalkSpeed        float64       `yaml:"walk_speed"`
	JumpImpulse      float64       `yaml:"jump_impulse"`
	SpikeKnockback   float64       `yaml:"spike_knockback"`
	SnowmanKnockback float64       `yaml:"snowman_knockback"`
	StompBounce      float64       `yaml:"stomp_bounce"`
	SpikeDamage      int           `yaml:"spike_damage"`
	SnowmanDamage    int           `yaml:"snowman_damage"`
	DefaultHeal      int           `yaml:"default_heal"`
	FlashDuration    time.Duration `yaml:"flash_duration"`
	FlashRepeat      int           `yaml:"flash_repeat"`
	DeathDelay       time.Duration `yaml:"death_delay"`
}

type SnowmanTuning struct {
	PatrolSpeed    float64       `yaml:"patrol_speed"`
	PatrolInterval time.Duration `yaml:"patrol_interval"`
	StompDuration  time.Duration `yaml:"stomp_duration"`
}

// DefaultTuning returns the values the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			MaxHealth:        100,
			WalkSpeed:        5,
			JumpImpulse:      12,
			SpikeKnockback:   12,
			SnowmanKnockback: 20,
			StompBounce:      10,
			SpikeDamage:      10,
			SnowmanDamage:    25,
			DefaultHeal:      10,
			FlashDuration:    100 * time.Millisecond,
			FlashRepeat:      2,
			DeathDelay:       1500 * time.Millisecond,
		},
		Snowman: SnowmanTuning{
			PatrolSpeed:    3,
			PatrolInterval: 2 * time.Second,
			StompDuration:  200 * time.Millisecond,
		},
	}
}

// LoadTuning reads tuning.yaml on top of DefaultTuning, so missing keys keep
// their defaults.
func LoadTuning() (Tuning, error) {
	t := DefaultTuning()
	data, err := Load(TuningFile)
	if err != nil {
		return t, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("prefabs: %s: %w", TuningFile, err)
	}
	return t, nil
}

// Validate rejects values the controllers cannot honor.
func (t Tuning) Validate() error {
	if t.Player.MaxHealth <= 0 || t.Player.MaxHealth > HealthCeiling {
		return fmt.Errorf("%w: max_health %d outside [1, %d]", ErrInvalidTuning, t.Player.MaxHealth, HealthCeiling)
	}
	return nil
}

// Rect is a world-space rectangle with a top-left origin.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObjectSpec is one entry of the level's object layer.
type ObjectSpec struct {
	Name         string  `yaml:"name"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HealthPoints int     `yaml:"health_points"`
}

// Level is the host-owned layout a scene is built from.
type Level struct {
	Name    string       `yaml:"name"`
	Width   float64      `yaml:"width"`
	Height  float64      `yaml:"height"`
	Ground  []Rect       `yaml:"ground"`
	Objects []ObjectSpec `yaml:"objects"`
}

func LoadLevel(name string) (Level, error) {
	if name == "" {
		name = LevelFile
	}
	return LoadSpec[Level](name)
}
