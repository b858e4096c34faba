package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"gopkg.in/yaml.v3"
)

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

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v VecSpec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// ArenaSpec tunes the match as a whole.
type ArenaSpec struct {
	Humans          int     `yaml:"humans"`
	SafeZone        float64 `yaml:"safe_zone"`
	Spread          float64 `yaml:"spread"`
	CollisionRadius float64 `yaml:"collision_radius"`
	SpawnScript     string  `yaml:"spawn_script"`
	TPS             int     `yaml:"tps"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	spec.Defaults()
	return &spec, nil
}

type AttackSpec struct {
	Clip              string  `yaml:"clip"`
	TimeScale         float64 `yaml:"time_scale"`
	HitFraction       float64 `yaml:"hit_fraction"`
	RecoveryFraction  float64 `yaml:"recovery_fraction"`
	Radius            float64 `yaml:"radius"`
	ConeHalfAngle     float64 `yaml:"cone_half_angle"`
	MaxDamageDistance float64 `yaml:"max_damage_distance"`
	MaxDamage         float64 `yaml:"max_damage"`
	Pushback          float64 `yaml:"pushback"`
}

func (a AttackSpec) Profile() core.AttackProfile {
	return core.AttackProfile{
		Radius:            a.Radius,
		ConeHalfAngle:     a.ConeHalfAngle,
		MaxDamageDistance: a.MaxDamageDistance,
		MaxDamage:         a.MaxDamage,
	}
}

type CameraSpec struct {
	Offset VecSpec `yaml:"offset"`
	Height float64 `yaml:"height"`
}

// GorillaSpec tunes the player actor.
type GorillaSpec struct {
	Name             string                `yaml:"name"`
	Health           float64               `yaml:"health"`
	WalkSpeed        float64               `yaml:"walk_speed"`
	RunSpeed         float64               `yaml:"run_speed"`
	MaxTurnSpeed     float64               `yaml:"max_turn_speed"`
	TurnAcceleration float64               `yaml:"turn_acceleration"`
	TurnDamping      float64               `yaml:"turn_damping"`
	FadeDuration     float64               `yaml:"fade_duration"`
	Attack           AttackSpec            `yaml:"attack"`
	Camera           CameraSpec            `yaml:"camera"`
	Bindings         component.KeyBindings `yaml:"bindings"`
	Clips            []core.ClipDef        `yaml:"clips"`
}

func LoadGorillaSpec() (*GorillaSpec, error) {
	spec, err := LoadSpec[GorillaSpec]("gorilla.yaml")
	if err != nil {
		return nil, err
	}
	spec.Defaults()
	return &spec, nil
}

type PushbackSpec struct {
	Damping   float64 `yaml:"damping"`
	Threshold float64 `yaml:"threshold"`
}

type LODSpec struct {
	AnimDistance   float64 `yaml:"anim_distance"`
	ShadowDistance float64 `yaml:"shadow_distance"`
	Stride         int     `yaml:"stride"`
}

// HumanSpec tunes every adversary.
type HumanSpec struct {
	Name           string         `yaml:"name"`
	Health         float64        `yaml:"health"`
	RunSpeed       float64        `yaml:"run_speed"`
	ChaseRadius    float64        `yaml:"chase_radius"`
	AttackRange    float64        `yaml:"attack_range"`
	StopDistance   float64        `yaml:"stop_distance"`
	ChaseJitter    float64        `yaml:"chase_jitter"`
	AttackDamage   float64        `yaml:"attack_damage"`
	AttackCooldown float64        `yaml:"attack_cooldown"`
	HitFraction    float64        `yaml:"hit_fraction"`
	RecoilSpeed    float64        `yaml:"recoil_speed"`
	FadeDuration   float64        `yaml:"fade_duration"`
	DeathFade      float64        `yaml:"death_fade"`
	Pushback       PushbackSpec   `yaml:"pushback"`
	LOD            LODSpec        `yaml:"lod"`
	Clips          []core.ClipDef `yaml:"clips"`
}

func LoadHumanSpec() (*HumanSpec, error) {
	spec, err := LoadSpec[HumanSpec]("human.yaml")
	if err != nil {
		return nil, err
	}
	spec.Defaults()
	return &spec, nil
}

// Specs is everything a match is built from.
type Specs struct {
	Arena   *ArenaSpec
	Gorilla *GorillaSpec
	Human   *HumanSpec
	Spawn   []byte
}

// LoadAll reads every prefab and the spawn script.
func LoadAll() (*Specs, error) {
	arena, err := LoadArenaSpec()
	if err != nil {
		return nil, err
	}
	gorilla, err := LoadGorillaSpec()
	if err != nil {
		return nil, err
	}
	human, err := LoadHumanSpec()
	if err != nil {
		return nil, err
	}
	script, err := LoadScript(arena.SpawnScript)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", arena.SpawnScript, err)
	}
	return &Specs{Arena: arena, Gorilla: gorilla, Human: human, Spawn: script}, nil
}
