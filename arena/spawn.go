package arena

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
)

// SpawnLayout runs a spawn script and returns the ground positions it
// produced. The script sees count, safe_zone, spread and a rnd() function
// backed by rng, and must leave an array of {x, z} maps in `positions`.
func SpawnLayout(script []byte, count int, safeZone, spread float64, rng *rand.Rand) ([]mgl64.Vec3, error) {
	if count <= 0 {
		return nil, nil
	}
	if rng == nil {
		return nil, fmt.Errorf("arena: spawn layout: nil rand")
	}

	s := tengo.NewScript(script)
	s.SetImports(stdlib.GetModuleMap("math"))
	vars := []struct {
		name  string
		value any
	}{
		{"count", count},
		{"safe_zone", safeZone},
		{"spread", spread},
		{"rnd", &tengo.UserFunction{Name: "rnd", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: rng.Float64()}, nil
		}}},
	}
	for _, v := range vars {
		if err := s.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("arena: spawn layout: %w", err)
		}
	}

	compiled, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("arena: spawn layout: %w", err)
	}
	if !compiled.IsDefined("positions") {
		return nil, fmt.Errorf("arena: spawn layout: script did not define positions")
	}

	raw := compiled.Get("positions").Array()
	out := make([]mgl64.Vec3, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("arena: spawn layout: position %d is %T, want map", i, item)
		}
		x, okX := number(m["x"])
		z, okZ := number(m["z"])
		if !okX || !okZ {
			return nil, fmt.Errorf("arena: spawn layout: position %d missing x or z", i)
		}
		out = append(out, mgl64.Vec3{x, 0, z})
	}
	return out, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
