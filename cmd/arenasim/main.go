package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/rishiskhare/gorillavs100men/arena"
	"github.com/rishiskhare/gorillavs100men/ecs"
	"github.com/rishiskhare/gorillavs100men/ecs/component"
	"github.com/rishiskhare/gorillavs100men/ecs/system"
	"github.com/rishiskhare/gorillavs100men/prefabs"
)

// arenasim plays headless matches with a scripted gorilla and prints how
// they ended. Useful for checking prefab tuning without a window.
func main() {
	humans := flag.Int("humans", 0, "number of humans (0 uses arena.yaml)")
	seed := flag.Int64("seed", 1, "first match seed")
	matches := flag.Int("matches", 1, "number of matches to play")
	seconds := flag.Float64("seconds", 180, "time limit per match")
	bot := flag.String("bot", "spin", "gorilla behaviour: spin, charge or idle")
	flag.Parse()

	specs, err := prefabs.LoadAll()
	if err != nil {
		log.Fatal(err)
	}
	drive, ok := bots[*bot]
	if !ok {
		log.Fatalf("unknown bot %q", *bot)
	}

	dt := 1 / float64(specs.Arena.TPS)
	for i := 0; i < *matches; i++ {
		a, err := arena.New(arena.Options{
			Specs:  specs,
			Rand:   rand.New(rand.NewSource(*seed + int64(i))),
			Humans: *humans,
		})
		if err != nil {
			log.Fatal(err)
		}

		kills, frames := 0, 0
		for elapsed := 0.0; elapsed < *seconds && a.Outcome() == system.OutcomeNone; elapsed += dt {
			a.Step(dt, drive(frames))
			frames++
			for _, evt := range a.Events() {
				if evt.Type == ecs.EventAdversaryKilled {
					kills++
				}
			}
		}

		hp := 0.0
		if h, ok := ecs.Get(a.World(), a.Player(), component.HealthComponent.Kind()); ok {
			hp = h.Current
		}
		log.Printf("match %d seed %d: %s after %.1fs, %d kills, %d humans left, gorilla %.0f hp",
			i+1, *seed+int64(i), a.Outcome(), float64(frames)*dt, kills, a.Roster().Len(), hp)
	}
}

// bots map a frame number to held keys. Attack is edge triggered, so the
// attack key is released every other frame.
var bots = map[string]func(frame int) system.KeyState{
	"idle": func(int) system.KeyState { return nil },
	"spin": func(frame int) system.KeyState {
		return system.KeyState{"KeyA": true, "Space": frame%2 == 0}
	},
	"charge": func(frame int) system.KeyState {
		return system.KeyState{"KeyW": true, "ShiftLeft": true, "KeyD": frame/120%2 == 0, "Space": frame%2 == 0}
	},
}
