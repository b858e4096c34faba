package component

import (
	"regexp"
	"strings"
)

// Canonical clip states shared by every actor.
const (
	ClipIdle     = "Idle"
	ClipWalk     = "Walk"
	ClipRun      = "Run"
	ClipJump     = "Jump"
	ClipDeath    = "Death"
	ClipHitReact = "HitReact"
	ClipEmote    = "Emote"
)

var loopPrefix = regexp.MustCompile(`(?i)^loop[_\-\s]?`)

var attackPattern = regexp.MustCompile(`(?i)^(attack|punch|kick)`)

// Checked in order; the first role a clip matches claims it.
var clipVocabulary = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{ClipDeath, regexp.MustCompile(`(?i)death|die`)},
	{ClipHitReact, regexp.MustCompile(`(?i)hit.?react|stagger|^hit`)},
	{ClipEmote, regexp.MustCompile(`(?i)emote|dance|taunt|roar`)},
	{ClipJump, regexp.MustCompile(`(?i)jump`)},
	{ClipRun, regexp.MustCompile(`(?i)run`)},
	{ClipWalk, regexp.MustCompile(`(?i)walk`)},
	{ClipIdle, regexp.MustCompile(`(?i)idle`)},
}

// NormalizeClipName strips a leading "loop" marker from an exported clip name.
func NormalizeClipName(name string) string {
	return strings.TrimSpace(loopPrefix.ReplaceAllString(strings.TrimSpace(name), ""))
}

// IsAttackClip reports whether name is an Attack*, Punch_* or Kick_* clip.
func IsAttackClip(name string) bool {
	return attackPattern.MatchString(NormalizeClipName(name))
}

// ResolveClips maps raw skeleton clips onto the vocabulary. Attack clips keep
// their normalized names; every other clip is renamed to the first role it
// matches. A role already claimed and clips matching nothing are returned as
// dropped.
func ResolveClips(raw []ClipDef) (clips []ClipDef, dropped []string) {
	claimed := make(map[string]bool, len(raw))
	for _, c := range raw {
		name := NormalizeClipName(c.Name)
		if name == "" {
			dropped = append(dropped, c.Name)
			continue
		}
		role := name
		if !attackPattern.MatchString(name) {
			role = ""
			for _, v := range clipVocabulary {
				if v.pattern.MatchString(name) {
					role = v.name
					break
				}
			}
		}
		if role == "" || claimed[role] {
			dropped = append(dropped, c.Name)
			continue
		}
		claimed[role] = true
		c.Name = role
		clips = append(clips, c)
	}
	return clips, dropped
}

// AttackClipNames returns the attack clips in declaration order.
func AttackClipNames(clips []ClipDef) []string {
	var out []string
	for _, c := range clips {
		if IsAttackClip(c.Name) {
			out = append(out, c.Name)
		}
	}
	return out
}
