package component

import core "github.com/rishiskhare/gorillavs100men/component"

// AnimationComponent stores the blend controller that owns an actor's clips.
var AnimationComponent = NewComponent[core.Blend]()
