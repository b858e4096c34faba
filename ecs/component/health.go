package component

import core "github.com/rishiskhare/gorillavs100men/component"

var HealthComponent = NewComponent[core.Health]()
