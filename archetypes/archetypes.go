package archetypes

import (
	"github.com/mossback/spellstorm-mp/components"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		components.NetPlayer,
		components.Animation,
	)
	Projectile = newArchetype(
		components.Projectile,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(
		append(a.components, cs...)...,
	))
}
