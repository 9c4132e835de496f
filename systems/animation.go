package systems

import (
	"github.com/mossback/spellstorm-mp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var animatedQuery = donburi.NewQuery(filter.Contains(
	components.NetPlayer,
	components.Animation,
))

// AnimationSystem drives every player's animation mixer. Remote players
// follow the authoritative tag from their latest snapshot; the local
// player plays its intent-derived guess immediately and lets the next
// snapshot confirm or override it.
type AnimationSystem struct {
	// lastDesired gates local requests to edges so a held action key
	// does not restart its one-shot every frame.
	lastDesired string
}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(world donburi.World, localDesired string, dt float64) {
	desiredChanged := localDesired != s.lastDesired
	s.lastDesired = localDesired

	animatedQuery.Each(world, func(entry *donburi.Entry) {
		player := components.NetPlayer.Get(entry)
		anim := components.Animation.Get(entry)

		if player.IsLocal && desiredChanged {
			anim.Request(localDesired)
		}
		anim.SetAuthoritative(player.Animation)
		anim.Update(dt)
	})
}
