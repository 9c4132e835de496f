package systems

import (
	cfg "github.com/mossback/spellstorm-mp/config"
	"github.com/mossback/spellstorm-mp/shared/gamemath"
)

// Reconciler blends predicted local state toward authoritative
// snapshots. Every correction is a bounded-rate blend so the visible
// character never jumps, whatever the network jitter looks like.
type Reconciler struct {
	Cfg cfg.ReconcileConfig
}

func NewReconciler() *Reconciler {
	return &Reconciler{Cfg: cfg.Reconcile}
}

// ReconcilePosition compares the predicted position against the
// snapshot and, past the threshold, blends one exponential-smoothing
// step toward it. The snapshot's horizontal axes are mirrored before
// the comparison because the server's coordinate convention mirrors
// the client's; the blend targets the unmirrored position.
//
// In Orbital camera mode positional reconciliation is suppressed: the
// fixed-yaw movement scheme makes corrections show up as jitter.
func (r *Reconciler) ReconcilePosition(local, authoritative gamemath.Vec3, mode CameraMode) (gamemath.Vec3, bool) {
	if mode == ModeOrbital {
		return local, false
	}
	if local.Distance(authoritative.Mirrored()) <= r.Cfg.PositionThreshold {
		return local, false
	}
	return local.Lerp(authoritative, r.Cfg.PositionLerp), true
}

// ReconcileYaw compares orientations as quaternions and slerps toward
// the authoritative one when the angular distance passes the
// threshold.
func (r *Reconciler) ReconcileYaw(localYaw, authoritativeYaw float64) (float64, bool) {
	current := gamemath.QuatFromYaw(localYaw)
	target := gamemath.QuatFromYaw(authoritativeYaw)
	if current.AngleTo(target) <= r.Cfg.RotationThreshold {
		return localYaw, false
	}
	return current.Slerp(target, r.Cfg.RotationSlerp).Yaw(), true
}
