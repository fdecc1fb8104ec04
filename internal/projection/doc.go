// Package projection defines the pluggable scenario projection engine for the
// national AHP workforce gap.
//
// Each policy trajectory is encapsulated in one Projector, and the Engine
// assembles their sequences for joint comparison. Concrete projectors live in
// the trajectories subpackage; the year-by-year investment model lives in the
// cost subpackage.
package projection
