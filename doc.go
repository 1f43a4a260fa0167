// Package scratchroad is the gameplay core of a scratch-to-reveal endless
// road game for [Ebitengine].
//
// It tracks how much of a mask surface has been rubbed away and runs the
// obstacle and lane-marking simulation that fakes forward motion by scaling
// and drifting objects as they approach the viewer. Rendering and input
// polling live in the game package; this package only needs ticks and
// pointer samples.
//
// # Quick start
//
//	cfg := scratchroad.DefaultConfig()
//	road, err := scratchroad.NewRoad(cfg, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	road.SetProgressCallback(func(p scratchroad.Progress) {
//		fmt.Printf("%.1f%% (%s)\n", p.Percent, p.Source)
//	})
//
//	// each frame:
//	road.Scratch().HandlePointer(pos, pressed)
//	road.Update(1.0 / 60)
//
// # Scratch progress
//
// [ScratchTracker] owns a [CoverageBuffer]. Every pointer sample over the
// surface paints a brush into the buffer and then re-samples the
// incomplete regions with a [RegionTracker]; a region completes once more
// than half of its K×K interior samples are scratched, and never reverts.
// Each completion reports completed/N×100 as a [ProgressRegions] value.
//
// The pixel signal ([ProgressPixels]) is a full buffer scan and is only
// produced on request: [ScratchTracker.RequestProgressUpdate] sets a flag
// that the next tick services. The two signals are computed differently and
// are not expected to agree.
//
// # Obstacles
//
// [ObstacleField] checks for a spawn every SpawnInterval seconds and
// passes the check with probability SpawnInterval. A candidate gets a random
// side, corrected so no side repeats more than StreakLimit times, and is
// rejected if the field is full or the candidate would crowd an active
// obstacle. Active obstacles grow from Scale.Min to Scale.Max, drift outward
// and speed up as they approach, and return to their type's pool when they
// pass ExitY.
//
// # Lane markings
//
// [LaneMarkings] uses the same progress-to-scale interpolation but eases
// each marking's velocity toward a scale-dependent target and respawns
// markings at the top using a non-uniform spacing table.
//
// # Events
//
// Lifecycle events go to an optional [EventSink]; the ecs subpackage
// publishes them on a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package scratchroad
