// Package motion maps elapsed time and static element parameters to per-frame transforms.
//
// Every function here is pure: the same inputs always give the same Transform, which lets
// renderers and tests evaluate any instant without a live render loop. State the animation
// depends on (pointer position, hover) is passed in explicitly rather than captured.
//
// Composition order within a frame is fixed: Profile.Compute produces the base transform,
// then Modulator.Apply layers pointer tilt and idle wobble on top.
package motion
