// Package pipeline runs the whole skeleton extraction for one mesh:
//
//	weight field → Reeb graph → resolution ladder → symmetry
//
// A Pipeline is the explicit context of a run: it owns the validated
// Config, the solver, the symmetry Marker and the Prometheus collectors.
// Nothing is process-global except the shared logger.
//
// Runs are all-or-nothing. The context is checked between stages; a failed
// or cancelled run restores the mesh weights and returns no ladder.
//
// Configuration is YAML (see DefaultConfig and LoadConfig):
//
//	resolution: 40
//	weight_mode: distance
//	use_harmonic_field: false
//	filter_internal_threshold: 0
//	filter_external_threshold: 0
//	use_smart_filter: false
//	smart_threshold: 0.5
//	filter_cycles: true
//	join_threshold: 0
//	post_process_passes: 1
//	post_process_mode: smooth
//	sharpen_kernel: [-0.25, 1.5, -0.25]   # divided by the tap sum
//	symmetry_angle_limit: 10
//	multi_resolution_levels: 5
//	verify: true
//	solver: cg
package pipeline
