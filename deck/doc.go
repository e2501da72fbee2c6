// Package deck defines the intermediate representation shared by the
// slide compilation pipeline.
//
// A [Record] holds one slide's title and ordered bullet points. Records
// are produced by the segmenter with [DensityUnclassified] density, then
// classified and possibly split by the sizing engine before the
// allocator binds them to template layouts.
//
// Records are plain value types. Each pipeline stage receives its input
// by value and produces fresh output; callers must not share one record
// slice mutably across concurrent pipeline runs.
package deck
