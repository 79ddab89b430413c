// Package pixel is the shared vocabulary of the province shape-extraction
// pipeline.
//
// What:
//
//   - Color, Point, Pixel, Label: the plain data types every pass operates on.
//   - PixelGrid: the read-only image collaborator (pure ColorAt lookups).
//   - EventSink: progress/warning/error/debug callbacks, any of which may be
//     a no-op (see NopSink, LogSink).
//   - ColorAssigner: deterministic source-color -> replacement-color mapping.
//
// Why:
//
//   - Keeping these types dependency-free lets ccl, shape, validate, and
//     engine share one vocabulary; pixel itself imports no other package
//     of this module.
package pixel
