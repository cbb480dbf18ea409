// Package olc converts between latitude/longitude and Open Location Codes
// ("plus codes").
//
// A code is built from up to ten pair digits, alternating latitude and
// longitude in base 20, followed by optional grid digits that each split
// the remaining cell into 4 columns by 5 rows:
//
//	8FVC2222+22       10 digits, roughly 14m x 14m
//	8FVC2222+22GCCCCC 16 digits
//	8FVC0000+         4 digits, padded
//	CJ+2VX            short code, needs a reference location
//
// All functions are pure and safe for concurrent use. The *To variants write
// into a caller supplied buffer and fail with ErrBufferTooSmall, leaving the
// buffer untouched, when the result does not fit.
package olc
