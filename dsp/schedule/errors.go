package schedule

import "errors"

// ErrInvalidSchedule is returned for schedules that are none of the
// three defined variants.
var ErrInvalidSchedule = errors.New("invalid channel schedule")
