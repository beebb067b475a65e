package timestamps

import "errors"

// InvalidDate is written into a cell whose text could not be parsed.
const InvalidDate = "Invalid Date"

// ErrUnparseable indicates that a cell's text is not a recognizable date/time.
var ErrUnparseable = errors.New("timestamps: unparseable timestamp")

// ErrEmptyText marks cells with no text content
var ErrEmptyText = errors.New("timestamps: empty timestamp text")
