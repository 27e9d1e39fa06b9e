package counsel

import "errors"

// ErrUnknownTopic is returned when a topic label or slug is not in the catalog.
var ErrUnknownTopic = errors.New("unknown topic")
