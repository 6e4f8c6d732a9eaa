package chat

import "errors"

// ErrBusy indicates a submit arrived while a previous analysis is still in flight.
var ErrBusy = errors.New("analysis already in progress")

// ErrCorruptTranscript indicates the durable slot held data that could not be
// decoded. Callers treat the transcript as empty but should log it.
var ErrCorruptTranscript = errors.New("corrupt transcript slot")
