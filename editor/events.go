package editor

import "github.com/iw2rmb/caret/cursor"

// MoveEvent describes one cursor move.
type MoveEvent struct {
	From, To cursor.Cursor

	// Current is the cluster under To, "" at the end of the buffer.
	Current string
}

func buildMoveEvent(buf []byte, from, to cursor.Cursor) MoveEvent {
	return MoveEvent{
		From:    from,
		To:      to,
		Current: to.Current(buf),
	}
}
