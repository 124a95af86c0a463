// internal/event/event.go
package event

import "github.com/bethropolis/lazyhex/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified // buffer bytes changed
	TypeBufferLoaded   // a buffer was loaded from disk
	TypeBufferSaved    // the buffer was written to disk
	TypeCursorMoved    // the selection changed
	TypeModeChanged    // the editing mode changed
	TypeNotice         // something the user should see in the notice slot

	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeModeChanged:
		return "ModeChanged"
	case TypeNotice:
		return "Notice"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData lists the byte edits of one change, in order.
type BufferModifiedData struct {
	Edits []types.EditInfo
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
	Size     int
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
	Size     int
}

// CursorMovedData contains the new selection.
type CursorMovedData struct {
	Selection types.Selection
}

// ModeChangedData contains the old and new modes.
type ModeChangedData struct {
	From types.Mode
	To   types.Mode
}

// NoticeData carries a user-facing message.
type NoticeData struct {
	Message string
	IsError bool
}

// AppReadyData is sent once the application has drawn its first frame.
type AppReadyData struct{}

// AppQuitData is sent just before the application exits.
type AppQuitData struct {
	Modified bool // unsaved changes were discarded
}
