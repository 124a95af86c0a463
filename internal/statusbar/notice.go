package statusbar

import "fmt"

// NoticeKind tells the mode handler how the next key resolves a notice.
type NoticeKind int

const (
	// NoticeInfo is dismissed by any key.
	NoticeInfo NoticeKind = iota
	// NoticeError is dismissed by any key.
	NoticeError
	// NoticeConfirmOverwrite asks before replacing an existing file at Path.
	NoticeConfirmOverwrite
	// NoticePrompt edits a filename in Input.
	NoticePrompt
	// NoticeConfirmQuit asks before discarding unsaved changes.
	NoticeConfirmQuit
)

// Notice is the single pending message or dialog shown on the status line.
type Notice struct {
	Kind    NoticeKind
	Message string
	Input   string
	Path    string
}

// IsDialog reports whether the notice waits for a decision rather than a dismissal.
func (n Notice) IsDialog() bool {
	return n.Kind == NoticeConfirmOverwrite || n.Kind == NoticePrompt || n.Kind == NoticeConfirmQuit
}

// Text renders the notice for the status line.
func (n Notice) Text() string {
	switch n.Kind {
	case NoticeError:
		return "error: " + n.Message
	case NoticeConfirmOverwrite:
		return fmt.Sprintf("%s exists, overwrite? [y/N]", n.Path)
	case NoticePrompt:
		return n.Message + n.Input + "_"
	case NoticeConfirmQuit:
		return "unsaved changes, quit anyway? [y/N]"
	default:
		return n.Message
	}
}
