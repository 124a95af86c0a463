package core

import "github.com/bethropolis/lazyhex/internal/logger"

// YankSelection copies the selected bytes as hex text.
// The internal register is always updated; a system clipboard failure is returned.
func (e *Editor) YankSelection() (string, error) {
	text, err := e.clipboard.Yank(e.SelectedBytes())
	if err != nil {
		logger.Warnf("Editor: yank: %v", err)
	}
	return text, err
}

// Register returns the last yanked bytes.
func (e *Editor) Register() []byte {
	return e.clipboard.Register()
}
