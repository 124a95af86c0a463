package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeNotice, func(e Event) bool {
		got = append(got, "first:"+e.Data.(NoticeData).Message)
		return e.Data.(NoticeData).IsError
	})
	m.Subscribe(TypeNotice, func(e Event) bool {
		got = append(got, "second")
		return false
	})

	m.Dispatch(TypeNotice, NoticeData{Message: "hi"})
	m.Dispatch(TypeNotice, NoticeData{Message: "bad", IsError: true})
	m.Dispatch(TypeAppQuit, AppQuitData{})

	assert.Equal(t, []string{"first:hi", "second", "first:bad"}, got)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "ModeChanged", TypeModeChanged.String())
	assert.Equal(t, "Unknown", Type(99).String())
}
