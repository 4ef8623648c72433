package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errStore = New("database is locked")

func TestWrap_KeepsCauseAndMatching(t *testing.T) {
	err := Wrapf(Wrap(errStore, "claim call"), "call %s", "c-1")

	assert.True(t, Is(err, errStore))
	assert.Equal(t, errStore, Cause(err))
	assert.Equal(t, "call c-1: claim call: database is locked", err.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(errStore))
	assert.Empty(t, StackTrace(nil))

	trace := StackTrace(Wrap(errStore, "claim call"))
	assert.Contains(t, trace, "TestStackTrace")
}

func TestJoin(t *testing.T) {
	other := New("push unavailable")
	err := Join(errStore, other)

	assert.True(t, Is(err, errStore))
	assert.True(t, Is(err, other))
}
