package common

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldkeeper/cmd/client/cmd/types"
	"goldkeeper/internal/app/client/panel"
)

func TestResult(t *testing.T) {
	assert.NoError(t, Result(nil))

	forbidden := Result(panel.ErrForbidden)
	assert.False(t, Shown(forbidden))
	assert.Equal(t, "недостаточно прав для этой операции", forbidden.Error())

	assert.False(t, Shown(Result(panel.ErrBusy)))
	assert.ErrorIs(t, Result(panel.ErrNotConfirming), panel.ErrNotConfirming)
	assert.False(t, Shown(Result(panel.ErrNotConfirming)))

	// ошибки валидации и сети панель уже показала
	shown := Result(fmt.Errorf("wrap: %w", panel.ErrValidation))
	assert.True(t, Shown(shown))
	assert.ErrorIs(t, shown, panel.ErrValidation)
	assert.True(t, Shown(fmt.Errorf("outer: %w", Result(errors.New("boom")))))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, arg := range []string{"", "abc", "0", "-1"} {
		_, err := ParseID(arg)
		assert.Error(t, err, arg)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"id": 1}))
	assert.JSONEq(t, `{"id": 1}`, buf.String())
}

func TestOutputInfo(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Same(t, &out, types.Output{Out: &out, Err: &errOut}.Info())
	assert.Same(t, &errOut, types.Output{JSON: true, Out: &out, Err: &errOut}.Info())
}
