package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{name: "user not found", err: user.ErrNotFound, status: http.StatusNotFound, detail: "user not found"},
		{name: "wrapped invalid input", err: fmt.Errorf("%w: password must be at least 6 characters", user.ErrInvalidInput), status: http.StatusBadRequest, detail: "invalid input: password must be at least 6 characters"},
		{name: "self delete", err: user.ErrSelfDelete, status: http.StatusBadRequest, detail: "you cannot delete your own account"},
		{name: "forbidden", err: user.ErrForbidden, status: http.StatusForbidden, detail: "insufficient privileges"},
		{name: "duplicate work type", err: worktype.ErrDuplicateName, status: http.StatusConflict, detail: "work type with this name already exists"},
		{name: "factor", err: settings.ErrInvalidFactor, status: http.StatusBadRequest, detail: "invalid conversion factor"},
		{name: "backup busy", err: backup.ErrBusy, status: http.StatusConflict, detail: "another backup operation is in progress"},
		{name: "corrupted", err: backup.ErrCorrupted, status: http.StatusUnprocessableEntity, detail: "backup archive is corrupted"},
		{name: "unknown", err: errors.New("connection refused"), status: http.StatusInternalServerError, detail: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := From(slog.Default(), tt.err)

			var model *huma.ErrorModel
			require.ErrorAs(t, err, &model)
			assert.Equal(t, tt.status, model.Status)
			assert.Equal(t, tt.detail, model.Detail)
		})
	}
}

func TestFrom_PassThrough(t *testing.T) {
	assert.NoError(t, From(nil, nil))

	original := huma.Error403Forbidden("Not enough permissions")
	assert.Same(t, original, From(nil, original))
}
