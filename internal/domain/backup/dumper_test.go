package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestoreArgs(t *testing.T) {
	uri := "postgres://gold:secret@db:5432/gold"

	keep := restoreArgs(uri, false)
	assert.Contains(t, keep, "--dbname="+uri)
	assert.NotContains(t, keep, "--clean")

	drop := restoreArgs(uri, true)
	assert.Contains(t, drop, "--clean")
	assert.Contains(t, drop, "--if-exists")
	assert.Contains(t, drop, "--single-transaction")
}

func TestDumpArgs(t *testing.T) {
	args := dumpArgs("postgres://db/gold")
	assert.Equal(t, "--format=custom", args[0])
	assert.Contains(t, args, "--dbname=postgres://db/gold")
	assert.Contains(t, args, "--exclude-table-data=sessions")
}

func TestCommandError(t *testing.T) {
	err := commandError("pg_dump", assert.AnError, "  connection refused\n")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "connection refused")

	err = commandError("pg_dump", assert.AnError, "")
	assert.Equal(t, "pg_dump: "+assert.AnError.Error(), err.Error())
}
