package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/errs"
)

func TestErrorIncludesDetailWhenPresent(t *testing.T) {
	err := errs.Wrap(errs.CodeNoNameAtPoint, "no name here", errors.New("row 3 col 4"))
	require.Equal(t, "no name here: row 3 col 4", err.Error())
}

func TestErrorOmitsDetailWhenAbsent(t *testing.T) {
	err := errs.New(errs.CodeUnknownLanguage, "unknown language \"cobol\"")
	require.Equal(t, `unknown language "cobol"`, err.Error())
}

func TestWrapNilInnerLeavesDetailEmpty(t *testing.T) {
	err := errs.Wrap(errs.CodeMalformedConfig, "bad config", nil)
	cliErr, ok := err.(errs.CLIError)
	require.True(t, ok)
	require.Empty(t, cliErr.Detail)
}

func TestJSONRoundTripsCode(t *testing.T) {
	err := errs.New(errs.CodeNoCallAtPoint, "no call here")
	require.Contains(t, err.(errs.CLIError).JSON(), errs.CodeNoCallAtPoint)
}
