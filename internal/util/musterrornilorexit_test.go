package util

import (
	"os"
	"sync"
	"testing"

	"bou.ke/monkey"
	"github.com/bokysan/base45"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. The returned function
// restores os.Exit.
func patchExit(t *testing.T) (*int, *bool, func()) {
	seqMutex.Lock()

	var exitCode int
	var exited bool
	patch := monkey.Patch(os.Exit, func(i int) {
		exitCode = i
		exited = true
	})

	return &exitCode, &exited, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	_, exited, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(nil)

	require.False(t, *exited, "MustErrorNilOrExit exited the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	exitCode, _, restore := patchExit(t)
	defer restore()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(errors.WithStack(err))

	require.Equal(t, int(flags.ErrShortNameTooLong), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exitCode, exited, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.True(t, *exited)
	require.Equal(t, 0, *exitCode)
}

func Test_MustErrorNilOrExit_InvalidInput(t *testing.T) {
	exitCode, _, restore := patchExit(t)
	defer restore()

	_, err := base45.Decode("@@@")
	require.Error(t, err)

	MustErrorNilOrExit(errors.Wrap(err, "Could not decode input"))

	require.Equal(t, ErrInvalidInput, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	exitCode, _, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, ErrInvalidInput, ExitCode(base45.ErrInvalidUtf8))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("demo")))
	require.Equal(t, int(flags.ErrRequired), ExitCode(&flags.Error{Type: flags.ErrRequired}))
}
