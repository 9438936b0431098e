package mobile

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCoreVersion(t *testing.T, fn func() (string, error)) {
	t.Helper()

	orig := coreVersion
	coreVersion = fn
	t.Cleanup(func() {
		coreVersion = orig
	})
}

func TestGetVersion(t *testing.T) {
	withCoreVersion(t, func() (string, error) {
		return "1.2.3", nil
	})

	assert.Equal(t, "1.2.3", GetVersion())
}

func TestGetVersionUndecodable(t *testing.T) {
	withCoreVersion(t, func() (string, error) {
		return "", errors.New("version string is not valid UTF-8")
	})

	assert.Equal(t, "unknown", GetVersion())
}

func TestGetVersionPanicking(t *testing.T) {
	withCoreVersion(t, func() (string, error) {
		panic("core exploded")
	})

	assert.Equal(t, "error", GetVersion())
}

func TestGetVersionCallsCoreOnce(t *testing.T) {
	var calls atomic.Int32

	withCoreVersion(t, func() (string, error) {
		calls.Add(1)
		return "1.2.3", nil
	})

	GetVersion()
	assert.Equal(t, int32(1), calls.Load())

	GetVersion()
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetVersionNeverEmpty(t *testing.T) {
	for name, fn := range map[string]func() (string, error){
		"ok":      func() (string, error) { return "9.9.9", nil },
		"failing": func() (string, error) { return "", errors.New("boom") },
		"panicking": func() (string, error) {
			panic("boom")
		},
	} {
		t.Run(name, func(t *testing.T) {
			withCoreVersion(t, fn)
			require.NotEmpty(t, GetVersion())
		})
	}
}

func TestGetVersionConcurrent(t *testing.T) {
	withCoreVersion(t, func() (string, error) {
		return "1.2.3", nil
	})

	const goroutines = 32

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "1.2.3", GetVersion())
		}()
	}
	wg.Wait()
}

func TestFallbackLiteralsAreValid(t *testing.T) {
	// The substitute results must themselves be convertible under any
	// host text encoding.
	require.True(t, utf8.ValidString(versionUnknown))
	require.True(t, utf8.ValidString(versionError))
	require.NotEmpty(t, versionUnknown)
	require.NotEmpty(t, versionError)
}
