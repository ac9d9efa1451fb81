package testutils

import (
	"os"
	"testing"
)

// MustSkipf skips a test suite, but panics if BILETBUDUR_NO_SKIP_TEST is set
func MustSkipf(t *testing.T, format string, args ...interface{}) {
	if len(os.Getenv("BILETBUDUR_NO_SKIP_TEST")) > 0 {
		panic("test was skipped, but BILETBUDUR_NO_SKIP_TEST is set")
	}
	t.Skipf(format, args...)
}

// LiveServerURL returns the biletbudur server url to run live tests against
func LiveServerURL() string {
	return os.Getenv("BILETBUDUR_SERVER_BASE_URL")
}

// LiveCredentials returns the account used by live tests
func LiveCredentials() (string, string) {
	return os.Getenv("BILETBUDUR_TEST_EMAIL"), os.Getenv("BILETBUDUR_TEST_PASSWORD")
}

// SkipUnlessLiveServer skips tests unless a live server and test account are configured
func SkipUnlessLiveServer(t *testing.T) {
	t.Helper()
	email, password := LiveCredentials()
	if LiveServerURL() == "" || email == "" || password == "" {
		MustSkipf(t, "no live biletbudur server configured")
	}
}
