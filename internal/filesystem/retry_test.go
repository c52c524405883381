package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"syscall"
	"testing"
	"time"
)

// recordingObserver counts observer calls per operation.
type recordingObserver struct {
	operations []string
	opErrors   int
	attempts   int
	successes  int
	failures   int
	stale      int
}

func (r *recordingObserver) ObserveOperation(operation string, _ float64, err error) {
	r.operations = append(r.operations, operation)
	if err != nil {
		r.opErrors++
	}
}
func (r *recordingObserver) ObserveRetryAttempt(string) { r.attempts++ }
func (r *recordingObserver) ObserveRetrySuccess(string) { r.successes++ }
func (r *recordingObserver) ObserveRetryFailure(string) { r.failures++ }
func (r *recordingObserver) ObserveStaleError(string)   { r.stale++ }

// installTestHooks swaps in a recording observer and a sleep that only
// records the requested backoff.
func installTestHooks(t *testing.T) (*recordingObserver, *[]time.Duration) {
	t.Helper()

	rec := &recordingObserver{}
	var slept []time.Duration

	prevObserver, prevSleep := defaultObserver, sleep
	SetObserver(rec)
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() {
		defaultObserver = prevObserver
		sleep = prevSleep
	})

	return rec, &slept
}

func TestDefaultRetryConfig(t *testing.T) {
	config := DefaultRetryConfig()

	if config.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", config.MaxRetries)
	}
	if config.InitialBackoff != 50*time.Millisecond {
		t.Errorf("InitialBackoff = %v, want 50ms", config.InitialBackoff)
	}
	if config.MaxBackoff != 500*time.Millisecond {
		t.Errorf("MaxBackoff = %v, want 500ms", config.MaxBackoff)
	}
}

func TestIsNFSStaleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "ESTALE error",
			err:  syscall.ESTALE,
			want: true,
		},
		{
			name: "wrapped ESTALE",
			err:  &os.PathError{Op: "open", Path: "/music", Err: syscall.ESTALE},
			want: true,
		},
		{
			name: "ENOENT error",
			err:  syscall.ENOENT,
			want: false,
		},
		{
			name: "generic error",
			err:  os.ErrNotExist,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isNFSStaleError(tt.err)
			if got != tt.want {
				t.Errorf("isNFSStaleError() = %v, want %v", got, tt.want)
			}
		})
	}
}

// =============================================================================
// withRetry
// =============================================================================

func TestWithRetry_RecoversFromStaleHandle(t *testing.T) {
	rec, slept := installTestHooks(t)

	calls := 0
	got, err := withRetry("readdir", "/music", DefaultRetryConfig(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, syscall.ESTALE
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("withRetry() error = %v", err)
	}
	if got != 42 {
		t.Errorf("withRetry() = %d, want 42", got)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}

	wantSleeps := []time.Duration{50 * time.Millisecond, 100 * time.Millisecond}
	if len(*slept) != len(wantSleeps) {
		t.Fatalf("slept %v, want %v", *slept, wantSleeps)
	}
	for i, d := range wantSleeps {
		if (*slept)[i] != d {
			t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], d)
		}
	}

	if rec.stale != 2 || rec.attempts != 2 || rec.successes != 1 || rec.failures != 0 {
		t.Errorf("observer = %+v, want 2 stale, 2 attempts, 1 success", rec)
	}
}

func TestWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	rec, slept := installTestHooks(t)

	config := RetryConfig{MaxRetries: 4, InitialBackoff: 100 * time.Millisecond, MaxBackoff: 250 * time.Millisecond}

	calls := 0
	_, err := withRetry("open", "/music/a.mp3", config, func() (struct{}, error) {
		calls++
		return struct{}{}, syscall.ESTALE
	})
	if !errors.Is(err, syscall.ESTALE) {
		t.Fatalf("withRetry() error = %v, want ESTALE", err)
	}
	if calls != 5 {
		t.Errorf("fn called %d times, want 5", calls)
	}

	// Backoff doubles and is capped, with no sleep after the final attempt.
	wantSleeps := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond}
	if len(*slept) != len(wantSleeps) {
		t.Fatalf("slept %v, want %v", *slept, wantSleeps)
	}
	for i, d := range wantSleeps {
		if (*slept)[i] != d {
			t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], d)
		}
	}

	if rec.failures != 1 || rec.opErrors != 1 || rec.stale != 5 {
		t.Errorf("observer = %+v, want 1 failure, 1 op error, 5 stale", rec)
	}
}

func TestWithRetry_NonStaleErrorFailsFast(t *testing.T) {
	rec, slept := installTestHooks(t)

	calls := 0
	_, err := withRetry("readdir", "/missing", DefaultRetryConfig(), func() (int, error) {
		calls++
		return 0, syscall.ENOENT
	})
	if !errors.Is(err, syscall.ENOENT) {
		t.Fatalf("withRetry() error = %v, want ENOENT", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %v, want no sleeps", *slept)
	}
	if rec.stale != 0 || rec.opErrors != 1 {
		t.Errorf("observer = %+v, want 0 stale, 1 op error", rec)
	}
}

func TestWithRetry_NilObserver(t *testing.T) {
	prev := defaultObserver
	SetObserver(nil)
	t.Cleanup(func() { defaultObserver = prev })

	got, err := withRetry("open", "/x", DefaultRetryConfig(), func() (string, error) {
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Errorf("withRetry() = (%q, %v), want (ok, nil)", got, err)
	}
}

// =============================================================================
// ReadDirWithRetry / OpenWithRetry
// =============================================================================

func TestReadDirWithRetry_Success(t *testing.T) {
	rec, _ := installTestHooks(t)

	dir := t.TempDir()
	for _, name := range []string{"a.mp3", "b.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	entries, err := ReadDirWithRetry(dir, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("ReadDirWithRetry() error = %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	want := []string{"a.mp3", "b.mp3", "sub"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if len(rec.operations) != 1 || rec.operations[0] != "readdir" {
		t.Errorf("observed operations = %v, want [readdir]", rec.operations)
	}
}

func TestReadDirWithRetry_NotExist(t *testing.T) {
	installTestHooks(t)

	_, err := ReadDirWithRetry(filepath.Join(t.TempDir(), "nope"), DefaultRetryConfig())
	if !os.IsNotExist(err) {
		t.Errorf("ReadDirWithRetry() error = %v, want not-exist", err)
	}
}

func TestReadDirWithRetry_File(t *testing.T) {
	installTestHooks(t)

	file := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if _, err := ReadDirWithRetry(file, DefaultRetryConfig()); err == nil {
		t.Error("ReadDirWithRetry() on a regular file should fail")
	}
}

func TestOpenWithRetry_Success(t *testing.T) {
	installTestHooks(t)

	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, []byte("ID3"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	f, err := OpenWithRetry(path, DefaultRetryConfig())
	if err != nil {
		t.Fatalf("OpenWithRetry() error = %v", err)
	}
	defer f.Close()

	buf := make([]byte, 3)
	if _, err := f.Read(buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf) != "ID3" {
		t.Errorf("read %q, want ID3", buf)
	}
}

func TestOpenWithRetry_NotExist(t *testing.T) {
	installTestHooks(t)

	start := time.Now()
	_, err := OpenWithRetry(filepath.Join(t.TempDir(), "missing.mp3"), DefaultRetryConfig())
	elapsed := time.Since(start)

	if !os.IsNotExist(err) {
		t.Errorf("OpenWithRetry() error = %v, want not-exist", err)
	}
	if elapsed > 50*time.Millisecond {
		t.Errorf("OpenWithRetry took %v, should fail fast for non-ESTALE errors", elapsed)
	}
}
