package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 5, 1, 14, 30, 0, 0, time.FixedZone("UTC+5", 5*60*60))

// newTestLogger returns a Logger writing plain text to a buffer with a fixed clock.
func newTestLogger(threshold Level, origin string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Threshold: threshold, DefaultOrigin: origin, Output: &buf, Color: ColorNever})
	l.now = func() time.Time { return fixedTime }
	return l, &buf
}

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestThresholdFiltering(t *testing.T) {
	kinds := []Kind{KindNone, KindInfo, KindWarning, KindError, KindDebug}

	cases := map[Level][]string{
		LevelNone:    nil,
		LevelError:   {"[ERROR]"},
		LevelWarning: {"[WARNING]", "[ERROR]"},
		LevelInfo:    {"[INFO]", "[WARNING]", "[ERROR]"},
		LevelFull:    {"[INFO]", "[WARNING]", "[ERROR]", "[DEBUG]"},
	}

	for level, want := range cases {
		t.Run(level.String(), func(t *testing.T) {
			l, buf := newTestLogger(level, "svc")
			for _, k := range kinds {
				l.Log("msg-"+k.String(), k)
			}

			got := lines(buf)
			require.Len(t, got, len(want), "output: %q", buf.String())
			for i, tag := range want {
				assert.Contains(t, got[i], tag)
			}
		})
	}
}

func TestEnabledMatchesOutput(t *testing.T) {
	for _, level := range AllLevels() {
		for _, k := range []Kind{KindNone, KindInfo, KindWarning, KindError, KindDebug, Kind(42)} {
			l, buf := newTestLogger(level, "")
			l.Log("x", k)
			assert.Equal(t, l.Enabled(k), buf.Len() > 0, "level=%s kind=%s", level, k)
		}
	}
}

func TestNoneKindNeverPrints(t *testing.T) {
	for _, level := range AllLevels() {
		l, buf := newTestLogger(level, "svc")
		l.Log("nothing", KindNone)
		l.LogWithOrigin("nothing", KindNone, "other")
		assert.Empty(t, buf.String(), "level=%s", level)
	}
}

func TestOriginFallbackAndOverride(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "svc")

	l.Log("from default", KindInfo)
	l.LogWithOrigin("from override", KindInfo, "override")

	got := lines(buf)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "[svc]: from default")
	assert.Contains(t, got[1], "[override]: from override")
	assert.NotContains(t, got[1], "[svc]")
}

func TestEmptyOriginOmitsSegment(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "")
	l.Log("hello", KindInfo)
	assert.Equal(t, "[2024-05-01 09:30:00] [INFO]   : hello\n", buf.String())

	// An explicit empty origin also suppresses a configured default.
	l, buf = newTestLogger(LevelFull, "svc")
	l.LogWithOrigin("hello", KindWarning, "")
	assert.Equal(t, "[2024-05-01 09:30:00] [WARNING]: hello\n", buf.String())
}

func TestMessagePassthrough(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "core")
	msg := "100% done: [ok] \t%s %d \\n <tag> ünïcødé"
	l.Log(msg, KindError)

	line := strings.TrimSuffix(buf.String(), "\n")
	idx := strings.Index(line, "]: ")
	require.NotEqual(t, -1, idx)
	assert.Equal(t, msg, line[idx+len("]: "):])
}

func TestTimestampShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Threshold: LevelFull, Output: &buf})
	l.Log("now", KindInfo)

	re := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\]`)
	assert.Regexp(t, re, buf.String())
}

func TestTimestampIsUTC(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "")
	l.Log("tz", KindInfo)
	assert.True(t, strings.HasPrefix(buf.String(), "[2024-05-01 09:30:00] "), "got: %q", buf.String())
}

func TestEndToEnd(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "core")
	l.Log("starting up", KindInfo)

	assert.Equal(t, "[2024-05-01 09:30:00] [INFO]    [core]: starting up\n", buf.String())
}

func TestLabelsAlignOrigins(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "core")
	l.Log("a", KindInfo)
	l.Log("b", KindWarning)
	l.Log("c", KindError)
	l.Log("d", KindDebug)

	got := lines(buf)
	require.Len(t, got, 4)
	col := strings.Index(got[0], "[core]")
	for _, line := range got {
		assert.Equal(t, col, strings.Index(line, "[core]"), "misaligned: %q", line)
	}
}

func TestUnknownKindUsesName(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "")
	l.Log("odd", Kind(42))
	assert.Equal(t, "[2024-05-01 09:30:00] [Kind(42)]: odd\n", buf.String())

	l, buf = newTestLogger(LevelInfo, "")
	l.Log("odd", Kind(42))
	assert.Empty(t, buf.String())
}

func TestSetThreshold(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "")

	l.SetThreshold(LevelError)
	assert.Equal(t, LevelError, l.Threshold())
	l.Log("x", KindDebug)
	l.Log("y", KindInfo)
	l.Log("z", KindError)

	got := lines(buf)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], ": z")

	buf.Reset()
	l.SetThreshold(LevelNone)
	l.Log("z", KindError)
	assert.Empty(t, buf.String())
}

func TestSetDefaultOrigin(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "old")
	l.SetDefaultOrigin("new")
	assert.Equal(t, "new", l.DefaultOrigin())

	l.Log("m", KindInfo)
	assert.Contains(t, buf.String(), "[new]: m")
	assert.NotContains(t, buf.String(), "[old]")
}

func TestFormattedHelpers(t *testing.T) {
	l, buf := newTestLogger(LevelFull, "fmt")
	l.Infof("hello %s", "world")
	l.Warnf("%d%%", 90)
	l.Errorf("oops: %v", "boom")
	l.Debugf("n=%d", 3)

	got := lines(buf)
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "[INFO]    [fmt]: hello world")
	assert.Contains(t, got[1], "[WARNING] [fmt]: 90%")
	assert.Contains(t, got[2], "[ERROR]   [fmt]: oops: boom")
	assert.Contains(t, got[3], "[DEBUG]   [fmt]: n=3")
}

func TestConstructorsDefaults(t *testing.T) {
	l := NewDefault()
	assert.Equal(t, LevelFull, l.Threshold())
	assert.Equal(t, "", l.DefaultOrigin())

	l = New(LevelWarning, "core")
	assert.Equal(t, LevelWarning, l.Threshold())
	assert.Equal(t, "core", l.DefaultOrigin())
}
