package logging

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"go.viam.com/test"
)

// assertLogMatches will fuzzy match log lines. Notably, this checks the time format, but ignores
// the exact time. And it expects a match on the filename, but the exact line number can be wrong.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualParts := strings.Split(strings.TrimSuffix(output, "\n"), "\t")
	expectedParts := strings.Split(expected, "\t")
	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))
	// Use the length of the first string as a weak verification of checking that the result looks like a date.
	test.That(t, len(actualParts[0]), test.ShouldEqual, len(expectedParts[0]))
	test.That(t, actualParts[1], test.ShouldEqual, expectedParts[1])
	test.That(t, actualParts[2], test.ShouldEqual, expectedParts[2])

	actualFilename, actualLineNumber, found := strings.Cut(actualParts[3], ":")
	test.That(t, found, test.ShouldBeTrue)
	expectedFilename, _, found := strings.Cut(expectedParts[3], ":")
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)
	_, err = strconv.Atoi(actualLineNumber)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, actualParts[4], test.ShouldEqual, expectedParts[4])
	if len(actualParts) == 5 {
		return
	}

	expectedMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(expectedParts[5]), &expectedMap), test.ShouldBeNil)
	actualMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(actualParts[5]), &actualMap), test.ShouldBeNil)
	test.That(t, actualMap, test.ShouldResemble, expectedMap)
}

func newBufferedLogger(name string, level Level) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewBlankLogger(name)
	logger.SetLevel(level)
	logger.AddAppender(NewWriterAppender(buf))
	return logger, buf
}

func TestConsoleOutputFormat(t *testing.T) {
	logger, buf := newBufferedLogger("impl", DEBUG)

	logger.Infow("impulse applied")
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	INFO	impl	logging/impl_test.go:67	impulse applied`)

	logger.Debug("k=", 10, " d=", 2)
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	DEBUG	impl	logging/impl_test.go:71	k=10 d=2`)

	logger.Infow("ignored collision", "reason", "no dynamic body", "contacts", 2)
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	INFO	impl	logging/impl_test.go:75	ignored collision	{"reason":"no dynamic body","contacts":2}`)

	logger.Debugw("unpaired", "dangling")
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	DEBUG	impl	logging/impl_test.go:79	unpaired	{"dangling":"unpaired log key"}`)

	logger.Warn("no contact points")
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	WARN	impl	logging/impl_test.go:83	no contact points`)
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger("filter", WARN)

	logger.Debug("dropped")
	logger.Infow("dropped")
	test.That(t, buf.Len(), test.ShouldEqual, 0)

	logger.Warn("kept")
	test.That(t, buf.Len(), test.ShouldBeGreaterThan, 0)

	logger.SetLevel(ERROR)
	test.That(t, logger.GetLevel(), test.ShouldEqual, ERROR)
}

func TestSublogger(t *testing.T) {
	logger, buf := newBufferedLogger("host", INFO)
	sub := logger.Sublogger("responder")
	test.That(t, sub.GetLevel(), test.ShouldEqual, INFO)

	sub.Infow("hello")
	output, err := buf.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Split(output, "\t")[2], test.ShouldEqual, "host.responder")

	// Changing the sublogger level leaves the parent alone.
	sub.SetLevel(ERROR)
	test.That(t, logger.GetLevel(), test.ShouldEqual, INFO)
}

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("spring force", "k", 10.0)
	logger.Infow("applied impulse", "count", 1)

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.FilterMessage("spring force").Len(), test.ShouldEqual, 1)
	entry := logs.All()[0]
	test.That(t, entry.ContextMap()["k"], test.ShouldEqual, 10.0)
	test.That(t, logger.Sync(), test.ShouldBeNil)
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warning", WARN},
		{"warn", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.input)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.expected)
	}

	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldNotBeNil)
}
