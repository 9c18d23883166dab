package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorbrzezek/genfiles/internal/cli"
	"github.com/igorbrzezek/genfiles/internal/genfiles"
)

func TestWriteSummaryNoFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := cli.WriteSummary(&genfiles.Result{}, genfiles.ModeStructured, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No files were generated.")
	assert.NotContains(t, buf.String(), "Average")
}

func TestWriteSummaryFlat(t *testing.T) {
	t.Parallel()

	res := &genfiles.Result{}
	for i := 0; i < 5; i++ {
		res.Stats.Record(10240, true)
	}

	var buf bytes.Buffer

	err := cli.WriteSummary(res, genfiles.ModeFlat, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Total files:")
	assert.Contains(t, out, "0.05 MB (51200 bytes)")
	assert.Contains(t, out, "binary (fixed size)")
	assert.Contains(t, out, "0.01 MB")
}

func TestWriteSummaryStructured(t *testing.T) {
	t.Parallel()

	res := &genfiles.Result{}
	for i := 0; i < 4; i++ {
		res.Stats.Record(300*1024, true)
	}
	for i := 0; i < 2; i++ {
		res.Stats.Record(50*1024, false)
	}

	var buf bytes.Buffer

	err := cli.WriteSummary(res, genfiles.ModeStructured, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1.27 MB (1331200 bytes)")
	assert.Contains(t, out, "Binary files:")
	assert.Contains(t, out, "1.17 MB")
	assert.Contains(t, out, "300.00 KB")
	assert.Contains(t, out, "Text files:")
	assert.Contains(t, out, "0.10 MB")
	assert.Contains(t, out, "50.00 KB")
	assert.NotContains(t, out, "fixed size")
}

func TestWriteSummaryEmptyCategoryAveragesZero(t *testing.T) {
	t.Parallel()

	res := &genfiles.Result{}
	res.Stats.Record(1024, true)

	var buf bytes.Buffer

	err := cli.WriteSummary(res, genfiles.ModeStructured, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "0.00 KB")
	assert.NotContains(t, out, "NaN")
}

func TestWriteSummaryListsFailures(t *testing.T) {
	t.Parallel()

	res := &genfiles.Result{
		Failures: []genfiles.Failure{
			{Path: "subdir_001/file_002.bin", Cause: "disk full"},
		},
	}
	res.Stats.Record(100, false)

	var buf bytes.Buffer

	err := cli.WriteSummary(res, genfiles.ModeStructured, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Skipped files: 1")
	assert.Contains(t, out, "subdir_001/file_002.bin: disk full")
}

func TestWriteJSONRoundTrips(t *testing.T) {
	t.Parallel()

	res := &genfiles.Result{}
	res.Stats.Record(2048, true)
	res.Stats.Record(100, false)

	var buf bytes.Buffer

	err := cli.WriteJSON(res, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"total_files"`)

	var decoded genfiles.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.Stats, decoded.Stats)
}

func TestWriteTreeSummary(t *testing.T) {
	t.Parallel()

	ts := &genfiles.TreeStats{
		Dirs:       3,
		OtherFiles: 1,
		OtherBytes: 5,
		Errors:     2,
		Elapsed:    time.Millisecond,
	}
	ts.Stats.Record(51200, true)
	ts.Stats.Record(100, false)

	var buf bytes.Buffer

	err := cli.WriteTreeSummary(ts, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Directories:")
	assert.Contains(t, out, "(51305 bytes)")
	assert.Contains(t, out, "Binary files:")
	assert.Contains(t, out, "Other files:")
	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "Elapsed:")
}

func TestWriteTreeSummaryOmitsEmptyRows(t *testing.T) {
	t.Parallel()

	ts := &genfiles.TreeStats{Dirs: 1, Elapsed: time.Millisecond}
	ts.Stats.Record(1024, true)

	var buf bytes.Buffer

	err := cli.WriteTreeSummary(ts, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "Other files:")
	assert.NotContains(t, out, "Errors:")
}
