package styletab_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styletab/styletab"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// demoTable is the summary-table shape most tests share: a stub column
// and one statistics column under a spanning group, with a bold
// annotation on the second row.
func demoTable() *styletab.Table {
	return &styletab.Table{
		Body: styletab.Body{
			Columns: []string{"label", "stat_1"},
			Rows: []map[string]string{
				{"label": "Age", "stat_1": "46 (37, 59)"},
				{"label": "Grade", "stat_1": ""},
				{"label": "Stage", "stat_1": "T1"},
			},
		},
		Columns: []styletab.Column{
			{Name: "label", Label: "Characteristic"},
			{Name: "stat_1", Label: "N = 200", Span: "Group X"},
		},
		Formats: []styletab.TextFormat{
			{Kind: styletab.Bold, Column: "label", Rows: []int{2}},
		},
		Footnotes: []string{"Median (IQR)"},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    styletab.Format
		wantErr require.ErrorAssertionFunc
	}{
		"text":     {input: "text", want: styletab.Text, wantErr: require.NoError},
		"html":     {input: "html", want: styletab.HTML, wantErr: require.NoError},
		"markdown": {input: "markdown", want: styletab.Markdown, wantErr: require.NoError},
		"csv":      {input: "csv", want: styletab.CSV, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: styletab.TSV, wantErr: require.NoError},
		"json":     {input: "json", want: styletab.JSON, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: styletab.YAML, wantErr: require.NoError},
		"unknown":  {input: "latex", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := styletab.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatSentinel(t *testing.T) {
	t.Parallel()
	_, err := styletab.ParseFormat("docx")
	assert.ErrorIs(t, err, styletab.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := styletab.Formats()
	assert.Equal(t, []styletab.Format{
		styletab.Text, styletab.HTML, styletab.Markdown,
		styletab.CSV, styletab.TSV, styletab.JSON, styletab.YAML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, styletab.Text, styletab.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "text", styletab.Text.String())
	assert.Equal(t, "markdown", styletab.Markdown.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := styletab.Write(&buf, "latex", demoTable())
	require.ErrorIs(t, err, styletab.ErrUnsupportedFormat)
	// Fail fast: nothing written before the format check.
	assert.Empty(t, buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	err := styletab.Write(&errWriter{}, styletab.Text, demoTable())
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestMarshalText(t *testing.T) {
	t.Parallel()
	out, err := styletab.Marshal(styletab.Text, demoTable())
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "Characteristic")
	assert.Contains(t, s, "N = 200")
	assert.Contains(t, s, "Group X")
	assert.Contains(t, s, "46 (37, 59)")
	assert.Contains(t, s, "1 Median (IQR)")
}

// The canonical conversion: body construction first, bold overlay as a
// mask over the stub column, and a two-segment spanning header with a
// blank placeholder over the ungrouped column.
func TestConvertScenario(t *testing.T) {
	t.Parallel()
	calls, err := styletab.Convert(demoTable())
	require.NoError(t, err)

	names := calls.Names()
	require.Equal(t, []string{
		styletab.OpBody, styletab.OpColumns, styletab.OpBold,
		styletab.OpSpanners, styletab.OpFootnotes,
	}, names)

	bold := calls.At(styletab.OpBold)
	require.Len(t, bold, 1)
	mark, ok := bold[0].(styletab.MarkCells)
	require.True(t, ok)
	assert.Equal(t, 1, mark.Col)
	assert.Equal(t, []bool{false, true, false}, mark.Mask)

	spans := calls.At(styletab.OpSpanners)
	require.Len(t, spans, 1)
	head, ok := spans[0].(styletab.SpanHeaders)
	require.True(t, ok)
	assert.Equal(t, []styletab.SpanGroup{
		{Label: " ", Width: 1},
		{Label: "Group X", Width: 1},
	}, head.Groups)
}

func TestConvertScenarioRenders(t *testing.T) {
	t.Parallel()
	out, err := styletab.Marshal(styletab.Markdown, demoTable())
	require.NoError(t, err)
	s := string(out)
	// Escaped mode: the markdown renderer applies the bold mask.
	assert.Contains(t, s, "**Grade**")
	assert.NotContains(t, s, "**Age**")
	assert.Contains(t, s, "Group X")
}
