package base

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualab/meterconsole/pkg/models"
)

type dept struct {
	Name string
}

type account struct {
	ID         int64
	Username   string
	Password   string
	Department *dept
	Roles      []string
}

func TestRender_Table(t *testing.T) {
	rows := []account{
		{ID: 1, Username: "alice", Password: "x", Department: &dept{Name: "Lab"}, Roles: []string{"a", "b"}},
		{ID: 2, Username: "bob"},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "USERNAME", "DEPARTMENT"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "alice", "Lab"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "bob", "-"}, strings.Fields(lines[2]))
	assert.NotContains(t, buf.String(), "PASSWORD")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, []account{}))
	assert.Equal(t, "no results\n", buf.String())
}

func TestRender_Struct(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, &account{ID: 9, Username: "carol"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "9"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"USERNAME", "carol"}, strings.Fields(lines[1]))
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, account{ID: 3, Username: "dave"}))

	var got account
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "dave", got.Username)
}

func TestRender_YAMLDecodesRawJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, json.RawMessage(`{"state":"Final","id":4}`)))
	assert.Contains(t, buf.String(), "state: Final")
	assert.Contains(t, buf.String(), "id: 4")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "xml", 1)
	assert.EqualError(t, err, `unknown output format "xml"`)
}

func TestRenderPage(t *testing.T) {
	page := models.Page[dept]{
		Content:       []dept{{Name: "Lab"}, {Name: "QA"}},
		Number:        1,
		Size:          2,
		TotalElements: 5,
		TotalPages:    3,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, FormatTable, page))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "NAME\n"), out)
	assert.Contains(t, out, "QA")
	assert.True(t, strings.HasSuffix(out, "\npage 2 of 3, 5 total\n"), out)

	buf.Reset()
	require.NoError(t, RenderPage(&buf, FormatJSON, page))
	assert.Contains(t, buf.String(), `"totalElements": 5`)
}

func TestCommandRender_SingleOutput(t *testing.T) {
	ui := cli.NewMockUi()
	c := New(hclog.NewNullLogger(), ui)

	require.NoError(t, c.Render([]dept{{Name: "Lab"}, {Name: "Quality Assurance"}}))
	assert.Equal(t, "NAME\nLab\nQuality Assurance\n", ui.OutputWriter.String())
}

func TestParseID(t *testing.T) {
	id, err := ParseID([]string{"42"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, args := range [][]string{nil, {"1", "2"}, {"abc"}, {"0"}, {"-3"}} {
		_, err := ParseID(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestTimeVar(t *testing.T) {
	cases := map[string]string{
		"2024-03-01":          "2024-03-01T00:00:00",
		"2024-03-01 14:05":    "2024-03-01T14:05:00",
		"2024-03-01T14:05:09": "2024-03-01T14:05:09",
		"03/01/2024":          "2024-03-01T00:00:00",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			var got string
			f := NewFlagSet("test")
			f.TimeVar(&got, "from", "")
			require.NoError(t, f.Parse([]string{"-from=" + in}))
			assert.Equal(t, want, got)
		})
	}

	var got string
	f := NewFlagSet("test")
	f.TimeVar(&got, "from", "")
	assert.Error(t, f.Parse([]string{"-from=yesterday-ish"}))
}

func TestFlagSetHelp(t *testing.T) {
	c := New(hclog.NewNullLogger(), cli.NewMockUi())
	var p models.PageRequest
	f := c.NewFlagSet("test")
	f.PageVars(&p)

	help := f.Help()
	assert.True(t, strings.HasPrefix(help, "\n\nOptions:\n"))
	assert.Contains(t, help, "-format=table")
	assert.Contains(t, help, "-config\n")
	assert.Contains(t, help, "-page=0")
}
