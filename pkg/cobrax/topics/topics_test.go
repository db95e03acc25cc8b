package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"load-order.md":      {Data: []byte("# Load order\n\nDependencies first.")},
		"option-dry-run.txt": {Data: []byte("Nothing is written.")},
		"nested/merging.txt": {Data: []byte("Last writer wins.")},
		"notes.json":         {Data: []byte("{}")},
		"presets.txxt":       {Data: []byte("Presets")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFiles())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"load-order", "merging", "option-dry-run"}, tm.ListTopics())

		topic, ok := tm.GetTopic("merging")
		require.True(t, ok)
		assert.Equal(t, "Last writer wins.", topic.Content)
		assert.Equal(t, "nested/merging.txt", topic.FilePath)

		_, ok = tm.GetTopic("notes")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFiles(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"presets"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(testFiles())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Nothing is written.", topic.Content)
	}
}

var upperRenderer = RendererFunc(func(content, _ string) string {
	return strings.ToUpper(content)
})

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "modlauncher", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "list", Short: "List mods", Run: func(*cobra.Command, []string) {}})
	require.NoError(t, InitializeWithOptions(root, testFiles(), opts))

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	return root, out
}

func TestInitialize_HelpTopic(t *testing.T) {
	root, out := newRoot(t, Options{Renderer: upperRenderer})

	root.SetArgs([]string{"help", "merging"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "LAST WRITER WINS.", out.String())
}

func TestInitialize_TopicList(t *testing.T) {
	root, out := newRoot(t, Options{})

	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "General topics:")
	assert.Contains(t, out.String(), "  load-order")
	assert.Contains(t, out.String(), "  --dry-run")
	assert.Contains(t, out.String(), "Use 'modlauncher help <topic>'")
}

func TestInitialize_HelpForCommand(t *testing.T) {
	root, out := newRoot(t, Options{})

	root.SetArgs([]string{"help", "list"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "List mods")
}

func TestGlamourRenderer_PassesThroughText(t *testing.T) {
	r := &GlamourRenderer{Style: "notty"}
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
	assert.Contains(t, r.Render("# Title", ".md"), "Title")
}
