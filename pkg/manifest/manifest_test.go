package manifest

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/modlauncher/pkg/errors"
	"github.com/arthur-debert/modlauncher/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		check  func(t *testing.T, name, path, folder, userDir, github, version string, deps []string)
	}{
		{
			name: "full manifest with quoted values",
			input: `name = "Grand Combination"
path = "mod/GFM"
user_dir = "gfm"
github = "https://github.com/example/gfm"
version = "1.4.2"
dependencies = { "Base Fixes", "Music Pack" }
`,
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, "Grand Combination", name)
				assert.Equal(t, "mod/GFM", path)
				assert.Equal(t, "GFM", folder)
				assert.Equal(t, "gfm", userDir)
				assert.Equal(t, "https://github.com/example/gfm", github)
				assert.Equal(t, "1.4.2", version)
				assert.Equal(t, []string{"Base Fixes", "Music Pack"}, deps)
			},
		},
		{
			name:   "unquoted values without spaces around equals",
			input:  "name=Foo\npath=mod/Foo\n",
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, "Foo", name)
				assert.Equal(t, "Foo", folder)
				assert.Empty(t, deps)
			},
		},
		{
			name:   "comments and malformed lines are skipped",
			input:  "# name = \"Hidden\"\n// path = \"mod/Hidden\"\nthis line has no equals\nname = \"Visible\"\n",
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, "Visible", name)
				assert.Empty(t, path)
				assert.Empty(t, folder)
			},
		},
		{
			name:   "unknown keys are ignored",
			input:  "name = \"Foo\"\nsupported_version = \"3.04\"\ntags = { \"x\" }\n",
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, "Foo", name)
				assert.Empty(t, deps)
			},
		},
		{
			name:   "empty dependency pieces are dropped",
			input:  "name = \"Foo\"\ndependencies = {\"A\",, \"\" , B ,}\n",
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, []string{"A", "B"}, deps)
			},
		},
		{
			name:   "windows line endings",
			input:  "name = \"Foo\"\r\npath = \"mod/Deep/Foo\"\r\n",
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, "Foo", name)
				assert.Equal(t, "Foo", folder)
			},
		},
		{
			name:   "value keeps everything after the first equals",
			input:  "name = \"a=b\"\n",
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, "a=b", name)
			},
		},
		{
			name:   "missing name",
			input:  "path = \"mod/Foo\"\n",
			wantOK: false,
		},
		{
			name:   "empty quoted name",
			input:  "name = \"\"\n",
			wantOK: false,
		},
		{
			name:   "single quote character is not stripped",
			input:  "name = \"\n",
			wantOK: true,
			check: func(t *testing.T, name, path, folder, userDir, github, version string, deps []string) {
				assert.Equal(t, `"`, name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := Parse(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, rec)
				return
			}
			require.NotNil(t, rec)
			tt.check(t, rec.Name, rec.InstallPath, rec.FolderName, rec.UserDir, rec.GithubURL, rec.Version, rec.Dependencies)
		})
	}
}

func TestParse_LastValueWins(t *testing.T) {
	rec, ok := Parse("name = \"First\"\nname = \"Second\"\n")
	require.True(t, ok)
	assert.Equal(t, "Second", rec.Name)
}

func TestParseFile(t *testing.T) {
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	path := game.AddManifest(t, "Foo.mod", "name = \"Foo\"\npath = \"mod/Foo\"\n")

	rec, ok, err := ParseFile(fs, path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Foo", rec.Name)
	assert.Equal(t, "Foo.mod", rec.ManifestFile)
	assert.Equal(t, "Foo", rec.FolderName)
}

func TestParseFile_InvalidUTF8IsDropped(t *testing.T) {
	fs := testutil.NewTestFS()
	game := testutil.NewGameDir(t, fs, "/game")
	path := game.AddManifest(t, "Bad.mod", "name = \"Caf\xe9\"\n")

	rec, ok, err := ParseFile(fs, path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Caf", rec.Name)
}

func TestParseFile_ReadError(t *testing.T) {
	base := testutil.NewTestFS()
	game := testutil.NewGameDir(t, base, "/game")
	path := game.AddManifest(t, "Foo.mod", "name = \"Foo\"\n")
	fs := testutil.NewFailingFS(base).FailRead(path, stderrors.New("disk on fire"))

	rec, ok, err := ParseFile(fs, path)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, rec)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestRead))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}
