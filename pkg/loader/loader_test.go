package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuralTrust/CommentGuard/pkg/loader"
	"github.com/NeuralTrust/CommentGuard/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "comments.csv",
		"comment_id,username,comment_text\n"+
			"c1,alice,hello world\n"+
			"c2,bob,\"comma, inside\"\n")

	comments, err := loader.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []types.Comment{
		{CommentID: "c1", Username: "alice", CommentText: "hello world"},
		{CommentID: "c2", Username: "bob", CommentText: "comma, inside"},
	}, comments)
}

func TestLoad_CSVColumnOrderIrrelevant(t *testing.T) {
	path := writeFile(t, "comments.csv",
		"username,extra,comment_text,comment_id\n"+
			"alice,x,hello,c1\n")

	comments, err := loader.Load(path)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, types.Comment{CommentID: "c1", Username: "alice", CommentText: "hello"}, comments[0])
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "comments.json",
		`[{"comment_id":"c1","username":"alice","comment_text":"hi"},
		  {"comment_id":"c2","username":"bob","comment_text":"yo"}]`)

	comments, err := loader.Load(path)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "c2", comments[1].CommentID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"))

	assert.ErrorContains(t, err, "input file not found")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "comments.txt", "whatever")

	_, err := loader.Load(path)

	assert.ErrorContains(t, err, "unsupported file format")
}

func TestLoad_MissingColumnsCSV(t *testing.T) {
	path := writeFile(t, "comments.csv", "comment_id,text\nc1,hello\n")

	_, err := loader.Load(path)

	assert.ErrorContains(t, err, "missing required columns")
	assert.ErrorContains(t, err, "username")
	assert.ErrorContains(t, err, "comment_text")
}

func TestLoad_MissingKeysJSON(t *testing.T) {
	path := writeFile(t, "comments.json", `[{"comment_id":"c1","username":"alice"}]`)

	_, err := loader.Load(path)

	assert.ErrorContains(t, err, "missing required columns")
	assert.ErrorContains(t, err, "comment_text")
}

func TestLoad_EmptyCSV(t *testing.T) {
	path := writeFile(t, "comments.csv", "comment_id,username,comment_text\n")

	_, err := loader.Load(path)

	assert.ErrorContains(t, err, "empty")
}

func TestLoad_EmptyJSON(t *testing.T) {
	path := writeFile(t, "comments.json", "[]")

	_, err := loader.Load(path)

	assert.ErrorContains(t, err, "empty")
}
