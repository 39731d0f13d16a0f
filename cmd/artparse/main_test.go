package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/artparse"
	main "github.com/fwojciec/artparse/cmd/artparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const galleryPage = `<!DOCTYPE html>
<html>
<body>
<div class="iELo6">
	<a href="/search?q=the+creation+of+adam">
		<img id="dimg_1" src="data:image/gif;base64,R0lGOD">
		<div class="pgNMRc"> The Creation of Adam </div>
		<div class="cxzHyb">c. 1512</div>
	</a>
</div>
<div class="iELo6">
	<a href="/search?q=the+last+judgment">
		<img id="dimg_2" data-src="https://example.com/last-judgment.jpg">
		<div class="pgNMRc">The Last Judgment</div>
	</a>
</div>
<div class="iELo6">
	<a href="/search?q=broken"><div class="pgNMRc">No Image</div></a>
</div>
<script>(function(){var s='data:image/jpeg;base64,ADAM';var ii=['dimg_1'];_setImagesSrc(ii,s);})();</script>
</body>
</html>`

func writePage(t *testing.T, dir, name, html string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
	return path
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := &main.Main{DBPath: ":memory:"}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "artparse")
	assert.Contains(t, stdout.String(), "parse")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := &main.Main{DBPath: ":memory:"}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "artparse")
}

func TestMain_Run_ParseRequiresFile(t *testing.T) {
	t.Parallel()

	m := &main.Main{DBPath: ":memory:"}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"parse"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_Parse(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON result named after input file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePage(t, dir, "michelangelo-paintings.html", galleryPage)
		outDir := filepath.Join(dir, "output")

		m := &main.Main{DBPath: filepath.Join(dir, "test.db")}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", "-o", outDir, input}, &stdout, &stderr)

		require.NoError(t, err)
		outPath := filepath.Join(outDir, "michelangelo-paintings.json")
		assert.Contains(t, stdout.String(), "Saved 2 artworks to "+outPath)
		assert.Contains(t, stdout.String(), "(1 incomplete skipped)")

		b, err := os.ReadFile(outPath)
		require.NoError(t, err)
		var result artparse.Result
		require.NoError(t, json.Unmarshal(b, &result))
		require.Len(t, result.Artworks, 2)
		assert.Equal(t, "The Creation of Adam", result.Artworks[0].Name)
		assert.Equal(t, "https://google.com/search?q=the+creation+of+adam", result.Artworks[0].Link)
		assert.Equal(t, "data:image/jpeg;base64,ADAM", result.Artworks[0].Image)
		assert.Equal(t, []string{"c. 1512"}, result.Artworks[0].Extensions)
		assert.Equal(t, "https://example.com/last-judgment.jpg", result.Artworks[1].Image)
		assert.Nil(t, result.Artworks[1].Extensions)
	})

	t.Run("uses configured base origin", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePage(t, dir, "page.html", galleryPage)
		outDir := filepath.Join(dir, "output")

		m := &main.Main{DBPath: filepath.Join(dir, "test.db")}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", "--no-store", "--base-origin", "https://www.google.de", "-o", outDir, input}, &stdout, &stderr)

		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(outDir, "page.json"))
		require.NoError(t, err)
		assert.Contains(t, string(b), `"link": "https://www.google.de/search?q=the+last+judgment"`)
		_, err = os.Stat(filepath.Join(dir, "test.db"))
		assert.True(t, os.IsNotExist(err), "database should not be created with --no-store")
	})

	t.Run("skips missing files and continues", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writePage(t, dir, "page.html", galleryPage)
		outDir := filepath.Join(dir, "output")

		m := &main.Main{DBPath: filepath.Join(dir, "test.db")}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", "-o", outDir, filepath.Join(dir, "missing.html"), input}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip "+filepath.Join(dir, "missing.html"))
		assert.Contains(t, stderr.String(), "input file not found")
		assert.FileExists(t, filepath.Join(outDir, "page.json"))
	})

	t.Run("returns error when every file fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := &main.Main{DBPath: filepath.Join(dir, "test.db")}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", "--no-store", filepath.Join(dir, "missing.html")}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 1 input files failed")
	})
}

func TestMain_Run_ParseThenQuery(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writePage(t, dir, "michelangelo-paintings.html", galleryPage)
	dbPath := filepath.Join(dir, "test.db")
	ctx := context.Background()

	run := func(args ...string) (string, error) {
		m := &main.Main{DBPath: dbPath}
		var stdout, stderr bytes.Buffer
		err := m.Run(ctx, args, &stdout, &stderr)
		return stdout.String(), err
	}

	_, err := run("parse", "-o", filepath.Join(dir, "output"), input)
	require.NoError(t, err)

	out, err := run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "michelangelo-paintings  2 artworks")

	out, err = run("list", "michelangelo-paintings")
	require.NoError(t, err)
	assert.Contains(t, out, "1. The Creation of Adam")
	assert.Contains(t, out, "https://google.com/search?q=the+last+judgment")

	out, err = run("show", "michelangelo-paintings")
	require.NoError(t, err)
	var result artparse.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Artworks, 2)

	out, err = run("delete", "michelangelo-paintings")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted artworks for michelangelo-paintings")

	out, err = run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sources found")
}
