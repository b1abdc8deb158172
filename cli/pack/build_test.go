package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorpm/rpmpack/internal/rpmpkg"
)

func TestStageBuildRootWithoutExtraFilesReturnsSourceDirUnchanged(t *testing.T) {
	root := t.TempDir()
	got, cleanup, err := stageBuildRoot(root, nil)
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, root, got)
}

func TestStageBuildRootCopiesExtraFiles(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "app"), []byte("app content"), 0o644))

	extraSrc := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(extraSrc, "bin"), []byte("binary"), 0o755))

	staged, cleanup, err := stageBuildRoot(srcDir, map[string]string{
		filepath.Join(extraSrc, "bin"): "usr/bin/mytool",
	})
	require.NoError(t, err)
	defer cleanup()

	appContent, err := os.ReadFile(filepath.Join(staged, "app"))
	require.NoError(t, err)
	assert.Equal(t, "app content", string(appContent))

	binContent, err := os.ReadFile(filepath.Join(staged, "usr", "bin", "mytool"))
	require.NoError(t, err)
	assert.Equal(t, "binary", string(binContent))
}

func TestBuildAssemblesReadableRPM(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "readme.txt"), []byte("hello\n"), 0o644))

	outPath := filepath.Join(t.TempDir(), "out.rpm")
	out, err := os.Create(outPath)
	require.NoError(t, err)

	err = Build(BuildOptions{
		SourceDir: srcDir,
		Name:      "demo",
		Version:   "1.0.0",
		Release:   "1",
		Arch:      "noarch",
		OS:        "linux",
		BuildTime: 1700000000,
	}, out)
	require.NoError(t, out.Close())
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	view, err := rpmpkg.Read(f)
	require.NoError(t, err)
	assert.Equal(t, "demo-1.0.0-1", view.Lead.Name)
}
