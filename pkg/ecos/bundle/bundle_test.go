package bundle

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/artifact"
	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
)

var imageSet = map[string]string{
	"app.bin": "raw image bytes",
	"app.hex": "@00000000\nAA BB CC DD\n",
	"app.txt": "app.elf: file format elf32-littleriscv\n",
}

func newPacker(t *testing.T) *Packer {
	t.Helper()
	lay := project.NewLayout(t.TempDir(), "app")
	require.NoError(t, os.MkdirAll(lay.BuildDir(), 0o755))
	for name, content := range imageSet {
		path := filepath.Join(lay.BuildDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return &Packer{Layout: lay, Logger: hclog.NewNullLogger(), ToolVersion: "0.2.0"}
}

// readBundle extracts every archive entry into a name-to-content map.
func readBundle(t *testing.T, path string, format Format) map[string][]byte {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec, err := format.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()

	entries := map[string][]byte{}
	tr := tar.NewReader(dec)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries[header.Name] = data
	}
	return entries
}

func TestCreateTarGz(t *testing.T) {
	p := newPacker(t)

	archive, err := p.Create("debug", FormatTarGz)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.Layout.BuildDir(), "app-debug.tar.gz"), archive)

	entries := readBundle(t, archive, FormatTarGz)
	require.Len(t, entries, 4)
	for name, content := range imageSet {
		assert.Equal(t, []byte(content), entries[name], name)
	}

	manifest, err := DecodeManifest(entries[ManifestName])
	require.NoError(t, err)
	assert.Equal(t, "app", manifest.Project)
	assert.Equal(t, "debug", manifest.Profile)
	assert.Equal(t, project.TargetTriple, manifest.Target)
	assert.Equal(t, "ecos", manifest.Tool)
	assert.Equal(t, "0.2.0", manifest.ToolVersion)
	assert.NotEmpty(t, manifest.CreatedAt)

	require.Len(t, manifest.Images, 3)
	for _, image := range manifest.Images {
		content, ok := imageSet[image.Name]
		require.True(t, ok, "unexpected image %s in manifest", image.Name)
		assert.Equal(t, int64(len(content)), image.Size)
		assert.Equal(t, artifact.Checksum([]byte(content), artifact.ChecksumSHA256), image.Checksum)
	}
}

func TestCreateTarBz2(t *testing.T) {
	p := newPacker(t)

	archive, err := p.Create("release", FormatTarBz2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.Layout.BuildDir(), "app-release.tar.bz2"), archive)

	entries := readBundle(t, archive, FormatTarBz2)
	require.Len(t, entries, 4)

	manifest, err := DecodeManifest(entries[ManifestName])
	require.NoError(t, err)
	assert.Equal(t, "release", manifest.Profile)
}

func TestCreateRequiresFullImageSet(t *testing.T) {
	p := newPacker(t)
	require.NoError(t, os.Remove(p.Layout.ImageHex()))

	_, err := p.Create("debug", FormatTarGz)
	require.ErrorIs(t, err, ecoserrors.ErrArtifactMissing)
	assert.Contains(t, err.Error(), "Run 'ecos build' first.")

	matches, err := filepath.Glob(filepath.Join(p.Layout.BuildDir(), "*.tar.gz"))
	require.NoError(t, err)
	assert.Empty(t, matches, "no partial archive may be left behind")
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"tar.gz", "tar.bz2"} {
		format, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(format))
	}

	_, err := ParseFormat("zip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bundle format")
}
