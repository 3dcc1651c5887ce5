package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-infantil/internal/cli"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func useBolt(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tienda.db")
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("STORAGE_BOLT_PATH", path)
	t.Setenv("LOG_LEVEL", "error")
	return path
}

func TestExport_CatalogoInicial(t *testing.T) {
	useBolt(t)

	var products []entity.Product
	require.NoError(t, json.Unmarshal([]byte(run(t, "export")), &products))
	assert.Len(t, products, 7)
	assert.Equal(t, 1, products[0].ID)
}

func TestList_FiltraPorCategoria(t *testing.T) {
	useBolt(t)

	out := run(t, "list", "--category", "Niñas")
	assert.Contains(t, out, "2 productos (Niñas)")
}

func TestSeed_PersisteEnBolt(t *testing.T) {
	path := useBolt(t)

	out := run(t, "seed")
	assert.Contains(t, out, "7 productos")

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestPDF_EscribeArchivo(t *testing.T) {
	useBolt(t)
	out := filepath.Join(t.TempDir(), "catalogo.pdf")

	run(t, "pdf", "--category", "Bebé", "--out", out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
