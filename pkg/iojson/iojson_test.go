package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReader_Stdin(t *testing.T) {
	fr := &FileReader[map[string]string]{Stdin: strings.NewReader(`{"email":"a@b.in"}`)}

	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email": "a@b.in"}, got)
}

func TestFileReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Asha"}`), 0o644))

	fr := &FileReader[map[string]string]{fileFlagValue: path}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, "Asha", got["name"])
}

func TestFileReader_MissingFile(t *testing.T) {
	fr := &FileReader[map[string]string]{fileFlagValue: filepath.Join(t.TempDir(), "missing.json")}
	_, err := fr.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open file")
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode[map[string]string](strings.NewReader(`{"name": 1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode JSON")
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]bool{"valid": true}))
	assert.JSONEq(t, `{"valid": true}`, out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	err := WriteWith(&out, &errOut, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal JSON")
	assert.Contains(t, errOut.String(), "json_error")
	assert.Empty(t, out.String())
}
