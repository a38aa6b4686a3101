package abi

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/oasislabs/decoder-client/errors"
	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, content []byte) string {
	dir, err := ioutil.TempDir("", "abi")
	assert.Nil(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	p := filepath.Join(dir, "abi.json")
	assert.Nil(t, ioutil.WriteFile(p, content, 0600))
	return p
}

func TestLiteralSourceLoad(t *testing.T) {
	abi, err := NewLiteralSource().Load(context.Background())
	assert.Nil(t, err)

	var decoded []map[string]interface{}
	assert.Nil(t, json.Unmarshal(abi, &decoded))
	assert.Equal(t, []map[string]interface{}{
		{
			"inputs": []interface{}{
				map[string]interface{}{"internalType": "address", "name": "recipient", "type": "address"},
				map[string]interface{}{"internalType": "uint256", "name": "amount", "type": "uint256"},
			},
			"name": "transfer",
			"outputs": []interface{}{
				map[string]interface{}{"internalType": "bool", "name": "", "type": "bool"},
			},
			"stateMutability": "nonpayable",
			"type":            "function",
		},
	}, decoded)
}

func TestLiteralSourceEmpty(t *testing.T) {
	abi, err := (&LiteralSource{}).Load(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "[]", string(abi))
}

func TestFileSourceLoadKeepsUnknownFields(t *testing.T) {
	content := `[{"type":"event","name":"Transfer","anonymous":false,"inputs":[]}]`
	p := writeFile(t, []byte(content))

	abi, err := (&FileSource{Path: p}).Load(context.Background())

	assert.Nil(t, err)
	assert.JSONEq(t, content, string(abi))
}

func TestFileSourceLoadStripsBOM(t *testing.T) {
	p := writeFile(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("[]\n")...))

	abi, err := (&FileSource{Path: p}).Load(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, "[]", string(abi))
}

func TestFileSourceLoadMissing(t *testing.T) {
	_, err := (&FileSource{Path: "/does/not/exist/abi.json"}).Load(context.Background())

	assert.Equal(t, errors.ErrReadABI, errors.CodeOf(err))
}

func TestFileSourceLoadMalformed(t *testing.T) {
	p := writeFile(t, []byte(`[{"name": "transfer",`))

	_, err := (&FileSource{Path: p}).Load(context.Background())

	assert.Equal(t, errors.ErrDeserializeABI, errors.CodeOf(err))
}

func TestParseRejectsNonArray(t *testing.T) {
	for _, content := range []string{`{"name": "transfer"}`, `null`, `"abi"`} {
		_, err := Parse([]byte(content))
		assert.Equal(t, errors.ErrDeserializeABI, errors.CodeOf(err), content)
	}
}

func TestNewSource(t *testing.T) {
	s, err := NewSource(SourceLiteral, "")
	assert.Nil(t, err)
	assert.IsType(t, &LiteralSource{}, s)

	s, err = NewSource(SourceFile, "abi.json")
	assert.Nil(t, err)
	assert.Equal(t, &FileSource{Path: "abi.json"}, s)

	_, err = NewSource("remote", "")
	assert.Equal(t, errors.ErrUnknownABISource, errors.CodeOf(err))
}
