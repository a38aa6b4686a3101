package abi

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"

	"github.com/oasislabs/decoder-client/errors"
	pkgerrors "github.com/pkg/errors"
)

const (
	SourceLiteral = "literal"
	SourceFile    = "file"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sources lists the supported kinds of ABI source
var Sources = []string{SourceLiteral, SourceFile}

// Source provides the ABI that is sent along with the contract
type Source interface {
	Load(ctx context.Context) (ABI, error)
}

// Transfer is the ERC20 transfer descriptor that the literal
// source provides by default
var Transfer = []Method{
	{
		Inputs: []Argument{
			{InternalType: "address", Name: "recipient", Type: "address"},
			{InternalType: "uint256", Name: "amount", Type: "uint256"},
		},
		Name:            "transfer",
		Outputs:         []Argument{{InternalType: "bool", Name: "", Type: "bool"}},
		StateMutability: "nonpayable",
		Type:            "function",
	},
}

// LiteralSource provides an ABI defined in memory
type LiteralSource struct {
	Methods []Method
}

// NewLiteralSource creates a LiteralSource with the built-in
// transfer descriptor
func NewLiteralSource() *LiteralSource {
	return &LiteralSource{Methods: Transfer}
}

func (s *LiteralSource) Load(ctx context.Context) (ABI, error) {
	methods := s.Methods
	if methods == nil {
		methods = []Method{}
	}

	p, err := json.Marshal(methods)
	if err != nil {
		return nil, errors.New(errors.ErrInternalError, err)
	}

	return ABI(p), nil
}

// FileSource reads the ABI from a JSON file. The contents are only
// checked to be a JSON array, they are not validated against any
// schema
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) (ABI, error) {
	p, err := ioutil.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrReadABI, err, s.Path)
	}

	return Parse(p)
}

// Parse checks that p is a well formed JSON document with an array
// as its top level value and returns it as an ABI
func Parse(p []byte) (ABI, error) {
	p = bytes.TrimPrefix(p, utf8BOM)

	var descriptors []json.RawMessage
	if err := json.Unmarshal(p, &descriptors); err != nil {
		return nil, errors.New(errors.ErrDeserializeABI, err)
	}
	if descriptors == nil {
		return nil, errors.New(errors.ErrDeserializeABI,
			pkgerrors.New("top level value must be an array"))
	}

	return ABI(bytes.TrimSpace(p)), nil
}

// NewSource creates the Source of the given kind. path is only used
// by the file source
func NewSource(kind, path string) (Source, error) {
	switch kind {
	case SourceLiteral:
		return NewLiteralSource(), nil
	case SourceFile:
		return &FileSource{Path: path}, nil
	default:
		return nil, errors.New(errors.ErrUnknownABISource, pkgerrors.Errorf("%q", kind))
	}
}
