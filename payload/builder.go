package payload

import (
	"context"
	"io/ioutil"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/oasislabs/decoder-client/abi"
	"github.com/oasislabs/decoder-client/errors"
	"github.com/oasislabs/decoder-client/log"
	pkgerrors "github.com/pkg/errors"
)

// LoadContract reads the whole file at path as text. The contents
// must be valid UTF-8, otherwise the JSON encoding of the payload
// would not carry them verbatim
func LoadContract(path string) (string, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrReadContract, err, path)
	}

	if !utf8.Valid(p) {
		return "", errors.Wrap(errors.ErrReadContract, pkgerrors.New("contents are not valid UTF-8"), path)
	}

	return string(p), nil
}

// Builder composes a Payload from its inputs
type Builder struct {
	Logger       log.Logger
	ContractPath string
	Txn          string
	Source       abi.Source
}

// Build loads the contract first and the ABI second, stopping at
// the first failure
func (b *Builder) Build(ctx context.Context) (*Payload, error) {
	contract, err := LoadContract(b.ContractPath)
	if err != nil {
		return nil, err
	}

	b.Logger.Debug(ctx, "contract source loaded", log.MapFields{
		"call_type": "LoadContractSuccess",
		"path":      b.ContractPath,
		"size":      len(contract),
	})

	descriptors, err := b.Source.Load(ctx)
	if err != nil {
		return nil, err
	}

	b.Logger.Debug(ctx, "abi loaded", log.MapFields{
		"call_type": "LoadABISuccess",
		"size":      len(descriptors),
	})

	if !isTxHash(b.Txn) {
		b.Logger.Warn(ctx, "txn does not look like a transaction hash, sending it anyway", log.MapFields{
			"call_type": "ComposePayloadWarning",
			"txn":       b.Txn,
		})
	}

	return &Payload{Txn: b.Txn, ABI: descriptors, Contract: contract}, nil
}

// isTxHash reports whether s is a 0x prefixed 32 byte hex string
func isTxHash(s string) bool {
	p, err := hexutil.Decode(s)
	return err == nil && len(p) == common.HashLength
}
