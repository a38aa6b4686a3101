package abi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ABI is the JSON encoded list of descriptors of a contract. It is
// kept as raw JSON so that it is forwarded to the decoder exactly as
// it was provided, including fields this package knows nothing about
type ABI = json.RawMessage

// Argument describes an input or output parameter of a method
type Argument struct {
	InternalType string `json:"internalType"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Indexed      bool   `json:"indexed,omitempty"`
}

// Method describes a function or event of a contract
type Method struct {
	Inputs          []Argument `json:"inputs"`
	Name            string     `json:"name"`
	Outputs         []Argument `json:"outputs"`
	StateMutability string     `json:"stateMutability"`
	Type            string     `json:"type"`
}

// Signature returns the canonical signature of the method, for
// instance transfer(address,uint256)
func (m Method) Signature() string {
	types := make([]string, 0, len(m.Inputs))
	for _, input := range m.Inputs {
		types = append(types, input.Type)
	}

	return fmt.Sprintf("%s(%s)", m.Name, strings.Join(types, ","))
}

// Selector returns the first 4 bytes of the keccak256 hash of
// the method's signature
func (m Method) Selector() [4]byte {
	var selector [4]byte
	copy(selector[:], crypto.Keccak256([]byte(m.Signature())))
	return selector
}

// SelectorHex returns the 0x prefixed hex encoding of Selector
func (m Method) SelectorHex() string {
	selector := m.Selector()
	return hexutil.Encode(selector[:])
}

// Methods decodes the descriptors of abi
func Methods(abi ABI) ([]Method, error) {
	var methods []Method
	if err := json.Unmarshal(abi, &methods); err != nil {
		return nil, err
	}

	return methods, nil
}

// Functions decodes the descriptors of abi and keeps only those
// with type function
func Functions(abi ABI) ([]Method, error) {
	methods, err := Methods(abi)
	if err != nil {
		return nil, err
	}

	functions := make([]Method, 0, len(methods))
	for _, method := range methods {
		if method.Type == "function" {
			functions = append(functions, method)
		}
	}

	return functions, nil
}
