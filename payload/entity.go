package payload

import "github.com/oasislabs/decoder-client/abi"

// Payload is the body of the request sent to the decoder
type Payload struct {
	// Txn is the hash of the transaction to decode. It is forwarded
	// without validation
	Txn string `json:"txn"`

	// ABI describes the methods of the contract
	ABI abi.ABI `json:"abi"`

	// Contract is the verbatim text of the contract source
	Contract string `json:"contract"`
}
