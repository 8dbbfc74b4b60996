package model

// RawTransaction is a transaction of a RawBlock.
type RawTransaction struct {
	TxID    string
	Inputs  []RawInput
	Outputs []RawOutput
}

// RawInput references a previous output, or carries the coinbase marker.
type RawInput struct {
	TxID     string
	Vout     uint32
	Coinbase string
}

// IsCoinbase reports whether the input creates new coins.
func (in RawInput) IsCoinbase() bool {
	return in.Coinbase != ""
}

// HasPrevOut reports whether the input references an output.
func (in RawInput) HasPrevOut() bool {
	return in.TxID != ""
}

// RawOutput is an output with its decoded destination addresses.
type RawOutput struct {
	N         uint32
	Value     uint64
	Addresses []string
}

// Address returns the single destination of the output. Outputs with no
// or several destinations (e.g. bare multisig) report ok == false.
func (out RawOutput) Address() (string, bool) {
	if len(out.Addresses) != 1 {
		return "", false
	}
	return out.Addresses[0], true
}
