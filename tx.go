package redeem

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/redeem/errors"
)

// Input is a previously locked output that a transaction spends. Only its
// value takes part in the redemption decision.
type Input struct {
	Value int64 `protobuf:"varint,1,opt,name=value,proto3" json:"value"`
}

func (m *Input) Reset()         { *m = Input{} }
func (m *Input) String() string { return proto.CompactTextString(m) }
func (*Input) ProtoMessage()    {}

// Output is a payment of Value to the holder of the key hashing into
// Destination.
type Output struct {
	Value       int64   `protobuf:"varint,1,opt,name=value,proto3" json:"value"`
	Destination Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination"`
}

func (m *Output) Reset()         { *m = Output{} }
func (m *Output) String() string { return proto.CompactTextString(m) }
func (*Output) ProtoMessage()    {}

// Tx describes the shape of a proposed transaction spending the locked
// balance. Inputs and outputs are ordered.
type Tx struct {
	Inputs  []*Input  `protobuf:"bytes,1,rep,name=inputs,proto3" json:"inputs"`
	Outputs []*Output `protobuf:"bytes,2,rep,name=outputs,proto3" json:"outputs"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// NewTx returns a transaction spending a single input of given value.
func NewTx(inputValue int64, outputs ...*Output) *Tx {
	return &Tx{
		Inputs:  []*Input{{Value: inputValue}},
		Outputs: outputs,
	}
}

// NewOutput is a helper to quickly build an output.
func NewOutput(value int64, dest Address) *Output {
	return &Output{Value: value, Destination: dest}
}

// Validate makes sure the transaction is well formed. It does not tell if
// the transaction is allowed to spend anything.
func (tx *Tx) Validate() error {
	var errs error
	if len(tx.Inputs) == 0 {
		errs = errors.AppendField(errs, "Inputs", errors.ErrEmpty)
	}
	for i, in := range tx.Inputs {
		field := fmt.Sprintf("Inputs.%d", i)
		if in == nil {
			errs = errors.AppendField(errs, field, errors.ErrEmpty)
			continue
		}
		if in.Value < 0 {
			errs = errors.AppendField(errs, field+".Value", errors.ErrAmount)
		}
	}
	if len(tx.Outputs) == 0 {
		errs = errors.AppendField(errs, "Outputs", errors.ErrEmpty)
	}
	for i, out := range tx.Outputs {
		field := fmt.Sprintf("Outputs.%d", i)
		if out == nil {
			errs = errors.AppendField(errs, field, errors.ErrEmpty)
			continue
		}
		if out.Value < 0 {
			errs = errors.AppendField(errs, field+".Value", errors.ErrAmount)
		}
		errs = errors.AppendField(errs, field+".Destination", out.Destination.Validate())
	}
	return errs
}

// InputTotal returns the summed value of all inputs.
func (tx *Tx) InputTotal() (int64, error) {
	var total int64
	for _, in := range tx.Inputs {
		if in == nil {
			continue
		}
		var err error
		if total, err = Add(total, in.Value); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// OutputTotal returns the summed value of all outputs.
func (tx *Tx) OutputTotal() (int64, error) {
	var total int64
	for _, out := range tx.Outputs {
		if out == nil {
			continue
		}
		var err error
		if total, err = Add(total, out.Value); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// EncodeTx serializes the transaction using protobuf encoding.
func EncodeTx(tx *Tx) ([]byte, error) {
	raw, err := proto.Marshal(tx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshal tx: %s", err)
	}
	return raw, nil
}

// DecodeTx deserializes a transaction encoded with EncodeTx.
func DecodeTx(raw []byte) (*Tx, error) {
	var tx Tx
	if err := proto.Unmarshal(raw, &tx); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshal tx: %s", err)
	}
	return &tx, nil
}
