package escrow

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/redeem/crypto"
	"github.com/iov-one/redeem/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimValidate(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	sig, err := Sign(key, Execute)
	require.NoError(t, err)

	cases := map[string]struct {
		Claim     *Claim
		WantField string
		WantErr   *errors.Error
	}{
		"valid": {
			Claim: NewClaim(Execute, sig),
		},
		"two signatures": {
			Claim: NewClaim(ResolveBuyer, sig, sig),
		},
		"unknown reason code": {
			Claim:     NewClaim('q', sig),
			WantField: "ReasonCode",
			WantErr:   ErrReasonCode,
		},
		"no signatures": {
			Claim:     NewClaim(Cancel),
			WantField: "Signatures",
			WantErr:   errors.ErrEmpty,
		},
		"too many signatures": {
			Claim:     NewClaim(Cancel, sig, sig, sig),
			WantField: "Signatures",
			WantErr:   errors.ErrInput,
		},
		"nil signature": {
			Claim:     NewClaim(Cancel, nil),
			WantField: "Signatures.0",
			WantErr:   errors.ErrEmpty,
		},
		"empty signature": {
			Claim:     NewClaim(Cancel, sig, &SignedMessage{Message: Cancel.Message()}),
			WantField: "Signatures.1.Signature",
			WantErr:   errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Claim.Validate()
			if tc.WantErr == nil {
				assert.NoError(t, err)
				return
			}
			errs := errors.FieldErrors(err, tc.WantField)
			require.Len(t, errs, 1, "%+v", err)
			assert.True(t, tc.WantErr.Is(errs[0]), "%+v", errs[0])
		})
	}
}

func TestSign(t *testing.T) {
	for _, key := range []*crypto.PrivateKey{crypto.GenPrivKeyEd25519(), crypto.GenPrivKeySecp256k1()} {
		sig, err := Sign(key, ResolveSeller)
		require.NoError(t, err)
		assert.Equal(t, []byte{'s'}, []byte(sig.Message))
		assert.True(t, key.PublicKey().Verify(sig.Message, sig.Signature))
	}

	_, err := Sign(crypto.GenPrivKeyEd25519(), ReasonCode('?'))
	assert.True(t, ErrReasonCode.Is(err))
}

func TestClaimEncoding(t *testing.T) {
	key := crypto.GenPrivKeySecp256k1()
	sig, err := Sign(key, ResolveBuyer)
	require.NoError(t, err)
	claim := NewClaim(ResolveBuyer, sig, sig)

	raw, err := EncodeClaim(claim)
	require.NoError(t, err)
	got, err := DecodeClaim(raw)
	require.NoError(t, err)
	assert.Equal(t, claim, got)

	_, err = DecodeClaim([]byte{0xff, 0xff, 0xff})
	assert.True(t, errors.ErrInput.Is(err))

	wide, err := proto.Marshal(&claimWire{ReasonCode: 0x178})
	require.NoError(t, err)
	_, err = DecodeClaim(wide)
	assert.True(t, ErrReasonCode.Is(err))
}
