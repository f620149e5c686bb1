package redeem_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	Convey("addresses are pubkey hashes", t, func() {
		// Hash160 of the secp256k1 generator point, the well known
		// address of private key 1.
		pub, err := hex.DecodeString("0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
		So(err, ShouldBeNil)

		addr := redeem.NewAddress(pub)
		So(addr.Validate(), ShouldBeNil)
		So(addr.String(), ShouldEqual, "751E76E8199196D454941C45D1B3A323F1433BD6")
	})

	Convey("nil key has no address", t, func() {
		So(redeem.NewAddress(nil), ShouldBeNil)
	})

	Convey("address printing is upper case hex", t, func() {
		addr := redeem.Address([]byte("ABCD123456LHBABCD123"))
		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", []byte(addr)))
		So(redeem.Address(nil).String(), ShouldEqual, "(nil)")
	})
}

func TestAddressUnmarshalJSON(t *testing.T) {
	addr := redeem.NewAddress([]byte("some public key"))
	b32, err := addr.Bech32()
	require.NoError(t, err)

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr redeem.Address
	}{
		"default decoding": {
			json:     fmt.Sprintf(`"%X"`, []byte(addr)),
			wantAddr: addr,
		},
		"hex decoding": {
			json:     fmt.Sprintf(`"hex:%x"`, []byte(addr)),
			wantAddr: addr,
		},
		"bech32 decoding": {
			json:     fmt.Sprintf(`"bech32:%s"`, b32),
			wantAddr: addr,
		},
		"invalid hex": {
			json:    `"zzzz"`,
			wantErr: errors.ErrInput,
		},
		"too short": {
			json:    `"6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrInvalidType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a redeem.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.wantAddr, a)
			}
		})
	}
}

func TestAddressMarshalJSON(t *testing.T) {
	addr := redeem.NewAddress([]byte("some public key"))
	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`"%X"`, []byte(addr)), string(raw))

	var got redeem.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, addr.Equals(got))
}

func TestAddressBech32Prefix(t *testing.T) {
	addr := redeem.NewAddress([]byte("some public key"))
	b32, err := addr.Bech32()
	require.NoError(t, err)
	assert.Equal(t, "esc1", b32[:4])

	var flagAddr redeem.Address
	require.NoError(t, flagAddr.Set("bech32:"+b32))
	assert.Equal(t, addr, flagAddr)
}

func TestAddressClone(t *testing.T) {
	addr := redeem.NewAddress([]byte("some public key"))
	cpy := addr.Clone()
	cpy[0]++
	assert.False(t, addr.Equals(cpy))
	assert.Nil(t, redeem.Address(nil).Clone())
}
