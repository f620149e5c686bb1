package gconf

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/errors"
	"github.com/iov-one/redeem/redeemtest/assert"
)

type MyConfig struct {
	Number int64
	Text   string
	Addr   redeem.Address
}

func (c *MyConfig) Validate() error {
	if c.Number < 0 {
		return errors.Wrap(errors.ErrAmount, "negative number")
	}
	return c.Addr.Validate()
}

func TestInitConfig(t *testing.T) {
	addr := redeem.NewAddress([]byte("some key"))

	cases := map[string]struct {
		raw     string
		want    *MyConfig
		wantErr *errors.Error
	}{
		"valid section": {
			raw:  `{"conf": {"mine": {"Number": 7, "Text": "hi", "Addr": "` + addr.String() + `"}}}`,
			want: &MyConfig{Number: 7, Text: "hi", Addr: addr},
		},
		"other sections are ignored": {
			raw:  `{"other": 1, "conf": {"theirs": {}, "mine": {"Number": 1, "Addr": "` + addr.String() + `"}}}`,
			want: &MyConfig{Number: 1, Addr: addr},
		},
		"missing conf": {
			raw:     `{"mine": {}}`,
			wantErr: errors.ErrNotFound,
		},
		"missing section": {
			raw:     `{"conf": {"theirs": {}}}`,
			wantErr: errors.ErrNotFound,
		},
		"unknown attribute": {
			raw:     `{"conf": {"mine": {"Numbr": 7}}}`,
			wantErr: errors.ErrInput,
		},
		"invalid content": {
			raw:     `{"conf": {"mine": {"Number": -1, "Addr": "` + addr.String() + `"}}}`,
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			opts, err := Parse([]byte(tc.raw))
			assert.Nil(t, err)

			var got MyConfig
			err = InitConfig(opts, "mine", &got)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, &got)
			}
		})
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "gconf-test")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	conf := &MyConfig{Number: 3, Text: "saved", Addr: redeem.NewAddress([]byte("key"))}
	opts := make(Options)
	assert.Nil(t, Save(opts, "mine", conf))

	invalid := &MyConfig{Number: -1}
	assert.IsErr(t, errors.ErrAmount, Save(opts, "broken", invalid))

	raw, err := opts["conf"].MarshalJSON()
	assert.Nil(t, err)
	filename := filepath.Join(dir, "config.json")
	assert.Nil(t, ioutil.WriteFile(filename, []byte(`{"conf": `+string(raw)+`}`), 0600))

	loaded, err := LoadFile(filename)
	assert.Nil(t, err)

	var got MyConfig
	assert.Nil(t, InitConfig(loaded, "mine", &got))
	assert.Equal(t, conf, &got)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = Parse([]byte("not json"))
	assert.IsErr(t, errors.ErrInput, err)
}
