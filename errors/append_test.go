package errors

import (
	"strings"
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs      []error
		wantNil   bool
		wantCount int
	}{
		"no errors": {
			errs:    nil,
			wantNil: true,
		},
		"only nil errors": {
			errs:    []error{nil, nil},
			wantNil: true,
		},
		"single error is not grouped": {
			errs:      []error{nil, ErrEmpty},
			wantCount: 1,
		},
		"two errors": {
			errs:      []error{ErrEmpty, ErrState},
			wantCount: 2,
		},
		"groups are flattened": {
			errs:      []error{Append(ErrEmpty, ErrState), ErrInput},
			wantCount: 3,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Append(tc.errs...)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("want an error")
			}
			count := 1
			if u, ok := err.(unpacker); ok {
				count = len(u.Unpack())
			}
			if count != tc.wantCount {
				t.Fatalf("want %d errors, got %d", tc.wantCount, count)
			}
		})
	}
}

func TestAppendMessage(t *testing.T) {
	err := Append(ErrEmpty, ErrState)
	msg := err.Error()
	if !strings.Contains(msg, "2 errors occurred") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if !strings.Contains(msg, "* value is empty") || !strings.Contains(msg, "* invalid state") {
		t.Fatalf("missing grouped messages: %q", msg)
	}
}
