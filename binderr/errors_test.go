package binderr

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		kind  Kind
		error string
		json  string
	}{
		{
			err:   MissingAttribute("key"),
			kind:  KindMissingAttribute,
			error: "missing-attribute name:key",
			json:  `{"kind":"missing-attribute","name":"key"}`,
		},
		{
			err:   MissingText(),
			kind:  KindMissingText,
			error: "missing-text",
			json:  `{"kind":"missing-text"}`,
		},
		{
			err:   MissingNode("root"),
			kind:  KindMissingNode,
			error: "missing-node name:root",
			json:  `{"kind":"missing-node","name":"root"}`,
		},
		{
			err:   NameMismatch("root", "wrong"),
			kind:  KindNameMismatch,
			error: "name-mismatch expected:root actual:wrong",
			json:  `{"kind":"name-mismatch","expected":"root","actual":"wrong"}`,
		},
		{
			err:   MalformedInput(WithMessage("line 3")),
			kind:  KindMalformedInput,
			error: "malformed-input line 3",
			json:  `{"kind":"malformed-input","message":"line 3"}`,
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.kind, tc.err.Kind)
			check.Equal(tc.error, tc.err.Error())
			b, jerr := json.Marshal(tc.err)
			check.NoError(jerr)
			check.Equal(tc.json, string(b))
		})
	}
}

func TestErrorCause(t *testing.T) {
	check := assert.New(t)
	cause := errors.New("unexpected EOF")
	err := MalformedInput(WithCause(cause))
	check.Equal("malformed-input: unexpected EOF", err.Error())
	check.Equal(cause, errors.Unwrap(err))
}

func TestIsKind(t *testing.T) {
	check := assert.New(t)
	err := errors.WithStack(MissingAttribute("key"))
	check.True(IsKind(err, KindMissingAttribute))
	check.False(IsKind(err, KindMissingNode))
	check.False(IsKind(errors.New("other"), KindMissingAttribute))
	check.False(IsKind(nil, KindMissingAttribute))
}

func TestKindText(t *testing.T) {
	check := assert.New(t)
	for _, k := range []Kind{
		KindMalformedInput,
		KindMissingAttribute,
		KindMissingText,
		KindMissingNode,
		KindNameMismatch,
	} {
		b, err := k.MarshalText()
		check.NoError(err)
		var got Kind
		check.NoError(got.UnmarshalText(b))
		check.Equal(k, got)
	}
	var k Kind
	check.Error(k.UnmarshalText([]byte("bogus")))
	check.Equal("Kind(99)", Kind(99).String())
}
