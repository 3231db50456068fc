package panicerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/gostack/internal/panicerr"
)

func Test_Recover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		errStr    string
		wrapStr   string
		fun       func() error
		haveStack bool
	}{
		{
			name:   "normal",
			errStr: "",
			fun: func() error {
				return nil
			},
		},
		{
			name:   "normal err",
			errStr: "bang",
			fun: func() error {
				return errors.New("bang")
			},
		},
		{
			name:      "panic err",
			errStr:    "panic err paniced: bang",
			wrapStr:   "bang",
			haveStack: true,
			fun: func() error {
				panic(errors.New("bang"))
			},
		},
		{
			name:      "hello panic",
			errStr:    "hello panic paniced: hello",
			haveStack: true,
			fun: func() error {
				panic("hello")
			},
		},
		{
			name:      "index panic",
			errStr:    "index panic paniced: runtime error: index out of range [1] with length 0",
			haveStack: true,
			fun: func() error {
				var some []int
				some[1]++
				return nil
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.errStr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.errStr)
				if tc.wrapStr != "" {
					assert.EqualError(t, errors.Unwrap(err), tc.wrapStr, "expected panic(error) value")
				}
			}
			assert.Equal(t, tc.haveStack, panicerr.IsPanic(err), "expected IsPanic")
			stack := panicerr.PanicStack(err)
			if tc.haveStack {
				assert.NotEqual(t, "", stack, "expected a stack trace")
				assert.Contains(t, fmt.Sprintf("%+v", err), "\nPanic stack: ", "expected %+v to print the stack")
			} else {
				assert.Equal(t, "", stack, "expected no stack trace")
			}
			if t.Failed() && stack != "" {
				t.Logf("panic stack: %v", stack)
			}
		})
	}
}
