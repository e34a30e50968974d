// Package jsruntime evaluates JavaScript with goja and converts its
// UTF-16 strings to and from string16.String without a UTF-8 round trip.
package jsruntime

import (
	"context"
	"errors"

	"github.com/dop251/goja"
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/core/domain"
	"go.trai.ch/zerr"
)

// Runtime implements ports.Evaluator. Every call gets a fresh goja.Runtime.
type Runtime struct{}

// New creates a new Runtime.
func New() *Runtime {
	return &Runtime{}
}

// Evaluate runs source and returns its completion value converted with the
// global String function, which a script may shadow. The script is interrupted when ctx is done.
func (r *Runtime) Evaluate(ctx context.Context, source string) (string16.String, error) {
	if err := ctx.Err(); err != nil {
		return string16.String{}, zerr.Wrap(domain.ErrScriptInterrupted, "evaluate script")
	}

	vm := goja.New()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	value, err := vm.RunString(source)
	if err != nil {
		return string16.String{}, scriptError(err, source)
	}

	toString, ok := goja.AssertFunction(vm.Get("String"))
	if !ok {
		return string16.String{}, zerr.With(zerr.Wrap(domain.ErrScriptFailed, "String is not a function"), "source", source)
	}
	str, err := toString(goja.Undefined(), value)
	if err != nil {
		return string16.String{}, scriptError(err, source)
	}
	return FromValue(str), nil
}

func scriptError(err error, source string) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return zerr.Wrap(domain.ErrScriptInterrupted, "evaluate script")
	}
	return zerr.With(errors.Join(domain.ErrScriptFailed, err), "source", source)
}

// ToValue wraps s as a JavaScript string. Unpaired surrogates survive.
func ToValue(s string16.String) goja.Value {
	return goja.StringFromUTF16(s.Characters16())
}

// FromValue copies the code units of v's string form. For objects prefer
// passing the result of the script's String function, which reports a
// throwing toString as an error instead of a panic.
func FromValue(v goja.Value) string16.String {
	if v == nil {
		return string16.String{}
	}
	str, ok := v.ToString().(goja.String)
	if !ok {
		return string16.FromString(v.String())
	}

	n := str.Length()
	b := string16.NewBuilder(n)
	for i := range n {
		b.AppendUnit(str.CharAt(i))
	}
	return b.ToString()
}
