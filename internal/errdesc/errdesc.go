// Package errdesc turns the reason attached to an error report into the
// descriptor the native bridge understands.
//
// A reason is either an error value or an arbitrary object. Callers hand
// over whatever they have and Classify picks the variant; Describe then
// converts each variant with its own field set.
package errdesc

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Descriptor is the wire form of a reason.
type Descriptor map[string]any

// Reason is implemented by ErrorReason and ObjectReason only.
type Reason interface {
	isReason()
}

type ErrorReason struct {
	Err error
}

type ObjectReason struct {
	Value any
}

func (ErrorReason) isReason()  {}
func (ObjectReason) isReason() {}

// stackKeys are dropped from object reasons, in any case; only error
// reasons carry a stack.
var stackKeys = []string{"stack", "stacktrace"}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Errors raised outside Go (a Kotlin or Swift exception carried across the
// bridge) can report their own name and frames.
type (
	namedError interface {
		ErrorName() string
	}
	stackedError interface {
		ErrorStack() []string
	}
)

func Classify(v any) Reason {
	if err, ok := v.(error); ok {
		return ErrorReason{Err: err}
	}
	return ObjectReason{Value: v}
}

// Describe converts r. A nil error or nil object yields a nil descriptor.
func Describe(r Reason) Descriptor {
	switch r := r.(type) {
	case ErrorReason:
		return describeError(r.Err)
	case ObjectReason:
		return describeObject(r.Value)
	default:
		return nil
	}
}

// Encode describes r and serializes it for the bridge. A nil descriptor
// encodes to the empty string.
func Encode(r Reason) (string, error) {
	d := Describe(r)
	if d == nil {
		return "", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode error reason: %w", err)
	}
	return string(data), nil
}

func describeError(err error) Descriptor {
	if err == nil {
		return nil
	}

	d := Descriptor{
		"name":    typeName(err),
		"message": err.Error(),
		"stack":   stackOf(err),
	}

	var causes []string
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		causes = append(causes, cause.Error())
	}
	if len(causes) > 0 {
		d["cause"] = causes
	}
	return d
}

// stackOf returns the frames of the innermost error in the chain that
// recorded a stack trace.
func stackOf(err error) []string {
	var frames []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if se, ok := e.(stackedError); ok {
			frames = append([]string{}, se.ErrorStack()...)
			continue
		}
		st, ok := e.(stackTracer)
		if !ok {
			continue
		}
		trace := st.StackTrace()
		frames = make([]string, 0, len(trace))
		for _, f := range trace {
			frames = append(frames, strings.ReplaceAll(fmt.Sprintf("%+v", f), "\n\t", " "))
		}
	}
	if frames == nil {
		frames = []string{}
	}
	return frames
}

func typeName(err error) string {
	if ne, ok := err.(namedError); ok && ne.ErrorName() != "" {
		return ne.ErrorName()
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

func describeObject(v any) Descriptor {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Map) && rv.IsNil() {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Descriptor{"message": fmt.Sprint(v)}
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		var scalar any
		_ = json.Unmarshal(data, &scalar)
		return Descriptor{"message": scalar}
	}

	d := Descriptor(fields)
	for k := range d {
		if isStackKey(k) {
			delete(d, k)
		}
	}
	return d
}

func isStackKey(k string) bool {
	for _, sk := range stackKeys {
		if strings.EqualFold(k, sk) {
			return true
		}
	}
	return false
}
