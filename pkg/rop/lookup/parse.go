package lookup

import (
	"context"
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/optrop/pkg/rop"
	"github.com/ib-77/optrop/pkg/rop/option"
	"github.com/ib-77/optrop/pkg/rop/solo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var ErrAmbiguousName = errors.New("ambiguous name")

func ParseInt[T constraints.Signed](s string, opts ...ParseOption) rop.Result[T] {
	o := newParseOptions(opts)
	return parse(s, func(s string) (T, error) {
		v, err := strconv.ParseInt(s, o.base, bitSize[T]())
		return T(v), err
	})
}

func TryParseInt[T constraints.Signed](s string, opts ...ParseOption) option.Option[T] {
	return option.FromResult(ParseInt[T](s, opts...))
}

func ParseUint[T constraints.Unsigned](s string, opts ...ParseOption) rop.Result[T] {
	o := newParseOptions(opts)
	return parse(s, func(s string) (T, error) {
		v, err := strconv.ParseUint(s, o.base, bitSize[T]())
		return T(v), err
	})
}

func TryParseUint[T constraints.Unsigned](s string, opts ...ParseOption) option.Option[T] {
	return option.FromResult(ParseUint[T](s, opts...))
}

func ParseFloat[T constraints.Float](s string) rop.Result[T] {
	return parse(s, func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bitSize[T]())
		return T(v), err
	})
}

func TryParseFloat[T constraints.Float](s string) option.Option[T] {
	return option.FromResult(ParseFloat[T](s))
}

// ParseBool accepts the forms of strconv.ParseBool.
func ParseBool(s string) rop.Result[bool] {
	return parse(s, strconv.ParseBool)
}

func TryParseBool(s string) option.Option[bool] {
	return option.FromResult(ParseBool(s))
}

func ParseDuration(s string) rop.Result[time.Duration] {
	return parse(s, time.ParseDuration)
}

func TryParseDuration(s string) option.Option[time.Duration] {
	return option.FromResult(ParseDuration(s))
}

// ParseTime parses s with the configured layout, RFC 3339 by default.
// Times without a zone are read in the configured location, UTC by default.
func ParseTime(s string, opts ...ParseOption) rop.Result[time.Time] {
	o := newParseOptions(opts)
	return parse(s, func(s string) (time.Time, error) {
		return time.ParseInLocation(o.layout, s, o.location)
	})
}

func TryParseTime(s string, opts ...ParseOption) option.Option[time.Time] {
	return option.FromResult(ParseTime(s, opts...))
}

func ParseUUID(s string) rop.Result[uuid.UUID] {
	return parse(s, uuid.Parse)
}

func TryParseUUID(s string) option.Option[uuid.UUID] {
	return option.FromResult(ParseUUID(s))
}

// ParseEnum resolves s against the names in values. An exact name wins.
// Otherwise s and the names are compared with surrounding spaces trimmed,
// in NFC form, and case-folded with WithCaseFold, so " Red " finds "Red".
// When several names match that way the result is a failure wrapping
// ErrAmbiguousName.
func ParseEnum[E any](s string, values map[string]E, opts ...ParseOption) rop.Result[E] {
	if v, ok := values[s]; ok {
		return solo.Succeed(v)
	}

	o := newParseOptions(opts)
	key := normalizeName(s, o.caseFold)

	names := maps.Keys(values)
	slices.Sort(names)

	matches := slices.DeleteFunc(slices.Clone(names), func(name string) bool {
		return normalizeName(name, o.caseFold) != key
	})

	switch len(matches) {
	case 0:
		return solo.Fail[E](fmt.Errorf("unknown %s %q, expected one of: %s",
			reflect.TypeFor[E](), s, strings.Join(names, ", ")))
	case 1:
		return solo.Succeed(values[matches[0]])
	default:
		return solo.Fail[E](fmt.Errorf("%w: %s %q matches %s",
			ErrAmbiguousName, reflect.TypeFor[E](), s, strings.Join(matches, ", ")))
	}
}

func TryParseEnum[E any](s string, values map[string]E, opts ...ParseOption) option.Option[E] {
	return option.FromResult(ParseEnum(s, values, opts...))
}

// ParseText decodes s with the UnmarshalText method of *T.
func ParseText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) rop.Result[T] {
	return parse(s, func(s string) (T, error) {
		var v T
		err := PT(&v).UnmarshalText([]byte(s))
		return v, err
	})
}

func TryParseText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) option.Option[T] {
	return option.FromResult(ParseText[T, PT](s))
}

// parse runs a platform parse rule and turns its error into a failure.
func parse[T any](s string, rule func(string) (T, error)) rop.Result[T] {
	return solo.Try(context.Background(), solo.Succeed(s),
		func(_ context.Context, s string) (T, error) {
			return rule(s)
		})
}

func normalizeName(s string, fold bool) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	if fold {
		return cases.Fold().String(s)
	}
	return s
}

func bitSize[T constraints.Integer | constraints.Float]() int {
	return reflect.TypeFor[T]().Bits()
}
