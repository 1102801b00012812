// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonutil decodes single JSON values into simple Go types with
// strict range checking.
//
// It covers the scalar leaves a configuration or report schema is built
// from — bool, the fixed-width integers matching the atomic cell kinds,
// float64, string, base64 bytes, and RFC 3339 timestamps. Each function
// takes the raw bytes of exactly one JSON value and either returns a
// fully validated result or an error; there are no partial decodes.
//
// Narrowing is checked, never silent: decoding 4294967296 into a uint32
// fails with [ErrRange] rather than wrapping. Fractional numbers do not
// decode into integer types.
//
// Parsing is delegated to the sonnet JSON codec, an encoding/json
// drop-in; this package adds only the width validation layer.
package jsonutil

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// ErrRange reports a syntactically valid number that does not fit the
// requested type.
var ErrRange = errors.New("jsonutil: value out of range")

// DecodeBool decodes a JSON boolean.
func DecodeBool(data []byte) (bool, error) {
	var v bool
	if err := sonnet.Unmarshal(data, &v); err != nil {
		return false, fmt.Errorf("jsonutil: decoding bool: %w", err)
	}
	return v, nil
}

// DecodeInt32 decodes a JSON number into an int32, rejecting values
// outside [math.MinInt32, math.MaxInt32] and fractional numbers.
func DecodeInt32(data []byte) (int32, error) {
	v, err := DecodeInt64(data)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit int32", ErrRange, v)
	}
	return int32(v), nil
}

// DecodeUint32 decodes a JSON number into a uint32, rejecting negative
// values, values above math.MaxUint32 and fractional numbers.
func DecodeUint32(data []byte) (uint32, error) {
	v, err := DecodeUint64(data)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrRange, v)
	}
	return uint32(v), nil
}

// DecodeInt64 decodes a JSON number into an int64.
func DecodeInt64(data []byte) (int64, error) {
	var v int64
	if err := sonnet.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("jsonutil: decoding int64: %w", err)
	}
	return v, nil
}

// DecodeUint64 decodes a JSON number into a uint64.
func DecodeUint64(data []byte) (uint64, error) {
	var v uint64
	if err := sonnet.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("jsonutil: decoding uint64: %w", err)
	}
	return v, nil
}

// DecodeFloat64 decodes a JSON number into a float64.
func DecodeFloat64(data []byte) (float64, error) {
	var v float64
	if err := sonnet.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("jsonutil: decoding float64: %w", err)
	}
	return v, nil
}

// DecodeString decodes a JSON string.
func DecodeString(data []byte) (string, error) {
	var v string
	if err := sonnet.Unmarshal(data, &v); err != nil {
		return "", fmt.Errorf("jsonutil: decoding string: %w", err)
	}
	return v, nil
}

// DecodeBytes decodes a JSON string holding standard base64 into raw
// bytes.
func DecodeBytes(data []byte) ([]byte, error) {
	var v []byte
	if err := sonnet.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("jsonutil: decoding base64 bytes: %w", err)
	}
	return v, nil
}

// DecodeTime decodes a JSON string holding an RFC 3339 timestamp.
func DecodeTime(data []byte) (time.Time, error) {
	var v time.Time
	if err := sonnet.Unmarshal(data, &v); err != nil {
		return time.Time{}, fmt.Errorf("jsonutil: decoding timestamp: %w", err)
	}
	return v, nil
}
