// Copyright 2025 The atomicops Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonutil

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestDecodeBool(t *testing.T) {
	if v, err := DecodeBool([]byte("true")); err != nil || !v {
		t.Errorf("DecodeBool(true) = %v, %v", v, err)
	}
	if v, err := DecodeBool([]byte("false")); err != nil || v {
		t.Errorf("DecodeBool(false) = %v, %v", v, err)
	}
	if _, err := DecodeBool([]byte(`"true"`)); err == nil {
		t.Error("DecodeBool accepted a quoted string")
	}
}

func TestDecodeInt32(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int32
		wantErr bool
	}{
		{name: "zero", data: "0", want: 0},
		{name: "negative", data: "-42", want: -42},
		{name: "min", data: "-2147483648", want: -2147483648},
		{name: "max", data: "2147483647", want: 2147483647},
		{name: "one past max", data: "2147483648", wantErr: true},
		{name: "one past min", data: "-2147483649", wantErr: true},
		{name: "fractional", data: "1.5", wantErr: true},
		{name: "quoted", data: `"7"`, wantErr: true},
		{name: "garbage", data: "{", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInt32([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeInt32(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("DecodeInt32(%s) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}

func TestDecodeUint32(t *testing.T) {
	if v, err := DecodeUint32([]byte("4294967295")); err != nil || v != 4294967295 {
		t.Errorf("DecodeUint32(max) = %d, %v", v, err)
	}

	_, err := DecodeUint32([]byte("4294967296"))
	if !errors.Is(err, ErrRange) {
		t.Errorf("DecodeUint32(max+1) error = %v, want ErrRange", err)
	}

	if _, err := DecodeUint32([]byte("-1")); err == nil {
		t.Error("DecodeUint32(-1) succeeded")
	}
}

func TestDecode64(t *testing.T) {
	if v, err := DecodeInt64([]byte("-9223372036854775808")); err != nil || v != -9223372036854775808 {
		t.Errorf("DecodeInt64(min) = %d, %v", v, err)
	}
	if v, err := DecodeUint64([]byte("18446744073709551615")); err != nil || v != 18446744073709551615 {
		t.Errorf("DecodeUint64(max) = %d, %v", v, err)
	}
	if _, err := DecodeUint64([]byte("18446744073709551616")); err == nil {
		t.Error("DecodeUint64(max+1) succeeded")
	}
}

func TestDecodeFloat64(t *testing.T) {
	if v, err := DecodeFloat64([]byte("2.5e3")); err != nil || v != 2500 {
		t.Errorf("DecodeFloat64(2.5e3) = %v, %v", v, err)
	}
}

func TestDecodeString(t *testing.T) {
	if v, err := DecodeString([]byte(`"hello \"quoted\""`)); err != nil || v != `hello "quoted"` {
		t.Errorf("DecodeString = %q, %v", v, err)
	}
	if _, err := DecodeString([]byte("42")); err == nil {
		t.Error("DecodeString accepted a number")
	}
}

func TestDecodeBytes(t *testing.T) {
	v, err := DecodeBytes([]byte(`"aGVsbG8="`))
	if err != nil || !bytes.Equal(v, []byte("hello")) {
		t.Errorf("DecodeBytes = %q, %v", v, err)
	}
	if _, err := DecodeBytes([]byte(`"not base64!"`)); err == nil {
		t.Error("DecodeBytes accepted invalid base64")
	}
}

func TestDecodeTime(t *testing.T) {
	v, err := DecodeTime([]byte(`"2025-06-15T12:30:45Z"`))
	if err != nil {
		t.Fatalf("DecodeTime error: %v", err)
	}
	want := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)
	if !v.Equal(want) {
		t.Errorf("DecodeTime = %v, want %v", v, want)
	}

	if _, err := DecodeTime([]byte(`"15/06/2025"`)); err == nil {
		t.Error("DecodeTime accepted a non-RFC3339 date")
	}
}
