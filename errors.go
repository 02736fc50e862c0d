// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/adc

package adc

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrTruncated       = errors.New("unexpected end of input inside chunk")
	ErrInvalidDistance = errors.New("back-reference distance exceeds produced output")
	ErrShortBuffer     = errors.New("output buffer too small for decoded chunk")
	ErrNilReader       = errors.New("reader is nil")
)
