// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyInputPath  = errors.New("no hardware configuration path given")
	ErrEmptyOutputPath = errors.New("no header output path given")
)
