// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// Package tools pins tool modules so `go mod tidy` keeps them in go.mod.
//
// addlicense maintains the header at the top of every Go file:
//
//	go run github.com/google/addlicense -c AUTHORS -l bsd -s=only ./pkg ./cmd
package tools

import (
	_ "github.com/google/addlicense"
)
