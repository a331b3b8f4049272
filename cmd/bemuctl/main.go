// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/bemu/bemuctl/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
