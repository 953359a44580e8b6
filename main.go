// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/shuleni/school-records/cmd"
)

func main() {
	cmd.Execute()
}
