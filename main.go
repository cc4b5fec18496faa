// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/nexuslabs/tenancy-service/cmd"

func main() {
	cmd.Execute()
}
