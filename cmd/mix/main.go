/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/nutmix/nutmix/pkg/cli"
)

func main() {
	cli.Execute()
}
