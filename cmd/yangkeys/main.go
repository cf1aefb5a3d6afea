// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "yangkeys",
		Short:         "Recover list primary keys from YANG schema archives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newExtractCmd(), newServeCmd())
	return cmd
}
