// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package infocmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/hacluster/pkg/application"
)

var app *application.HACluster

// hacluster info
func NewCmd(injectedApp *application.HACluster) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Export information about the HA cluster",
		Long: `The info command suite exports the configuration of an existing HA
cluster in the form expected by the ha_cluster Ansible role.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	// hacluster info export
	cmd.AddCommand(newExportCmd())
	// hacluster info nodes
	cmd.AddCommand(newNodesCmd())
	return cmd
}
