// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package infocmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxfi/hacluster/cmd/flags"
	"github.com/luxfi/hacluster/pkg/ansible"
	"github.com/luxfi/hacluster/pkg/constants"
	"github.com/luxfi/hacluster/pkg/exporter"
	"github.com/luxfi/hacluster/pkg/ux"
)

// hacluster info nodes
func newNodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "List cluster nodes and their addresses",
		Long: `The nodes command prints the cluster nodes in corosync order together
with their corosync addresses and, when known, their pcs address. With
--inventory-dir the ansible host of each node in that inventory is shown too.`,
		RunE: listNodes,
		Args: cobra.NoArgs,
	}
	flags.AddClusterInputFlagsToCmd(cmd, app)
	cmd.Flags().String(constants.ConfigInventoryDir, "", "show ansible hosts from the inventory in this directory")
	return cmd
}

// inventoryHosts maps node names to their ansible host. A directory without
// an inventory yet has no hosts.
func inventoryHosts(inventoryDir string) (map[string]string, error) {
	hosts, err := ansible.GetInventoryFromAnsibleInventoryFile(inventoryDir)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	byName := make(map[string]string, len(hosts))
	for _, h := range hosts {
		byName[h.NodeName] = h.IP
	}
	return byName, nil
}

func listNodes(cmd *cobra.Command, _ []string) error {
	corosyncConf, err := flags.ValidateCorosyncConf(app)
	if err != nil {
		return err
	}
	inputs, err := app.LoadClusterInputs(cmd.Context(), corosyncConf, app.Conf.GetConfigStringValue(constants.ConfigPcsAddresses))
	if err != nil {
		return err
	}
	nodes, err := exporter.ExportClusterNodes(inputs.CorosyncConf, inputs.PcsAddresses)
	if err != nil {
		logExportError(err)
		return err
	}

	userLog := ux.New(app.Log, cmd.OutOrStdout())
	if len(nodes) == 0 {
		userLog.PrintToUser("No cluster nodes found")
		return nil
	}

	header := []string{"Node", "Corosync Addresses", "Pcs Address"}
	var hosts map[string]string
	if inventoryDir := app.Conf.GetConfigStringValue(constants.ConfigInventoryDir); inventoryDir != "" {
		if hosts, err = inventoryHosts(inventoryDir); err != nil {
			return err
		}
		header = append(header, "Ansible Host")
	}
	rows := make([][]string, 0, len(nodes))
	for _, node := range nodes {
		pcsAddress := "-"
		if node.PcsAddress != nil {
			pcsAddress = *node.PcsAddress
		}
		row := []string{node.NodeName, strings.Join(node.CorosyncAddresses, ", "), pcsAddress}
		if hosts != nil {
			host, ok := hosts[node.NodeName]
			if !ok {
				host = "-"
			}
			row = append(row, host)
		}
		rows = append(rows, row)
	}
	return userLog.PrintTable(header, rows)
}
