// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package infocmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/luxfi/hacluster/cmd/flags"
	"github.com/luxfi/hacluster/pkg/ansible"
	"github.com/luxfi/hacluster/pkg/constants"
	"github.com/luxfi/hacluster/pkg/exporter"
	"github.com/luxfi/hacluster/pkg/ux"
)

var errUnknownFormat = errors.New("unknown output format")

// hacluster info export
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export cluster facts for the ha_cluster role",
		Long: `The export command reads the corosync configuration document and the
optional pcs address map and prints the ha_cluster facts. With
--inventory-dir the facts are also written as group variables next to an
inventory listing the cluster nodes.`,
		RunE: exportFacts,
		Args: cobra.NoArgs,
	}
	flags.AddClusterInputFlagsToCmd(cmd, app)
	cmd.Flags().String(constants.ConfigFormat, constants.FormatYAML, "output format: yaml or json")
	cmd.Flags().StringP(constants.ConfigOutput, "o", "", "write facts to this file instead of stdout")
	cmd.Flags().String(constants.ConfigInventoryDir, "", "write facts and a hosts inventory into this directory")
	cmd.Flags().String(constants.ConfigSSHUser, constants.DefaultSSHUser, "ansible_user of the inventory hosts")
	cmd.Flags().Bool(constants.ConfigCorosyncEnabled, false, "corosync is enabled to start on boot")
	cmd.Flags().Bool(constants.ConfigPacemakerEnabled, false, "pacemaker is enabled to start on boot")
	cmd.Flags().Bool(constants.ConfigClusterAbsent, false, "the host is not a cluster member, export only the cluster absent facts")
	return cmd
}

func exportFacts(cmd *cobra.Command, _ []string) error {
	conf := app.Conf
	format := conf.GetConfigStringValue(constants.ConfigFormat)
	if format != constants.FormatYAML && format != constants.FormatJSON {
		return fmt.Errorf("%w %q", errUnknownFormat, format)
	}
	startOnBoot := exporter.ExportStartOnBoot(
		conf.GetConfigBoolValue(constants.ConfigCorosyncEnabled),
		conf.GetConfigBoolValue(constants.ConfigPacemakerEnabled),
	)

	var (
		facts any
		nodes []exporter.NodeOptions
	)
	if conf.GetConfigBoolValue(constants.ConfigClusterAbsent) {
		facts = exporter.ClusterAbsentFacts(startOnBoot)
	} else {
		corosyncConf, err := flags.ValidateCorosyncConf(app)
		if err != nil {
			return err
		}
		inputs, err := app.LoadClusterInputs(cmd.Context(), corosyncConf, conf.GetConfigStringValue(constants.ConfigPcsAddresses))
		if err != nil {
			return err
		}
		clusterFacts, err := exporter.Export(app.Log, inputs.CorosyncConf, inputs.PcsAddresses, startOnBoot)
		if err != nil {
			logExportError(err)
			return err
		}
		facts = clusterFacts
		nodes = clusterFacts.NodeOptions
	}

	out, err := encodeFacts(facts, format)
	if err != nil {
		return err
	}
	userLog := ux.New(app.Log, cmd.OutOrStdout())
	if outputPath := conf.GetConfigStringValue(constants.ConfigOutput); outputPath != "" {
		if err := os.WriteFile(outputPath, out, constants.WriteReadReadPerms); err != nil {
			return fmt.Errorf("failed to write facts: %w", err)
		}
		userLog.GreenCheckmarkToUser("Facts written to %s", outputPath)
	} else if _, err := userLog.Write(out); err != nil {
		return err
	}

	if inventoryDir := conf.GetConfigStringValue(constants.ConfigInventoryDir); inventoryDir != "" {
		factsPath, err := ansible.WriteFactsFile(inventoryDir, facts)
		if err != nil {
			return fmt.Errorf("failed to write facts file: %w", err)
		}
		app.Log.Info("wrote facts file", zap.String("path", factsPath))
		if len(nodes) > 0 {
			if err := ansible.CreateClusterInventory(inventoryDir, nodes, conf.GetConfigStringValue(constants.ConfigSSHUser)); err != nil {
				return fmt.Errorf("failed to write inventory: %w", err)
			}
			app.Log.Info("wrote inventory", zap.String("dir", inventoryDir), zap.Int("hosts", len(nodes)))
		}
	}
	return nil
}

func encodeFacts(facts any, format string) ([]byte, error) {
	switch format {
	case constants.FormatJSON:
		out, err := json.MarshalIndent(facts, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal facts: %w", err)
		}
		return append(out, '\n'), nil
	case constants.FormatYAML:
		out, err := yaml.Marshal(facts)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal facts: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownFormat, format)
	}
}

// logExportError records the fields of a malformed document error so the
// operator can tell which key the cluster tooling did not provide.
func logExportError(err error) {
	var missing *exporter.MissingKeyError
	var unexpected *exporter.UnexpectedTypeError
	switch {
	case errors.As(err, &missing):
		app.Log.Error("corosync configuration is missing a key",
			zap.String("key", missing.Key),
			zap.String("context", missing.DataDesc),
		)
	case errors.As(err, &unexpected):
		app.Log.Error("corosync configuration holds an unexpected value",
			zap.String("key", unexpected.Key),
			zap.String("context", unexpected.DataDesc),
			zap.String("expected", unexpected.Expected),
			zap.String("actual", unexpected.Actual),
		)
	}
}
