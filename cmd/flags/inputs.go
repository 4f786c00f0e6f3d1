// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flags

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/luxfi/hacluster/pkg/application"
	"github.com/luxfi/hacluster/pkg/constants"
)

var ErrNoCorosyncConf = errors.New("no corosync configuration given, use --" + constants.ConfigCorosyncConf + " or set it in the config file")

// AddClusterInputFlagsToCmd adds the flags naming the cluster input
// documents. Before the command runs, all of its flags are bound to the
// application config so config file and environment values fill in unset
// flags.
func AddClusterInputFlagsToCmd(cmd *cobra.Command, app *application.HACluster) {
	cmd.Flags().String(constants.ConfigCorosyncConf, "", "corosync configuration document (JSON or YAML)")
	cmd.Flags().String(constants.ConfigPcsAddresses, "", "map of node names to pcs addresses (JSON or YAML)")

	bindPreRun := func(cmd *cobra.Command, _ []string) error {
		return app.Conf.BindFlags(cmd.Flags())
	}

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return bindPreRun(cmd, args)
	}
}

// ValidateCorosyncConf returns the configured corosync document path.
func ValidateCorosyncConf(app *application.HACluster) (string, error) {
	path := app.Conf.GetConfigStringValue(constants.ConfigCorosyncConf)
	if path == "" {
		return "", ErrNoCorosyncConf
	}
	return path, nil
}
