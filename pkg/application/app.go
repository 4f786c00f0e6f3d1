// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/luxfi/hacluster/pkg/config"
	"github.com/luxfi/hacluster/pkg/document"
)

type HACluster struct {
	Log  *zap.Logger
	Conf *config.Config
}

func New() *HACluster {
	return &HACluster{}
}

func (app *HACluster) Setup(log *zap.Logger, conf *config.Config) {
	app.Log = log
	app.Conf = conf
}

// ClusterInputs are the documents the facts are exported from.
type ClusterInputs struct {
	CorosyncConf *document.Object
	PcsAddresses map[string]string
}

// LoadClusterInputs reads the corosync configuration document and the pcs
// address map concurrently. An empty pcsAddressesPath yields no addresses.
func (app *HACluster) LoadClusterInputs(ctx context.Context, corosyncConfPath, pcsAddressesPath string) (*ClusterInputs, error) {
	var inputs ClusterInputs
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := document.ParseFile(corosyncConfPath)
		if err != nil {
			return err
		}
		inputs.CorosyncConf = doc
		return nil
	})
	errGroup.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		addrs, err := document.ReadAddressMap(pcsAddressesPath)
		if err != nil {
			return err
		}
		inputs.PcsAddresses = addrs
		return nil
	})

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	app.logger().Debug("loaded cluster inputs",
		zap.String("corosync-conf", corosyncConfPath),
		zap.Int("corosync-keys", inputs.CorosyncConf.Len()),
		zap.Int("pcs-addresses", len(inputs.PcsAddresses)),
	)
	return &inputs, nil
}

func (app *HACluster) logger() *zap.Logger {
	if app.Log == nil {
		return zap.NewNop()
	}
	return app.Log
}
