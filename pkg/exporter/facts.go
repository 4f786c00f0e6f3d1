// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exporter

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/luxfi/hacluster/pkg/document"
)

// ClusterFacts are the facts of a host that is a member of a cluster.
type ClusterFacts struct {
	ClusterPresent bool           `json:"ha_cluster_cluster_present" yaml:"ha_cluster_cluster_present"`
	StartOnBoot    bool           `json:"ha_cluster_start_on_boot" yaml:"ha_cluster_start_on_boot"`
	ClusterName    string         `json:"ha_cluster_cluster_name" yaml:"ha_cluster_cluster_name"`
	Transport      Transport      `json:"ha_cluster_transport" yaml:"ha_cluster_transport"`
	Totem          OptionsSection `json:"ha_cluster_totem" yaml:"ha_cluster_totem"`
	Quorum         OptionsSection `json:"ha_cluster_quorum" yaml:"ha_cluster_quorum"`
	NodeOptions    []NodeOptions  `json:"ha_cluster_node_options" yaml:"ha_cluster_node_options"`
}

// AbsentClusterFacts are the facts of a host with no cluster configured.
type AbsentClusterFacts struct {
	ClusterPresent bool `json:"ha_cluster_cluster_present" yaml:"ha_cluster_cluster_present"`
	StartOnBoot    bool `json:"ha_cluster_start_on_boot" yaml:"ha_cluster_start_on_boot"`
}

// ClusterAbsentFacts returns the facts of a host with no cluster configured.
func ClusterAbsentFacts(startOnBoot bool) *AbsentClusterFacts {
	return &AbsentClusterFacts{StartOnBoot: startOnBoot}
}

// Export runs all section exporters against doc and assembles the cluster
// facts. The first failing section aborts the export. log may be nil.
func Export(log *zap.Logger, doc *document.Object, pcsAddresses map[string]string, startOnBoot bool) (*ClusterFacts, error) {
	if log == nil {
		log = zap.NewNop()
	}
	facts := &ClusterFacts{
		ClusterPresent: true,
		StartOnBoot:    startOnBoot,
	}
	var err error

	if facts.ClusterName, err = ExportCorosyncClusterName(doc); err != nil {
		return nil, fmt.Errorf("failed to export cluster name: %w", err)
	}
	log.Debug("exported cluster name", zap.String("cluster", facts.ClusterName))

	if facts.Transport, err = ExportCorosyncTransport(doc); err != nil {
		return nil, fmt.Errorf("failed to export transport: %w", err)
	}
	log.Debug("exported transport",
		zap.String("type", facts.Transport.Type),
		zap.Int("links", len(facts.Transport.Links)),
	)

	if facts.Totem, err = ExportCorosyncTotem(doc); err != nil {
		return nil, fmt.Errorf("failed to export totem: %w", err)
	}
	log.Debug("exported totem", zap.Int("options", len(facts.Totem.Options)))

	if facts.Quorum, err = ExportCorosyncQuorum(doc); err != nil {
		return nil, fmt.Errorf("failed to export quorum: %w", err)
	}
	log.Debug("exported quorum", zap.Int("options", len(facts.Quorum.Options)))

	if facts.NodeOptions, err = ExportClusterNodes(doc, pcsAddresses); err != nil {
		return nil, fmt.Errorf("failed to export cluster nodes: %w", err)
	}
	log.Debug("exported cluster nodes", zap.Int("nodes", len(facts.NodeOptions)))

	return facts, nil
}
