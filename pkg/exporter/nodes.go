// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exporter

import "github.com/luxfi/hacluster/pkg/document"

// NodeOptions is one entry of ha_cluster_node_options.
type NodeOptions struct {
	NodeName          string   `json:"node_name" yaml:"node_name"`
	CorosyncAddresses []string `json:"corosync_addresses" yaml:"corosync_addresses"`
	// PcsAddress is set only when the node is known to pcs.
	PcsAddress *string `json:"pcs_address,omitempty" yaml:"pcs_address,omitempty"`
}

// ExportClusterNodes exports cluster nodes and their corosync addresses in
// document order. pcsAddresses maps node names to the address pcs uses to
// reach them; nodes missing from it get no pcs address.
func ExportClusterNodes(doc *document.Object, pcsAddresses map[string]string) ([]NodeOptions, error) {
	nodes, err := requireList(doc, doc, "nodes", CorosyncConfDesc)
	if err != nil {
		return nil, err
	}

	result := make([]NodeOptions, 0, len(nodes))
	for i, n := range nodes {
		desc := nodeDesc(i)
		node, ok := n.(*document.Object)
		if !ok {
			return nil, unexpectedType(doc, "nodes", desc, "mapping", n)
		}
		name, err := requireString(doc, node, "name", desc)
		if err != nil {
			return nil, err
		}
		addrs, err := requireList(doc, node, "addrs", desc)
		if err != nil {
			return nil, err
		}

		record := NodeOptions{
			NodeName:          name,
			CorosyncAddresses: make([]string, 0, len(addrs)),
		}
		for _, a := range addrs {
			addrEntry, ok := a.(*document.Object)
			if !ok {
				return nil, unexpectedType(doc, "addrs", desc, "mapping", a)
			}
			// link is only checked for presence
			if _, err := requireKey(doc, addrEntry, "link", desc); err != nil {
				return nil, err
			}
			addr, err := requireString(doc, addrEntry, "addr", desc)
			if err != nil {
				return nil, err
			}
			record.CorosyncAddresses = append(record.CorosyncAddresses, addr)
		}

		if pcsAddr, ok := pcsAddresses[name]; ok {
			record.PcsAddress = &pcsAddr
		}
		result = append(result, record)
	}
	return result, nil
}
