// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package exporter converts a corosync configuration document into the
// facts consumed by the ha_cluster Ansible role.
//
// Every exporter is a pure function of its inputs. Required keys are
// checked in a fixed order and the first missing one aborts the export
// with a *MissingKeyError. Optional output fields are only set when their
// source is non-empty, so they are left out when serialized.
package exporter

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/luxfi/hacluster/pkg/document"
)

// Transport holds the ha_cluster_transport facts.
type Transport struct {
	Type        string        `json:"type" yaml:"type"`
	Options     []NameValue   `json:"options,omitempty" yaml:"options,omitempty"`
	Links       [][]NameValue `json:"links,omitempty" yaml:"links,omitempty"`
	Compression []NameValue   `json:"compression,omitempty" yaml:"compression,omitempty"`
	Crypto      []NameValue   `json:"crypto,omitempty" yaml:"crypto,omitempty"`
}

// OptionsSection holds the facts of a section made of plain options only,
// i.e. ha_cluster_totem and ha_cluster_quorum.
type OptionsSection struct {
	Options []NameValue `json:"options,omitempty" yaml:"options,omitempty"`
}

// ExportCorosyncClusterName returns the cluster name.
func ExportCorosyncClusterName(doc *document.Object) (string, error) {
	return requireString(doc, doc, "cluster_name", CorosyncConfDesc)
}

// ExportCorosyncTransport exports the transport type together with its
// transport, link, compression and crypto options.
func ExportCorosyncTransport(doc *document.Object) (Transport, error) {
	transportType, err := requireString(doc, doc, "transport", CorosyncConfDesc)
	if err != nil {
		return Transport{}, err
	}
	transportOpts, err := requireObject(doc, doc, "transport_options", CorosyncConfDesc)
	if err != nil {
		return Transport{}, err
	}
	linksOpts, err := requireObject(doc, doc, "links_options", CorosyncConfDesc)
	if err != nil {
		return Transport{}, err
	}
	compressionOpts, err := requireObject(doc, doc, "compression_options", CorosyncConfDesc)
	if err != nil {
		return Transport{}, err
	}
	cryptoOpts, err := requireObject(doc, doc, "crypto_options", CorosyncConfDesc)
	if err != nil {
		return Transport{}, err
	}

	result := Transport{Type: cases.Lower(language.Und).String(transportType)}

	if result.Options, err = nonEmptyNVList(doc, transportOpts, "transport_options"); err != nil {
		return Transport{}, err
	}
	if linksOpts.Len() > 0 {
		links := make([][]NameValue, 0, linksOpts.Len())
		for _, link := range linksOpts.Entries() {
			linkDesc := fmt.Sprintf("options of link %q in %s", link.Key, CorosyncConfDesc)
			opts, ok := link.Value.(*document.Object)
			if !ok {
				return Transport{}, unexpectedType(doc, link.Key, "links_options in "+CorosyncConfDesc, "mapping", link.Value)
			}
			nv, err := ToNVList(doc, opts, linkDesc)
			if err != nil {
				return Transport{}, err
			}
			links = append(links, nv)
		}
		result.Links = links
	}
	if result.Compression, err = nonEmptyNVList(doc, compressionOpts, "compression_options"); err != nil {
		return Transport{}, err
	}
	if result.Crypto, err = nonEmptyNVList(doc, cryptoOpts, "crypto_options"); err != nil {
		return Transport{}, err
	}
	return result, nil
}

// ExportCorosyncTotem exports the totem options.
func ExportCorosyncTotem(doc *document.Object) (OptionsSection, error) {
	return exportOptionsSection(doc, "totem_options")
}

// ExportCorosyncQuorum exports the quorum options.
func ExportCorosyncQuorum(doc *document.Object) (OptionsSection, error) {
	return exportOptionsSection(doc, "quorum_options")
}

func exportOptionsSection(doc *document.Object, key string) (OptionsSection, error) {
	opts, err := requireObject(doc, doc, key, CorosyncConfDesc)
	if err != nil {
		return OptionsSection{}, err
	}
	nv, err := nonEmptyNVList(doc, opts, key)
	if err != nil {
		return OptionsSection{}, err
	}
	return OptionsSection{Options: nv}, nil
}

// nonEmptyNVList returns nil for an empty mapping so the field is omitted.
func nonEmptyNVList(doc, opts *document.Object, key string) ([]NameValue, error) {
	if opts.Len() == 0 {
		return nil, nil
	}
	return ToNVList(doc, opts, key+" in "+CorosyncConfDesc)
}
