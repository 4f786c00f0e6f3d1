// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ansible writes exported cluster facts and inventories for Ansible.
package ansible

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/luxfi/hacluster/pkg/constants"
	"github.com/luxfi/hacluster/pkg/exporter"
)

var (
	ErrNoNodeAddress         = errors.New("node has no address to reach it by")
	ErrInvalidInventoryField = errors.New("inventory field must be non-empty and contain no whitespace")
)

// Host is one line of an Ansible host inventory.
type Host struct {
	NodeName string
	IP       string
	SSHUser  string
}

// GetAnsibleInventoryRecord renders the host as an inventory line.
func (h *Host) GetAnsibleInventoryRecord() string {
	return strings.Join([]string{
		h.NodeName,
		"ansible_host=" + h.IP,
		"ansible_user=" + h.SSHUser,
	}, " ")
}

// WriteFactsFile writes facts as YAML group variables applying to all hosts
// of the inventory in inventoryDirPath, and returns the written path.
func WriteFactsFile(inventoryDirPath string, facts any) (string, error) {
	varsDir := filepath.Join(inventoryDirPath, constants.AnsibleGroupVarsDir, constants.AnsibleAllGroup)
	if err := os.MkdirAll(varsDir, constants.DefaultPerms755); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(facts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal facts: %w", err)
	}
	factsPath := filepath.Join(varsDir, constants.AnsibleFactsFileName)
	if err := os.WriteFile(factsPath, out, constants.WriteReadReadPerms); err != nil {
		return "", err
	}
	return factsPath, nil
}

// CreateClusterInventory writes the inventory file with one host per cluster
// node, replacing any previous inventory. A node is reached by its pcs
// address, falling back to its first corosync address. Nothing is written
// unless every node yields a host.
func CreateClusterInventory(inventoryDirPath string, nodes []exporter.NodeOptions, sshUser string) error {
	var records strings.Builder
	for _, node := range nodes {
		host, err := hostFromNode(node, sshUser)
		if err != nil {
			return err
		}
		records.WriteString(host.GetAnsibleInventoryRecord() + "\n")
	}
	if err := os.MkdirAll(inventoryDirPath, constants.DefaultPerms755); err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(inventoryDirPath, constants.AnsibleHostInventoryFileName), []byte(records.String()))
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(constants.WriteReadReadPerms); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func hostFromNode(node exporter.NodeOptions, sshUser string) (*Host, error) {
	host := &Host{NodeName: node.NodeName, SSHUser: sshUser}
	switch {
	case node.PcsAddress != nil && *node.PcsAddress != "":
		host.IP = *node.PcsAddress
	case len(node.CorosyncAddresses) > 0:
		host.IP = node.CorosyncAddresses[0]
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoNodeAddress, node.NodeName)
	}
	for _, field := range []struct{ name, value string }{
		{"node name", host.NodeName},
		{"ansible_host", host.IP},
		{"ansible_user", host.SSHUser},
	} {
		if field.value == "" || strings.ContainsFunc(field.value, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %s %q of node %q", ErrInvalidInventoryField, field.name, field.value, node.NodeName)
		}
	}
	return host, nil
}

// GetInventoryFromAnsibleInventoryFile reads hosts from an Ansible inventory file.
func GetInventoryFromAnsibleInventoryFile(inventoryDirPath string) ([]*Host, error) {
	inventory := []*Host{}
	inventoryHostsFile := filepath.Join(inventoryDirPath, constants.AnsibleHostInventoryFileName)
	file, err := os.Open(inventoryHostsFile) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		// host alias is first element in each line of host inventory file
		host := &Host{NodeName: fields[0]}
		for _, field := range fields[1:] {
			key, value, ok := strings.Cut(field, "=")
			if !ok {
				return nil, fmt.Errorf("malformed inventory entry %q for host %s", field, host.NodeName)
			}
			switch key {
			case "ansible_host":
				host.IP = value
			case "ansible_user":
				host.SSHUser = value
			}
		}
		inventory = append(inventory, host)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inventory, nil
}
