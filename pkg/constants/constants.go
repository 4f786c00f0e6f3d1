// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".hacluster"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "yaml"
	EnvPrefix             = "HACLUSTER"

	// Ansible
	AnsibleHostInventoryFileName = "hosts"
	AnsibleGroupVarsDir          = "group_vars"
	AnsibleAllGroup              = "all"
	AnsibleFactsFileName         = "ha_cluster.yml"
	DefaultSSHUser               = "root"

	// Output formats
	FormatYAML = "yaml"
	FormatJSON = "json"

	// Config keys, shared with flag names
	ConfigCorosyncConf     = "corosync-conf"
	ConfigPcsAddresses     = "pcs-addresses"
	ConfigFormat           = "format"
	ConfigOutput           = "output"
	ConfigInventoryDir     = "inventory-dir"
	ConfigSSHUser          = "ssh-user"
	ConfigCorosyncEnabled  = "corosync-enabled"
	ConfigPacemakerEnabled = "pacemaker-enabled"
	ConfigClusterAbsent    = "cluster-absent"
)
