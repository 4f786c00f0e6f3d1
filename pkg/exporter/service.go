// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exporter

// ExportStartOnBoot reports whether the cluster starts on boot, which is
// the case when either corosync or pacemaker is enabled.
func ExportStartOnBoot(corosyncEnabled, pacemakerEnabled bool) bool {
	return corosyncEnabled || pacemakerEnabled
}
