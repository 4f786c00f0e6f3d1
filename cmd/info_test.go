// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/luxfi/hacluster/cmd/flags"
	"github.com/luxfi/hacluster/pkg/exporter"
)

const corosyncConfJSON = `{
  "cluster_name": "my-cluster",
  "transport": "KNET",
  "transport_options": {},
  "links_options": {"0": {"linknumber": "0"}},
  "compression_options": {},
  "crypto_options": {"cipher": "aes256"},
  "totem_options": {},
  "quorum_options": {"wait_for_all": "1"},
  "nodes": [
    {"name": "node1", "nodeid": 1, "addrs": [{"addr": "10.0.0.1", "link": "0", "type": "IPv4"}]},
    {"name": "node2", "nodeid": 2, "addrs": [{"addr": "10.0.0.2", "link": "0", "type": "IPv4"}]}
  ]
}`

func run(args ...string) (string, string, error) {
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	gomega.Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(gomega.Succeed())
	gomega.Expect(os.WriteFile(path, []byte(content), 0o600)).To(gomega.Succeed())
	return path
}

var _ = ginkgo.Describe("hacluster info", func() {
	var (
		dir          string
		corosyncPath string
		pcsPath      string
	)

	ginkgo.BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "hacluster")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ginkgo.DeferCleanup(os.RemoveAll, dir)

		// keep the user's config file out of the way
		ginkgo.DeferCleanup(os.Setenv, "HOME", os.Getenv("HOME"))
		gomega.Expect(os.Setenv("HOME", dir)).To(gomega.Succeed())

		corosyncPath = writeFile(dir, "corosync.json", corosyncConfJSON)
		pcsPath = writeFile(dir, "pcs.json", `{"node1": "node1.example.com"}`)
	})

	ginkgo.Context("export", func() {
		ginkgo.It("prints the facts as YAML", func() {
			out, _, err := run("info", "export", "--corosync-conf", corosyncPath, "--pcs-addresses", pcsPath, "--pacemaker-enabled")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var facts map[string]any
			gomega.Expect(yaml.Unmarshal([]byte(out), &facts)).To(gomega.Succeed())
			gomega.Expect(facts).To(gomega.HaveKeyWithValue("ha_cluster_cluster_present", true))
			gomega.Expect(facts).To(gomega.HaveKeyWithValue("ha_cluster_start_on_boot", true))
			gomega.Expect(facts).To(gomega.HaveKeyWithValue("ha_cluster_cluster_name", "my-cluster"))
			gomega.Expect(facts).To(gomega.HaveKeyWithValue("ha_cluster_totem", map[string]any{}))

			nodes := facts["ha_cluster_node_options"].([]any)
			gomega.Expect(nodes).To(gomega.HaveLen(2))
			gomega.Expect(nodes[0]).To(gomega.HaveKeyWithValue("pcs_address", "node1.example.com"))
			gomega.Expect(nodes[1]).NotTo(gomega.HaveKey("pcs_address"))
		})

		ginkgo.It("prints the facts as JSON", func() {
			out, _, err := run("info", "export", "--corosync-conf", corosyncPath, "--format", "json")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var facts exporter.ClusterFacts
			gomega.Expect(json.Unmarshal([]byte(out), &facts)).To(gomega.Succeed())
			gomega.Expect(facts.Transport.Type).To(gomega.Equal("knet"))
			gomega.Expect(facts.Transport.Links).To(gomega.Equal([][]exporter.NameValue{{{Name: "linknumber", Value: "0"}}}))
			gomega.Expect(facts.Quorum.Options).To(gomega.Equal([]exporter.NameValue{{Name: "wait_for_all", Value: "1"}}))
			gomega.Expect(facts.StartOnBoot).To(gomega.BeFalse())
		})

		ginkgo.It("writes facts to a file", func() {
			outputPath := filepath.Join(dir, "facts.yml")
			out, _, err := run("info", "export", "--corosync-conf", corosyncPath, "-o", outputPath)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.ContainSubstring("Facts written to " + outputPath))
			gomega.Expect(outputPath).To(gomega.BeAnExistingFile())
		})

		ginkgo.It("writes the facts file and inventory", func() {
			inventoryDir := filepath.Join(dir, "inventory")
			_, _, err := run("info", "export", "--corosync-conf", corosyncPath, "--pcs-addresses", pcsPath,
				"--inventory-dir", inventoryDir, "--ssh-user", "admin")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(filepath.Join(inventoryDir, "group_vars", "all", "ha_cluster.yml")).To(gomega.BeAnExistingFile())
			hosts, err := os.ReadFile(filepath.Join(inventoryDir, "hosts"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(string(hosts)).To(gomega.Equal(
				"node1 ansible_host=node1.example.com ansible_user=admin\n" +
					"node2 ansible_host=10.0.0.2 ansible_user=admin\n"))
		})

		ginkgo.It("replaces the inventory on rerun", func() {
			inventoryDir := filepath.Join(dir, "inventory")
			args := []string{"info", "export", "--corosync-conf", corosyncPath, "--inventory-dir", inventoryDir}
			_, _, err := run(args...)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			first, err := os.ReadFile(filepath.Join(inventoryDir, "hosts"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, _, err = run(args...)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(filepath.Join(inventoryDir, "hosts")).To(gomega.BeARegularFile())
			second, err := os.ReadFile(filepath.Join(inventoryDir, "hosts"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(second).To(gomega.Equal(first))
		})

		ginkgo.It("exports cluster absent facts", func() {
			out, _, err := run("info", "export", "--cluster-absent", "--corosync-enabled")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("ha_cluster_cluster_present: false\nha_cluster_start_on_boot: true\n"))
		})

		ginkgo.It("reports the missing key with its node index", func() {
			broken := writeFile(dir, "broken.json", `{
  "cluster_name": "c", "transport": "knet", "transport_options": {}, "links_options": {},
  "compression_options": {}, "crypto_options": {}, "totem_options": {}, "quorum_options": {},
  "nodes": [{"name": "node1", "addrs": []}, {"name": "node2"}]
}`)
			out, errOut, err := run("info", "export", "--corosync-conf", broken)
			var missing *exporter.MissingKeyError
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring(`missing key "addrs" in corosync configuration for node on index 1`)))
			gomega.Expect(errors.As(err, &missing)).To(gomega.BeTrue())
			gomega.Expect(missing.Key).To(gomega.Equal("addrs"))
			gomega.Expect(out).To(gomega.BeEmpty())
			gomega.Expect(errOut).To(gomega.ContainSubstring("corosync configuration is missing a key"))
		})

		ginkgo.It("requires the corosync configuration", func() {
			_, _, err := run("info", "export")
			gomega.Expect(err).To(gomega.MatchError(flags.ErrNoCorosyncConf))
		})

		ginkgo.It("rejects an unknown format", func() {
			_, _, err := run("info", "export", "--corosync-conf", corosyncPath, "--format", "toml")
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("unknown output format")))
		})

		ginkgo.It("reads inputs from the config file", func() {
			writeFile(dir, filepath.Join(".hacluster", "config.yaml"),
				"corosync-conf: "+corosyncPath+"\npcs-addresses: "+pcsPath+"\nformat: json\n")
			out, _, err := run("info", "export")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var facts exporter.ClusterFacts
			gomega.Expect(json.Unmarshal([]byte(out), &facts)).To(gomega.Succeed())
			gomega.Expect(facts.NodeOptions[0].PcsAddress).NotTo(gomega.BeNil())
			gomega.Expect(*facts.NodeOptions[0].PcsAddress).To(gomega.Equal("node1.example.com"))
		})

		ginkgo.It("rejects an invalid log level", func() {
			_, _, err := run("--log-level", "loud", "info", "export", "--cluster-absent")
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("invalid log level")))
		})
	})

	ginkgo.Context("nodes", func() {
		ginkgo.It("lists nodes in corosync order", func() {
			out, _, err := run("info", "nodes", "--corosync-conf", corosyncPath, "--pcs-addresses", pcsPath)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.ContainSubstring("node1.example.com"))
			gomega.Expect(out).To(gomega.ContainSubstring("10.0.0.2"))
			gomega.Expect(bytes.Index([]byte(out), []byte("node1"))).To(gomega.BeNumerically("<", bytes.Index([]byte(out), []byte("node2"))))
		})

		ginkgo.It("shows ansible hosts from an inventory", func() {
			inventoryDir := filepath.Join(dir, "inventory")
			writeFile(inventoryDir, "hosts", "node1 ansible_host=192.168.10.1 ansible_user=root\n")
			out, _, err := run("info", "nodes", "--corosync-conf", corosyncPath, "--inventory-dir", inventoryDir)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.ContainSubstring("192.168.10.1"))
		})

		ginkgo.It("accepts an inventory directory without an inventory", func() {
			out, _, err := run("info", "nodes", "--corosync-conf", corosyncPath, "--inventory-dir", filepath.Join(dir, "none"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.ContainSubstring("10.0.0.2"))
		})

		ginkgo.It("reports an empty cluster", func() {
			empty := writeFile(dir, "empty.json", `{"nodes": []}`)
			out, _, err := run("info", "nodes", "--corosync-conf", empty)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(out).To(gomega.Equal("No cluster nodes found\n"))
		})
	})
})
