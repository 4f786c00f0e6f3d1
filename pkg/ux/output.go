// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

// UserLog separates output meant for the user from application logs.
type UserLog struct {
	log    *zap.Logger
	writer io.Writer
}

func New(log *zap.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserLog{
		log:    log,
		writer: userwriter,
	}
}

// PrintToUser prints msg directly to the user writer (command output)
// Does NOT log to avoid duplication - logs go to stderr separately
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
}

// Write writes raw command output, e.g. encoded facts.
func (ul *UserLog) Write(p []byte) (int, error) {
	return ul.writer.Write(p)
}

// GreenCheckmarkToUser prints a success message to the user
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✓ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Info(formattedMsg)
}

// PrintTable renders rows under header to the user writer.
func (ul *UserLog) PrintTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(ul.writer)
	anyHeader := make([]any, len(header))
	for i, h := range header {
		anyHeader[i] = h
	}
	table.Header(anyHeader...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
