package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pianostudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "single page", args: []string{"--page", "1", "--total", "1"}, want: "[1]"},
		{name: "first of many", args: []string{"--page", "1", "--total", "20"}, want: "[1] 2 3 4 5 … 20 › »"},
		{name: "middle", args: []string{"--page", "10", "--total", "20"}, want: "« ‹ 1 … 8 9 [10] 11 12 … 20 › »"},
		{name: "last", args: []string{"--page", "20", "--total", "20"}, want: "« ‹ 1 … 16 17 18 19 [20]"},
		{name: "wide window over few pages", args: []string{"--page", "3", "--total", "4", "--size", "10"}, want: "« ‹ 1 2 [3] 4 › »"},
		{name: "tiny size is widened to three", args: []string{"--page", "5", "--total", "9", "--size", "1"}, want: "« ‹ 1 … 4 [5] 6 … 9 › »"},
		{name: "negative size is widened to three", args: []string{"--page", "5", "--total", "9", "--size=-1"}, want: "« ‹ 1 … 4 [5] 6 … 9 › »"},
		{name: "zero size is widened to three", args: []string{"--page", "1", "--total", "2", "--size", "0"}, want: "[1] 2 › »"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs(append([]string{"window"}, tt.args...))

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, strings.TrimSpace(out.String()))
		})
	}
}

func TestWindowCmd_JSON(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"window", "--page", "2", "--total", "10", "--json"})
	require.NoError(t, cmd.Execute())

	var w domain.PageWindow
	require.NoError(t, json.Unmarshal(out.Bytes(), &w))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)
	assert.False(t, w.ShowFirst)
	assert.True(t, w.ShowRightEllipsis)
	assert.True(t, w.ShowLast)
}

func TestWindowCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "page past total", args: []string{"--page", "5", "--total", "4"}, wantErr: "page must be between 1 and 4"},
		{name: "zero page", args: []string{"--page", "0", "--total", "4"}, wantErr: "page must be between 1 and 4"},
		{name: "zero total", args: []string{"--total", "0"}, wantErr: "total must be >= 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(append([]string{"window"}, tt.args...))

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
