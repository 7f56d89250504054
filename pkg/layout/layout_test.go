package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SectionOrder(t *testing.T) {
	l := Default()

	var names []string
	for _, s := range l.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"F2FS", "UFS", "UFS err_stats", "UFS io_stats", "UFS req_stats", "UFS health"}, names)
}

func TestDefault_Properties(t *testing.T) {
	f2fs := Default().Sections[0]
	require.Len(t, f2fs.Sources, 4)

	assert.Equal(t, KindProperty, f2fs.Sources[2].Kind)
	assert.Equal(t, "ro.boottime.init.fsck.data", f2fs.Sources[2].Key)
	assert.Equal(t, "F2FS - checkpoint=disable time (ms)", f2fs.Sources[3].Label)
	assert.Equal(t, "ro.boottime.init.mount.data", f2fs.Sources[3].Key)
}

func TestDefault_ErrStats(t *testing.T) {
	s := Default().Sections[2]
	require.NotNil(t, s.ErrStats)
	assert.True(t, s.Heading)
	assert.Equal(t, "/dev/sys/block/bootdevice/err_stats/", s.ErrStats.Dir)
	assert.Equal(t, "ro.boot.bootdevice", s.ErrStats.DeviceProperty)
}

func TestDefault_TableCellPaths(t *testing.T) {
	io := Default().Sections[3].Table
	require.NotNil(t, io)
	require.Len(t, io.Columns, 6)
	require.Len(t, io.Rows, 3)
	assert.Equal(t, "\t\t", io.Indent)
	assert.Equal(t, "Started: \t", io.Rows[0].Label)
	assert.Equal(t, "/dev/sys/block/bootdevice/io_stats/rbyte_complete", io.CellPath(io.Rows[1], io.Columns[1]))

	req := Default().Sections[4].Table
	require.NotNil(t, req)
	require.Len(t, req.Rows, 4)
	assert.Equal(t, "Min:\t", req.Rows[0].Label)
	assert.Equal(t, "/dev/sys/block/bootdevice/req_stats/discard_sum", req.CellPath(req.Rows[3], req.Columns[5]))
}

func TestDefault_HealthDumpsAreUnlabeled(t *testing.T) {
	health := Default().Sections[5]
	require.Len(t, health.Sources, 4)
	for _, src := range health.Sources {
		assert.Equal(t, KindDump, src.Kind)
		assert.Empty(t, src.Label)
	}
	assert.Equal(t, "/dev/sys/block/bootdevice/health_descriptor/eol_info", health.Sources[2].Path)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "sections: []"},
		{"no name", "sections:\n  - sources:\n      - {kind: dump, path: /a}"},
		{"no body", "sections:\n  - name: x"},
		{"two bodies", "sections:\n  - name: x\n    sources:\n      - {kind: dump, path: /a}\n    err_stats: {dir: /d}"},
		{"unknown kind", "sections:\n  - name: x\n    sources:\n      - {kind: blob, path: /a}"},
		{"dump without path", "sections:\n  - name: x\n    sources:\n      - {kind: dump, label: a}"},
		{"property without key", "sections:\n  - name: x\n    sources:\n      - {kind: property, label: a}"},
		{"empty table", "sections:\n  - name: x\n    table: {base: /b}"},
		{"bad yaml", "sections: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
