package main

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danpilch/storagedump/pkg/collectors"
	"github.com/danpilch/storagedump/pkg/props"
	"github.com/danpilch/storagedump/pkg/sysfs"
)

func TestRootCmd_IgnoresArguments(t *testing.T) {
	logger, _ := test.NewNullLogger()
	env := collectors.Env{
		Files:  sysfs.New(fstest.MapFS{"sys/block/sda/device/rev": {Data: []byte("0300\n")}}),
		Props:  props.Map{},
		Logger: logger,
	}

	cmd := newRootCmd(logger, env)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--unknown", "extra"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "------ UFS rev (/sys/block/sda/device/rev) ------\n0300\n")
	assert.Contains(t, out.String(), "\n------ UFS health ------\n")
}
