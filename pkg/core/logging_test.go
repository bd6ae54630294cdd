package core_test

import (
	"testing"

	"github.com/collext/go-sdk/pkg/core"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { core.SetLogger(nil) })

	log, hook := test.NewNullLogger()
	core.SetLogger(log)

	core.OpLogger("to_table").WithField("record", 2).Warn("record keys differ from columns")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "to_table", entry.Data["operation"])
	assert.Equal(t, 2, entry.Data["record"])
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	log, _ := test.NewNullLogger()
	core.SetLogger(log)
	core.SetLogger(nil)

	l, ok := core.Logger().(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}
