package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/pipes/host"
	"github.com/npillmayer/pipes/pipe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIntp(t *testing.T) *Intp {
	t.Helper()
	conf := host.DefaultConfig()
	conf.Width, conf.Height = 400, 300
	app, err := host.New(conf, nil)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return &Intp{app: app}
}

func TestExecuteUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.cli")
	defer teardown()
	intp := testIntp(t)
	assert.Error(t, intp.Execute("bogus 1 2"))
	err := intp.Execute("click 1")
	assert.True(t, errors.Is(err, errUsage), "wrong argument count must report usage")
	assert.Error(t, intp.Execute("click a b"))
	assert.NoError(t, intp.Execute("   "))
}

func TestExecutePlayback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.cli")
	defer teardown()
	intp := testIntp(t)
	require.NoError(t, intp.Execute("click 200 150"))
	require.Len(t, intp.app.Pipes(), 1)
	p := intp.app.Pipes()[0]
	assert.Error(t, intp.Execute("toggle 0"), "no session yet")
	require.NoError(t, intp.Execute("animate 0"))
	require.True(t, p.Animating())
	require.NoError(t, intp.Execute("tick 10"))
	assert.InDelta(t, 10*pipe.DefaultFormulaRate, p.Session().T(), 1e-9)
	require.NoError(t, intp.Execute("scrub 0 0.5"))
	assert.Equal(t, pipe.Stopped, p.Session().State())
	assert.True(t, p.Session().Pen().Near(p.Triple().Quadratic().At(0.5), 1e-9))
	require.NoError(t, intp.Execute("mode 0"))
	assert.Equal(t, pipe.TableMode, p.Session().Mode())
	require.NoError(t, intp.Execute("destroy 0"))
	assert.False(t, p.Animating())
	assert.Error(t, intp.Execute("animate 7"))
	assert.NoError(t, intp.Execute("list"))
}

func TestExecuteDragAndSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pipes.cli")
	defer teardown()
	intp := testIntp(t)
	require.NoError(t, intp.Execute("click 200 150"))
	p := intp.app.Pipes()[0]
	end := p.EndPoint()
	require.NoError(t, intp.Execute("drag 260 180 280 200"))
	assert.True(t, p.EndPoint().Near(end.Shifted(20+20i), 1e-9))
	assert.Error(t, intp.Execute("drag 5 5 10 10"), "nothing to drag in empty space")
	dir := t.TempDir()
	require.NoError(t, intp.Execute("png "+filepath.Join(dir, "stage.png")))
	require.NoError(t, intp.Execute("thumb "+filepath.Join(dir, "thumb.png")+" 40 30"))
	for _, name := range []string{"stage.png", "thumb.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
	assert.Error(t, intp.Execute("thumb x.png 0 30"))
}
