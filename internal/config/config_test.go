package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Andres-Briones/NablaPoker/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("NABLA_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("NABLA_TABLE_BIG_BLIND", "20")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(":8080", cfg.ListenAddr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("Test Site", cfg.Site.Name)
	a.Equal("/tmp/hands", cfg.HandHistory.Path)
	a.Equal(5, cfg.Table.SmallBlind)

	// the environment overrides the file
	a.Equal(20, cfg.Table.BigBlind)

	// defaults fill in what neither provides
	a.Equal("NablaPoker", cfg.Site.Network)
	a.Equal(6, cfg.Table.Size)

	// ensure that it's only loaded once
	_ = os.Setenv("NABLA_TABLE_BIG_BLIND", "40")
	// ensure we aren't using a pointer
	cfg.Table.BigBlind = 0
	cfg = Instance()
	a.Equal(20, cfg.Table.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("NABLA_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(":5000", cfg.ListenAddr)
	a.Equal("cash game", cfg.Table.Name)
	a.Equal(1, cfg.Table.SmallBlind)
	a.Equal(2, cfg.Table.BigBlind)
}
