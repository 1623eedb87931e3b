package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nickng/migo/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCFSMs(t *testing.T) {
	sys := NewCFSMs(5)
	require.Len(t, sys.Philosophers, 5)
	assert.Equal(t, "table", sys.Table.Comment)
	ids := map[int]bool{sys.Table.ID: true}
	for i, m := range sys.Philosophers {
		assert.False(t, m.IsEmpty(), "philosopher%d", i+1)
		assert.NotNil(t, m.Start)
		ids[m.ID] = true
	}
	assert.Len(t, ids, 6, "machine IDs are distinct")
	assert.False(t, sys.Table.IsEmpty())

	var buf bytes.Buffer
	n, err := sys.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.NotZero(t, n)
}

func TestPrintSummary(t *testing.T) {
	sys := NewCFSMs(3)
	var buf bytes.Buffer
	sys.PrintSummary(&buf)
	out := buf.String()
	assert.Contains(t, out, "Total of 4 CFSMs")
	assert.Contains(t, out, "= table\n")
	assert.Contains(t, out, "= philosopher3\n")
}

func TestNewMigo(t *testing.T) {
	prog := NewMigo(4)
	require.Len(t, prog.Funcs, 3)
	names := []string{prog.Funcs[0].Name, prog.Funcs[1].Name, prog.Funcs[2].Name}
	assert.Equal(t, []string{MainFunc, PhilFunc, HungryFunc}, names)

	spawns := 0
	for _, stmt := range prog.Funcs[0].Stmts {
		if spawn, ok := stmt.(*migo.SpawnStatement); ok {
			assert.Equal(t, PhilFunc, spawn.Name)
			spawns++
		}
	}
	assert.Equal(t, 4, spawns)

	// Every send on the lock is matched by a receive in the same branch.
	hungry := prog.Funcs[2]
	count := func(stmts []migo.Statement) (sends, recvs int) {
		for _, stmt := range stmts {
			switch stmt.(type) {
			case *migo.SendStatement:
				sends++
			case *migo.RecvStatement:
				recvs++
			}
		}
		return
	}
	s, r := count(hungry.Stmts)
	assert.Equal(t, 1, s)
	assert.Equal(t, 0, r)
	ifStmt, ok := hungry.Stmts[2].(*migo.IfStatement)
	require.True(t, ok)
	s, r = count(ifStmt.Then)
	assert.Equal(t, 0, s)
	assert.Equal(t, 1, r)
	s, r = count(ifStmt.Else)
	assert.Equal(t, 1, s)
	assert.Equal(t, 2, r)
}

func TestWriteMigo(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteMigo(&buf, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "spawn"))
	assert.Contains(t, out, "newchan")
	assert.Contains(t, out, HungryFunc)
}
